// Package source reads land and water fragments from shapefiles and GeoJSON.
package source

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/jonas-p/go-shp"
	geo "github.com/paulmach/go.geo"
	"github.com/paulmach/go.geo/reducers"
	"github.com/paulsmith/gogeos/geos"

	"github.com/leifgehrmann/lego-art-map-blog-post/geosutil"
	"github.com/leifgehrmann/lego-art-map-blog-post/model"
)

// Options tune how rings are read. The zero value passes every ring
// through untouched.
type Options struct {
	// Visvalingam threshold, 0 disables simplification
	Simplify float64

	// Rings with a smaller absolute area are dropped, 0 keeps everything
	MinArea float64
}

// Read picks a reader based on the file extension.
func Read(filename string, opts Options) ([]model.Polygon, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zip":
		return ReadZip(filename, opts)
	case ".shp":
		return ReadShapefile(filename, opts)
	case ".geojson", ".json":
		fp, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		return ReadGeoJSON(fp)
	default:
		return nil, fmt.Errorf("unsupported source file: %s", filename)
	}
}

// ReadZip unpacks a zipped shapefile and reads the first .shp inside it.
func ReadZip(zipfile string, opts Options) ([]model.Polygon, error) {
	tmp, err := os.MkdirTemp("", "shapes")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)

	r, err := zip.OpenReader(zipfile)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	shpName := ""
	for _, f := range r.File {
		err = unpackFile(f, tmp)
		if err != nil {
			return nil, err
		}

		if shpName == "" && strings.HasSuffix(strings.ToLower(f.Name), ".shp") {
			shpName = filepath.Base(f.Name)
		}
	}

	if shpName == "" {
		return nil, errors.New("no shape file found in zip")
	}

	return ReadShapefile(filepath.Join(tmp, shpName), opts)
}

// unpackFile flattens the archive, the shapefile and its sidecar files
// must end up next to each other.
func unpackFile(f *zip.File, folder string) error {
	if f.FileInfo().IsDir() {
		return nil
	}

	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(filepath.Join(folder, filepath.Base(f.Name)))
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// ReadShapefile returns one or more polygons per shape record.
func ReadShapefile(filename string, opts Options) ([]model.Polygon, error) {
	shape, err := shp.Open(filename)
	if err != nil {
		return nil, err
	}
	defer shape.Close()

	polygons := make([]model.Polygon, 0)
	for shape.Next() {
		n, p := shape.Shape()
		poly, ok := p.(*shp.Polygon)
		if !ok {
			return nil, fmt.Errorf("non-polygon found in record %d: %s, %v", n, reflect.TypeOf(p).Elem(), p.BBox())
		}

		parts, err := processPolygon(poly, opts)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", n, err)
		}
		polygons = append(polygons, parts...)
	}

	if err := shape.Err(); err != nil {
		return nil, err
	}

	return polygons, nil
}

func processPolygon(poly *shp.Polygon, opts Options) ([]model.Polygon, error) {
	outer := make([]model.Ring, 0)
	inner := make([]model.Ring, 0)

	for _, ring := range splitParts(poly) {
		if opts.Simplify > 0 {
			ring = simplifyRing(ring, opts.Simplify)
		}

		area := ring.SignedArea()
		if opts.MinArea > 0 && math.Abs(area) < opts.MinArea {
			continue
		}

		if ring.IsClockwise() {
			outer = append(outer, ring)
		} else {
			// Holes are encoded counter-clockwise in
			// shape files, thus leading to a negative
			// area
			inner = append(inner, ring)
		}
	}

	return MakePolygons(outer, inner)
}

func splitParts(poly *shp.Polygon) []model.Ring {
	rings := make([]model.Ring, 0, len(poly.Parts))
	for i, first := range poly.Parts {
		last := len(poly.Points)
		if i < len(poly.Parts)-1 {
			last = int(poly.Parts[i+1])
		}

		points := poly.Points[first:last]
		ring := make(model.Ring, len(points))
		for j, p := range points {
			ring[j] = model.Coordinate{p.X, p.Y}
		}
		rings = append(rings, ring)
	}
	return rings
}

func simplifyRing(ring model.Ring, threshold float64) model.Ring {
	path := geo.NewPathPreallocate(len(ring), len(ring))
	for i, c := range ring {
		path.SetAt(i, &geo.Point{c[0], c[1]})
	}
	simplified := reducers.VisvalingamThreshold(path, threshold)

	length := simplified.Length()
	out := make(model.Ring, 0, length)
	for j := 0; j < length; j++ {
		point := simplified.GetAt(j)
		out = append(out, model.Coordinate{point[0], point[1]})
	}
	return out
}

// MakePolygons assigns every hole to the first exterior containing it.
// Holes without an enclosing exterior are turned into exteriors of their
// own.
func MakePolygons(outer, inner []model.Ring) ([]model.Polygon, error) {
	inner = append([]model.Ring(nil), inner...)

	polygons := make([]model.Polygon, 0, len(outer))
	for _, shell := range outer {
		p := model.Polygon{Exterior: shell}

		if len(inner) > 0 {
			g, err := geosutil.PolygonToGeos(model.Polygon{Exterior: shell})
			if err != nil {
				return nil, err
			}
			pshell := geos.PrepareGeometry(g)

			// Find holes
			for i := 0; i < len(inner); i++ {
				hole, err := geosutil.PolygonToGeos(model.Polygon{Exterior: inner[i]})
				if err != nil {
					return nil, err
				}
				c, err := pshell.Contains(hole)
				if err != nil {
					return nil, err
				}
				if c {
					p.Interiors = append(p.Interiors, inner[i])
					inner = append(inner[:i], inner[i+1:]...)
					i-- // Counter-act the increment at the end of the iteration
				}
			}
		}

		polygons = append(polygons, p)
	}

	for _, orphan := range inner {
		polygons = append(polygons, model.Polygon{Exterior: orphan.Reverse()})
	}

	return polygons, nil
}
