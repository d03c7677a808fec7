package legomap

import (
	"encoding/json"
	"fmt"
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rubenv/topojson"

	"github.com/leifgehrmann/lego-art-map-blog-post/model"
	"github.com/leifgehrmann/lego-art-map-blog-post/projection"
	"github.com/leifgehrmann/lego-art-map-blog-post/render"
)

// WriteGeoJSON writes the projected shapes and band lines of a run as a
// feature collection in canvas coordinates.
func WriteGeoJSON(w io.Writer, result *Result) error {
	fc := geojson.NewFeatureCollection()

	for i, shape := range result.Shapes {
		rings := make([][][]float64, 0, 1+len(shape.Cutouts))
		rings = append(rings, outlineCoords(shape.Base))
		for _, cutout := range shape.Cutouts {
			rings = append(rings, outlineCoords(cutout))
		}

		f := geojson.NewPolygonFeature(rings)
		f.SetProperty("id", fmt.Sprintf("shape-%d", i))
		f.SetProperty("fill", shape.Fill.Color)
		f.SetProperty("fill-opacity", shape.Fill.Opacity)
		f.SetProperty("stroke-opacity", shape.Stroke.Opacity)
		fc.AddFeature(f)
	}

	for i, line := range result.Bands {
		f := geojson.NewLineStringFeature(pointCoords(line.Points))
		f.SetProperty("id", fmt.Sprintf("band-%d", i))
		f.SetProperty("stroke", line.Stroke.Color)
		f.SetProperty("stroke-width", line.Stroke.Width)
		f.SetProperty("stroke-opacity", line.Stroke.Opacity)
		fc.AddFeature(f)
	}

	return writeJSON(w, fc)
}

// WriteLandmassGeoJSON writes an unprojected landmass, one feature per
// polygon.
func WriteLandmassGeoJSON(w io.Writer, mp model.MultiPolygon) error {
	return writeJSON(w, landmassFeatures(mp))
}

// WriteTopoJSON writes an unprojected landmass as a TopoJSON topology.
// A quantize of 0 keeps full precision.
func WriteTopoJSON(w io.Writer, mp model.MultiPolygon, quantize float64) error {
	topo := topojson.NewTopology(landmassFeatures(mp), &topojson.TopologyOptions{
		PostQuantize: quantize,
		IDProperty:   "id",
	})
	return writeJSON(w, topo)
}

func landmassFeatures(mp model.MultiPolygon) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, p := range mp {
		rings := make([][][]float64, 0, 1+len(p.Interiors))
		rings = append(rings, ringCoords(p.Exterior))
		for _, hole := range p.Interiors {
			rings = append(rings, ringCoords(hole))
		}

		f := geojson.NewPolygonFeature(rings)
		f.SetProperty("id", fmt.Sprintf("land-%d", i))
		fc.AddFeature(f)
	}
	return fc
}

func ringCoords(r model.Ring) [][]float64 {
	out := make([][]float64, len(r))
	for i, c := range r {
		out[i] = []float64{c.Lon(), c.Lat()}
	}
	return out
}

func outlineCoords(o render.Outline) [][]float64 {
	return pointCoords(o)
}

func pointCoords(points []projection.Point) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
