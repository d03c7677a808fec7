// Package geosutil converts between the model types and GEOS geometries.
package geosutil

import (
	"fmt"

	"github.com/paulsmith/gogeos/geos"

	"github.com/leifgehrmann/lego-art-map-blog-post/model"
)

func RingToCoords(r model.Ring) []geos.Coord {
	coords := make([]geos.Coord, 0, len(r))
	for _, c := range r {
		coords = append(coords, geos.Coord{X: c[0], Y: c[1]})
	}
	return coords
}

func PolygonToGeos(p model.Polygon) (*geos.Geometry, error) {
	holes := make([][]geos.Coord, 0, len(p.Interiors))
	for _, ring := range p.Interiors {
		holes = append(holes, RingToCoords(ring))
	}
	return geos.NewPolygon(RingToCoords(p.Exterior), holes...)
}

func MultiPolygonToGeos(mp model.MultiPolygon) (*geos.Geometry, error) {
	polygons := make([]*geos.Geometry, 0, len(mp))
	for _, p := range mp {
		g, err := PolygonToGeos(p)
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, g)
	}
	return geos.NewCollection(geos.MULTIPOLYGON, polygons...)
}

// Box returns the rectangle [minX, maxX] x [minY, maxY] as a polygon.
func Box(minX, minY, maxX, maxY float64) (*geos.Geometry, error) {
	return geos.NewPolygon([]geos.Coord{
		{X: minX, Y: minY},
		{X: minX, Y: maxY},
		{X: maxX, Y: maxY},
		{X: maxX, Y: minY},
		{X: minX, Y: minY},
	})
}

// PolygonsFromGeos collects the polygonal parts of a geometry. Points and
// lines (for example slivers left by an intersection) are dropped.
func PolygonsFromGeos(geom *geos.Geometry) (model.MultiPolygon, error) {
	empty, err := geom.IsEmpty()
	if err != nil {
		return nil, err
	}
	if empty {
		return model.MultiPolygon{}, nil
	}

	t, err := geom.Type()
	if err != nil {
		return nil, err
	}

	switch t {
	case geos.POLYGON:
		p, err := polygonFromGeos(geom)
		if err != nil {
			return nil, err
		}
		return model.MultiPolygon{p}, nil
	case geos.MULTIPOLYGON, geos.GEOMETRYCOLLECTION:
		n, err := geom.NGeometry()
		if err != nil {
			return nil, err
		}

		result := make(model.MultiPolygon, 0, n)
		for i := 0; i < n; i++ {
			g, err := geom.Geometry(i)
			if err != nil {
				return nil, err
			}

			parts, err := PolygonsFromGeos(g)
			if err != nil {
				return nil, err
			}
			result = append(result, parts...)
		}
		return result, nil
	case geos.POINT, geos.MULTIPOINT, geos.LINESTRING, geos.MULTILINESTRING, geos.LINEARRING:
		return model.MultiPolygon{}, nil
	default:
		return nil, fmt.Errorf("unknown geometry type: %v", t)
	}
}

func polygonFromGeos(geom *geos.Geometry) (model.Polygon, error) {
	shell, err := geom.Shell()
	if err != nil {
		return model.Polygon{}, err
	}
	exterior, err := ringFromGeos(shell)
	if err != nil {
		return model.Polygon{}, err
	}

	holes, err := geom.Holes()
	if err != nil {
		return model.Polygon{}, err
	}

	p := model.Polygon{Exterior: exterior}
	for _, h := range holes {
		ring, err := ringFromGeos(h)
		if err != nil {
			return model.Polygon{}, err
		}
		p.Interiors = append(p.Interiors, ring)
	}
	return p, nil
}

func ringFromGeos(ring *geos.Geometry) (model.Ring, error) {
	coords, err := ring.Coords()
	if err != nil {
		return nil, err
	}

	r := make(model.Ring, len(coords))
	for i, c := range coords {
		r[i] = model.Coordinate{c.X, c.Y}
	}
	return r, nil
}
