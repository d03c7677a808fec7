package source

import (
	"fmt"
	"io"

	geojson "github.com/paulmach/go.geojson"

	"github.com/leifgehrmann/lego-art-map-blog-post/model"
)

// ReadGeoJSON reads the Polygon and MultiPolygon features of a
// FeatureCollection. Every polygon becomes one fragment; unclosed rings
// are closed.
func ReadGeoJSON(in io.Reader) ([]model.Polygon, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	polygons := make([]model.Polygon, 0, len(fc.Features))
	for i, feat := range fc.Features {
		if feat.Geometry == nil {
			return nil, fmt.Errorf("feature %d has no geometry", i)
		}

		switch feat.Geometry.Type {
		case geojson.GeometryPolygon:
			p, err := toPolygon(feat.Geometry.Polygon)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			polygons = append(polygons, p)
		case geojson.GeometryMultiPolygon:
			for _, rings := range feat.Geometry.MultiPolygon {
				p, err := toPolygon(rings)
				if err != nil {
					return nil, fmt.Errorf("feature %d: %w", i, err)
				}
				polygons = append(polygons, p)
			}
		default:
			return nil, fmt.Errorf("feature %d: unsupported geometry type %s", i, feat.Geometry.Type)
		}
	}

	return polygons, nil
}

func toPolygon(rings [][][]float64) (model.Polygon, error) {
	if len(rings) == 0 {
		return model.Polygon{}, fmt.Errorf("polygon without rings")
	}

	out := make([]model.Ring, len(rings))
	for i, ring := range rings {
		r := make(model.Ring, len(ring))
		for j, c := range ring {
			if len(c) < 2 {
				return model.Polygon{}, fmt.Errorf("bad coordinate: %v", c)
			}
			r[j] = model.Coordinate{c[0], c[1]}
		}
		out[i] = r.Close()
	}

	return model.NewPolygon(out[0], out[1:]...), nil
}
