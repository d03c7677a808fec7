package render

import (
	"github.com/leifgehrmann/lego-art-map-blog-post/model"
	"github.com/leifgehrmann/lego-art-map-blog-post/projection"
)

// ToShapes converts every polygon into an opaque, unstroked shape. Holes
// become cutouts. The output order follows the input order.
func ToShapes(mp model.MultiPolygon, fill string, t projection.Transformer) ([]Shape, error) {
	shapes := make([]Shape, 0, len(mp))
	for _, poly := range mp {
		base, err := transformAll(poly.Exterior, t)
		if err != nil {
			return nil, err
		}

		var cutouts []Outline
		for _, ring := range poly.Interiors {
			cutout, err := transformAll(ring, t)
			if err != nil {
				return nil, err
			}
			cutouts = append(cutouts, cutout)
		}

		shapes = append(shapes, Shape{
			Base:    base,
			Cutouts: cutouts,
			Fill:    Fill{Color: fill, Opacity: 1},
			Stroke:  Stroke{Opacity: 0},
		})
	}
	return shapes, nil
}

// ToLines converts every line string into a line with the diagnostic
// stroke.
func ToLines(mls model.MultiLineString, stroke string, t projection.Transformer) ([]Line, error) {
	lines := make([]Line, 0, len(mls))
	for _, ls := range mls {
		points, err := transformAll(ls, t)
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{
			Points: points,
			Stroke: diagnosticStroke(stroke),
		})
	}
	return lines, nil
}

func diagnosticStroke(color string) Stroke {
	return Stroke{
		Color:   color,
		Width:   DiagnosticStrokeWidth,
		Opacity: DiagnosticStrokeOpacity,
	}
}

func transformAll(coords []model.Coordinate, t projection.Transformer) ([]projection.Point, error) {
	out := make([]projection.Point, len(coords))
	for i, c := range coords {
		p, err := t.Transform(c)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
