package render

import (
	"fmt"

	"github.com/leifgehrmann/lego-art-map-blog-post/model"
	"github.com/leifgehrmann/lego-art-map-blog-post/projection"
)

// GraticuleSpec describes a grid of vertical and horizontal lines in source
// coordinates.
type GraticuleSpec struct {
	XStart, XStop, XStep float64
	YStart, YStop, YStep float64

	// Include a line at the stop value itself
	XInclusive bool
	YInclusive bool

	Stroke string
}

// Graticule draws the grid through a transformer. Every line is defined by
// its two end points only.
func Graticule(spec GraticuleSpec, t projection.Transformer) ([]Line, error) {
	if !(spec.XStep > 0) || !(spec.YStep > 0) {
		return nil, fmt.Errorf("graticule steps must be positive, got %v and %v", spec.XStep, spec.YStep)
	}

	mls := model.MultiLineString{}
	for _, x := range gridValues(spec.XStart, spec.XStop, spec.XStep, spec.XInclusive) {
		mls = append(mls, model.LineString{{x, spec.YStart}, {x, spec.YStop}})
	}
	for _, y := range gridValues(spec.YStart, spec.YStop, spec.YStep, spec.YInclusive) {
		mls = append(mls, model.LineString{{spec.XStart, y}, {spec.XStop, y}})
	}

	return ToLines(mls, spec.Stroke, t)
}

// gridValues steps from start towards stop. An inclusive range runs up to
// stop + step/2 and clamps the last value to stop, so no line ever lies
// beyond the range.
func gridValues(start, stop, step float64, inclusive bool) []float64 {
	end := stop
	if inclusive {
		end += step / 2
	}

	values := []float64{}
	for v := start; v < end; v += step {
		if v >= stop {
			if inclusive {
				values = append(values, stop)
			}
			break
		}
		values = append(values, v)
	}
	return values
}
