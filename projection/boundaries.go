package projection

import "github.com/leifgehrmann/lego-art-map-blog-post/model"

// LatitudeBandBoundaries returns a horizontal line across the full
// longitude range at the start of every band but the first, innermost
// boundary first.
func (p *Banded) LatitudeBandBoundaries() model.MultiLineString {
	return p.boundaries(-180, 180, func(b LatitudeBand) float64 {
		return b.LatitudeStart
	})
}

// CanvasBandBoundaries returns the same boundaries expressed in canvas
// units, spanning the canvas width.
func (p *Banded) CanvasBandBoundaries() model.MultiLineString {
	return p.boundaries(-p.canvasWidth/2, p.canvasWidth/2, func(b LatitudeBand) float64 {
		return b.CanvasStart
	})
}

func (p *Banded) boundaries(startX, endX float64, y func(b LatitudeBand) float64) model.MultiLineString {
	if len(p.table) < 2 {
		return model.MultiLineString{}
	}

	lines := make(model.MultiLineString, 0, len(p.table)-1)
	for i := len(p.table) - 1; i >= 1; i-- {
		v := y(p.table[i])
		lines = append(lines, model.LineString{{startX, v}, {endX, v}})
	}
	return lines
}
