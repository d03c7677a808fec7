// Package projection maps geographic coordinates onto canvas space.
//
// Three modes share the Transformer interface: the banded projection, which
// remaps latitude through a table of independently scaled bands, and two
// single-band variants (linear and stretch) used for the unprojected views.
package projection

import (
	"fmt"

	"github.com/leifgehrmann/lego-art-map-blog-post/model"
)

// Point is a canvas coordinate. Z is always 0; renderers expect 3D points.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Transformer converts a geographic coordinate into canvas space.
type Transformer interface {
	Transform(c model.Coordinate) (Point, error)
}

type TransformerFunc func(c model.Coordinate) (Point, error)

func (f TransformerFunc) Transform(c model.Coordinate) (Point, error) {
	return f(c)
}

// Banded is the piecewise latitude projection. It is immutable once built
// and safe for concurrent use.
type Banded struct {
	table        Table
	canvasWidth  float64
	canvasHeight float64
}

// Build creates the banded projection for the given canvas size.
func Build(canvasWidth, canvasHeight float64) (*Banded, error) {
	return newBanded(DefaultTable(), canvasWidth, canvasHeight)
}

func newBanded(table Table, canvasWidth, canvasHeight float64) (*Banded, error) {
	if !(canvasWidth > 0) || !(canvasHeight > 0) {
		return nil, fmt.Errorf("invalid canvas size %vx%v", canvasWidth, canvasHeight)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Banded{
		table:        table,
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
	}, nil
}

func (p *Banded) CanvasWidth() float64  { return p.canvasWidth }
func (p *Banded) CanvasHeight() float64 { return p.canvasHeight }

// Table returns a copy of the bands in use.
func (p *Banded) Table() Table {
	t := make(Table, len(p.table))
	copy(t, p.table)
	return t
}

// Band returns the band containing the latitude and its index.
func (p *Banded) Band(latitude float64) (int, LatitudeBand, bool) {
	i := p.table.Lookup(latitude)
	if i < 0 {
		return -1, LatitudeBand{}, false
	}
	return i, p.table[i], true
}

func (p *Banded) Transform(c model.Coordinate) (Point, error) {
	lon, lat := c.Lon(), c.Lat()

	x := lon / 360 * p.canvasWidth

	_, band, ok := p.Band(lat)
	if !ok {
		return Point{}, &Error{Longitude: lon, Latitude: lat}
	}

	y := p.canvasHeight/2 - band.Interpolate(lat)
	return Point{X: x, Y: y}, nil
}

// Linear scales longitude and latitude by the same factor.
type Linear struct {
	scale float64
}

func NewLinear(scale float64) *Linear {
	return &Linear{scale: scale}
}

// WGS84Scale fits the full longitude range into 80% of the frame width.
func WGS84Scale(frameWidth float64) float64 {
	return 1.0 / 360 * frameWidth * 0.8
}

func (p *Linear) Transform(c model.Coordinate) (Point, error) {
	return Point{X: c.Lon() * p.scale, Y: c.Lat() * p.scale}, nil
}

// Stretch fits the whole world into a width x height rectangle centered on
// the origin, scaling each axis independently.
type Stretch struct {
	width  float64
	height float64
}

func NewStretch(width, height float64) *Stretch {
	return &Stretch{width: width, height: height}
}

func (p *Stretch) Transform(c model.Coordinate) (Point, error) {
	return Point{
		X: c.Lon() / 360 * p.width,
		Y: c.Lat() / 180 * p.height,
	}, nil
}
