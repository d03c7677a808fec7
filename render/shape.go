// Package render turns projected geometry into renderer-agnostic shape and
// line primitives.
package render

import "github.com/leifgehrmann/lego-art-map-blog-post/projection"

// Outline is a closed path of canvas points.
type Outline []projection.Point

type Fill struct {
	Color   string
	Opacity float64
}

type Stroke struct {
	Color   string
	Width   float64
	Opacity float64
}

// Shape is a filled outline. When Cutouts is non-empty the shape is a
// compound shape with the cutouts subtracted from Base.
type Shape struct {
	Base    Outline
	Cutouts []Outline
	Fill    Fill
	Stroke  Stroke
}

func (s Shape) IsCompound() bool {
	return len(s.Cutouts) > 0
}

// Line is an open stroked path.
type Line struct {
	Points []projection.Point
	Stroke Stroke
}

// Diagnostic overlay lines always use the same stroke.
const (
	DiagnosticStrokeWidth   = 3
	DiagnosticStrokeOpacity = 1
)
