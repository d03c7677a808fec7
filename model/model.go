// Package model holds the plain geometry types passed between the source
// readers, the landmass assembler, the projections and the renderer.
package model

import "math"

// Coordinate is a longitude/latitude pair in degrees.
type Coordinate [2]float64

func (c Coordinate) Lon() float64 { return c[0] }
func (c Coordinate) Lat() float64 { return c[1] }

func (c Coordinate) Equals(o Coordinate) bool {
	return c[0] == o[0] && c[1] == o[1]
}

// Ring is a closed sequence of coordinates, first and last point coincide.
type Ring []Coordinate

// Closed reports whether the ring ends where it starts.
func (r Ring) Closed() bool {
	return len(r) > 0 && r[0].Equals(r[len(r)-1])
}

// Close returns the ring with the first coordinate appended if needed.
func (r Ring) Close() Ring {
	if len(r) == 0 || r.Closed() {
		return r
	}
	out := make(Ring, len(r), len(r)+1)
	copy(out, r)
	return append(out, r[0])
}

// SignedArea uses the shoelace formula. Clockwise rings (shapefile
// exteriors) yield a positive area, counter-clockwise rings a negative one.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(r)-1; i++ {
		a, b := r[i], r[i+1]
		sum += (b[0] - a[0]) * (b[1] + a[1])
	}
	if !r.Closed() {
		a, b := r[len(r)-1], r[0]
		sum += (b[0] - a[0]) * (b[1] + a[1])
	}
	return sum / 2
}

func (r Ring) IsClockwise() bool {
	return r.SignedArea() >= 0
}

// Reverse returns a copy of the ring with the opposite orientation.
func (r Ring) Reverse() Ring {
	c := make(Ring, len(r))
	for i := 0; i < len(r); i++ {
		c[i] = r[len(r)-i-1]
	}
	return c
}

func (r Ring) Bounds() Bounds {
	b := EmptyBounds()
	for _, c := range r {
		b = b.Extend(c)
	}
	return b
}

// Polygon is an exterior ring with zero or more holes.
type Polygon struct {
	Exterior  Ring
	Interiors []Ring
}

func NewPolygon(exterior Ring, interiors ...Ring) Polygon {
	return Polygon{Exterior: exterior, Interiors: interiors}
}

// Area is the exterior area minus the area of the holes.
func (p Polygon) Area() float64 {
	area := math.Abs(p.Exterior.SignedArea())
	for _, hole := range p.Interiors {
		area -= math.Abs(hole.SignedArea())
	}
	return area
}

func (p Polygon) Bounds() Bounds {
	return p.Exterior.Bounds()
}

// MultiPolygon is a set of disjoint polygons. Order is kept stable but
// carries no meaning.
type MultiPolygon []Polygon

func (mp MultiPolygon) Area() float64 {
	area := 0.0
	for _, p := range mp {
		area += p.Area()
	}
	return area
}

func (mp MultiPolygon) HoleCount() int {
	n := 0
	for _, p := range mp {
		n += len(p.Interiors)
	}
	return n
}

func (mp MultiPolygon) Bounds() Bounds {
	b := EmptyBounds()
	for _, p := range mp {
		b = b.Union(p.Bounds())
	}
	return b
}

// LineString is an open sequence of at least two coordinates.
type LineString []Coordinate

type MultiLineString []LineString

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

func (b Bounds) Extend(c Coordinate) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, c[0]),
		MinY: math.Min(b.MinY, c[1]),
		MaxX: math.Max(b.MaxX, c[0]),
		MaxY: math.Max(b.MaxY, c[1]),
	}
}

func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}
