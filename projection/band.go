package projection

import (
	"fmt"
	"math"
)

// LatitudeBand maps the half-open latitude interval [LatitudeStart,
// LatitudeStop) onto [CanvasStart, CanvasStop]. The canvas range may be
// inverted.
type LatitudeBand struct {
	LatitudeStart float64
	LatitudeStop  float64
	CanvasStart   float64
	CanvasStop    float64
}

// Contains uses an inclusive lower bound (with tolerance) and an exclusive
// upper bound.
func (b LatitudeBand) Contains(latitude float64) bool {
	return (b.LatitudeStart <= latitude || isClose(b.LatitudeStart, latitude)) &&
		latitude < b.LatitudeStop
}

// Interpolate maps a latitude inside the band onto the canvas range,
// before the Y flip is applied.
func (b LatitudeBand) Interpolate(latitude float64) float64 {
	t := (latitude - b.LatitudeStart) / (b.LatitudeStop - b.LatitudeStart)
	return t*(b.CanvasStop-b.CanvasStart) + b.CanvasStart
}

// Table is an ordered list of bands covering [-90, 90].
type Table []LatitudeBand

// The pole bounds are padded slightly beyond ±90 so the exact poles are
// always covered.
var defaultTable = Table{
	{LatitudeStart: -90.00001, LatitudeStop: -83, CanvasStart: 80.0001, CanvasStop: 80},
	{LatitudeStart: -83, LatitudeStop: -60, CanvasStart: 80, CanvasStop: 70},
	{LatitudeStart: -60, LatitudeStop: -57, CanvasStart: 70, CanvasStop: 67},
	{LatitudeStart: -57, LatitudeStop: 86, CanvasStart: 67, CanvasStop: 4},
	{LatitudeStart: 86, LatitudeStop: 90.000001, CanvasStart: 4, CanvasStop: 0},
}

// DefaultTable returns a copy of the five band layout. The canvas values
// assume an 80 unit high canvas.
func DefaultTable() Table {
	t := make(Table, len(defaultTable))
	copy(t, defaultTable)
	return t
}

// Lookup returns the index of the first band containing the latitude, or
// -1 when there is none.
func (t Table) Lookup(latitude float64) int {
	for i, b := range t {
		if b.Contains(latitude) {
			return i
		}
	}
	return -1
}

// Validate checks that the bands are non-empty, contiguous and cover both
// poles.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("band table is empty")
	}
	for i, b := range t {
		if !(b.LatitudeStop > b.LatitudeStart) {
			return fmt.Errorf("band %d: empty latitude range [%v, %v)", i, b.LatitudeStart, b.LatitudeStop)
		}
		if i > 0 && !isClose(t[i-1].LatitudeStop, b.LatitudeStart) {
			return fmt.Errorf("band %d: starts at %v but previous band stops at %v", i, b.LatitudeStart, t[i-1].LatitudeStop)
		}
	}
	if t[0].LatitudeStart > -90 {
		return fmt.Errorf("south pole not covered, first band starts at %v", t[0].LatitudeStart)
	}
	if t[len(t)-1].LatitudeStop <= 90 {
		return fmt.Errorf("north pole not covered, last band stops at %v", t[len(t)-1].LatitudeStop)
	}
	return nil
}

// isClose mirrors a relative tolerance comparison of 1e-9.
func isClose(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}
