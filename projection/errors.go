package projection

import (
	"errors"
	"fmt"
)

// ErrNotProjectable is returned (wrapped in *Error) when no band contains
// the latitude of a coordinate. It indicates a defect in the band table.
var ErrNotProjectable = errors.New("coordinate could not be projected")

type Error struct {
	Longitude float64
	Latitude  float64
}

func (e *Error) Error() string {
	return fmt.Sprintf("coordinate (%f, %f) could not be projected", e.Longitude, e.Latitude)
}

func (e *Error) Unwrap() error {
	return ErrNotProjectable
}
