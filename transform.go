package legomap

import (
	"fmt"

	"github.com/leifgehrmann/lego-art-map-blog-post/projection"
)

type ProjectionMode string

const (
	ProjectionBanded  ProjectionMode = "banded"
	ProjectionLinear  ProjectionMode = "linear"
	ProjectionStretch ProjectionMode = "stretch"
)

func ParseProjectionMode(s string) (ProjectionMode, error) {
	switch m := ProjectionMode(s); m {
	case ProjectionBanded, ProjectionLinear, ProjectionStretch:
		return m, nil
	default:
		return "", fmt.Errorf("unknown projection: %q", s)
	}
}

// NewTransformer returns the transformer for a projection mode on a canvas
// of the given size. The linear mode fits the world into 80% of the width.
func NewTransformer(mode ProjectionMode, width, height float64) (projection.Transformer, error) {
	switch mode {
	case ProjectionBanded:
		p, err := projection.Build(width, height)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProjectionLinear:
		return projection.NewLinear(projection.WGS84Scale(width)), nil
	case ProjectionStretch:
		return projection.NewStretch(width, height), nil
	default:
		return nil, fmt.Errorf("unknown projection: %q", mode)
	}
}
