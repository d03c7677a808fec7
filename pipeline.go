package legomap

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leifgehrmann/lego-art-map-blog-post/landmass"
	"github.com/leifgehrmann/lego-art-map-blog-post/model"
	"github.com/leifgehrmann/lego-art-map-blog-post/projection"
	"github.com/leifgehrmann/lego-art-map-blog-post/render"
	"github.com/leifgehrmann/lego-art-map-blog-post/source"
)

// Source produces land or water fragments.
type Source func(ctx context.Context) ([]model.Polygon, error)

// FileSource reads fragments from a shapefile, zipped shapefile or GeoJSON
// file.
func FileSource(filename string, opts source.Options) Source {
	return func(ctx context.Context) ([]model.Polygon, error) {
		if filename == "" {
			return nil, errors.New("no source file configured")
		}
		polygons, err := source.Read(filename, opts)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "read %s", filename)
		}
		return polygons, nil
	}
}

// StaticSource returns fragments that are already in memory.
func StaticSource(polygons []model.Polygon) Source {
	return func(ctx context.Context) ([]model.Polygon, error) {
		return polygons, nil
	}
}

// Result holds everything derived from one pipeline run. The landmass is
// unprojected, shapes and lines are in canvas space.
type Result struct {
	World model.MultiPolygon
	Left  model.MultiPolygon
	Right model.MultiPolygon

	Transformer projection.Transformer
	Shapes      []render.Shape
	Bands       []render.Line
}

type Pipeline struct {
	config *Config
	log    *zap.SugaredLogger

	land  Source
	water Source
	split *float64
	mode  ProjectionMode
}

func NewPipeline(config *Config, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	opts := source.Options{
		Simplify: config.Simplify,
		MinArea:  config.MinArea,
	}

	return &Pipeline{
		config: config,
		log:    log,
		land:   FileSource(config.Land, opts),
		water:  FileSource(config.Water, opts),
		split:  config.Split,
		mode:   config.Projection,
	}
}

func (p *Pipeline) Sources(land, water Source) *Pipeline {
	p.land = land
	p.water = water
	return p
}

func (p *Pipeline) Split(longitude float64) *Pipeline {
	p.split = &longitude
	return p
}

func (p *Pipeline) Projection(mode ProjectionMode) *Pipeline {
	p.mode = mode
	return p
}

func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if err := p.config.Validate(); err != nil {
		return nil, err
	}

	transformer, err := NewTransformer(p.mode, p.config.Canvas.Width, p.config.Canvas.Height)
	if err != nil {
		return nil, err
	}

	// Load land and water in parallel
	var land, water []model.Polygon
	done := p.stage("load", "Load fragments")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		land, err = p.land(gctx)
		return pkgerrors.Wrap(err, "load land")
	})
	g.Go(func() error {
		var err error
		water, err = p.water(gctx)
		return pkgerrors.Wrap(err, "load water")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	done("land", len(land), "water", len(water))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Transformer: transformer}

	done = p.stage("assemble", "Union land, subtract water")
	result.World, err = landmass.LoadLandAndWater(land, water)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "assemble landmass")
	}
	fields := []interface{}{"polygons", len(result.World), "holes", result.World.HoleCount()}
	if b := result.World.Bounds(); !b.IsEmpty() {
		fields = append(fields, "bounds", []float64{b.MinX, b.MinY, b.MaxX, b.MaxY})
	}
	done(fields...)

	parts := []model.MultiPolygon{result.World}
	if p.split != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		done = p.stage("split", "Split at longitude")
		result.Left, result.Right, err = landmass.SplitAtLongitude(result.World, *p.split)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "split at %v", *p.split)
		}
		done("longitude", *p.split, "left", len(result.Left), "right", len(result.Right))
		parts = []model.MultiPolygon{result.Left, result.Right}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done = p.stage("project", "Project shapes")
	for _, part := range parts {
		shapes, err := render.ToShapes(part, p.config.Fill, transformer)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "project landmass")
		}
		result.Shapes = append(result.Shapes, shapes...)
	}

	if banded, ok := transformer.(*projection.Banded); ok {
		result.Bands, err = render.ToLines(banded.LatitudeBandBoundaries(), p.config.Stroke, banded)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "project band boundaries")
		}
	}
	done("shapes", len(result.Shapes), "bands", len(result.Bands))

	return result, nil
}

// stage logs the start of a pipeline stage and returns a func that logs its
// completion along with the elapsed time.
func (p *Pipeline) stage(name, desc string) func(keysAndValues ...interface{}) {
	start := time.Now()
	p.log.Debugw(desc, "stage", name)
	return func(keysAndValues ...interface{}) {
		kv := append([]interface{}{"stage", name, "elapsed", time.Since(start)}, keysAndValues...)
		p.log.Infow(desc, kv...)
	}
}
