package legomap

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/cheekybits/is"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/leifgehrmann/lego-art-map-blog-post/model"
	"github.com/leifgehrmann/lego-art-map-blog-post/projection"
)

func rect(minX, minY, maxX, maxY float64) model.Polygon {
	return model.NewPolygon(model.Ring{
		{minX, minY},
		{minX, maxY},
		{maxX, maxY},
		{maxX, minY},
		{minX, minY},
	})
}

func testPipeline() *Pipeline {
	land := []model.Polygon{rect(-20, -10, 20, 10), rect(10, 0, 40, 30)}
	water := []model.Polygon{rect(-15, -5, -5, 5)}
	return NewPipeline(NewConfig(), nil).Sources(StaticSource(land), StaticSource(water))
}

func TestPipelineRun(t *testing.T) {
	is := is.New(t)

	result, err := testPipeline().Run(context.Background())
	is.NoErr(err)

	is.Equal(len(result.World), 1)
	is.Equal(result.World.HoleCount(), 1)
	is.True(math.Abs(result.World.Area()-(800+900-100-100)) < 1e-9)
	is.Equal(len(result.Left), 0)
	is.Equal(len(result.Right), 0)

	is.Equal(len(result.Shapes), 1)
	is.True(result.Shapes[0].IsCompound())
	is.Equal(result.Shapes[0].Fill.Color, "#FFFFFF")
	is.Equal(result.Shapes[0].Fill.Opacity, 1.0)
	is.Equal(result.Shapes[0].Stroke.Opacity, 0.0)

	// One line per inner band boundary
	is.Equal(len(result.Bands), 4)
	for _, line := range result.Bands {
		is.Equal(line.Stroke.Color, "#FF0000")
		is.Equal(len(line.Points), 2)
	}

	_, ok := result.Transformer.(*projection.Banded)
	is.True(ok)
}

func TestPipelineSplit(t *testing.T) {
	is := is.New(t)

	result, err := testPipeline().Split(0).Run(context.Background())
	is.NoErr(err)

	is.True(math.Abs(result.Left.Area()+result.Right.Area()-result.World.Area()) < 1e-9)
	is.Equal(len(result.Shapes), len(result.Left)+len(result.Right))

	// Canvas x of left shapes stays at or west of the cut
	for _, p := range result.Shapes[0].Base {
		is.True(p.X <= 1e-9)
	}
}

func TestPipelineLinear(t *testing.T) {
	is := is.New(t)

	result, err := testPipeline().Projection(ProjectionLinear).Run(context.Background())
	is.NoErr(err)
	is.Equal(len(result.Shapes), 1)
	is.Equal(len(result.Bands), 0)
}

func TestPipelineNoLand(t *testing.T) {
	is := is.New(t)

	result, err := NewPipeline(NewConfig(), nil).
		Sources(StaticSource(nil), StaticSource(nil)).
		Run(context.Background())
	is.NoErr(err)
	is.Equal(len(result.World), 0)
	is.Equal(len(result.Shapes), 0)
}

func TestPipelineSourceError(t *testing.T) {
	is := is.New(t)

	failing := func(ctx context.Context) ([]model.Polygon, error) {
		return nil, errors.New("boom")
	}

	_, err := NewPipeline(NewConfig(), nil).
		Sources(StaticSource(nil), failing).
		Run(context.Background())
	is.Err(err)
	is.Equal(err.Error(), "load water: boom")
}

func TestPipelineMissingFile(t *testing.T) {
	is := is.New(t)

	c := NewConfig()
	c.Land = filepath.Join(t.TempDir(), "land.shp")
	c.Water = ""

	_, err := NewPipeline(c, nil).Run(context.Background())
	is.Err(err)
}

func TestPipelineCancelled(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testPipeline().Run(ctx)
	is.Err(err)
	is.True(errors.Is(err, context.Canceled))
}

func TestPipelineInvalidConfig(t *testing.T) {
	is := is.New(t)

	c := NewConfig()
	c.Canvas.Width = -1

	_, err := NewPipeline(c, nil).Run(context.Background())
	is.Err(err)
}

func TestPipelineLogsStages(t *testing.T) {
	is := is.New(t)

	core, logs := observer.New(zap.DebugLevel)
	land := []model.Polygon{rect(-20, -10, 20, 10), rect(10, 0, 40, 30)}
	water := []model.Polygon{rect(-15, -5, -5, 5)}

	_, err := NewPipeline(NewConfig(), zap.New(core).Sugar()).
		Sources(StaticSource(land), StaticSource(water)).
		Run(context.Background())
	is.NoErr(err)

	assembled := logs.FilterField(zap.String("stage", "assemble")).FilterField(zap.Int("holes", 1)).All()
	is.Equal(len(assembled), 1)
	is.Equal(assembled[0].Level, zap.InfoLevel)
	_, ok := assembled[0].ContextMap()["bounds"]
	is.True(ok)
	is.NotNil(assembled[0].ContextMap()["elapsed"])

	for _, stage := range []string{"load", "assemble", "project"} {
		is.Equal(logs.FilterField(zap.String("stage", stage)).Len(), 2)
	}
	is.Equal(logs.FilterField(zap.String("stage", "split")).Len(), 0)
}

func TestPipelineLogsNoBoundsWithoutLand(t *testing.T) {
	is := is.New(t)

	core, logs := observer.New(zap.InfoLevel)
	_, err := NewPipeline(NewConfig(), zap.New(core).Sugar()).
		Sources(StaticSource(nil), StaticSource(nil)).
		Run(context.Background())
	is.NoErr(err)

	assembled := logs.FilterField(zap.String("stage", "assemble")).All()
	is.Equal(len(assembled), 1)
	_, ok := assembled[0].ContextMap()["bounds"]
	is.False(ok)
}
