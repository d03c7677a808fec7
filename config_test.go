package legomap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

func TestConfigDefaults(t *testing.T) {
	is := is.New(t)

	c := NewConfig()
	is.Equal(c.Canvas.Width, 128.0)
	is.Equal(c.Canvas.Height, 80.0)
	is.Equal(c.Projection, ProjectionBanded)
	is.Nil(c.Split)
	is.NoErr(c.Validate())
}

func TestParseConfig(t *testing.T) {
	is := is.New(t)

	c, err := ParseConfig(strings.NewReader(`
canvas:
  width: 64
  height: 40
land: land.shp
projection: linear
split: -30
fill: "#00FF00"
`))
	is.NoErr(err)
	is.Equal(c.Canvas.Width, 64.0)
	is.Equal(c.Canvas.Height, 40.0)
	is.Equal(c.Land, "land.shp")
	is.Equal(c.Water, "data/ne_110m_lakes.zip")
	is.Equal(c.Projection, ProjectionLinear)
	is.NotNil(c.Split)
	is.Equal(*c.Split, -30.0)
	is.Equal(c.Fill, "#00FF00")
	is.Equal(c.Stroke, "#FF0000")
}

func TestParseConfigEmpty(t *testing.T) {
	is := is.New(t)

	c, err := ParseConfig(strings.NewReader(""))
	is.NoErr(err)
	is.Equal(c.Canvas.Width, 128.0)
}

func TestParseConfigInvalid(t *testing.T) {
	is := is.New(t)

	_, err := ParseConfig(strings.NewReader("canvas:\n  width: 0\n"))
	is.Err(err)

	_, err = ParseConfig(strings.NewReader("projection: mercator\n"))
	is.Err(err)

	_, err = ParseConfig(strings.NewReader("split: 200\n"))
	is.Err(err)

	_, err = ParseConfig(strings.NewReader("min_area: -1\n"))
	is.Err(err)

	_, err = ParseConfig(strings.NewReader("canvas: [\n"))
	is.Err(err)
}

func TestReadConfig(t *testing.T) {
	is := is.New(t)

	filename := filepath.Join(t.TempDir(), "legomap.yml")
	is.NoErr(os.WriteFile(filename, []byte("projection: stretch\n"), 0644))

	c, err := ReadConfig(filename)
	is.NoErr(err)
	is.Equal(c.Projection, ProjectionStretch)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	is.Err(err)
}
