package legomap

import (
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultLandURL  = "https://naciscdn.org/naturalearth/110m/physical/ne_110m_land.zip"
	DefaultWaterURL = "https://naciscdn.org/naturalearth/110m/physical/ne_110m_lakes.zip"
)

type Config struct {
	Canvas     Canvas         `yaml:"canvas"`
	Land       string         `yaml:"land"`
	Water      string         `yaml:"water"`
	Projection ProjectionMode `yaml:"projection"`

	// Optional longitude to cut the landmass at
	Split *float64 `yaml:"split"`

	Simplify float64 `yaml:"simplify"`
	MinArea  float64 `yaml:"min_area"`

	Fill   string `yaml:"fill"`
	Stroke string `yaml:"stroke"`
}

type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func NewConfig() *Config {
	return &Config{
		Canvas: Canvas{
			Width:  128,
			Height: 80,
		},
		Land:       "data/ne_110m_land.zip",
		Water:      "data/ne_110m_lakes.zip",
		Projection: ProjectionBanded,
		Fill:       "#FFFFFF",
		Stroke:     "#FF0000",
	}
}

func ReadConfig(filename string) (*Config, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ParseConfig(fp)
}

// ParseConfig reads a YAML config, missing values keep their defaults.
func ParseConfig(in io.Reader) (*Config, error) {
	c := NewConfig()
	err := yaml.NewDecoder(in).Decode(c)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return c, c.Validate()
}

func (c *Config) Validate() error {
	if !(c.Canvas.Width > 0) || !(c.Canvas.Height > 0) {
		return fmt.Errorf("canvas size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := ParseProjectionMode(string(c.Projection)); err != nil {
		return err
	}
	if c.Split != nil && (*c.Split < -180 || *c.Split > 180) {
		return fmt.Errorf("split longitude out of range: %v", *c.Split)
	}
	if c.Simplify < 0 || c.MinArea < 0 {
		return fmt.Errorf("simplify and min_area must not be negative")
	}
	return nil
}
