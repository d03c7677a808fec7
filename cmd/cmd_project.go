package cmd

import (
	"fmt"
	"strconv"

	"github.com/kr/pretty"

	legomap "github.com/leifgehrmann/lego-art-map-blog-post"
	"github.com/leifgehrmann/lego-art-map-blog-post/model"
)

type CmdProject struct {
	global *GlobalOptions

	Projection string `short:"p" long:"projection" description:"banded, linear or stretch (default from config)"`
}

func init() {
	_, err := parser.AddCommand("project",
		"Project a coordinate",
		"Project a longitude/latitude pair onto the canvas",
		&CmdProject{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdProject) Usage() string {
	return "lon lat"
}

func (cmd CmdProject) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	lon, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return err
	}

	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}

	mode := config.Projection
	if cmd.Projection != "" {
		mode, err = legomap.ParseProjectionMode(cmd.Projection)
		if err != nil {
			return err
		}
	}

	t, err := legomap.NewTransformer(mode, config.Canvas.Width, config.Canvas.Height)
	if err != nil {
		return err
	}

	point, err := t.Transform(model.Coordinate{lon, lat})
	if err != nil {
		return err
	}

	fmt.Printf("%# v\n", pretty.Formatter(point))
	return nil
}
