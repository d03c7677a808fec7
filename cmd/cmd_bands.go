package cmd

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/leifgehrmann/lego-art-map-blog-post/projection"
)

type CmdBands struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("bands",
		"Show latitude bands",
		"Show the latitude band table and its boundaries on the canvas",
		&CmdBands{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdBands) Execute(args []string) error {
	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}

	p, err := projection.Build(config.Canvas.Width, config.Canvas.Height)
	if err != nil {
		return err
	}

	fmt.Printf("canvas %vx%v\n", p.CanvasWidth(), p.CanvasHeight())
	for i, band := range p.Table() {
		fmt.Printf("%d: %# v\n", i, pretty.Formatter(band))
	}

	for _, line := range p.CanvasBandBoundaries() {
		fmt.Printf("boundary y=%v\n", line[0].Lat())
	}
	return nil
}
