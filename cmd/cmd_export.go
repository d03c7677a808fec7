package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	legomap "github.com/leifgehrmann/lego-art-map-blog-post"
	"github.com/leifgehrmann/lego-art-map-blog-post/render"
)

type CmdExport struct {
	global *GlobalOptions

	Projection string   `short:"p" long:"projection" description:"banded, linear or stretch (default from config)"`
	Split      *float64 `short:"s" long:"split" description:"Cut the landmass at this longitude"`
	Quantize   float64  `short:"q" long:"quantize" description:"TopoJSON quantization, 0 disables" default:"1e6"`
	Graticule  float64  `short:"g" long:"graticule" description:"Add a graticule with this step in degrees"`
}

func init() {
	_, err := parser.AddCommand("export",
		"Export the map",
		"Build the landmass and export it as projected GeoJSON, raw GeoJSON or TopoJSON",
		&CmdExport{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdExport) Usage() string {
	return "[geojson|landmass|topojson] filename"
}

func (cmd CmdExport) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	format := args[0]
	switch format {
	case "geojson", "landmass", "topojson":
	default:
		return fmt.Errorf("Unknown format %q, Usage: %s", format, cmd.Usage())
	}

	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}

	log, err := cmd.global.Logger()
	if err != nil {
		return err
	}
	defer log.Sync()

	pipeline := legomap.NewPipeline(config, log)
	if cmd.Projection != "" {
		mode, err := legomap.ParseProjectionMode(cmd.Projection)
		if err != nil {
			return err
		}
		pipeline.Projection(mode)
	}
	if cmd.Split != nil {
		pipeline.Split(*cmd.Split)
	}

	result, err := pipeline.Run(context.Background())
	if err != nil {
		return err
	}

	if cmd.Graticule > 0 {
		lines, err := render.Graticule(render.GraticuleSpec{
			XStart: -180, XStop: 180, XStep: cmd.Graticule, XInclusive: true,
			YStart: -90, YStop: 90, YStep: cmd.Graticule, YInclusive: true,
			Stroke: config.Stroke,
		}, result.Transformer)
		if err != nil {
			return err
		}
		result.Bands = append(result.Bands, lines...)
	}

	err = writeOutput(args[1], func(w io.Writer) error {
		switch format {
		case "geojson":
			return legomap.WriteGeoJSON(w, result)
		case "landmass":
			return legomap.WriteLandmassGeoJSON(w, result.World)
		default:
			return legomap.WriteTopoJSON(w, result.World, cmd.Quantize)
		}
	})
	if err != nil {
		return err
	}

	log.Infow("Exported map", "format", format, "file", args[1])
	return nil
}

// writeOutput creates the file and closes it exactly once. The close error
// is returned when writing succeeded.
func writeOutput(filename string, write func(w io.Writer) error) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}

	err = write(out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
