package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	legomap "github.com/leifgehrmann/lego-art-map-blog-post"
)

type GlobalOptions struct {
	Config  string `short:"c" long:"config" description:"YAML config file"`
	Verbose bool   `short:"v" long:"verbose" description:"Log every pipeline stage"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

// LoadConfig reads the config file, or returns the defaults when none is
// given.
func (g *GlobalOptions) LoadConfig() (*legomap.Config, error) {
	if g.Config == "" {
		return legomap.NewConfig(), nil
	}
	return legomap.ReadConfig(g.Config)
}

func (g *GlobalOptions) Logger() (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	if g.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
