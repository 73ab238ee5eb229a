package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/curtij/fccee"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

Draws the histograms stored by hist_process without reprocessing the samples.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	cfg := fccee.Default()

	var (
		config   = flag.String("config", "", "YAML file overriding the built-in configuration")
		filename = flag.String("filename", "", "histogram file stem (default from configuration)")
		output   = flag.String("o", "", "plot file (default <filename>.pdf)")
		samples  = &fccee.SampleFlags{}
	)
	flag.Var(samples, "sample", "name=xsec of a sample to draw; may be repeated")
	flag.Usage = printUsage
	flag.Parse()

	log := fccee.NewLogger(false)
	defer log.Sync()

	if *config != "" {
		var err error
		cfg, err = fccee.LoadConfig(*config)
		if err != nil {
			log.Fatal("invalid configuration", zap.Error(err))
		}
	}
	if *filename != "" {
		cfg.Filename = *filename
	}
	if samples.IsSet() {
		cfg.Samples = samples.Samples
	}

	plotFile := *output
	if plotFile == "" {
		plotFile = cfg.Filename + ".pdf"
	}
	if err := cfg.Plot(plotFile); err != nil {
		log.Fatal("could not draw histograms", zap.Error(err))
	}
	log.Info("wrote plot", zap.String("file", plotFile))
}
