package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/curtij/fccee"
	"github.com/curtij/fccee/delphes"
	"github.com/curtij/fccee/truth"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

Processes every configured sample, stores the visible and recoil mass
histograms in <filename>_massHIST.root and <filename>_recoilmassHIST.root,
and draws them.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	var (
		config  = flag.String("config", "", "YAML file overriding the built-in configuration")
		format  = flag.String("format", "", "input format: delphes or proio")
		dir     = flag.String("dir", "", "directory of the sample files, with trailing separator")
		output  = flag.String("o", "", "plot file (default <filename>.pdf)")
		prof    = flag.String("cpuprofile", "", "write a CPU profile to this directory")
		verbose = flag.Bool("v", false, "enable debug logging")
		table   = flag.Bool("cutflow", true, "print the cut flow of every sample")
		precuts = &fccee.SwitchFlags{Known: fccee.PrecutNames}
		cuts    = &fccee.SwitchFlags{Known: fccee.CutNames}
	)
	flag.Var(precuts, "precut", "enable a precut; may be repeated")
	flag.Var(cuts, "cut", "enable a cut; may be repeated")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 0 {
		printUsage()
		os.Exit(2)
	}

	log := fccee.NewLogger(*verbose)
	defer log.Sync()

	if *prof != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*prof), profile.Quiet).Stop()
	}

	cfg := fccee.Default()
	if *config != "" {
		var err error
		cfg, err = fccee.LoadConfig(*config)
		if err != nil {
			log.Fatal("invalid configuration", zap.Error(err))
		}
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *dir != "" {
		cfg.Directory = *dir
	}
	precuts.Apply(cfg.Precuts)
	cuts.Apply(cfg.Cuts)
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	cfg.Log(log)

	open := delphes.OpenSource
	if cfg.Format == fccee.FormatProIO {
		open = truth.OpenSource
	}

	results, err := fccee.Run(cfg, open, log)
	if err != nil {
		log.Fatal("processing failed", zap.Error(err))
	}
	if *table {
		for _, res := range results {
			res.Cutflow.Render(os.Stdout)
		}
	}

	plotFile := *output
	if plotFile == "" {
		plotFile = cfg.Filename + ".pdf"
	}
	if err := fccee.Draw(cfg.Filename, cfg.Samples, plotFile); err != nil {
		log.Fatal("could not draw histograms", zap.Error(err))
	}
	log.Info("wrote plot", zap.String("file", plotFile))
}
