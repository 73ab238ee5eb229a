package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/curtij/fccee"
	"github.com/curtij/fccee/delphes"
	"github.com/curtij/fccee/truth"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <input-files>...

Draws the unweighted mass of the selected pair of every event, without cuts.
Files ending in .proio are read as generator-level events, anything else as
Delphes output.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	var (
		title    = flag.String("title", "", "plot title")
		output   = flag.String("output", "out.png", "output file")
		kind     = flag.String("type", "electron", "particle type: muon, electron or jet")
		cme      = flag.Float64("cme", fccee.Default().CME, "centre-of-mass energy (GeV)")
		massLow  = flag.Float64("min", 0, "lower edge of the mass axis (GeV)")
		massHigh = flag.Float64("max", 0, "upper edge of the mass axis (default cme)")
	)
	flag.Usage = printUsage
	flag.Parse()
	log := fccee.NewLogger(false)
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("invalid arguments")
	}

	var pt fccee.ParticleType = -1
	for _, t := range fccee.ParticleTypes {
		if t.String() == *kind {
			pt = t
		}
	}
	if pt < 0 {
		log.Fatal("unknown particle type", zap.String("type", *kind))
	}
	if *massHigh <= 0 {
		*massHigh = *cme
	}
	if *massHigh <= *massLow {
		log.Fatal("empty mass range", zap.Float64("min", *massLow), zap.Float64("max", *massHigh))
	}

	p := hplot.New()
	p.Title.Text = *title
	p.X.Label.Text = "Mass (GeV)"
	p.X.Tick.Marker = fccee.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = fccee.PreciseTicks{NSuggestedTicks: 5}

	sel := &fccee.Selection{CME: fccee.Config{CME: *cme}.CMEVector()}
	for i, filename := range flag.Args() {
		hist, err := makePairMassHist(filename, sel, pt, *massLow, *massHigh)
		if err != nil {
			log.Fatal("could not fill pair mass", zap.String("file", filename), zap.Error(err))
		}

		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = fccee.LineColor(i)
		if flag.NArg() == 1 {
			h.Infos.Style = hplot.HInfoSummary
		} else {
			h.Infos.Style = hplot.HInfoNone
			p.Legend.Add(filepath.Base(filename), h)
		}

		p.Add(h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		log.Fatal("could not save plot", zap.Error(err))
	}
}

func makePairMassHist(filename string, sel *fccee.Selection, pt fccee.ParticleType, lo, hi float64) (*hbook.H1D, error) {
	hist := hbook.NewH1D(fccee.NumBins(hi-lo), lo, hi)

	open := delphes.OpenSource
	if filepath.Ext(filename) == ".proio" {
		open = truth.OpenSource
	}
	src, err := open(filename)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	err = src.Loop(func(i int64, evt *fccee.Event) error {
		if d := sel.Apply(evt, pt); d.Outcome == fccee.Filled {
			hist.Fill(d.VisMass, 1)
		}
		return nil
	})
	return hist, err
}
