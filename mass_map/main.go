package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-hep.org/x/hep/hplot"
	"go.uber.org/zap"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/curtij/fccee"
	"github.com/curtij/fccee/delphes"
	"github.com/curtij/fccee/truth"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <input-file>

Runs the selection over one sample and draws the weighted recoil mass
against the visible mass of the selected events.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	var (
		config = flag.String("config", "", "YAML file overriding the built-in configuration")
		xsec   = flag.Float64("xsec", 1, "cross-section of the sample")
		title  = flag.String("title", "", "plot title (default sample name)")
		output = flag.String("output", "out.png", "output file")
	)
	flag.Usage = printUsage
	flag.Parse()
	log := fccee.NewLogger(false)
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("invalid arguments")
	}

	cfg := fccee.Default()
	if *config != "" {
		var err error
		cfg, err = fccee.LoadConfig(*config)
		if err != nil {
			log.Fatal("could not load config", zap.Error(err))
		}
	}

	filename := flag.Arg(0)
	open := delphes.OpenSource
	if filepath.Ext(filename) == ".proio" {
		open = truth.OpenSource
	}
	src, err := open(filename)
	if err != nil {
		log.Fatal("could not open sample", zap.String("file", filename), zap.Error(err))
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	sample := fccee.Sample{Name: name, CrossSection: *xsec}
	res, err := cfg.Processor(nil).Process(sample, src)
	src.Close()
	if err != nil {
		log.Fatal("could not process sample", zap.Error(err))
	}
	if *title == "" {
		*title = name
	}

	p := hplot.New()
	p.Title.Text = *title
	p.X.Label.Text = "Visible mass (GeV)"
	p.Y.Label.Text = "Recoil mass (GeV)"
	p.X.Tick.Marker = fccee.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = fccee.PreciseTicks{NSuggestedTicks: 5}

	img := vgimg.New(670, 400)
	dc := draw.New(img)
	dc0 := draw.Crop(dc, 0, -70, 0, 0)
	dc1 := draw.Crop(dc, 620, 0, 0, 0)

	grid := res.Hists.MassMap.GridXYZ()
	zMax := 0.
	nx, ny := grid.Dims()
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if z := grid.Z(i, j); z > zMax {
				zMax = z
			}
		}
	}
	if zMax == 0 {
		zMax = 1
	}

	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(0)
	colorMap.SetMax(zMax)
	heatMap := plotter.NewHeatMap(grid, colorMap.Palette(1000))
	heatMap.Min = 0
	heatMap.Max = zMax
	p.Add(heatMap)

	p.Draw(dc0)

	bar := hplot.New()
	colorBar := &plotter.ColorBar{ColorMap: colorMap}
	colorBar.Vertical = true
	bar.Add(colorBar)
	bar.HideX()
	bar.Y.Padding = 0

	bar.Draw(dc1)

	w, err := os.Create(*output)
	if err != nil {
		log.Fatal("could not create output", zap.Error(err))
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		log.Fatal("could not write png", zap.Error(err))
	}
}
