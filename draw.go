package fccee

import (
	"image/color"
	"os"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/curtij/fccee/histio"
)

// LineColor is the colour of the i-th curve of a plot.
func LineColor(i int) color.Color {
	switch i % 5 {
	case 1:
		return color.RGBA{G: 255, A: 255}
	case 2:
		return color.RGBA{B: 255, A: 255}
	case 3:
		return color.RGBA{R: 255, B: 127, G: 127, A: 255}
	case 4:
		return color.RGBA{R: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

// Draw reads the histograms of samples back from the run's files and draws
// the visible mass above the recoil mass in a single PDF at out.
func Draw(filename string, samples []Sample, out string) error {
	mass, err := readHists(MassFile(filename), samples, MassHistName)
	if err != nil {
		return err
	}
	recoil, err := readHists(RecoilFile(filename), samples, RecoilHistName)
	if err != nil {
		return err
	}

	const (
		width  = 6 * vg.Inch
		height = 8 * vg.Inch
	)
	c := vgpdf.New(width, height)
	dc := draw.New(c)
	top := draw.Crop(dc, 0, 0, height/2, 0)
	bottom := draw.Crop(dc, 0, 0, 0, -height/2)

	massPlot(samples, mass, "Visible mass (GeV)").Draw(top)
	massPlot(samples, recoil, "Recoil mass (GeV)").Draw(bottom)

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "could not create plot file")
	}
	defer f.Close()
	if _, err := c.WriteTo(f); err != nil {
		return errors.Wrapf(err, "could not write %q", out)
	}
	return f.Close()
}

// Plot validates cfg and draws its samples from the run's files into out.
func (cfg Config) Plot(out string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return Draw(cfg.Filename, cfg.Samples, out)
}

func readHists(fname string, samples []Sample, name func(string) string) ([]*hbook.H1D, error) {
	hists := make([]*hbook.H1D, len(samples))
	for i, s := range samples {
		h, err := histio.Read(fname, name(s.Name))
		if err != nil {
			return nil, err
		}
		hists[i] = h
	}
	return hists, nil
}

func massPlot(samples []Sample, hists []*hbook.H1D, xLabel string) *hplot.Plot {
	p := hplot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Events"
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Legend.Top = true

	for i, hist := range hists {
		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = LineColor(i)
		h.Infos.Style = hplot.HInfoNone

		p.Add(h)
		p.Legend.Add(samples[i].Name, h)
	}
	return p
}
