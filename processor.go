package fccee

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const progressEvery = 10000

// Processor runs the event selection over one sample at a time.
type Processor struct {
	Selection
	ParticleTypes Switches
	Luminosity    float64
	Logger        *zap.Logger
}

// Result holds what Process produced for one sample.
type Result struct {
	Sample  Sample
	Weight  float64
	Hists   *Hists
	Cutflow *Cutflow
}

// Process loops over src once and fills the sample's histograms. Enabled
// particle types are tried in the order of ParticleTypes until one of them
// fills or rejects the event.
func (p *Processor) Process(sample Sample, src EventSource) (*Result, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("sample", sample.Name))

	n := src.Entries()
	if n <= 0 {
		return nil, errors.Errorf("sample %q has no events", sample.Name)
	}

	res := &Result{
		Sample:  sample,
		Weight:  sample.Weight(p.Luminosity, n),
		Hists:   NewHists(sample.Name, p.CME.M()),
		Cutflow: NewCutflow(sample.Name),
	}
	log.Info("processing sample",
		zap.Int64("events", n),
		zap.Float64("weight", res.Weight),
	)

	err := src.Loop(func(i int64, evt *Event) error {
		if i%progressEvery == 0 {
			log.Debug("processing event", zap.Int64("event", i))
		}
		last := Muon
		d := Decision{Outcome: NotApplicable}
		for _, t := range ParticleTypes {
			if !p.ParticleTypes.On(t.String()) {
				continue
			}
			last = t
			d = p.Fill(evt, t, res.Hists, res.Weight)
			if d.Outcome != NotApplicable {
				break
			}
		}
		res.Cutflow.Record(last, d)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not read events of sample %q", sample.Name)
	}

	log.Info("processed sample",
		zap.Int64("filled", res.Cutflow.Outcomes[Filled]),
		zap.Int64("rejected", res.Cutflow.Outcomes[Rejected]),
		zap.Int64("none", res.Cutflow.Outcomes[NotApplicable]),
		zap.Float64("integral", res.Hists.Mass.Integral()),
	)
	return res, nil
}
