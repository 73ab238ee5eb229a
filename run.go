package fccee

import (
	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
	"go.uber.org/zap"

	"github.com/curtij/fccee/histio"
)

// Run processes every configured sample in order and stores its histograms
// in the mass and recoil files named after cfg.Filename. Both files are
// shared by all samples; each sample owns one entry per file.
func Run(cfg Config, open Opener, log *zap.Logger) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	proc := cfg.Processor(log)
	var results []*Result
	for _, sample := range cfg.Samples {
		res, err := ProcessSample(proc, sample, cfg.Directory, cfg.Ext(), open)
		if err != nil {
			return results, err
		}
		if err := WriteResult(cfg, res); err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// ProcessSample opens the sample's event file in dir and runs proc on it.
func ProcessSample(proc *Processor, sample Sample, dir, ext string, open Opener) (*Result, error) {
	path := sample.Path(dir, ext)
	src, err := open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open sample %q", path)
	}
	defer src.Close()

	return proc.Process(sample, src)
}

// WriteResult updates the run's histogram files with res.
func WriteResult(cfg Config, res *Result) error {
	obs, recoilObs := Placeholders(cfg.CME)

	err := histio.Merge(MassFile(cfg.Filename), []*hbook.H1D{obs}, res.Hists.Mass)
	if err != nil {
		return err
	}
	return histio.Merge(RecoilFile(cfg.Filename), []*hbook.H1D{recoilObs}, res.Hists.Recoil)
}
