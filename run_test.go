package fccee

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curtij/fccee/histio"
)

func memoryOpener(samples map[string]Events) Opener {
	return func(path string) (EventSource, error) {
		evts, ok := samples[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return evts, nil
	}
}

func testRunConfig(t *testing.T) (Config, Opener) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Directory = dir + "/"
	cfg.Filename = filepath.Join(dir, "process")

	samples := map[string]Events{
		cfg.Samples[0].Path(cfg.Directory, ".root"): signalEvents(1000, 100),
		cfg.Samples[1].Path(cfg.Directory, ".root"): randomEvents(500, 1),
		cfg.Samples[2].Path(cfg.Directory, ".root"): randomEvents(800, 2),
	}
	return cfg, memoryOpener(samples)
}

func TestRun(t *testing.T) {
	cfg, open := testRunConfig(t)

	results, err := Run(cfg, open, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, res := range results {
		assert.Equal(t, cfg.Samples[i], res.Sample)
	}

	massKeys, err := histio.Keys(MassFile(cfg.Filename))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"data_obs",
		"process_signal_massHIST",
		"process_background1_massHIST",
		"process_background2_massHIST",
	}, massKeys)

	recoilKeys, err := histio.Keys(RecoilFile(cfg.Filename))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"recoil_data_obs",
		"process_signal_recoilmassHIST",
		"process_background1_recoilmassHIST",
		"process_background2_recoilmassHIST",
	}, recoilKeys)

	sig, err := histio.Read(MassFile(cfg.Filename), "process_signal_massHIST")
	require.NoError(t, err)
	assert.Equal(t, 175, sig.Len())
	assert.InDelta(t, 100*26.98*2600/1000, sig.Integral(), 1e-6)

	// a second run replaces the sample entries and keeps the placeholders
	_, err = Run(cfg, open, nil)
	require.NoError(t, err)
	again, err := histio.Keys(MassFile(cfg.Filename))
	require.NoError(t, err)
	assert.Equal(t, massKeys, again)
	sig, err = histio.Read(MassFile(cfg.Filename), "process_signal_massHIST")
	require.NoError(t, err)
	assert.InDelta(t, 100*26.98*2600/1000, sig.Integral(), 1e-6)

	out := filepath.Join(t.TempDir(), "process.pdf")
	require.NoError(t, Draw(cfg.Filename, cfg.Samples, out))
	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())
}

func TestRunMissingSample(t *testing.T) {
	cfg, _ := testRunConfig(t)
	_, err := Run(cfg, memoryOpener(nil), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "process_signal.root")
}

func TestRunInvalidConfig(t *testing.T) {
	cfg, open := testRunConfig(t)
	cfg.Samples = nil
	_, err := Run(cfg, open, nil)
	assert.Error(t, err)
}

func TestPlotValidatesSamples(t *testing.T) {
	cfg, open := testRunConfig(t)
	_, err := Run(cfg, open, nil)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "process.pdf")
	require.NoError(t, cfg.Plot(out))

	for _, samples := range [][]Sample{
		{{Name: "process_signal", CrossSection: 1}, {Name: "process_signal", CrossSection: 2}},
		{{Name: "process_signal", CrossSection: 0}},
		nil,
	} {
		bad := cfg
		bad.Samples = samples
		assert.Error(t, bad.Plot(filepath.Join(t.TempDir(), "bad.pdf")), "%v", samples)
	}
}

func TestDrawMissingFiles(t *testing.T) {
	dir := t.TempDir()
	err := Draw(filepath.Join(dir, "process"), Default().Samples, filepath.Join(dir, "out.pdf"))
	assert.Error(t, err)
}
