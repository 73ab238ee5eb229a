package fccee

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 350., cfg.CME)
	cme := cfg.CMEVector()
	assert.Equal(t, 350., cme.M())
	assert.Equal(t, 2600., cfg.Luminosity)
	assert.Equal(t, "process", cfg.Filename)
	assert.Equal(t, "GENERATIONPATH/delphes/", cfg.Directory)
	assert.Equal(t, ".root", cfg.Ext())
	assert.Equal(t, []Sample{
		{Name: "process_signal", CrossSection: 26.98},
		{Name: "process_background1", CrossSection: 52.15},
		{Name: "process_background2", CrossSection: 66.39},
	}, cfg.Samples)
	assert.Equal(t, Switches{"muon": 0, "electron": 1, "jet": 0}, cfg.ParticleTypes)
	for _, name := range PrecutNames {
		assert.False(t, cfg.Precuts.On(name), name)
	}
	for _, name := range CutNames {
		assert.False(t, cfg.Cuts.On(name), name)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
cme: 240
filename: zh240
format: proio
cuts:
  vismass: 1
  recoilmass: 1
particletypes:
  muon: 1
thresholds:
  recoilmass:
    min: 120
    max: 130
samples:
  - name: zh
    xsec: 0.2
  - name: zz
    xsec: 1.1
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 240., cfg.CME)
	assert.Equal(t, 2600., cfg.Luminosity)
	assert.Equal(t, "zh240", cfg.Filename)
	assert.Equal(t, ".proio", cfg.Ext())
	assert.True(t, cfg.Cuts.On(VisMass))
	assert.True(t, cfg.Cuts.On(RecoilMass))
	assert.False(t, cfg.Cuts.On(BTag))
	assert.True(t, cfg.ParticleTypes.On("muon"))
	assert.True(t, cfg.ParticleTypes.On("electron"))
	assert.Equal(t, Window{Min: 120, Max: 130}, cfg.Thresholds.RecoilMass)
	assert.Equal(t, DefaultThresholds().VisMass, cfg.Thresholds.VisMass)
	assert.Len(t, cfg.Samples, 2)
}

func TestLoadConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
	}{
		{"unknown cut", "cuts: {masscut: 1}"},
		{"bad switch value", "precuts: {numjets: 2}"},
		{"unknown particle", "particletypes: {tau: 1}"},
		{"bad format", "format: lhe"},
		{"negative luminosity", "luminosity: -1"},
		{"duplicate sample", "samples: [{name: a, xsec: 1}, {name: a, xsec: 2}]"},
		{"zero cross-section", "samples: [{name: a, xsec: 0}]"},
		{"not yaml", "cme: [1"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultIsNotShared(t *testing.T) {
	a := Default()
	a.Cuts[VisMass] = 1
	assert.False(t, Default().Cuts.On(VisMass))
}
