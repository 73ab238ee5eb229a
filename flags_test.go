package fccee

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleFlags(t *testing.T) {
	f := &SampleFlags{Samples: Default().Samples}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(f, "sample", "")

	require.NoError(t, fs.Parse([]string{"-sample", "sig=26.98", "-sample", "bkg=52.15"}))
	assert.True(t, f.IsSet())
	assert.Equal(t, []Sample{{Name: "sig", CrossSection: 26.98}, {Name: "bkg", CrossSection: 52.15}}, f.Samples)
	assert.Equal(t, "sig=26.98,bkg=52.15", f.String())

	for _, bad := range []string{"sig", "=1", "sig=abc"} {
		assert.Error(t, (&SampleFlags{}).Set(bad), bad)
	}
}

func TestSwitchFlags(t *testing.T) {
	f := &SwitchFlags{Known: CutNames}
	require.NoError(t, f.Set(VisMass))
	require.NoError(t, f.Set(RecoilMass))
	assert.Error(t, f.Set("masscut"))

	s := Default().Cuts
	f.Apply(s)
	assert.True(t, s.On(VisMass))
	assert.True(t, s.On(RecoilMass))
	assert.False(t, s.On(BTag))
	assert.NoError(t, s.Check(CutNames))
}
