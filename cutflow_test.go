package fccee

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCutflow(t *testing.T) {
	c := NewCutflow("process_signal")
	c.Record(Electron, Decision{Outcome: Filled})
	c.Record(Electron, Decision{Outcome: Filled})
	c.Record(Electron, Decision{Outcome: Rejected, Failed: VisMass})
	c.Record(Muon, Decision{Outcome: Rejected, Failed: IsoParticles})
	c.Record(Jet, Decision{Outcome: NotApplicable})

	assert.Equal(t, int64(5), c.Events)
	assert.Equal(t, int64(2), c.Outcomes[Filled])
	assert.Equal(t, int64(2), c.Outcomes[Rejected])
	assert.Equal(t, int64(1), c.Outcomes[NotApplicable])
	assert.Equal(t, int64(1), c.Failed[Electron][VisMass])
	assert.Equal(t, int64(1), c.Failed[Muon][IsoParticles])

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "cut flow for process_signal")
	assert.Contains(t, out, "rejected by vismass")
	assert.Contains(t, out, "rejected by isoparticles")
	assert.Contains(t, out, "electron")
	assert.Contains(t, out, "filled")
}
