package truth

import (
	"math"
	"sort"
	"testing"

	"github.com/proio-org/go-proio-pb/model/eic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/fmom"

	"github.com/curtij/fccee"
)

func genParticle(pdg int32, px, py, pz, m, charge float32) *eic.Particle {
	return &eic.Particle{
		Pdg:    &pdg,
		P:      &eic.XYZF{X: &px, Y: &py, Z: &pz},
		Mass:   &m,
		Charge: &charge,
	}
}

func TestEta(t *testing.T) {
	for _, tc := range []struct {
		px, pz float64
		want   float64
	}{
		{10, 0, 0},
		{10, 10, math.Asinh(1)},
		{0, 5, 20},
		{0, -5, -20},
		{1e-12, 1e6, 20},
	} {
		p4 := fmom.NewPxPyPzE(tc.px, 0, tc.pz, math.Hypot(tc.px, tc.pz))
		assert.InDelta(t, tc.want, eta(&p4), 1e-9, "px=%v pz=%v", tc.px, tc.pz)
	}
}

func TestParticle(t *testing.T) {
	p4 := fmom.NewPxPyPzE(3, 4, 0, math.Sqrt(25+0.1056584*0.1056584))
	p := particle(&p4, 0.1056584, -1)
	assert.InDelta(t, 5, p.PT, 1e-12)
	assert.InDelta(t, 0, p.Eta, 1e-12)
	assert.InDelta(t, math.Atan2(4, 3), p.Phi, 1e-12)
	assert.Equal(t, 0.1056584, p.Mass)
	assert.Equal(t, -1, p.Charge)
}

func TestBuild(t *testing.T) {
	const kaonMass = 0.497611

	for _, tc := range []struct {
		name  string
		parts []*eic.Particle

		electrons, muons, photons, tracks, towers int
		jetPTs                                    []float64
	}{
		{
			name: "leptons and photons",
			parts: []*eic.Particle{
				genParticle(11, 30, 40, 120, 0.000511, -1),
				genParticle(-13, -20, 0, 5, 0.1056584, 1),
				genParticle(22, 0, 10, 0, 0, 0),
				genParticle(12, 5, 5, 5, 0, 0),
				genParticle(-16, 1, 2, 3, 0, 0),
			},
			electrons: 1, muons: 1, photons: 1, towers: 3,
		},
		{
			name: "hadrons",
			parts: []*eic.Particle{
				genParticle(211, 20, 0, 0, 0.13957, 1),
				genParticle(-211, 20, 1, 0, 0.13957, -1),
				genParticle(130, -30, 0, 0, kaonMass, 0),
				// below the jet threshold, far from the others
				genParticle(130, 0, -2, 0, kaonMass, 0),
			},
			tracks: 2, towers: 4,
			jetPTs: []float64{30, math.Hypot(40, 1)},
		},
		{
			name: "empty",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var evt fccee.Event
			require.NoError(t, Build(&evt, tc.parts))

			assert.Len(t, evt.Electrons, tc.electrons)
			assert.Len(t, evt.Muons, tc.muons)
			assert.Len(t, evt.Photons, tc.photons)
			assert.Len(t, evt.Tracks, tc.tracks)
			assert.Len(t, evt.Towers, tc.towers)

			var pts []float64
			for _, j := range evt.Jets {
				pts = append(pts, j.PT)
				assert.Zero(t, j.Charge)
			}
			sort.Float64s(pts)
			require.Len(t, pts, len(tc.jetPTs))
			for i := range pts {
				assert.InDelta(t, tc.jetPTs[i], pts[i], 1e-3)
			}
		})
	}
}

func TestBuildKinematics(t *testing.T) {
	var evt fccee.Event
	require.NoError(t, Build(&evt, []*eic.Particle{
		genParticle(11, 30, 40, 120, 0.000511, -1),
		genParticle(130, -30, 0, 0, 0.497611, 0),
	}))

	require.Len(t, evt.Electrons, 1)
	e := evt.Electrons[0]
	assert.InDelta(t, 50, e.PT, 1e-4)
	assert.InDelta(t, math.Asinh(120./50), e.Eta, 1e-4)
	assert.InDelta(t, math.Atan2(40, 30), e.Phi, 1e-6)
	assert.InDelta(t, 0.000511, e.Mass, 1e-9)
	assert.Equal(t, -1, e.Charge)

	require.Len(t, evt.Towers, 2)
	assert.InDelta(t, 130, evt.Towers[0].E, 1e-3)
	assert.InDelta(t, 50, evt.Towers[0].ET, 1e-3)

	require.Len(t, evt.Jets, 1)
	assert.InDelta(t, 30, evt.Jets[0].PT, 1e-4)
	assert.InDelta(t, math.Pi, math.Abs(evt.Jets[0].Phi), 1e-6)
	assert.InDelta(t, 0.497611, evt.Jets[0].Mass, 1e-3)
}

func TestBuildResetsEvent(t *testing.T) {
	var evt fccee.Event
	require.NoError(t, Build(&evt, []*eic.Particle{
		genParticle(11, 30, 40, 0, 0.000511, -1),
		genParticle(211, 20, 0, 0, 0.13957, 1),
	}))
	require.NotEmpty(t, evt.Electrons)
	require.NotEmpty(t, evt.Jets)

	require.NoError(t, Build(&evt, nil))
	assert.Empty(t, evt.Electrons)
	assert.Empty(t, evt.Jets)
	assert.Empty(t, evt.Tracks)
	assert.Empty(t, evt.Towers)
}
