package fccee

import (
	"math"

	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/hbook"
)

// Selection applies the enabled precuts and cuts to a candidate pair.
type Selection struct {
	Precuts    Switches
	Cuts       Switches
	Thresholds Thresholds
	CME        fmom.PxPyPzE
}

// Decision is the result of Apply. Failed names the first precut or cut that
// rejected the event.
type Decision struct {
	Outcome    Outcome
	VisMass    float64
	RecoilMass float64
	Failed     string
}

// Apply runs the selection on evt for particle type t without filling
// anything.
func (s *Selection) Apply(evt *Event, t ParticleType) Decision {
	p1, p2, ok := candidatePair(t, evt.Collection(t))
	if !ok {
		return Decision{Outcome: NotApplicable}
	}

	th := &s.Thresholds
	reject := func(name string) Decision {
		return Decision{Outcome: Rejected, Failed: name}
	}

	if s.Precuts.On(NumJets) && len(evt.Jets) != th.NumJets {
		return reject(NumJets)
	}
	if s.Precuts.On(IsoParticles) && t != Jet {
		if p1.Isolation > th.MaxIsolation || p2.Isolation > th.MaxIsolation {
			return reject(IsoParticles)
		}
	}

	v1 := p1.P4()
	v2 := p2.P4()
	vis := sum(v1, v2)
	recoil := diff(s.CME, vis)
	d := Decision{
		VisMass:    vis.M(),
		RecoilMass: recoil.M(),
	}

	for _, name := range CutNames {
		if !s.Cuts.On(name) {
			continue
		}
		pass := true
		switch name {
		case VisMass:
			pass = th.VisMass.Contains(d.VisMass)
		case VisEnergy:
			pass = th.VisEnergy.Contains(vis.E())
		case VisPt:
			pass = vis.Pt() >= th.MinVisPt
		case BTag:
			pass = evt.NumBTags() >= th.MinBTags
		case VisZ:
			pass = math.Abs(cosTheta(vis)) <= th.MaxVisCosTheta
		case AngleCut:
			pass = fmom.DeltaR(&v1, &v2) >= th.MinDeltaR
		case NumTracks:
			pass = th.NumTracks.Contains(float64(len(evt.Tracks)))
		case NumEVis:
			pass = th.EVisSum.Contains(evt.TowerEnergy())
		case RecoilMass:
			pass = th.RecoilMass.Contains(d.RecoilMass)
		case ReconstructedMass:
			pass = th.RecoMass.Contains(recoMass(vis, evt.Photons))
		}
		if !pass {
			return reject(name)
		}
	}

	d.Outcome = Filled
	return d
}

// Fill runs Apply and, if the event passes, fills the visible and recoil
// mass histograms with weight w.
func (s *Selection) Fill(evt *Event, t ParticleType, h *Hists, w float64) Decision {
	d := s.Apply(evt, t)
	if d.Outcome == Filled {
		h.Fill(d.VisMass, d.RecoilMass, w)
	}
	return d
}

// cosTheta returns pz/|p|, or 0 for a system at rest.
func cosTheta(p fmom.PxPyPzE) float64 {
	mag := math.Sqrt(p.Px()*p.Px() + p.Py()*p.Py() + p.Pz()*p.Pz())
	if mag == 0 {
		return 0
	}
	return p.Pz() / mag
}

func recoMass(vis fmom.PxPyPzE, photons []Particle) float64 {
	vs := []fmom.PxPyPzE{vis}
	for _, g := range photons {
		vs = append(vs, g.P4())
	}
	tot := sum(vs...)
	return tot.M()
}

// Hists are the histograms filled for one sample.
type Hists struct {
	Mass    *hbook.H1D
	Recoil  *hbook.H1D
	MassMap *hbook.H2D
}

// NumBins is the number of 2 GeV bins spanning [0, cme], and at least one.
func NumBins(cme float64) int {
	n := int(math.Floor(cme / 2))
	if n < 1 {
		return 1
	}
	return n
}

// NewHists books the histograms of sample name for a collision at the given
// centre-of-mass energy.
func NewHists(name string, cme float64) *Hists {
	n := NumBins(cme)
	h := &Hists{
		Mass:    hbook.NewH1D(n, 0, cme),
		Recoil:  hbook.NewH1D(n, 0, cme),
		MassMap: hbook.NewH2D(n, 0, cme, n, 0, cme),
	}
	setName(h.Mass.Annotation(), MassHistName(name))
	setName(h.Recoil.Annotation(), RecoilHistName(name))
	setName(h.MassMap.Annotation(), name+"_massMAP")
	return h
}

func (h *Hists) Fill(vis, recoil, w float64) {
	h.Mass.Fill(vis, w)
	h.Recoil.Fill(recoil, w)
	h.MassMap.Fill(vis, recoil, w)
}

func setName(ann hbook.Annotation, name string) {
	ann["name"] = name
	ann["title"] = name
}

const (
	massSuffix   = "_massHIST"
	recoilSuffix = "_recoilmassHIST"
)

func MassHistName(sample string) string   { return sample + massSuffix }
func RecoilHistName(sample string) string { return sample + recoilSuffix }

// MassFile and RecoilFile are the histogram files shared by every sample of
// a run with the given filename stem.
func MassFile(stem string) string   { return stem + massSuffix + ".root" }
func RecoilFile(stem string) string { return stem + recoilSuffix + ".root" }

// Placeholder histogram names expected by downstream fitting tools.
const (
	DataObs       = "data_obs"
	RecoilDataObs = "recoil_data_obs"
)

// Placeholders books the empty data_obs histograms.
func Placeholders(cme float64) (mass, recoil *hbook.H1D) {
	n := NumBins(cme)
	mass = hbook.NewH1D(n, 0, cme)
	recoil = hbook.NewH1D(n, 0, cme)
	setName(mass.Annotation(), DataObs)
	setName(recoil.Annotation(), RecoilDataObs)
	return mass, recoil
}
