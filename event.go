package fccee

import (
	"sort"

	"go-hep.org/x/hep/fmom"
)

const (
	electronMass = 0.000510999
	muonMass     = 0.1056584
)

// Particle is a reconstructed physics object.
type Particle struct {
	PT, Eta, Phi, Mass float64
	Charge             int
	Isolation          float64
	BTag               bool
}

func (p Particle) P4() fmom.PxPyPzE {
	v := fmom.NewPtEtaPhiM(p.PT, p.Eta, p.Phi, p.Mass)
	return fmom.NewPxPyPzE(v.Px(), v.Py(), v.Pz(), v.E())
}

// Tower is a calorimeter tower.
type Tower struct {
	E, ET, Eta, Phi float64
}

// Event is one simulated collision. Sources may reuse an Event between
// iterations, so nothing should hold on to it past the loop callback.
type Event struct {
	Electrons []Particle
	Muons     []Particle
	Jets      []Particle
	Photons   []Particle
	Tracks    []Particle
	Towers    []Tower
}

// Reset empties every collection, keeping capacity.
func (e *Event) Reset() {
	e.Electrons = e.Electrons[:0]
	e.Muons = e.Muons[:0]
	e.Jets = e.Jets[:0]
	e.Photons = e.Photons[:0]
	e.Tracks = e.Tracks[:0]
	e.Towers = e.Towers[:0]
}

func (e *Event) Collection(t ParticleType) []Particle {
	switch t {
	case Muon:
		return e.Muons
	case Electron:
		return e.Electrons
	case Jet:
		return e.Jets
	}
	return nil
}

func (e *Event) NumBTags() int {
	n := 0
	for _, j := range e.Jets {
		if j.BTag {
			n++
		}
	}
	return n
}

func (e *Event) TowerEnergy() float64 {
	sum := 0.
	for _, t := range e.Towers {
		sum += t.E
	}
	return sum
}

// byPT returns the indices of parts in descending PT order.
func byPT(parts []Particle) []int {
	idx := make([]int, len(parts))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return parts[idx[i]].PT > parts[idx[j]].PT
	})
	return idx
}

// candidatePair picks the pair used by the selection: the leading lepton and
// the highest PT opposite-charge partner, or the two leading jets.
func candidatePair(t ParticleType, parts []Particle) (Particle, Particle, bool) {
	if len(parts) < 2 {
		return Particle{}, Particle{}, false
	}
	idx := byPT(parts)
	lead := parts[idx[0]]
	if t == Jet {
		return lead, parts[idx[1]], true
	}
	for _, i := range idx[1:] {
		if parts[i].Charge*lead.Charge < 0 {
			return lead, parts[i], true
		}
	}
	return Particle{}, Particle{}, false
}

func sum(vs ...fmom.PxPyPzE) fmom.PxPyPzE {
	var px, py, pz, e float64
	for i := range vs {
		px += vs[i].Px()
		py += vs[i].Py()
		pz += vs[i].Pz()
		e += vs[i].E()
	}
	return fmom.NewPxPyPzE(px, py, pz, e)
}

func diff(a, b fmom.PxPyPzE) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(a.Px()-b.Px(), a.Py()-b.Py(), a.Pz()-b.Pz(), a.E()-b.E())
}

// LeptonMass is the PDG mass for sources that only store lepton kinematics.
func LeptonMass(t ParticleType) float64 {
	switch t {
	case Electron:
		return electronMass
	case Muon:
		return muonMass
	}
	return 0
}
