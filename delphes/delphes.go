// Package delphes reads reconstructed events from Delphes ROOT trees.
package delphes

import (
	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"

	"github.com/curtij/fccee"
)

const treeName = "Delphes"

// branches holds the leaves read for one entry.
type branches struct {
	elePT, eleEta, elePhi, eleIso []float32
	eleCharge                     []int32

	muPT, muEta, muPhi, muIso []float32
	muCharge                  []int32

	jetPT, jetEta, jetPhi, jetMass []float32
	jetCharge                      []int32
	jetBTag                        []uint32

	phoPT, phoEta, phoPhi []float32

	trkPT, trkEta, trkPhi []float32
	trkCharge             []int32

	towE, towET, towEta, towPhi []float32
}

func (b *branches) vars() []rtree.ReadVar {
	return []rtree.ReadVar{
		{Name: "Electron.PT", Value: &b.elePT},
		{Name: "Electron.Eta", Value: &b.eleEta},
		{Name: "Electron.Phi", Value: &b.elePhi},
		{Name: "Electron.Charge", Value: &b.eleCharge},
		{Name: "Electron.IsolationVar", Value: &b.eleIso},

		{Name: "Muon.PT", Value: &b.muPT},
		{Name: "Muon.Eta", Value: &b.muEta},
		{Name: "Muon.Phi", Value: &b.muPhi},
		{Name: "Muon.Charge", Value: &b.muCharge},
		{Name: "Muon.IsolationVar", Value: &b.muIso},

		{Name: "Jet.PT", Value: &b.jetPT},
		{Name: "Jet.Eta", Value: &b.jetEta},
		{Name: "Jet.Phi", Value: &b.jetPhi},
		{Name: "Jet.Mass", Value: &b.jetMass},
		{Name: "Jet.Charge", Value: &b.jetCharge},
		{Name: "Jet.BTag", Value: &b.jetBTag},

		{Name: "Photon.PT", Value: &b.phoPT},
		{Name: "Photon.Eta", Value: &b.phoEta},
		{Name: "Photon.Phi", Value: &b.phoPhi},

		{Name: "Track.PT", Value: &b.trkPT},
		{Name: "Track.Eta", Value: &b.trkEta},
		{Name: "Track.Phi", Value: &b.trkPhi},
		{Name: "Track.Charge", Value: &b.trkCharge},

		{Name: "Tower.E", Value: &b.towE},
		{Name: "Tower.ET", Value: &b.towET},
		{Name: "Tower.Eta", Value: &b.towEta},
		{Name: "Tower.Phi", Value: &b.towPhi},
	}
}

// fill copies the current entry into evt.
func (b *branches) fill(evt *fccee.Event) {
	evt.Reset()
	for i := range b.elePT {
		evt.Electrons = append(evt.Electrons, fccee.Particle{
			PT: float64(b.elePT[i]), Eta: float64(b.eleEta[i]), Phi: float64(b.elePhi[i]),
			Mass:      fccee.LeptonMass(fccee.Electron),
			Charge:    int(b.eleCharge[i]),
			Isolation: float64(b.eleIso[i]),
		})
	}
	for i := range b.muPT {
		evt.Muons = append(evt.Muons, fccee.Particle{
			PT: float64(b.muPT[i]), Eta: float64(b.muEta[i]), Phi: float64(b.muPhi[i]),
			Mass:      fccee.LeptonMass(fccee.Muon),
			Charge:    int(b.muCharge[i]),
			Isolation: float64(b.muIso[i]),
		})
	}
	for i := range b.jetPT {
		evt.Jets = append(evt.Jets, fccee.Particle{
			PT: float64(b.jetPT[i]), Eta: float64(b.jetEta[i]), Phi: float64(b.jetPhi[i]),
			Mass:   float64(b.jetMass[i]),
			Charge: int(b.jetCharge[i]),
			BTag:   b.jetBTag[i]&1 != 0,
		})
	}
	for i := range b.phoPT {
		evt.Photons = append(evt.Photons, fccee.Particle{
			PT: float64(b.phoPT[i]), Eta: float64(b.phoEta[i]), Phi: float64(b.phoPhi[i]),
		})
	}
	for i := range b.trkPT {
		evt.Tracks = append(evt.Tracks, fccee.Particle{
			PT: float64(b.trkPT[i]), Eta: float64(b.trkEta[i]), Phi: float64(b.trkPhi[i]),
			Charge: int(b.trkCharge[i]),
		})
	}
	for i := range b.towE {
		evt.Towers = append(evt.Towers, fccee.Tower{
			E: float64(b.towE[i]), ET: float64(b.towET[i]),
			Eta: float64(b.towEta[i]), Phi: float64(b.towPhi[i]),
		})
	}
}

// Reader is an fccee.EventSource over one Delphes file.
type Reader struct {
	f    *groot.File
	tree rtree.Tree
}

// Open opens the Delphes tree of the ROOT file at path.
func Open(path string) (*Reader, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}

	obj, err := f.Get(treeName)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "could not find tree %q in %q", treeName, path)
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, errors.Errorf("%q in %q is a %T, not a tree", treeName, path, obj)
	}

	return &Reader{f: f, tree: tree}, nil
}

// OpenSource is Open as an fccee.Opener.
func OpenSource(path string) (fccee.EventSource, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) Entries() int64 { return r.tree.Entries() }

func (r *Reader) Loop(fn func(i int64, evt *fccee.Event) error) error {
	var b branches
	rr, err := rtree.NewReader(r.tree, b.vars())
	if err != nil {
		return errors.Wrap(err, "could not create tree reader")
	}
	defer rr.Close()

	var evt fccee.Event
	return rr.Read(func(ctx rtree.RCtx) error {
		b.fill(&evt)
		return fn(ctx.Entry, &evt)
	})
}

func (r *Reader) Close() error { return r.f.Close() }
