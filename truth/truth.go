// Package truth builds events from the stable generator-level particles of
// proio files.
//
// Electrons, muons and photons are taken as they are. The remaining visible
// particles stand in for tracks and calorimeter towers and are clustered into
// anti-kT jets. Neutrinos are dropped.
package truth

import (
	"math"

	"github.com/pkg/errors"
	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"
	"go-hep.org/x/hep/fastjet"
	"go-hep.org/x/hep/fmom"

	"github.com/curtij/fccee"
)

const (
	stableTag = "GenStable"

	jetR     = 0.5
	jetPTMin = 5.
)

// Reader is an fccee.EventSource over one proio file.
type Reader struct {
	path    string
	entries int64
}

// Open counts the events of the proio file at path.
func Open(path string) (*Reader, error) {
	reader, err := proio.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer reader.Close()

	var n int64
	for range reader.ScanEvents() {
		n++
	}
	return &Reader{path: path, entries: n}, nil
}

// OpenSource is Open as an fccee.Opener.
func OpenSource(path string) (fccee.EventSource, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) Entries() int64 { return r.entries }

func (r *Reader) Loop(fn func(i int64, evt *fccee.Event) error) error {
	reader, err := proio.Open(r.path)
	if err != nil {
		return errors.Wrapf(err, "could not open %q", r.path)
	}
	defer reader.Close()

	var (
		i   int64
		evt fccee.Event
	)
	events := reader.ScanEvents()
	for event := range events {
		var parts []*eic.Particle
		for _, id := range event.TaggedEntries(stableTag) {
			part, ok := event.GetEntry(id).(*eic.Particle)
			if ok && part.GetP() != nil {
				parts = append(parts, part)
			}
		}
		if err := Build(&evt, parts); err != nil {
			return errors.Wrapf(err, "event %d", i)
		}
		if err := fn(i, &evt); err != nil {
			// drain so the scanning goroutine can exit
			for range events {
			}
			return err
		}
		i++
	}
	return nil
}

func (r *Reader) Close() error { return nil }

// Build fills evt from stable generator particles.
func Build(evt *fccee.Event, parts []*eic.Particle) error {
	evt.Reset()

	var hadrons []fastjet.Jet
	for _, part := range parts {
		px := float64(part.GetP().GetX())
		py := float64(part.GetP().GetY())
		pz := float64(part.GetP().GetZ())
		m := float64(part.GetMass())
		p4 := fmom.NewPxPyPzE(px, py, pz, math.Sqrt(px*px+py*py+pz*pz+m*m))
		charge := int(part.GetCharge())

		pdg := part.GetPdg()
		if pdg < 0 {
			pdg = -pdg
		}
		switch pdg {
		case 12, 14, 16:
			continue
		case 11, 13:
			lepton := particle(&p4, m, charge)
			if pdg == 11 {
				evt.Electrons = append(evt.Electrons, lepton)
			} else {
				evt.Muons = append(evt.Muons, lepton)
			}
		case 22:
			evt.Photons = append(evt.Photons, particle(&p4, 0, 0))
		default:
			if charge != 0 {
				evt.Tracks = append(evt.Tracks, particle(&p4, m, charge))
			}
			hadrons = append(hadrons, fastjet.NewJet(px, py, pz, p4.E()))
		}

		tower := fccee.Tower{E: p4.E(), Eta: eta(&p4), Phi: p4.Phi()}
		if p4.P() > 0 {
			tower.ET = p4.Et()
		}
		evt.Towers = append(evt.Towers, tower)
	}

	if len(hadrons) == 0 {
		return nil
	}
	def := fastjet.NewJetDefinition(fastjet.AntiKtAlgorithm, jetR, fastjet.EScheme, fastjet.BestStrategy)
	cs, err := fastjet.NewClusterSequence(hadrons, def)
	if err != nil {
		return errors.Wrap(err, "could not cluster jets")
	}
	jets, err := cs.InclusiveJets(jetPTMin)
	if err != nil {
		return errors.Wrap(err, "could not retrieve jets")
	}
	for i := range jets {
		p4 := &jets[i].PxPyPzE
		evt.Jets = append(evt.Jets, particle(p4, math.Max(0, p4.M()), 0))
	}
	return nil
}

func particle(p4 *fmom.PxPyPzE, m float64, charge int) fccee.Particle {
	return fccee.Particle{
		PT:     p4.Pt(),
		Eta:    eta(p4),
		Phi:    p4.Phi(),
		Mass:   m,
		Charge: charge,
	}
}

// eta is capped for particles along the beam.
func eta(p4 *fmom.PxPyPzE) float64 {
	const maxEta = 20.
	return math.Max(-maxEta, math.Min(maxEta, p4.Eta()))
}
