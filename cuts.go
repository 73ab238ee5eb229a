package fccee

import (
	"sort"

	"github.com/pkg/errors"
)

// ParticleType is a reconstructed object type the selection can run on.
// The declaration order is the order in which the types are tried.
type ParticleType int

const (
	Muon ParticleType = iota
	Electron
	Jet
)

var ParticleTypes = []ParticleType{Muon, Electron, Jet}

func (t ParticleType) String() string {
	switch t {
	case Muon:
		return "muon"
	case Electron:
		return "electron"
	case Jet:
		return "jet"
	}
	return "unknown"
}

// Outcome is the result of running the selection on one event for one
// particle type.
type Outcome int

const (
	// NotApplicable means the event has no candidate pair of this type, and
	// the next particle type should be tried.
	NotApplicable Outcome = iota
	// Rejected means an enabled precut or cut failed.
	Rejected
	// Filled means the event passed and was accumulated.
	Filled
)

func (o Outcome) String() string {
	switch o {
	case NotApplicable:
		return "none"
	case Rejected:
		return "skip"
	case Filled:
		return "fill"
	}
	return "unknown"
}

// Precut names.
const (
	NumJets      = "numjets"
	IsoParticles = "isoparticles"
)

// Cut names.
const (
	VisMass           = "vismass"
	VisEnergy         = "visenergy"
	VisPt             = "vispt"
	BTag              = "btag"
	VisZ              = "visz"
	AngleCut          = "aglecut"
	NumTracks         = "numtracks"
	NumEVis           = "numevis"
	RecoilMass        = "recoilmass"
	ReconstructedMass = "reconstructedmass"
)

// PrecutNames and CutNames list the keys in evaluation order.
var (
	PrecutNames = []string{NumJets, IsoParticles}
	CutNames    = []string{
		VisMass, VisEnergy, VisPt, BTag, VisZ,
		AngleCut, NumTracks, NumEVis, RecoilMass, ReconstructedMass,
	}
)

// Switches maps a cut or particle type name to 0 (off) or 1 (on).
type Switches map[string]int

func (s Switches) On(name string) bool { return s[name] == 1 }

func (s Switches) Clone() Switches {
	c := make(Switches, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Check reports keys outside of known and values other than 0 or 1.
func (s Switches) Check(known []string) error {
	valid := make(map[string]bool, len(known))
	for _, k := range known {
		valid[k] = true
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !valid[k] {
			return errors.Errorf("unknown switch %q", k)
		}
		if v := s[k]; v != 0 && v != 1 {
			return errors.Errorf("switch %q must be 0 or 1, got %d", k, v)
		}
	}
	return nil
}

func offSwitches(names []string) Switches {
	s := make(Switches, len(names))
	for _, n := range names {
		s[n] = 0
	}
	return s
}

// Window is a closed interval. A zero Max leaves it open above.
type Window struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (w Window) Contains(v float64) bool {
	if v < w.Min {
		return false
	}
	return w.Max == 0 || v <= w.Max
}

// Thresholds holds the numeric parameters of the precuts and cuts.
type Thresholds struct {
	NumJets        int     `yaml:"numjets"`
	MaxIsolation   float64 `yaml:"maxisolation"`
	VisMass        Window  `yaml:"vismass"`
	VisEnergy      Window  `yaml:"visenergy"`
	MinVisPt       float64 `yaml:"minvispt"`
	MinBTags       int     `yaml:"minbtags"`
	MaxVisCosTheta float64 `yaml:"maxviscostheta"`
	MinDeltaR      float64 `yaml:"mindeltar"`
	NumTracks      Window  `yaml:"numtracks"`
	EVisSum        Window  `yaml:"evissum"`
	RecoilMass     Window  `yaml:"recoilmass"`
	RecoMass       Window  `yaml:"recomass"`
}

// DefaultThresholds are tuned for a Z(→ff)H final state at √s = 350 GeV.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NumJets:        2,
		MaxIsolation:   0.1,
		VisMass:        Window{Min: 80, Max: 100},
		VisEnergy:      Window{Min: 100, Max: 220},
		MinVisPt:       20,
		MinBTags:       2,
		MaxVisCosTheta: 0.95,
		MinDeltaR:      0.4,
		NumTracks:      Window{Min: 2},
		EVisSum:        Window{Max: 300},
		RecoilMass:     Window{Min: 110, Max: 140},
		RecoMass:       Window{Min: 75, Max: 105},
	}
}
