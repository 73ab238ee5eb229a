package fccee

import (
	"os"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/fmom"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Input formats.
const (
	FormatDelphes = "delphes"
	FormatProIO   = "proio"
)

// Config is everything a run over the samples needs.
type Config struct {
	// CME is the centre-of-mass energy in GeV; the collision is at rest.
	CME        float64 `yaml:"cme"`
	Luminosity float64 `yaml:"luminosity"`
	// Filename is the stem of the histogram files.
	Filename  string `yaml:"filename"`
	Directory string `yaml:"directory"`
	Format    string `yaml:"format"`

	Precuts       Switches   `yaml:"precuts"`
	Cuts          Switches   `yaml:"cuts"`
	ParticleTypes Switches   `yaml:"particletypes"`
	Thresholds    Thresholds `yaml:"thresholds"`

	// Samples are processed in order.
	Samples []Sample `yaml:"samples"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		CME:           350,
		Luminosity:    2600,
		Filename:      "process",
		Directory:     "GENERATIONPATH/delphes/",
		Format:        FormatDelphes,
		Precuts:       offSwitches(PrecutNames),
		Cuts:          offSwitches(CutNames),
		ParticleTypes: Switches{"muon": 0, "electron": 1, "jet": 0},
		Thresholds:    DefaultThresholds(),
		Samples: []Sample{
			{Name: "process_signal", CrossSection: 26.98},
			{Name: "process_background1", CrossSection: 52.15},
			{Name: "process_background2", CrossSection: 66.39},
		},
	}
}

// LoadConfig overlays the YAML file at path on top of Default. Switch maps
// present in the file are merged key by key.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "could not read configuration")
	}

	var file Config
	file.Thresholds = cfg.Thresholds
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, errors.Wrapf(err, "could not decode configuration %q", path)
	}

	if file.CME != 0 {
		cfg.CME = file.CME
	}
	if file.Luminosity != 0 {
		cfg.Luminosity = file.Luminosity
	}
	if file.Filename != "" {
		cfg.Filename = file.Filename
	}
	if file.Directory != "" {
		cfg.Directory = file.Directory
	}
	if file.Format != "" {
		cfg.Format = file.Format
	}
	merge(cfg.Precuts, file.Precuts)
	merge(cfg.Cuts, file.Cuts)
	merge(cfg.ParticleTypes, file.ParticleTypes)
	cfg.Thresholds = file.Thresholds
	if len(file.Samples) > 0 {
		cfg.Samples = file.Samples
	}

	return cfg, cfg.Validate()
}

func merge(dst, src Switches) {
	for k, v := range src {
		dst[k] = v
	}
}

func (cfg Config) Validate() error {
	if cfg.CME <= 0 {
		return errors.Errorf("invalid centre-of-mass energy %v", cfg.CME)
	}
	if cfg.Luminosity <= 0 {
		return errors.Errorf("invalid luminosity %v", cfg.Luminosity)
	}
	switch cfg.Format {
	case FormatDelphes, FormatProIO:
	default:
		return errors.Errorf("unknown input format %q", cfg.Format)
	}
	if err := cfg.Precuts.Check(PrecutNames); err != nil {
		return errors.Wrap(err, "precuts")
	}
	if err := cfg.Cuts.Check(CutNames); err != nil {
		return errors.Wrap(err, "cuts")
	}
	types := make([]string, len(ParticleTypes))
	for i, t := range ParticleTypes {
		types[i] = t.String()
	}
	if err := cfg.ParticleTypes.Check(types); err != nil {
		return errors.Wrap(err, "particle types")
	}
	if len(cfg.Samples) == 0 {
		return errors.New("no samples configured")
	}
	seen := make(map[string]bool)
	for _, s := range cfg.Samples {
		if s.Name == "" {
			return errors.New("sample with empty name")
		}
		if seen[s.Name] {
			return errors.Errorf("duplicate sample %q", s.Name)
		}
		seen[s.Name] = true
		if s.CrossSection <= 0 {
			return errors.Errorf("sample %q: invalid cross-section %v", s.Name, s.CrossSection)
		}
	}
	return nil
}

// CMEVector is the four-momentum of the colliding system.
func (cfg Config) CMEVector() fmom.PxPyPzE {
	return fmom.NewPxPyPzE(0, 0, 0, cfg.CME)
}

// Ext is the file extension of the configured input format.
func (cfg Config) Ext() string {
	if cfg.Format == FormatProIO {
		return ".proio"
	}
	return ".root"
}

// Processor builds the per-sample processor for cfg.
func (cfg Config) Processor(log *zap.Logger) *Processor {
	return &Processor{
		Selection: Selection{
			Precuts:    cfg.Precuts,
			Cuts:       cfg.Cuts,
			Thresholds: cfg.Thresholds,
			CME:        cfg.CMEVector(),
		},
		ParticleTypes: cfg.ParticleTypes,
		Luminosity:    cfg.Luminosity,
		Logger:        log,
	}
}

// Log writes the configuration at info level.
func (cfg Config) Log(log *zap.Logger) {
	log = log.With(zap.String("module", "config"))
	log.Info("run",
		zap.Float64("cme", cfg.CME),
		zap.Float64("luminosity", cfg.Luminosity),
		zap.String("filename", cfg.Filename),
		zap.String("directory", cfg.Directory),
		zap.String("format", cfg.Format),
	)
	log.Info("switches",
		zap.Any("precuts", cfg.Precuts),
		zap.Any("cuts", cfg.Cuts),
		zap.Any("particletypes", cfg.ParticleTypes),
	)
	for i, s := range cfg.Samples {
		log.Info("sample", zap.Int("index", i+1), zap.String("name", s.Name), zap.Float64("xsec", s.CrossSection))
	}
}
