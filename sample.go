package fccee

// Sample is one simulated physics process.
type Sample struct {
	Name string `yaml:"name"`
	// CrossSection is in the same units as the inverse of the luminosity.
	CrossSection float64 `yaml:"xsec"`
}

// Weight is the per-event normalization for n simulated events at the given
// integrated luminosity.
func (s Sample) Weight(luminosity float64, n int64) float64 {
	return s.CrossSection * luminosity / float64(n)
}

// Path is the sample's event file inside dir. dir is used as a plain prefix
// and must carry its trailing separator.
func (s Sample) Path(dir, ext string) string {
	return dir + s.Name + ext
}
