package fccee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SampleFlags collects repeated -sample name=xsec flags. The first Set drops
// any default list.
type SampleFlags struct {
	Samples []Sample
	beenSet bool
}

func (f *SampleFlags) Set(valueStr string) error {
	name, xsecStr, ok := strings.Cut(valueStr, "=")
	if !ok || name == "" {
		return errors.Errorf("sample %q is not of the form name=xsec", valueStr)
	}
	xsec, err := strconv.ParseFloat(xsecStr, 64)
	if err != nil {
		return errors.Wrapf(err, "sample %q", name)
	}

	if !f.beenSet {
		f.beenSet = true
		f.Samples = nil
	}

	f.Samples = append(f.Samples, Sample{Name: name, CrossSection: xsec})
	return nil
}

func (f *SampleFlags) String() string {
	parts := make([]string, len(f.Samples))
	for i, s := range f.Samples {
		parts[i] = fmt.Sprintf("%s=%g", s.Name, s.CrossSection)
	}
	return strings.Join(parts, ",")
}

// IsSet reports whether the flag was given on the command line.
func (f *SampleFlags) IsSet() bool { return f.beenSet }

// SwitchFlags turns on every name given in repeated flags, e.g.
// -cut vismass -cut recoilmass. Names are checked against Known.
type SwitchFlags struct {
	Known []string
	On    []string
}

func (f *SwitchFlags) Set(valueStr string) error {
	for _, k := range f.Known {
		if k == valueStr {
			f.On = append(f.On, valueStr)
			return nil
		}
	}
	return errors.Errorf("unknown name %q, want one of %s", valueStr, strings.Join(f.Known, ", "))
}

func (f *SwitchFlags) String() string {
	return strings.Join(f.On, ",")
}

// Apply enables the collected names in s.
func (f *SwitchFlags) Apply(s Switches) {
	for _, name := range f.On {
		s[name] = 1
	}
}
