// Package histio stores named 1-dim histograms in ROOT files.
//
// groot can only create files, so updating a file means reading back every
// object it holds and writing them, plus the new ones, to a fresh file that
// then replaces the old one.
package histio

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
)

type entry struct {
	name string
	obj  root.Object
}

// Update writes hists into fname, creating the file if needed. Objects
// already in the file are kept, except those with the name of one of hists,
// which are replaced.
func Update(fname string, hists ...*hbook.H1D) error {
	return Merge(fname, nil, hists...)
}

// Ensure writes those of hists whose name is not yet in fname.
func Ensure(fname string, hists ...*hbook.H1D) error {
	return Merge(fname, hists)
}

// Merge rewrites fname once with both Ensure(defaults...) and
// Update(hists...) applied, defaults first.
func Merge(fname string, defaults []*hbook.H1D, hists ...*hbook.H1D) error {
	entries, err := load(fname)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.name] = i
	}
	add := func(h *hbook.H1D, replace bool) error {
		name := h.Name()
		if name == "" {
			return errors.Errorf("histogram without a name for %q", fname)
		}
		e := entry{name: name, obj: rhist.NewH1DFrom(h)}
		i, ok := index[name]
		switch {
		case !ok:
			index[name] = len(entries)
			entries = append(entries, e)
		case replace:
			entries[i] = e
		}
		return nil
	}
	for _, h := range defaults {
		if err := add(h, false); err != nil {
			return err
		}
	}
	for _, h := range hists {
		if err := add(h, true); err != nil {
			return err
		}
	}
	return write(fname, entries)
}

// write stores entries in a fresh file that then replaces fname.
func write(fname string, entries []entry) error {
	tmp := fname + ".tmp"
	f, err := groot.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "could not create %q", tmp)
	}
	for _, e := range entries {
		if err := f.Put(e.name, e.obj); err != nil {
			f.Close()
			os.Remove(tmp)
			return errors.Wrapf(err, "could not write %q to %q", e.name, fname)
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "could not close %q", tmp)
	}
	return errors.Wrap(os.Rename(tmp, fname), "could not replace histogram file")
}

// load reads every object of fname, first cycle of each name only. A missing
// file holds nothing.
func load(fname string) ([]entry, error) {
	if _, err := os.Stat(fname); stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	f, err := groot.Open(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", fname)
	}
	defer f.Close()

	var entries []entry
	seen := make(map[string]bool)
	for _, k := range f.Keys() {
		if seen[k.Name()] {
			continue
		}
		seen[k.Name()] = true
		obj, err := k.Object()
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %q from %q", k.Name(), fname)
		}
		entries = append(entries, entry{name: k.Name(), obj: obj})
	}
	return entries, nil
}

// Read returns the histogram called name in fname.
func Read(fname, name string) (*hbook.H1D, error) {
	f, err := groot.Open(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", fname)
	}
	defer f.Close()

	obj, err := f.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not find %q in %q", name, fname)
	}
	h1, ok := obj.(rhist.H1)
	if !ok {
		return nil, errors.Errorf("%q in %q is a %T, not a 1-dim histogram", name, fname, obj)
	}
	return rootcnv.H1D(h1), nil
}

// Keys lists the object names in fname, in file order.
func Keys(fname string) ([]string, error) {
	entries, err := load(fname)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names, nil
}
