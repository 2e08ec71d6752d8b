// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"fmt"

	"github.com/go-text/typesetting/font"
)

// MultiSource chains sources in priority order. Selection queries return
// the first hit; enumeration concatenates every source's answer.
type MultiSource struct {
	sources []Source
}

// NewMultiSource returns a source backed by the given sources, tried in
// argument order.
func NewMultiSource(sources ...Source) *MultiSource {
	return &MultiSource{sources: sources}
}

// AllFonts implements Source.
func (m *MultiSource) AllFonts() ([]Handle, error) {
	var handles []Handle
	for _, s := range m.sources {
		hs, err := s.AllFonts()
		if err != nil {
			return nil, err
		}
		handles = append(handles, hs...)
	}
	return handles, nil
}

// AllFamilies implements Source.
func (m *MultiSource) AllFamilies() ([]string, error) {
	var names []string
	for _, s := range m.sources {
		ns, err := s.AllFamilies()
		if err != nil {
			return nil, err
		}
		names = append(names, ns...)
	}
	return names, nil
}

// SelectFamilyByName implements Source.
func (m *MultiSource) SelectFamilyByName(name string) (Family, error) {
	for _, s := range m.sources {
		if fam, err := s.SelectFamilyByName(name); err == nil {
			return fam, nil
		}
	}
	return Family{}, fmt.Errorf("%w: family %q", ErrNotFound, name)
}

// SelectByID implements Source.
func (m *MultiSource) SelectByID(id string) (Handle, error) {
	for _, s := range m.sources {
		if h, err := s.SelectByID(id); err == nil {
			return h, nil
		}
	}
	return Handle{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// SelectBestMatch implements Source.
func (m *MultiSource) SelectBestMatch(query Query) (Handle, error) {
	for _, s := range m.sources {
		if h, err := s.SelectBestMatch(query); err == nil {
			return h, nil
		}
	}
	return Handle{}, fmt.Errorf("%w: families %v", ErrNotFound, query.Families)
}

// DescriptionsInFamily implements Source.
func (m *MultiSource) DescriptionsInFamily(family Family) ([]font.Description, error) {
	for _, s := range m.sources {
		if descs, err := s.DescriptionsInFamily(family); err == nil {
			return descs, nil
		}
	}
	return nil, fmt.Errorf("%w: family %q", ErrNotFound, family.Name)
}
