// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"fmt"

	"github.com/go-text/typesetting/font"
)

// MemSource is an in-memory font collection fed with raw font bytes.
//
// MemSource is not synchronized; wrap it in a Composite when it must be
// shared across goroutines.
type MemSource struct {
	cat catalog
}

// NewMemSource returns an empty in-memory source.
func NewMemSource() *MemSource {
	return &MemSource{}
}

// Add registers the first face of the font data and returns its family,
// including any faces previously registered under the same name. The data
// is copied.
func (s *MemSource) Add(data []byte) (Family, error) {
	faces, err := parseFaces(data)
	if err != nil {
		return Family{}, err
	}
	owned := make([]byte, len(data))
	copy(owned, data)

	desc := faces[0].Describe()
	s.cat.add(faceRecord{
		handle: MemoryHandle(owned, 0),
		desc:   desc,
		id:     recordID(owned, 0, desc),
	})
	fam, _ := s.cat.family(desc.Family)
	return fam, nil
}

// AddCollection registers every face in the font data and returns the
// families they belong to, in first-seen order. The data is copied once and
// shared by the returned handles.
func (s *MemSource) AddCollection(data []byte) ([]Family, error) {
	faces, err := parseFaces(data)
	if err != nil {
		return nil, err
	}
	owned := make([]byte, len(data))
	copy(owned, data)

	var names []string
	seen := make(map[string]bool)
	for i, face := range faces {
		desc := face.Describe()
		s.cat.add(faceRecord{
			handle: MemoryHandle(owned, i),
			desc:   desc,
			id:     recordID(owned, i, desc),
		})
		if key := normalizeFamily(desc.Family); !seen[key] {
			seen[key] = true
			names = append(names, desc.Family)
		}
	}
	families := make([]Family, len(names))
	for i, name := range names {
		families[i], _ = s.cat.family(name)
	}
	return families, nil
}

// AllFonts implements Source.
func (s *MemSource) AllFonts() ([]Handle, error) {
	return s.cat.allFonts(), nil
}

// AllFamilies implements Source.
func (s *MemSource) AllFamilies() ([]string, error) {
	return s.cat.allFamilies(), nil
}

// SelectFamilyByName implements Source.
func (s *MemSource) SelectFamilyByName(name string) (Family, error) {
	if fam, ok := s.cat.family(name); ok {
		return fam, nil
	}
	return Family{}, fmt.Errorf("%w: family %q", ErrNotFound, name)
}

// SelectByID implements Source.
func (s *MemSource) SelectByID(id string) (Handle, error) {
	if h, ok := s.cat.byID(id); ok {
		return h, nil
	}
	return Handle{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// SelectBestMatch implements Source.
func (s *MemSource) SelectBestMatch(query Query) (Handle, error) {
	if h, ok := s.cat.bestMatch(query); ok {
		return h, nil
	}
	return Handle{}, fmt.Errorf("%w: families %v", ErrNotFound, query.Families)
}

// DescriptionsInFamily implements Source.
func (s *MemSource) DescriptionsInFamily(family Family) ([]font.Description, error) {
	if descs, ok := s.cat.descriptions(family.Name); ok {
		return descs, nil
	}
	return nil, fmt.Errorf("%w: family %q", ErrNotFound, family.Name)
}

// recordID computes the identifier stored for a face: the PostScript name
// when present, the derived name otherwise.
func recordID(data []byte, index int, desc font.Description) string {
	if ps := postScriptName(data, index); ps != "" {
		return ps
	}
	return derivedID(desc)
}
