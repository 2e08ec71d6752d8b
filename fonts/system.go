// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"

	"github.com/gogpu/render"
)

// SystemSource enumerates the fonts installed on the platform.
//
// The first call to any method scans the system font directories through
// fontscan, reusing its on-disk index between runs. The scan runs once;
// fonts installed afterwards are not picked up. SystemSource is safe for
// concurrent use.
type SystemSource struct {
	cacheDir string

	once    sync.Once
	scanErr error
	cat     catalog
}

// SystemOption configures a SystemSource.
type SystemOption func(*SystemSource)

// WithCacheDir sets the directory for the fontscan index cache. The default
// is the user cache directory.
func WithCacheDir(dir string) SystemOption {
	return func(s *SystemSource) {
		s.cacheDir = dir
	}
}

// NewSystemSource returns a system font source. The font directories are
// not scanned until the source is first queried.
func NewSystemSource(opts ...SystemOption) *SystemSource {
	s := &SystemSource{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SystemSource) scan() error {
	s.once.Do(func() {
		dir := s.cacheDir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				s.scanErr = fmt.Errorf("fonts: cache dir: %w", err)
				return
			}
			dir = base
		}
		// fontscan wants a Printf-style logger; bridge the render slog stack.
		scanLog := slog.NewLogLogger(render.Logger().Handler(), slog.LevelDebug)
		footprints, err := fontscan.SystemFonts(scanLog, dir)
		if err != nil {
			s.scanErr = fmt.Errorf("fonts: system scan: %w", err)
			return
		}
		for _, fp := range footprints {
			desc := font.Description{Family: fp.Family, Aspect: fp.Aspect}
			s.cat.add(faceRecord{
				handle: FileHandle(fp.Location.File, int(fp.Location.Index)),
				desc:   desc,
				id:     derivedID(desc),
			})
		}
	})
	return s.scanErr
}

// AllFonts implements Source.
func (s *SystemSource) AllFonts() ([]Handle, error) {
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s.cat.allFonts(), nil
}

// AllFamilies implements Source.
func (s *SystemSource) AllFamilies() ([]string, error) {
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s.cat.allFamilies(), nil
}

// SelectFamilyByName implements Source.
func (s *SystemSource) SelectFamilyByName(name string) (Family, error) {
	if err := s.scan(); err != nil {
		return Family{}, err
	}
	if fam, ok := s.cat.family(name); ok {
		return fam, nil
	}
	return Family{}, fmt.Errorf("%w: family %q", ErrNotFound, name)
}

// SelectByID implements Source.
//
// Footprint scans do not carry PostScript names, so a miss on the indexed
// identifiers falls back to parsing the faces of every family whose name
// prefixes the requested identifier.
func (s *SystemSource) SelectByID(id string) (Handle, error) {
	if err := s.scan(); err != nil {
		return Handle{}, err
	}
	if h, ok := s.cat.byID(id); ok {
		return h, nil
	}
	key := normalizeFamily(id)
	for name, indices := range s.cat.families {
		if name == "" || !strings.HasPrefix(key, name) {
			continue
		}
		for _, idx := range indices {
			h := s.cat.records[idx].handle
			if got, err := h.ID(); err == nil && got == id {
				return h, nil
			}
		}
	}
	return Handle{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// SelectBestMatch implements Source.
func (s *SystemSource) SelectBestMatch(query Query) (Handle, error) {
	if err := s.scan(); err != nil {
		return Handle{}, err
	}
	if h, ok := s.cat.bestMatch(query); ok {
		return h, nil
	}
	return Handle{}, fmt.Errorf("%w: families %v", ErrNotFound, query.Families)
}

// DescriptionsInFamily implements Source.
func (s *SystemSource) DescriptionsInFamily(family Family) ([]font.Description, error) {
	if err := s.scan(); err != nil {
		return nil, err
	}
	if descs, ok := s.cat.descriptions(family.Name); ok {
		return descs, nil
	}
	return nil, fmt.Errorf("%w: family %q", ErrNotFound, family.Name)
}
