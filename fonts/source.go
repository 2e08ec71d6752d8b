// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"math"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/font"
)

// Source enumerates font faces and answers selection queries.
//
// Selection methods return ErrNotFound (possibly wrapped) when nothing
// matches. Implementations document their own concurrency guarantees;
// Composite is the one safe for concurrent use.
type Source interface {
	// AllFonts returns a handle for every face the source knows about.
	AllFonts() ([]Handle, error)

	// AllFamilies returns the family names, one entry per family.
	AllFamilies() ([]string, error)

	// SelectFamilyByName returns the family with the given name. Generic
	// names (serif, sans-serif, monospace) resolve through a candidate
	// table. Matching ignores case and spaces.
	SelectFamilyByName(name string) (Family, error)

	// SelectByID returns the face whose identifier (see Handle.ID) equals
	// id.
	SelectByID(id string) (Handle, error)

	// SelectBestMatch returns the face closest to the query, trying the
	// query's families in order.
	SelectBestMatch(query Query) (Handle, error)

	// DescriptionsInFamily returns the description of every face in the
	// family.
	DescriptionsInFamily(family Family) ([]font.Description, error)
}

// Family is a named group of faces.
type Family struct {
	// Name is the family name as the fonts report it.
	Name string

	// Handles identifies the faces in the family.
	Handles []Handle
}

// Query describes a face to select.
type Query struct {
	// Families lists family names in preference order. Generic names
	// expand to the candidate table.
	Families []string

	// Aspect restricts style, weight, and stretch. Zero fields mean the
	// regular defaults (upright, weight 400, stretch 1).
	Aspect font.Aspect
}

// Generic family names understood by the selection methods.
const (
	FamilySerif     = "serif"
	FamilySansSerif = "sans-serif"
	FamilyMonospace = "monospace"
)

// genericFamilies maps a generic name to concrete candidates, tried in
// order. The embedded faces come first, under both the typographic and the
// legacy family spellings, so Builtin resolves the generics without system
// fonts installed.
var genericFamilies = map[string][]string{
	FamilySerif: {
		"Latin Modern Roman", "LM Roman 10", "Times New Roman", "Times",
		"Liberation Serif", "DejaVu Serif", "Noto Serif", "Go",
	},
	FamilySansSerif: {
		"Latin Modern Sans", "LM Sans 10", "Helvetica", "Arial",
		"Liberation Sans", "DejaVu Sans", "Noto Sans", "Go",
	},
	FamilyMonospace: {
		"Latin Modern Mono", "LM Mono 10", "Courier New", "Courier",
		"Liberation Mono", "DejaVu Sans Mono", "Noto Sans Mono", "Go Mono",
	},
}

// expandFamily resolves a generic name to its candidates; concrete names
// pass through unchanged.
func expandFamily(name string) []string {
	if candidates, ok := genericFamilies[strings.ToLower(strings.TrimSpace(name))]; ok {
		return candidates
	}
	return []string{name}
}

// normalizeFamily lowercases a family name and strips spaces so lookups
// tolerate the usual vendor variations.
func normalizeFamily(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// Aspect defaults. typesetting stores aspects as plain numbers on the CSS
// scale; zero means unset.
const (
	styleNormal = font.Style(1)
	styleItalic = font.Style(2)

	weightNormal  = 400
	boldCutoff    = 600
	stretchNormal = 1
)

func styleOf(a font.Aspect) font.Style {
	if a.Style == 0 {
		return styleNormal
	}
	return a.Style
}

func weightOf(a font.Aspect) float64 {
	if a.Weight == 0 {
		return weightNormal
	}
	return float64(a.Weight)
}

func stretchOf(a font.Aspect) float64 {
	if a.Stretch == 0 {
		return stretchNormal
	}
	return float64(a.Stretch)
}

// aspectDistance scores how far an available aspect is from the requested
// one. Lower is better. A style mismatch outweighs any weight or stretch
// difference.
func aspectDistance(want, have font.Aspect) float64 {
	d := math.Abs(weightOf(want) - weightOf(have))
	d += math.Abs(stretchOf(want)-stretchOf(have)) * 200
	if styleOf(want) != styleOf(have) {
		d += 2000
	}
	return d
}
