// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestBuiltinGenericFamilies(t *testing.T) {
	s := Builtin()
	for _, generic := range []string{FamilySerif, FamilySansSerif, FamilyMonospace} {
		t.Run(generic, func(t *testing.T) {
			fam, err := s.SelectFamilyByName(generic)
			if err != nil {
				t.Fatalf("SelectFamilyByName(%q) error = %v", generic, err)
			}
			if len(fam.Handles) == 0 {
				t.Errorf("family %q has no faces", fam.Name)
			}
		})
	}
}

func TestBuiltinFaces(t *testing.T) {
	s := Builtin()

	fonts, err := s.AllFonts()
	if err != nil {
		t.Fatalf("AllFonts() error = %v", err)
	}
	if len(fonts) != 9 {
		t.Errorf("len(AllFonts()) = %d, want 9", len(fonts))
	}

	families, err := s.AllFamilies()
	if err != nil {
		t.Fatalf("AllFamilies() error = %v", err)
	}
	if len(families) < 4 {
		t.Errorf("len(AllFamilies()) = %d, want at least 4", len(families))
	}

	// Every builtin face parses.
	for _, h := range fonts {
		if _, err := h.Load(); err != nil {
			t.Errorf("Load() error = %v", err)
		}
	}
}

func TestBuiltinAspectMatching(t *testing.T) {
	s := Builtin()

	h, err := s.SelectBestMatch(Query{Families: []string{FamilySerif}, Aspect: boldAspect()})
	if err != nil {
		t.Fatalf("SelectBestMatch(serif bold) error = %v", err)
	}
	desc, err := h.Describe()
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if weightOf(desc.Aspect) < boldCutoff {
		t.Errorf("weight = %v, want bold", desc.Aspect.Weight)
	}

	h, err = s.SelectBestMatch(Query{Families: []string{FamilySerif}, Aspect: italicAspect()})
	if err != nil {
		t.Fatalf("SelectBestMatch(serif italic) error = %v", err)
	}
	desc, err = h.Describe()
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if styleOf(desc.Aspect) == styleNormal {
		t.Errorf("style = %v, want italic", desc.Aspect.Style)
	}
}

func TestBuiltinInstancesAreIndependent(t *testing.T) {
	a := Builtin()
	b := Builtin()

	before, err := b.AllFonts()
	if err != nil {
		t.Fatalf("AllFonts() error = %v", err)
	}
	if _, err := a.Add(gobold.TTF); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	after, err := b.AllFonts()
	if err != nil {
		t.Fatalf("AllFonts() error = %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("second instance grew from %d to %d faces", len(before), len(after))
	}
}
