// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// namePostScript is the OpenType name table entry holding the PostScript
// name of a face.
const namePostScript tables.NameID = 6

// Handle identifies a single font face without keeping it parsed.
//
// A handle is memory-backed when Data is non-nil and file-backed otherwise.
// Index selects a face inside a collection (.ttc); it is 0 for plain font
// files.
type Handle struct {
	// Path locates the font file for file-backed handles.
	Path string

	// Data holds the raw font bytes for memory-backed handles.
	Data []byte

	// Index is the face index within a collection.
	Index int
}

// MemoryHandle returns a handle for a face inside in-memory font data.
// The data slice is retained, not copied.
func MemoryHandle(data []byte, index int) Handle {
	return Handle{Data: data, Index: index}
}

// FileHandle returns a handle for a face inside a font file on disk.
func FileHandle(path string, index int) Handle {
	return Handle{Path: path, Index: index}
}

// Bytes returns the raw font data, reading the file for file-backed
// handles. The returned slice is shared; treat it as read-only.
func (h Handle) Bytes() ([]byte, error) {
	if h.Data != nil {
		return h.Data, nil
	}
	if h.Path == "" {
		return nil, ErrEmptyData
	}
	// #nosec G304 -- Font file path comes from enumeration or the caller
	data, err := os.ReadFile(h.Path)
	if err != nil {
		return nil, fmt.Errorf("fonts: read %s: %w", h.Path, err)
	}
	return data, nil
}

// Load parses the handle's data and returns the face at Index.
//
// Errors distinguish unrecognized containers (ErrUnknownFormat), malformed
// data in a recognized container (ErrParse), and an Index beyond the faces
// the data holds (ErrNoSuchFontInCollection).
func (h Handle) Load() (*font.Face, error) {
	data, err := h.Bytes()
	if err != nil {
		return nil, err
	}
	faces, err := parseFaces(data)
	if err != nil {
		return nil, err
	}
	if h.Index < 0 || h.Index >= len(faces) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoSuchFontInCollection, h.Index, len(faces))
	}
	return faces[h.Index], nil
}

// Describe parses the handle and reports its family and aspect.
func (h Handle) Describe() (font.Description, error) {
	face, err := h.Load()
	if err != nil {
		return font.Description{}, err
	}
	return face.Describe(), nil
}

// ID returns a stable identifier for the face: the PostScript name when the
// font carries one, otherwise a name derived from the family and aspect.
func (h Handle) ID() (string, error) {
	data, err := h.Bytes()
	if err != nil {
		return "", err
	}
	if ps := postScriptName(data, h.Index); ps != "" {
		return ps, nil
	}
	desc, err := h.Describe()
	if err != nil {
		return "", err
	}
	return derivedID(desc), nil
}

// parseFaces parses all faces in the data, mapping failures onto the
// package error taxonomy.
func parseFaces(data []byte) ([]*font.Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if !recognizedFormat(data) {
		return nil, ErrUnknownFormat
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: no faces", ErrParse)
	}
	return faces, nil
}

// recognizedFormat reports whether the data starts with a known sfnt
// container signature.
func recognizedFormat(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "OTTO", "ttcf", "true", "typ1":
		return true
	}
	return false
}

// postScriptName reads name table entry 6 for the face at index. It returns
// "" when the table or entry is absent or unreadable.
func postScriptName(data []byte, index int) string {
	lds, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil || index < 0 || index >= len(lds) {
		return ""
	}
	raw, err := lds[index].RawTableTo(ot.MustNewTag("name"), nil)
	if err != nil {
		return ""
	}
	names, _, err := tables.ParseName(raw)
	if err != nil {
		return ""
	}
	return names.Name(namePostScript)
}

// derivedID builds an identifier from a description for fonts without a
// PostScript name.
func derivedID(d font.Description) string {
	name := make([]byte, 0, len(d.Family)+12)
	for i := 0; i < len(d.Family); i++ {
		if d.Family[i] != ' ' {
			name = append(name, d.Family[i])
		}
	}
	suffix := ""
	if weightOf(d.Aspect) >= boldCutoff {
		suffix = "Bold"
	}
	if styleOf(d.Aspect) != styleNormal {
		suffix += "Italic"
	}
	if suffix == "" {
		suffix = "Regular"
	}
	return string(name) + "-" + suffix
}
