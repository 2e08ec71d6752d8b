// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import "errors"

// Sentinel errors for the fonts package.
var (
	// ErrNotFound is returned when no font matches a selection query.
	ErrNotFound = errors.New("fonts: no matching font")

	// ErrNoSuchFontInCollection is returned when a collection index is out
	// of range for the faces the data actually contains.
	ErrNoSuchFontInCollection = errors.New("fonts: no such font in collection")

	// ErrUnknownFormat is returned when font data does not start with a
	// recognized container signature.
	ErrUnknownFormat = errors.New("fonts: unknown font format")

	// ErrParse is returned when font data has a recognized signature but
	// cannot be parsed.
	ErrParse = errors.New("fonts: malformed font data")

	// ErrEmptyData is returned when font data is empty.
	ErrEmptyData = errors.New("fonts: empty font data")
)
