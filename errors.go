package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for the drawing contract. Backends return them directly or
// wrapped; callers match with [errors.Is].
var (
	// ErrUnsupportedFormat is returned when image data uses a pixel format
	// or dimensions the backend cannot represent.
	ErrUnsupportedFormat = errors.New("render: unsupported image format")

	// ErrInvalidInput is returned when caller-provided data is malformed,
	// such as a pixel buffer whose length does not match its dimensions.
	ErrInvalidInput = errors.New("render: invalid input")

	// ErrMissingFont is returned when font data does not contain the
	// requested font.
	ErrMissingFont = errors.New("render: missing font")

	// ErrFontLoadingFailed is returned when font data cannot be parsed.
	ErrFontLoadingFailed = errors.New("render: font loading failed")

	// ErrNotSupported is returned by operations the backend does not
	// implement.
	ErrNotSupported = errors.New("render: operation not supported")
)

// BackendError wraps a failure reported by the underlying engine that does
// not correspond to any sentinel above. The payload is preserved for
// inspection via [errors.As] and [errors.Unwrap].
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("render: backend error: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
