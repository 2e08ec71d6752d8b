package render

import "github.com/gogpu/render/geom"

// FontFamily identifies a font family by name. Values come from
// [Text.FontFamily] lookups or [Text.LoadFont]; the predeclared generic
// families resolve to whatever the font source maps them to.
type FontFamily struct {
	name string
}

// Generic font families understood by every font source.
var (
	FontFamilySerif     = NewFontFamily("serif")
	FontFamilySansSerif = NewFontFamily("sans-serif")
	FontFamilyMonospace = NewFontFamily("monospace")
)

// NewFontFamily creates a family handle for the given name. The name is not
// validated against any font source.
func NewFontFamily(name string) FontFamily {
	return FontFamily{name: name}
}

// Name returns the family name.
func (f FontFamily) Name() string { return f.name }

// IsGeneric reports whether the family is one of the predeclared generic
// names rather than a concrete family.
func (f FontFamily) IsGeneric() bool {
	switch f.name {
	case "serif", "sans-serif", "monospace":
		return true
	}
	return false
}

// FontWeight is the visual weight of a font on the usual 100-900 scale.
type FontWeight uint16

// Common font weights.
const (
	FontWeightThin     FontWeight = 100
	FontWeightLight    FontWeight = 300
	FontWeightNormal   FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemiBold FontWeight = 600
	FontWeightBold     FontWeight = 700
	FontWeightHeavy    FontWeight = 900
)

// FontStyle selects between upright and italic faces.
type FontStyle int

const (
	// FontStyleRegular is the upright style.
	FontStyleRegular FontStyle = iota
	// FontStyleItalic is the italic (or oblique) style.
	FontStyleItalic
)

// TextAlignment positions lines within the layout width.
type TextAlignment int

const (
	// AlignStart aligns lines to the leading edge.
	AlignStart TextAlignment = iota
	// AlignEnd aligns lines to the trailing edge.
	AlignEnd
	// AlignCenter centers each line.
	AlignCenter
	// AlignJustified stretches lines to the full layout width.
	AlignJustified
)

// TextAttribute is a styling property applied to a layout, either as a
// default or over a byte range. This is a sealed interface.
type TextAttribute interface {
	textAttributeMarker()
}

// AttrFontFamily selects the font family.
type AttrFontFamily struct{ Family FontFamily }

// AttrFontSize sets the font size in points.
type AttrFontSize struct{ Size float64 }

// AttrWeight sets the font weight.
type AttrWeight struct{ Weight FontWeight }

// AttrStyle sets the font style.
type AttrStyle struct{ Style FontStyle }

// AttrTextColor sets the text color.
type AttrTextColor struct{ Color Color }

// AttrUnderline toggles underlining.
type AttrUnderline struct{ Underline bool }

// AttrStrikethrough toggles strikethrough.
type AttrStrikethrough struct{ Strikethrough bool }

func (AttrFontFamily) textAttributeMarker()    {}
func (AttrFontSize) textAttributeMarker()      {}
func (AttrWeight) textAttributeMarker()        {}
func (AttrStyle) textAttributeMarker()         {}
func (AttrTextColor) textAttributeMarker()     {}
func (AttrUnderline) textAttributeMarker()     {}
func (AttrStrikethrough) textAttributeMarker() {}

// LineMetric describes one line of laid-out text.
type LineMetric struct {
	// StartOffset is the byte offset of the line's first character.
	StartOffset int
	// EndOffset is the byte offset past the line's last character,
	// including trailing whitespace.
	EndOffset int
	// TrailingWhitespace is the byte length of trailing whitespace.
	TrailingWhitespace int
	// Baseline is the distance from the top of the line to its baseline.
	Baseline float64
	// Height is the line height.
	Height float64
	// YOffset is the distance from the top of the layout to the line top.
	YOffset float64
}

// HitTestPoint is the result of point-to-text-position hit testing.
type HitTestPoint struct {
	// Idx is the byte offset of the closest text position.
	Idx int
	// IsInside reports whether the point was inside the text bounds.
	IsInside bool
}

// HitTestPosition is the result of text-position-to-point hit testing.
type HitTestPosition struct {
	// Point is the baseline position of the text position.
	Point geom.Point
	// Line is the index of the line containing the position.
	Line int
}

// Text builds text layouts and resolves fonts for one backend.
type Text interface {
	// FontFamily resolves a family name, returning ok=false when no font
	// source can satisfy it.
	FontFamily(name string) (FontFamily, bool)

	// LoadFont registers in-memory font data with the backend's font
	// source and returns the family it belongs to. Errors use the
	// package taxonomy: [ErrMissingFont] when the data holds no usable
	// font, [ErrFontLoadingFailed] when it cannot be parsed, or a
	// [*BackendError] for anything else.
	LoadFont(data []byte) (FontFamily, error)

	// NewTextLayout starts building a layout for the given text.
	NewTextLayout(text string) TextLayoutBuilder
}

// TextLayoutBuilder accumulates layout parameters. Builders are single-use:
// call Build once.
type TextLayoutBuilder interface {
	// MaxWidth sets the width available for line breaking.
	MaxWidth(width float64) TextLayoutBuilder

	// Alignment sets the line alignment.
	Alignment(alignment TextAlignment) TextLayoutBuilder

	// DefaultAttribute applies an attribute to the entire layout.
	DefaultAttribute(attr TextAttribute) TextLayoutBuilder

	// RangeAttribute applies an attribute to a byte range of the text.
	// Ranges must be added in non-decreasing start order.
	RangeAttribute(start, end int, attr TextAttribute) TextLayoutBuilder

	// Build finalizes the layout.
	Build() (TextLayout, error)
}

// TextLayout is a laid-out text object. Backends without a shaping engine
// retain the source text but decline the metric operations with
// [ErrNotSupported]; callers must treat metrics as optional capabilities.
type TextLayout interface {
	// Text returns the source text of the layout.
	Text() string

	// Size returns the extent of the laid-out text.
	Size() (geom.Size, error)

	// TrailingWhitespaceWidth returns the layout width including
	// trailing whitespace.
	TrailingWhitespaceWidth() (float64, error)

	// ImageBounds returns the bounding box of the inked glyphs.
	ImageBounds() (geom.Rect, error)

	// LineText returns the text of the given line.
	LineText(line int) (string, error)

	// LineMetric returns the metrics of the given line.
	LineMetric(line int) (LineMetric, error)

	// LineCount returns the number of lines.
	LineCount() (int, error)

	// HitTestPoint locates the text position closest to a point.
	HitTestPoint(p geom.Point) (HitTestPoint, error)

	// HitTestTextPosition locates the point of a text position.
	HitTestTextPosition(idx int) (HitTestPosition, error)
}
