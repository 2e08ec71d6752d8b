// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/render"
	"github.com/gogpu/render/fonts"
	"github.com/gogpu/render/geom"
)

// defaultFontSize is the point size used when a layout carries no font size
// attribute.
const defaultFontSize = 12.0

// Text resolves fonts through a composite source and builds the minimal
// layouts this backend supports. A Text may be shared with layout-building
// code on other goroutines, so the face cache is locked; everything else is
// read-only after construction.
type Text struct {
	source *fonts.Composite
	logger *slog.Logger

	mu    sync.RWMutex
	faces map[faceKey]*text.FontSource
}

var _ render.Text = (*Text)(nil)

func newText() *Text {
	return &Text{faces: make(map[faceKey]*text.FontSource)}
}

// faceKey identifies a font handle by its backing storage. Memory-backed
// handles from one registration share their data slice, so the first byte's
// address distinguishes them.
type faceKey struct {
	path  string
	index int
	data  *byte
}

func keyFor(h fonts.Handle) faceKey {
	k := faceKey{path: h.Path, index: h.Index}
	if len(h.Data) > 0 {
		k.data = &h.Data[0]
	}
	return k
}

// FontFamily resolves a family name against the font source. The returned
// handle carries the requested name, not the source's display spelling.
func (t *Text) FontFamily(name string) (render.FontFamily, bool) {
	if _, err := t.source.SelectFamilyByName(name); err != nil {
		t.logger.Debug("font family not resolved", "name", name, "err", err)
		return render.FontFamily{}, false
	}
	return render.NewFontFamily(name), true
}

// LoadFont registers in-memory font data with the font source and returns
// the family it belongs to.
func (t *Text) LoadFont(data []byte) (render.FontFamily, error) {
	fam, err := t.source.Load(data)
	if err != nil {
		return render.FontFamily{}, mapFontError(err)
	}
	return render.NewFontFamily(fam.Name), nil
}

// mapFontError converts the fonts package taxonomy to the contract's.
func mapFontError(err error) error {
	switch {
	case errors.Is(err, fonts.ErrNoSuchFontInCollection):
		return render.ErrMissingFont
	case errors.Is(err, fonts.ErrUnknownFormat),
		errors.Is(err, fonts.ErrParse),
		errors.Is(err, fonts.ErrEmptyData):
		return render.ErrFontLoadingFailed
	default:
		return &render.BackendError{Err: err}
	}
}

// NewTextLayout starts building a layout for the given text.
func (t *Text) NewTextLayout(s string) render.TextLayoutBuilder {
	return &textLayoutBuilder{
		text:   s,
		family: render.FontFamilySerif,
		size:   defaultFontSize,
	}
}

// face returns a face of the given size for the family, parsing and caching
// the backing font on first use.
func (t *Text) face(family string, size float64) (text.Face, error) {
	h, err := t.source.SelectBestMatch(fonts.Query{Families: []string{family}})
	if err != nil {
		return nil, err
	}
	src, err := t.fontSource(h)
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

func (t *Text) fontSource(h fonts.Handle) (*text.FontSource, error) {
	key := keyFor(h)
	t.mu.RLock()
	src, ok := t.faces[key]
	t.mu.RUnlock()
	if ok {
		return src, nil
	}

	data, err := h.Bytes()
	if err != nil {
		return nil, err
	}
	src, err = text.NewFontSource(data)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if cached, ok := t.faces[key]; ok {
		return cached, nil
	}
	t.faces[key] = src
	return src, nil
}

// rangeAttribute is an attribute applied over a byte range of the text.
type rangeAttribute struct {
	start, end int
	attr       render.TextAttribute
}

// textLayoutBuilder accumulates layout parameters. Attributes are accepted
// and retained, but only the default font family and font size carry into
// rendering.
type textLayoutBuilder struct {
	text      string
	family    render.FontFamily
	size      float64
	maxWidth  float64
	alignment render.TextAlignment
	defaults  []render.TextAttribute
	ranges    []rangeAttribute
}

var _ render.TextLayoutBuilder = (*textLayoutBuilder)(nil)

func (b *textLayoutBuilder) MaxWidth(width float64) render.TextLayoutBuilder {
	b.maxWidth = width
	return b
}

func (b *textLayoutBuilder) Alignment(alignment render.TextAlignment) render.TextLayoutBuilder {
	b.alignment = alignment
	return b
}

func (b *textLayoutBuilder) DefaultAttribute(attr render.TextAttribute) render.TextLayoutBuilder {
	b.defaults = append(b.defaults, attr)
	switch a := attr.(type) {
	case render.AttrFontFamily:
		b.family = a.Family
	case render.AttrFontSize:
		b.size = a.Size
	}
	return b
}

func (b *textLayoutBuilder) RangeAttribute(start, end int, attr render.TextAttribute) render.TextLayoutBuilder {
	b.ranges = append(b.ranges, rangeAttribute{start: start, end: end, attr: attr})
	return b
}

func (b *textLayoutBuilder) Build() (render.TextLayout, error) {
	return &textLayout{
		text:      b.text,
		family:    b.family,
		size:      b.size,
		maxWidth:  b.maxWidth,
		alignment: b.alignment,
	}, nil
}

// errNoMetrics reports the absent shaping engine.
var errNoMetrics = fmt.Errorf("%w: text layout metrics", render.ErrNotSupported)

// textLayout retains the source text and the font selection rendering
// needs. There is no shaping engine behind it, so every metric operation
// fails explicitly rather than fabricating values.
type textLayout struct {
	text      string
	family    render.FontFamily
	size      float64
	maxWidth  float64
	alignment render.TextAlignment
}

var _ render.TextLayout = (*textLayout)(nil)

// Text returns the source text of the layout.
func (l *textLayout) Text() string {
	return l.text
}

func (l *textLayout) Size() (geom.Size, error) {
	return geom.Size{}, errNoMetrics
}

func (l *textLayout) TrailingWhitespaceWidth() (float64, error) {
	return 0, errNoMetrics
}

func (l *textLayout) ImageBounds() (geom.Rect, error) {
	return geom.Rect{}, errNoMetrics
}

func (l *textLayout) LineText(line int) (string, error) {
	return "", errNoMetrics
}

func (l *textLayout) LineMetric(line int) (render.LineMetric, error) {
	return render.LineMetric{}, errNoMetrics
}

func (l *textLayout) LineCount() (int, error) {
	return 0, errNoMetrics
}

func (l *textLayout) HitTestPoint(p geom.Point) (render.HitTestPoint, error) {
	return render.HitTestPoint{}, errNoMetrics
}

func (l *textLayout) HitTestTextPosition(idx int) (render.HitTestPosition, error) {
	return render.HitTestPosition{}, errNoMetrics
}
