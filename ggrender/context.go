// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/render"
	"github.com/gogpu/render/fonts"
	"github.com/gogpu/render/geom"
)

// Context adapts a gg drawing context to the render.Context contract.
//
// A Context owns its canvas for the duration of a frame and reports errors
// eagerly: every failing operation returns the failure, so Status is always
// nil. Paint state is re-established on every draw call, which keeps
// Save/Restore down to what gg's Push/Pop snapshots (transform, clip, mask).
type Context struct {
	dc     *gg.Context
	text   *Text
	logger *slog.Logger

	// interp holds the most recent interpolation mode a caller passed to
	// an image draw. It stands in for a canvas-wide smoothing flag.
	interp gg.InterpolationMode

	// saves counts Save calls so Restore can reject an unbalanced Pop,
	// which gg would silently ignore.
	saves int
}

var _ render.Context = (*Context)(nil)

// New wraps a gg context. The zero configuration logs through the package
// logger and resolves text through the built-in font set; use options to
// supply a shared font source or a different logger.
func New(dc *gg.Context, opts ...Option) *Context {
	c := &Context{
		dc:     dc,
		text:   newText(),
		interp: gg.InterpNearest,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = render.Logger()
	}
	if c.text.logger == nil {
		c.text.logger = c.logger
	}
	if c.text.source == nil {
		c.text.source = fonts.NewComposite(fonts.Builtin())
	}
	return c
}

// GG returns the wrapped gg context for direct access to backend features
// the contract does not cover.
func (c *Context) GG() *gg.Context {
	return c.dc
}

// Status always returns nil: failures surface on the operation that caused
// them.
func (c *Context) Status() error {
	return nil
}

// Clear fills the region with a color, replacing the pixels outright. The
// current transform and clip are ignored and left untouched; a nil region
// clears the whole canvas.
func (c *Context) Clear(region *geom.Rect, col render.Color) {
	rgba := toRGBA(col)
	if region == nil {
		c.dc.ClearWithColor(rgba)
		return
	}
	// Land pending accelerated draws before writing pixels directly.
	if err := c.dc.FlushGPU(); err != nil {
		c.logger.Warn("flush before clear failed", "err", err)
	}
	r := region.Canon().Expand()
	x0 := max(int(r.X0), 0)
	y0 := max(int(r.Y0), 0)
	x1 := min(int(r.X1), c.dc.Width())
	y1 := min(int(r.Y1), c.dc.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.dc.SetPixel(x, y, rgba)
		}
	}
}

// Stroke draws the outline of the shape with the brush and width.
func (c *Context) Stroke(shape geom.Shape, brush render.Brush, width float64) error {
	return c.StrokeStyled(shape, brush, width, nil)
}

// StrokeStyled draws the outline of the shape. The line width is applied;
// the remaining style parameters (caps, joins, dashes) are accepted but not
// translated to backend state.
func (c *Context) StrokeStyled(shape geom.Shape, brush render.Brush, width float64, style *render.StrokeStyle) error {
	if !c.setStrokeBrush(brush) {
		return nil
	}
	c.dc.SetLineWidth(width)
	c.setPath(shape)
	if err := c.dc.Stroke(); err != nil {
		return &render.BackendError{Err: err}
	}
	return nil
}

// Fill fills the shape using the non-zero winding rule.
func (c *Context) Fill(shape geom.Shape, brush render.Brush) error {
	return c.fill(shape, brush, gg.FillRuleNonZero)
}

// FillEvenOdd fills the shape using the even-odd rule.
func (c *Context) FillEvenOdd(shape geom.Shape, brush render.Brush) error {
	return c.fill(shape, brush, gg.FillRuleEvenOdd)
}

func (c *Context) fill(shape geom.Shape, brush render.Brush, rule gg.FillRule) error {
	if !c.setFillBrush(brush) {
		return nil
	}
	c.dc.SetFillRule(rule)
	c.setPath(shape)
	if err := c.dc.Fill(); err != nil {
		return &render.BackendError{Err: err}
	}
	return nil
}

// Clip intersects the current clip region with the shape.
func (c *Context) Clip(shape geom.Shape) {
	c.setPath(shape)
	c.dc.Clip()
}

// Text returns the font and layout manager.
func (c *Context) Text() render.Text {
	return c.text
}

// DrawText draws a layout with its top-left corner at origin. Layouts built
// by a different backend, and layouts whose font cannot be resolved, are
// logged and skipped.
func (c *Context) DrawText(layout render.TextLayout, origin geom.Point) {
	l, ok := layout.(*textLayout)
	if !ok {
		c.logger.Warn("foreign text layout, skipping draw", "type", fmt.Sprintf("%T", layout))
		return
	}
	if l.text == "" {
		return
	}
	face, err := c.text.face(l.family.Name(), l.size)
	if err != nil {
		c.logger.Warn("no font for layout, skipping draw", "family", l.family.Name(), "err", err)
		return
	}
	// gg positions text in device space; run the origin through the CTM
	// and shift from the layout's top edge down to the baseline.
	p := c.CurrentTransform().Apply(origin)
	c.dc.SetFont(face)
	c.dc.DrawString(l.text, p.X, p.Y+face.Metrics().Ascent)
}

// Save pushes the current transform, clip, and mask state.
func (c *Context) Save() error {
	c.dc.Push()
	c.saves++
	return nil
}

// Restore pops the most recently saved state. Restoring with nothing saved
// is an error.
func (c *Context) Restore() error {
	if c.saves == 0 {
		return fmt.Errorf("%w: restore without matching save", render.ErrInvalidInput)
	}
	c.saves--
	c.dc.Pop()
	return nil
}

// Finish flushes pending work. The software pipeline draws eagerly, so this
// only drains a GPU accelerator when one is registered.
func (c *Context) Finish() error {
	if err := c.dc.FlushGPU(); err != nil {
		return &render.BackendError{Err: err}
	}
	return nil
}

// Transform replaces the current transform.
func (c *Context) Transform(t geom.Affine) {
	c.dc.SetTransform(toMatrix(t))
}

// CurrentTransform returns the current transform.
func (c *Context) CurrentTransform() geom.Affine {
	return fromMatrix(c.dc.GetTransform())
}

// CaptureImageArea reports read-back as unsupported.
func (c *Context) CaptureImageArea(src geom.Rect) (render.Image, error) {
	return nil, fmt.Errorf("%w: capture image area", render.ErrNotSupported)
}
