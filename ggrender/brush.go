// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/render"
)

// SolidBrush creates a single-color brush. Brush creation never fails; the
// color is translated into backend paint at draw time.
func (c *Context) SolidBrush(col render.Color) render.Brush {
	return render.Solid(col)
}

// Gradient reports gradients as unsupported. Callers should fall back to a
// solid brush.
func (c *Context) Gradient(g render.Gradient) (render.Brush, error) {
	return nil, fmt.Errorf("%w: gradient brushes", render.ErrNotSupported)
}

// toRGBA unpacks a packed color into gg's float color model.
func toRGBA(c render.Color) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
		A: float64(c.A()) / 255,
	}
}

// setFillBrush installs the brush as the context's fill paint. It reports
// false, leaving the paint untouched, when the brush is nil or of a kind
// this backend cannot paint; the caller skips the draw.
func (c *Context) setFillBrush(brush render.Brush) bool {
	switch b := brush.(type) {
	case render.SolidBrush:
		c.dc.SetFillBrush(gg.Solid(toRGBA(b.Color)))
		return true
	}
	c.logger.Warn("unsupported fill brush, skipping draw", "type", fmt.Sprintf("%T", brush))
	return false
}

// setStrokeBrush is setFillBrush for the stroke paint.
func (c *Context) setStrokeBrush(brush render.Brush) bool {
	switch b := brush.(type) {
	case render.SolidBrush:
		c.dc.SetStrokeBrush(gg.Solid(toRGBA(b.Color)))
		return true
	}
	c.logger.Warn("unsupported stroke brush, skipping draw", "type", fmt.Sprintf("%T", brush))
	return false
}
