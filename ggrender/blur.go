// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/render"
	"github.com/gogpu/render/geom"
	"github.com/gogpu/render/internal/blur"
)

// BlurredRect fills a rectangle with its edges feathered by a Gaussian of
// the given standard deviation. The brush must be solid; other brushes are
// logged and skipped. A radius of zero paints a hard-edged rectangle.
func (c *Context) BlurredRect(rect geom.Rect, blurRadius float64, brush render.Brush) error {
	sb, ok := brush.(render.SolidBrush)
	if !ok {
		c.logger.Warn("unsupported brush for blurred rect, skipping draw", "type", fmt.Sprintf("%T", brush))
		return nil
	}

	if !(blurRadius >= 0) {
		return fmt.Errorf("%w: blur radius %g", render.ErrInvalidInput, blurRadius)
	}
	size := blur.SizeForRect(rect, blurRadius)
	if !(size.Width > 0 && size.Height > 0 && size.Width <= math.MaxUint32 && size.Height <= math.MaxUint32) {
		return fmt.Errorf("%w: blur mask size %gx%g", render.ErrInvalidInput, size.Width, size.Height)
	}
	w, h := int(size.Width), int(size.Height)
	mask := make([]byte, w*h)
	placement := blur.ComputeRect(rect, blurRadius, w, mask)

	// Tint the coverage mask with the brush color; the mask scales the
	// brush alpha per pixel.
	col := sb.Color
	alpha := uint32(col.A())
	tint := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, m := range mask {
		o := i * 4
		tint.Pix[o+0] = col.R()
		tint.Pix[o+1] = col.G()
		tint.Pix[o+2] = col.B()
		tint.Pix[o+3] = uint8((uint32(m)*alpha + 127) / 255)
	}

	c.dc.DrawImageEx(gg.ImageBufFromImage(tint), gg.DrawImageOptions{
		X:             placement.X0,
		Y:             placement.Y0,
		DstWidth:      placement.Width(),
		DstHeight:     placement.Height(),
		Interpolation: c.interp,
		Opacity:       1.0,
	})
	return nil
}
