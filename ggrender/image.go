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
)

// Image is pixel data copied into the backend's buffer format. Images are
// created by Context.MakeImage and are only drawable by this adapter.
type Image struct {
	buf  *gg.ImageBuf
	size geom.Size
}

// Size returns the image dimensions in pixels.
func (img *Image) Size() geom.Size {
	return img.size
}

// MakeImage copies raw non-premultiplied RGBA pixels into a backend image.
// Only FormatRGBASeparate data is accepted, dimensions must be positive and
// fit in 32 bits, and the buffer must hold exactly width*height pixels.
func (c *Context) MakeImage(width, height int, pixels []byte, format render.ImageFormat) (render.Image, error) {
	if format != render.FormatRGBASeparate {
		return nil, fmt.Errorf("%w: %v", render.ErrUnsupportedFormat, format)
	}
	if width <= 0 || height <= 0 || uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", render.ErrUnsupportedFormat, width, height)
	}
	if want := uint64(width) * uint64(height) * 4; uint64(len(pixels)) != want {
		return nil, fmt.Errorf("%w: %d pixel bytes for %dx%d, want %d", render.ErrInvalidInput, len(pixels), width, height, want)
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(nrgba.Pix, pixels)
	return &Image{
		buf:  gg.ImageBufFromImage(nrgba),
		size: geom.Size{Width: float64(width), Height: float64(height)},
	}, nil
}

// DrawImage draws the image scaled into the destination rect.
func (c *Context) DrawImage(img render.Image, dst geom.Rect, interp render.InterpolationMode) {
	c.drawImage(img, nil, dst, interp)
}

// DrawImageArea draws the src sub-rect of the image, in pixel coordinates,
// scaled into the destination rect.
func (c *Context) DrawImageArea(img render.Image, src, dst geom.Rect, interp render.InterpolationMode) {
	sr := src.Canon().Expand()
	rect := image.Rect(int(sr.X0), int(sr.Y0), int(sr.X1), int(sr.Y1))
	c.drawImage(img, &rect, dst, interp)
}

func (c *Context) drawImage(img render.Image, srcRect *image.Rectangle, dst geom.Rect, interp render.InterpolationMode) {
	bi, ok := img.(*Image)
	if !ok {
		c.logger.Warn("foreign image, skipping draw", "type", fmt.Sprintf("%T", img))
		return
	}
	d := dst.Canon()
	if d.IsEmpty() {
		return
	}
	c.interp = toInterpolation(interp)
	c.dc.DrawImageEx(bi.buf, gg.DrawImageOptions{
		X:             d.X0,
		Y:             d.Y0,
		DstWidth:      d.Width(),
		DstHeight:     d.Height(),
		SrcRect:       srcRect,
		Interpolation: c.interp,
		Opacity:       1.0,
	})
}

// Pattern wraps an adapter image as a tiling paint pattern for use with the
// backend's pattern fills.
func (c *Context) Pattern(img render.Image) (gg.Pattern, error) {
	bi, ok := img.(*Image)
	if !ok {
		return nil, fmt.Errorf("%w: foreign image", render.ErrInvalidInput)
	}
	return c.dc.CreateImagePattern(bi.buf, 0, 0, int(bi.size.Width), int(bi.size.Height)), nil
}

// toInterpolation maps contract sampling modes onto the backend tiers. gg
// treats the zero interpolation option as unset and substitutes bilinear,
// so nearest-neighbor requests are best-effort.
func toInterpolation(m render.InterpolationMode) gg.InterpolationMode {
	if m == render.NearestNeighbor {
		return gg.InterpNearest
	}
	return gg.InterpBilinear
}
