// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/render"
	"github.com/gogpu/render/geom"
)

// pixelAt reads a canvas pixel as straight 8-bit RGBA.
func pixelAt(t *testing.T, dc *gg.Context, x, y int) color.RGBA {
	t.Helper()
	c, ok := dc.Image().At(x, y).(color.RGBA)
	if !ok {
		t.Fatalf("canvas pixel is %T, want color.RGBA", dc.Image().At(x, y))
	}
	return c
}

// rgbaPixels builds a packed RGBA buffer of n copies of one pixel.
func rgbaPixels(n int, r, g, b, a byte) []byte {
	return bytes.Repeat([]byte{r, g, b, a}, n)
}

func TestMakeImage(t *testing.T) {
	rc := New(gg.NewContext(8, 8))

	img, err := rc.MakeImage(2, 2, rgbaPixels(4, 255, 0, 0, 255), render.FormatRGBASeparate)
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}
	if got := img.Size(); got.Width != 2 || got.Height != 2 {
		t.Errorf("Size() = %gx%g, want 2x2", got.Width, got.Height)
	}
}

func TestMakeImageErrors(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		n      int
		format render.ImageFormat
		want   error
	}{
		{"short buffer", 2, 2, 15, render.FormatRGBASeparate, render.ErrInvalidInput},
		{"long buffer", 2, 2, 17, render.FormatRGBASeparate, render.ErrInvalidInput},
		{"premultiplied", 2, 2, 16, render.FormatRGBAPremul, render.ErrUnsupportedFormat},
		{"grayscale", 2, 2, 4, render.FormatGrayscale, render.ErrUnsupportedFormat},
		{"rgb", 2, 2, 12, render.FormatRGB, render.ErrUnsupportedFormat},
		{"zero width", 0, 2, 0, render.FormatRGBASeparate, render.ErrUnsupportedFormat},
		{"negative height", 2, -1, 0, render.FormatRGBASeparate, render.ErrUnsupportedFormat},
	}

	rc := New(gg.NewContext(8, 8))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rc.MakeImage(tt.w, tt.h, make([]byte, tt.n), tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("MakeImage(%d, %d, %d bytes, %v) = %v, want %v",
					tt.w, tt.h, tt.n, tt.format, err, tt.want)
			}
		})
	}
}

func TestMakeImageCopiesPixels(t *testing.T) {
	dc := gg.NewContext(4, 4)
	rc := New(dc)

	pixels := rgbaPixels(1, 255, 0, 0, 255)
	img, err := rc.MakeImage(1, 1, pixels, render.FormatRGBASeparate)
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}

	// Later caller-side mutation must not show in the image.
	pixels[0] = 0
	pixels[2] = 255

	rc.DrawImage(img, geom.NewRect(0, 0, 1, 1), render.NearestNeighbor)
	if got := pixelAt(t, dc, 0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (0,0) = %v, want opaque red", got)
	}
}

func TestDrawImagePlacement(t *testing.T) {
	dc := gg.NewContext(8, 8)
	rc := New(dc)

	img, err := rc.MakeImage(2, 2, rgbaPixels(4, 255, 0, 0, 255), render.FormatRGBASeparate)
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}
	rc.DrawImage(img, geom.NewRect(3, 3, 5, 5), render.Bilinear)

	red := color.RGBA{R: 255, A: 255}
	empty := color.RGBA{}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{3, 3, red},
		{4, 4, red},
		{2, 2, empty},
		{5, 5, empty},
	}
	for _, c := range checks {
		if got := pixelAt(t, dc, c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestDrawImageArea(t *testing.T) {
	dc := gg.NewContext(4, 4)
	rc := New(dc)

	// Left column red, right column blue.
	pixels := []byte{
		255, 0, 0, 255, 0, 0, 255, 255,
		255, 0, 0, 255, 0, 0, 255, 255,
	}
	img, err := rc.MakeImage(2, 2, pixels, render.FormatRGBASeparate)
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}

	rc.DrawImageArea(img, geom.NewRect(1, 0, 2, 2), geom.NewRect(0, 0, 1, 2), render.Bilinear)

	blue := color.RGBA{B: 255, A: 255}
	if got := pixelAt(t, dc, 0, 0); got != blue {
		t.Errorf("pixel (0,0) = %v, want opaque blue", got)
	}
	if got := pixelAt(t, dc, 1, 0); got != (color.RGBA{}) {
		t.Errorf("pixel (1,0) = %v, want untouched", got)
	}
}

type stubImage struct{}

func (stubImage) Size() geom.Size { return geom.Size{Width: 1, Height: 1} }

func TestDrawImageForeign(t *testing.T) {
	dc := gg.NewContext(2, 2)
	rc := New(dc)

	rc.DrawImage(stubImage{}, geom.NewRect(0, 0, 2, 2), render.Bilinear)
	rc.DrawImageArea(stubImage{}, geom.NewRect(0, 0, 1, 1), geom.NewRect(0, 0, 2, 2), render.Bilinear)

	if got := pixelAt(t, dc, 0, 0); got != (color.RGBA{}) {
		t.Errorf("foreign image draw wrote pixel %v", got)
	}
}

func TestDrawImageEmptyDst(t *testing.T) {
	dc := gg.NewContext(4, 4)
	rc := New(dc)

	img, err := rc.MakeImage(1, 1, rgbaPixels(1, 255, 255, 255, 255), render.FormatRGBASeparate)
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}
	rc.DrawImage(img, geom.NewRect(2, 2, 2, 2), render.Bilinear)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pixelAt(t, dc, x, y); got != (color.RGBA{}) {
				t.Fatalf("empty dst drew pixel (%d,%d) = %v", x, y, got)
			}
		}
	}
}

func TestPattern(t *testing.T) {
	rc := New(gg.NewContext(4, 4))

	img, err := rc.MakeImage(2, 2, rgbaPixels(4, 0, 255, 0, 255), render.FormatRGBASeparate)
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}
	pat, err := rc.Pattern(img)
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}
	if pat == nil {
		t.Fatal("Pattern returned nil pattern")
	}

	if _, err := rc.Pattern(stubImage{}); !errors.Is(err, render.ErrInvalidInput) {
		t.Errorf("Pattern(foreign) = %v, want ErrInvalidInput", err)
	}
}

func TestCaptureImageArea(t *testing.T) {
	rc := New(gg.NewContext(4, 4))
	if _, err := rc.CaptureImageArea(geom.NewRect(0, 0, 2, 2)); !errors.Is(err, render.ErrNotSupported) {
		t.Errorf("CaptureImageArea = %v, want ErrNotSupported", err)
	}
}
