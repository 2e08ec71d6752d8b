// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blur computes the alpha mask of a Gaussian-blurred rectangle in
// closed form. The blur of an axis-aligned rectangle is separable, so the
// mask is the outer product of two 1D profiles built from the error
// function; no convolution pass is needed.
package blur

import (
	"math"

	"github.com/gogpu/render/geom"
)

// padRatio is the number of blur standard deviations of padding on each
// side of the rectangle. Three sigma keeps all but 0.3% of the Gaussian's
// mass inside the mask.
const padRatio = 3.0

// SizeForRect returns the pixel dimensions of the mask ComputeRect fills
// for the given rectangle and blur radius. Both dimensions are whole
// numbers; they grow monotonically with the radius.
func SizeForRect(rect geom.Rect, radius float64) geom.Size {
	return expanded(rect, radius).Size()
}

// ComputeRect fills buf with the mask of rect blurred by a Gaussian of
// standard deviation radius and returns the mask's placement rectangle in
// rect's coordinate space. A radius of zero or less produces a hard-edged
// mask.
//
// stride is the row length of buf in bytes; buf must hold at least
// height*stride bytes for the dimensions SizeForRect reports. Mask values
// are sampled at pixel centers.
func ComputeRect(rect geom.Rect, radius float64, stride int, buf []byte) geom.Rect {
	rect = rect.Canon()
	exp := expanded(rect, radius)
	w := int(exp.Width())
	h := int(exp.Height())
	sx := profile(w, exp.X0, rect.X0, rect.X1, radius)
	sy := profile(h, exp.Y0, rect.Y0, rect.Y1, radius)
	for j := 0; j < h; j++ {
		row := buf[j*stride : j*stride+w]
		for i := range row {
			row[i] = uint8(math.Round(255 * sx[i] * sy[j]))
		}
	}
	return exp
}

// expanded returns the padded mask rectangle on integer coordinates.
func expanded(rect geom.Rect, radius float64) geom.Rect {
	pad := padRatio * radius
	return rect.Canon().Inflate(pad, pad).Expand()
}

// profile samples the 1D blurred box profile at n pixel centers starting
// at origin. lo and hi are the box edges along the axis.
func profile(n int, origin, lo, hi, radius float64) []float64 {
	out := make([]float64, n)
	if radius <= 0 {
		for i := range out {
			if x := origin + float64(i) + 0.5; x >= lo && x < hi {
				out[i] = 1
			}
		}
		return out
	}
	s := 1 / (radius * math.Sqrt2)
	for i := range out {
		x := origin + float64(i) + 0.5
		out[i] = 0.5 * (math.Erf((x-lo)*s) - math.Erf((x-hi)*s))
	}
	return out
}
