// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"iter"
	"math"
)

// Rect is an axis-aligned rectangle defined by two opposite corners.
// A rect is canonical when X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect creates a rectangle from two corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// RectFromOriginSize creates a rectangle from its top-left origin and size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return Rect{
		X0: origin.X,
		Y0: origin.Y,
		X1: origin.X + size.Width,
		Y1: origin.Y + size.Height,
	}
}

// Width returns the horizontal extent. Negative for non-canonical rects.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent. Negative for non-canonical rects.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Origin returns the (X0, Y0) corner.
func (r Rect) Origin() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Canon returns the canonical form with X0 <= X1 and Y0 <= Y1.
func (r Rect) Canon() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, s.X0),
		Y0: math.Min(r.Y0, s.Y0),
		X1: math.Max(r.X1, s.X1),
		Y1: math.Max(r.Y1, s.Y1),
	}
}

// Inflate returns the rectangle expanded by dx on the left and right and
// dy on the top and bottom. Negative values shrink it.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X0: r.X0 - dx, Y0: r.Y0 - dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Translate returns the rectangle moved by the given offset.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Expand returns the smallest rectangle with integer coordinates containing
// the rectangle.
func (r Rect) Expand() Rect {
	return Rect{
		X0: math.Floor(r.X0),
		Y0: math.Floor(r.Y0),
		X1: math.Ceil(r.X1),
		Y1: math.Ceil(r.Y1),
	}
}

// PathElements describes the rectangle as a closed four-sided path.
// The tolerance is unused since all edges are exact.
func (r Rect) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo{Point: Point{X: r.X0, Y: r.Y0}}) {
			return
		}
		if !yield(LineTo{Point: Point{X: r.X1, Y: r.Y0}}) {
			return
		}
		if !yield(LineTo{Point: Point{X: r.X1, Y: r.Y1}}) {
			return
		}
		if !yield(LineTo{Point: Point{X: r.X0, Y: r.Y1}}) {
			return
		}
		yield(Close{})
	}
}

// BoundingBox returns the canonical rectangle itself.
func (r Rect) BoundingBox() Rect {
	return r.Canon()
}
