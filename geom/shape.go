// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"iter"
	"math"
)

// DefaultTolerance is the curve approximation accuracy, in coordinate units,
// used when converting shapes for a drawing backend.
const DefaultTolerance = 0.1

// Shape is implemented by geometric values that can describe themselves as a
// sequence of path elements. Curved shapes approximate their outline with
// Bezier elements accurate to within the given tolerance.
type Shape interface {
	PathElements(tolerance float64) iter.Seq[PathElement]

	// BoundingBox returns a rectangle containing the shape.
	BoundingBox() Rect
}

// Line is a straight segment between two points.
type Line struct {
	P0, P1 Point
}

// PathElements describes the line as a move followed by a single line.
func (l Line) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo{Point: l.P0}) {
			return
		}
		yield(LineTo{Point: l.P1})
	}
}

// BoundingBox returns the bounding box of the segment endpoints.
func (l Line) BoundingBox() Rect {
	return Rect{X0: l.P0.X, Y0: l.P0.Y, X1: l.P1.X, Y1: l.P1.Y}.Canon()
}

// Circle is a circle described by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// PathElements approximates the circle with cubic Bezier arc segments. The
// segment count grows with the radius so the radial error stays within the
// tolerance.
func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return ellipseElements(c.Center, c.Radius, c.Radius, tolerance)
}

// BoundingBox returns the square enclosing the circle.
func (c Circle) BoundingBox() Rect {
	return Rect{
		X0: c.Center.X - c.Radius,
		Y0: c.Center.Y - c.Radius,
		X1: c.Center.X + c.Radius,
		Y1: c.Center.Y + c.Radius,
	}
}

// Ellipse is an axis-aligned ellipse described by its center and radii.
type Ellipse struct {
	Center           Point
	RadiusX, RadiusY float64
}

// PathElements approximates the ellipse with cubic Bezier arc segments
// accurate to within the tolerance.
func (e Ellipse) PathElements(tolerance float64) iter.Seq[PathElement] {
	return ellipseElements(e.Center, e.RadiusX, e.RadiusY, tolerance)
}

// BoundingBox returns the rectangle enclosing the ellipse.
func (e Ellipse) BoundingBox() Rect {
	return Rect{
		X0: e.Center.X - e.RadiusX,
		Y0: e.Center.Y - e.RadiusY,
		X1: e.Center.X + e.RadiusX,
		Y1: e.Center.Y + e.RadiusY,
	}
}

// RoundedRect is a rectangle with circular corner arcs.
type RoundedRect struct {
	Rect   Rect
	Radius float64
}

// PathElements describes the outline with straight edges and quarter-circle
// corner cubics. The corner radius is clamped to half the smaller dimension.
func (rr RoundedRect) PathElements(tolerance float64) iter.Seq[PathElement] {
	r := rr.Rect.Canon()
	rad := rr.Radius
	if maxRad := math.Min(r.Width(), r.Height()) / 2; rad > maxRad {
		rad = maxRad
	}
	if rad <= 0 {
		return r.PathElements(tolerance)
	}
	// Control point offset for a quarter-circle cubic.
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	off := rad * k
	return func(yield func(PathElement) bool) {
		ok := yield(MoveTo{Point: Pt(r.X0+rad, r.Y0)}) &&
			yield(LineTo{Point: Pt(r.X1-rad, r.Y0)}) &&
			yield(CubicTo{
				Control1: Pt(r.X1-rad+off, r.Y0),
				Control2: Pt(r.X1, r.Y0+rad-off),
				Point:    Pt(r.X1, r.Y0+rad),
			}) &&
			yield(LineTo{Point: Pt(r.X1, r.Y1-rad)}) &&
			yield(CubicTo{
				Control1: Pt(r.X1, r.Y1-rad+off),
				Control2: Pt(r.X1-rad+off, r.Y1),
				Point:    Pt(r.X1-rad, r.Y1),
			}) &&
			yield(LineTo{Point: Pt(r.X0+rad, r.Y1)}) &&
			yield(CubicTo{
				Control1: Pt(r.X0+rad-off, r.Y1),
				Control2: Pt(r.X0, r.Y1-rad+off),
				Point:    Pt(r.X0, r.Y1-rad),
			}) &&
			yield(LineTo{Point: Pt(r.X0, r.Y0+rad)}) &&
			yield(CubicTo{
				Control1: Pt(r.X0, r.Y0+rad-off),
				Control2: Pt(r.X0+rad-off, r.Y0),
				Point:    Pt(r.X0+rad, r.Y0),
			})
		if ok {
			yield(Close{})
		}
	}
}

// BoundingBox returns the canonical enclosing rectangle.
func (rr RoundedRect) BoundingBox() Rect {
	return rr.Rect.Canon()
}

// arcSegments returns the number of cubic segments needed to keep the
// radial error of a full-turn arc approximation within the tolerance.
func arcSegments(radius, tolerance float64) int {
	if tolerance <= 0 || radius <= 0 {
		return 4
	}
	// A quarter-circle cubic has a max radial error of about 2.7e-4 of the
	// radius; the error scales with the sixth power of the arc angle.
	const quarterErr = 2.7e-4
	span := math.Pi / 2 * math.Pow(tolerance/(quarterErr*radius), 1.0/6)
	n := int(math.Ceil(2 * math.Pi / span))
	if n < 4 {
		n = 4
	}
	if n > 64 {
		n = 64
	}
	return n
}

// ellipseElements yields a closed elliptical outline as cubic arc segments.
func ellipseElements(center Point, rx, ry, tolerance float64) iter.Seq[PathElement] {
	n := arcSegments(math.Max(rx, ry), tolerance)
	step := 2 * math.Pi / float64(n)
	// Control point scale for a cubic approximating an arc of angle step.
	// For a quarter turn this is the classic 4/3 * (sqrt(2) - 1).
	alpha := 4.0 / 3.0 * math.Tan(step/4)
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo{Point: Pt(center.X+rx, center.Y)}) {
			return
		}
		for i := 0; i < n; i++ {
			a1 := float64(i) * step
			a2 := a1 + step

			sin1, cos1 := math.Sincos(a1)
			sin2, cos2 := math.Sincos(a2)

			x1 := center.X + rx*cos1
			y1 := center.Y + ry*sin1
			x2 := center.X + rx*cos2
			y2 := center.Y + ry*sin2

			el := CubicTo{
				Control1: Pt(x1-alpha*rx*sin1, y1+alpha*ry*cos1),
				Control2: Pt(x2+alpha*rx*sin2, y2-alpha*ry*cos2),
				Point:    Pt(x2, y2),
			}
			if !yield(el) {
				return
			}
		}
		yield(Close{})
	}
}
