// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import "iter"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// BezPath is a sequence of path elements built imperatively. It is the
// general-purpose shape: a drawing backend consumes its elements verbatim
// without re-approximation.
type BezPath struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewBezPath creates a new empty path.
func NewBezPath() *BezPath {
	return &BezPath{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *BezPath) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *BezPath) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *BezPath) QuadTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *BezPath) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *BezPath) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the stored path elements.
func (p *BezPath) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *BezPath) CurrentPoint() Point {
	return p.current
}

// Transform returns a copy of the path with the transform applied to every
// point, including curve control points.
func (p *BezPath) Transform(a Affine) *BezPath {
	result := NewBezPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := a.Apply(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := a.Apply(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := a.Apply(e.Control)
			pt := a.Apply(e.Point)
			result.QuadTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := a.Apply(e.Control1)
			ctrl2 := a.Apply(e.Control2)
			pt := a.Apply(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// PathElements yields the stored elements unchanged. The tolerance is
// unused: a BezPath is already in element form.
func (p *BezPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, elem := range p.elements {
			if !yield(elem) {
				return
			}
		}
	}
}

// BoundingBox returns the bounding box of all points in the path. Curve
// control points are included, so the box is conservative for curves.
func (p *BezPath) BoundingBox() Rect {
	var box Rect
	first := true
	grow := func(pt Point) {
		if first {
			box = Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y}
			first = false
			return
		}
		box = box.Union(Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y})
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	return box
}
