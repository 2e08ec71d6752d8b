// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"math"
	"testing"
)

func collect(s Shape, tolerance float64) []PathElement {
	var els []PathElement
	for el := range s.PathElements(tolerance) {
		els = append(els, el)
	}
	return els
}

func TestLinePathElements(t *testing.T) {
	l := Line{P0: Pt(1, 2), P1: Pt(3, 4)}
	els := collect(l, DefaultTolerance)
	if len(els) != 2 {
		t.Fatalf("line yielded %d elements, want 2", len(els))
	}
	if el, ok := els[0].(MoveTo); !ok || el.Point != l.P0 {
		t.Errorf("els[0] = %#v, want MoveTo%v", els[0], l.P0)
	}
	if el, ok := els[1].(LineTo); !ok || el.Point != l.P1 {
		t.Errorf("els[1] = %#v, want LineTo%v", els[1], l.P1)
	}
}

func TestRectPathElements(t *testing.T) {
	r := NewRect(10, 20, 30, 60)
	els := collect(r, DefaultTolerance)
	want := []PathElement{
		MoveTo{Point: Pt(10, 20)},
		LineTo{Point: Pt(30, 20)},
		LineTo{Point: Pt(30, 60)},
		LineTo{Point: Pt(10, 60)},
		Close{},
	}
	if len(els) != len(want) {
		t.Fatalf("rect yielded %d elements, want %d", len(els), len(want))
	}
	for i := range want {
		if els[i] != want[i] {
			t.Errorf("element %d = %#v, want %#v", i, els[i], want[i])
		}
	}
}

func TestCirclePathElements(t *testing.T) {
	c := Circle{Center: Pt(100, 100), Radius: 50}
	els := collect(c, DefaultTolerance)

	if len(els) < 6 {
		t.Fatalf("circle yielded %d elements, want at least 6", len(els))
	}
	start, ok := els[0].(MoveTo)
	if !ok {
		t.Fatalf("els[0] = %#v, want MoveTo", els[0])
	}
	if start.Point != Pt(150, 100) {
		t.Errorf("circle starts at %v, want %v", start.Point, Pt(150, 100))
	}
	if _, ok := els[len(els)-1].(Close); !ok {
		t.Errorf("last element = %#v, want Close", els[len(els)-1])
	}

	// Every interior element is a cubic whose endpoint lies on the circle.
	last := start.Point
	for i, el := range els[1 : len(els)-1] {
		cubic, ok := el.(CubicTo)
		if !ok {
			t.Fatalf("element %d = %#v, want CubicTo", i+1, el)
		}
		if d := cubic.Point.Distance(c.Center); math.Abs(d-c.Radius) > DefaultTolerance {
			t.Errorf("cubic endpoint %v is %.4f from center, want %.1f", cubic.Point, d, c.Radius)
		}
		last = cubic.Point
	}
	if last.Distance(start.Point) > epsilon {
		t.Errorf("final cubic ends at %v, want start point %v", last, start.Point)
	}
}

func TestCircleApproximationAccuracy(t *testing.T) {
	// Sample each cubic at several parameters and verify the radial error
	// stays within the tolerance.
	c := Circle{Center: Pt(0, 0), Radius: 200}
	els := collect(c, DefaultTolerance)

	prev := Pt(c.Radius, 0)
	for _, el := range els {
		cubic, ok := el.(CubicTo)
		if !ok {
			continue
		}
		for _, s := range []float64{0.25, 0.5, 0.75} {
			pt := cubicAt(prev, cubic, s)
			if d := math.Abs(pt.Distance(c.Center) - c.Radius); d > DefaultTolerance {
				t.Errorf("radial error %.5f at t=%.2f exceeds tolerance %.2f", d, s, DefaultTolerance)
			}
		}
		prev = cubic.Point
	}
}

func cubicAt(p0 Point, c CubicTo, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*p0.X + b1*c.Control1.X + b2*c.Control2.X + b3*c.Point.X,
		Y: b0*p0.Y + b1*c.Control1.Y + b2*c.Control2.Y + b3*c.Point.Y,
	}
}

func TestArcSegments(t *testing.T) {
	tests := []struct {
		name      string
		radius    float64
		tolerance float64
		want      int
	}{
		{"small radius", 50, 0.1, 4},
		{"house scale", 75, 0.1, 4},
		{"large radius", 1000, 0.1, 5},
		{"zero tolerance", 100, 0, 4},
		{"zero radius", 0, 0.1, 4},
		{"astronomical radius capped", 1e10, 0.1, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arcSegments(tt.radius, tt.tolerance); got != tt.want {
				t.Errorf("arcSegments(%v, %v) = %d, want %d", tt.radius, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestEllipsePathElements(t *testing.T) {
	e := Ellipse{Center: Pt(0, 0), RadiusX: 80, RadiusY: 40}
	els := collect(e, DefaultTolerance)

	start, ok := els[0].(MoveTo)
	if !ok || start.Point != Pt(80, 0) {
		t.Fatalf("els[0] = %#v, want MoveTo(80, 0)", els[0])
	}
	for _, el := range els[1 : len(els)-1] {
		cubic, ok := el.(CubicTo)
		if !ok {
			t.Fatalf("interior element = %#v, want CubicTo", el)
		}
		// Endpoints satisfy the ellipse equation.
		x, y := cubic.Point.X/e.RadiusX, cubic.Point.Y/e.RadiusY
		if r := math.Abs(math.Hypot(x, y) - 1); r > 0.01 {
			t.Errorf("cubic endpoint %v off the ellipse by %.4f", cubic.Point, r)
		}
	}
	if _, ok := els[len(els)-1].(Close); !ok {
		t.Errorf("last element = %#v, want Close", els[len(els)-1])
	}
}

func TestRoundedRectPathElements(t *testing.T) {
	t.Run("zero radius degenerates to rect", func(t *testing.T) {
		rr := RoundedRect{Rect: NewRect(0, 0, 10, 10)}
		els := collect(rr, DefaultTolerance)
		rectEls := collect(rr.Rect, DefaultTolerance)
		if len(els) != len(rectEls) {
			t.Fatalf("yielded %d elements, want %d", len(els), len(rectEls))
		}
		for i := range rectEls {
			if els[i] != rectEls[i] {
				t.Errorf("element %d = %#v, want %#v", i, els[i], rectEls[i])
			}
		}
	})

	t.Run("rounded outline", func(t *testing.T) {
		rr := RoundedRect{Rect: NewRect(0, 0, 100, 60), Radius: 10}
		els := collect(rr, DefaultTolerance)
		if len(els) != 10 {
			t.Fatalf("yielded %d elements, want 10", len(els))
		}
		if el := els[0].(MoveTo); el.Point != Pt(10, 0) {
			t.Errorf("start = %v, want %v", el.Point, Pt(10, 0))
		}
		wantKinds := []string{"move", "line", "cubic", "line", "cubic", "line", "cubic", "line", "cubic", "close"}
		for i, el := range els {
			var kind string
			switch el.(type) {
			case MoveTo:
				kind = "move"
			case LineTo:
				kind = "line"
			case CubicTo:
				kind = "cubic"
			case Close:
				kind = "close"
			}
			if kind != wantKinds[i] {
				t.Errorf("element %d is %s, want %s", i, kind, wantKinds[i])
			}
		}
	})

	t.Run("radius clamped to half dimension", func(t *testing.T) {
		rr := RoundedRect{Rect: NewRect(0, 0, 20, 100), Radius: 50}
		els := collect(rr, DefaultTolerance)
		// Clamped radius is 10, so the first point sits at x=10.
		if el := els[0].(MoveTo); el.Point != Pt(10, 0) {
			t.Errorf("start = %v, want %v", el.Point, Pt(10, 0))
		}
	})
}

func TestShapeBoundingBoxes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  Rect
	}{
		{"line", Line{P0: Pt(5, 9), P1: Pt(1, 3)}, NewRect(1, 3, 5, 9)},
		{"rect", NewRect(30, 40, 10, 20), NewRect(10, 20, 30, 40)},
		{"circle", Circle{Center: Pt(10, 10), Radius: 5}, NewRect(5, 5, 15, 15)},
		{"ellipse", Ellipse{Center: Pt(0, 0), RadiusX: 4, RadiusY: 2}, NewRect(-4, -2, 4, 2)},
		{"rounded rect", RoundedRect{Rect: NewRect(1, 2, 3, 4), Radius: 1}, NewRect(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.BoundingBox(); got != tt.want {
				t.Errorf("BoundingBox() = %v, want %v", got, tt.want)
			}
		})
	}
}
