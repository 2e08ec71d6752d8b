// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"reflect"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/render/geom"
)

func TestPathFromShapeLine(t *testing.T) {
	line := geom.Line{P0: geom.Pt(1, 2), P1: geom.Pt(3, 4)}
	got := PathFromShape(line).Elements()
	want := []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(1, 2)},
		gg.LineTo{Point: gg.Pt(3, 4)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("line elements = %v, want %v", got, want)
	}
}

func TestPathFromShapeRect(t *testing.T) {
	got := PathFromShape(geom.NewRect(1, 2, 4, 6)).Elements()

	want := gg.NewPath()
	want.Rectangle(1, 2, 3, 4)
	if !reflect.DeepEqual(got, want.Elements()) {
		t.Errorf("rect elements = %v, want %v", got, want.Elements())
	}
}

func TestPathFromShapeBezPath(t *testing.T) {
	p := geom.NewBezPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadTo(15, 5, 10, 10)
	p.CubicTo(8, 12, 2, 12, 0, 10)
	p.Close()

	got := PathFromShape(p).Elements()
	want := []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(0, 0)},
		gg.LineTo{Point: gg.Pt(10, 0)},
		gg.QuadTo{Control: gg.Pt(15, 5), Point: gg.Pt(10, 10)},
		gg.CubicTo{Control1: gg.Pt(8, 12), Control2: gg.Pt(2, 12), Point: gg.Pt(0, 10)},
		gg.Close{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bezpath elements = %v, want %v", got, want)
	}
}

func TestPathFromShapeCircle(t *testing.T) {
	circle := geom.Circle{Center: geom.Pt(50, 50), Radius: 20}
	els := PathFromShape(circle).Elements()
	if len(els) < 6 {
		t.Fatalf("circle produced %d elements, want at least 6", len(els))
	}

	first, ok := els[0].(gg.MoveTo)
	if !ok {
		t.Fatalf("first element = %T, want MoveTo", els[0])
	}
	if first.Point != gg.Pt(70, 50) {
		t.Errorf("circle starts at %v, want (70, 50)", first.Point)
	}

	if _, ok := els[len(els)-1].(gg.Close); !ok {
		t.Errorf("last element = %T, want Close", els[len(els)-1])
	}

	for i, el := range els[1 : len(els)-1] {
		if _, ok := el.(gg.CubicTo); !ok {
			t.Errorf("element %d = %T, want CubicTo", i+1, el)
		}
	}
}

func TestPathFromShapeEmpty(t *testing.T) {
	if els := PathFromShape(nil).Elements(); len(els) != 0 {
		t.Errorf("nil shape produced %d elements, want 0", len(els))
	}
	if els := PathFromShape(geom.NewBezPath()).Elements(); len(els) != 0 {
		t.Errorf("empty path produced %d elements, want 0", len(els))
	}
}
