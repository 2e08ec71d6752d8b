// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/render/geom"
)

// PathFromShape converts a shape to a standalone gg path without touching
// any canvas state.
//
// Lines and rectangles map to their direct path forms, stored Bezier paths
// translate element for element, and every other shape is flattened through
// its PathElements at the default tolerance. Empty shapes produce empty
// paths.
func PathFromShape(shape geom.Shape) *gg.Path {
	path := gg.NewPath()
	if shape == nil {
		return path
	}
	switch s := shape.(type) {
	case geom.Line:
		path.MoveTo(s.P0.X, s.P0.Y)
		path.LineTo(s.P1.X, s.P1.Y)
	case geom.Rect:
		path.Rectangle(s.X0, s.Y0, s.Width(), s.Height())
	case *geom.BezPath:
		for _, el := range s.Elements() {
			appendElement(path, el)
		}
	default:
		for el := range shape.PathElements(geom.DefaultTolerance) {
			appendElement(path, el)
		}
	}
	return path
}

func appendElement(path *gg.Path, el geom.PathElement) {
	switch e := el.(type) {
	case geom.MoveTo:
		path.MoveTo(e.Point.X, e.Point.Y)
	case geom.LineTo:
		path.LineTo(e.Point.X, e.Point.Y)
	case geom.QuadTo:
		path.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
	case geom.CubicTo:
		path.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
	case geom.Close:
		path.Close()
	}
}

// setPath replaces the wrapped context's current path with the shape's
// conversion. Replay goes through the context so the active transform
// applies to every point, exactly as it would for direct canvas use.
func (c *Context) setPath(shape geom.Shape) {
	c.dc.ClearPath()
	for _, el := range PathFromShape(shape).Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			c.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			c.dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			c.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			c.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			c.dc.ClosePath()
		}
	}
}
