// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggrender implements the render.Context contract on top of a
// gg drawing context.
//
// A Context wraps one *gg.Context and translates the generic drawing
// operations into gg calls: shapes become gg paths, affine transforms are
// re-expressed in gg's row-major layout, brushes map to gg paint, and text
// resolves through a fonts.Composite. The wrapped canvas stays usable
// directly; the adapter only drives its public API.
//
//	dc := gg.NewContext(640, 480)
//	rc := ggrender.New(dc)
//	err := rc.Fill(geom.Circle{Center: geom.Pt(320, 240), Radius: 100},
//		rc.SolidBrush(render.Red))
//
// A Context is single-goroutine, like the gg context it wraps. The font
// service behind Text is safe to share.
package ggrender
