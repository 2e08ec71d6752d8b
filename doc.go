// Package render defines a backend-agnostic immediate-mode 2D drawing
// contract: paths, brushes, text, images, transforms, and save/restore.
//
// # Overview
//
// Code written against [Context] draws without knowing which engine performs
// the rasterization. A backend adapts the contract to its own canvas API; the
// ggrender subpackage does this for the GoGPU gg engine. Geometry lives in
// the geom subpackage and font resolution in the fonts subpackage.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/gogpu/render"
//		"github.com/gogpu/render/geom"
//		"github.com/gogpu/render/ggrender"
//	)
//
//	dc := gg.NewContext(512, 512)
//	rc := ggrender.New(dc)
//
//	var ctx render.Context = rc
//	brush := ctx.SolidBrush(render.Black)
//	ctx.Stroke(geom.RectFromOriginSize(geom.Pt(75, 140), geom.Size{Width: 150, Height: 110}), brush, 10)
//
//	dc.SavePNG("output.png")
//
// # Design
//
// The contract follows the capability-interface style: Context is the façade,
// and the associated surfaces (Brush, Image, Text, TextLayout) are small
// interfaces produced by the backend. Callers cannot forge brushes or images
// for a foreign backend; each adapter only accepts values it created.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Transforms use the column layout [a b c d e f] of [geom.Affine];
// backends convert to their own matrix layout internally.
package render
