package render

import "github.com/gogpu/render/geom"

// Context is the immediate-mode drawing contract. A backend adapter owns one
// drawing target and executes each operation as it is called; there is no
// retained display list.
//
// Contexts are single-owner: all methods must be called from one goroutine.
// Operations that can fail return errors rather than accumulating state;
// Status exists for backends that defer failures.
type Context interface {
	// Status reports any backend failure not yet surfaced by an
	// operation. Backends that report errors eagerly always return nil.
	Status() error

	// SolidBrush creates a brush painting a single color.
	// Brush creation never fails.
	SolidBrush(c Color) Brush

	// Gradient creates a brush from a gradient descriptor. Backends
	// without gradient support return ErrNotSupported and no brush.
	Gradient(g Gradient) (Brush, error)

	// Clear fills the region with a color, ignoring the current
	// transform and clip. A nil region clears the entire canvas.
	Clear(region *geom.Rect, c Color)

	// Stroke draws the outline of the shape with the brush and width.
	Stroke(shape geom.Shape, brush Brush, width float64) error

	// StrokeStyled is Stroke with extended stroke parameters. Backends
	// apply the parameters they support.
	StrokeStyled(shape geom.Shape, brush Brush, width float64, style *StrokeStyle) error

	// Fill fills the shape using the non-zero winding rule.
	Fill(shape geom.Shape, brush Brush) error

	// FillEvenOdd fills the shape using the even-odd rule.
	FillEvenOdd(shape geom.Shape, brush Brush) error

	// Clip intersects the current clip region with the shape.
	Clip(shape geom.Shape)

	// Text returns the backend's text and font manager.
	Text() Text

	// DrawText draws a text layout with its top-left at origin. Layouts
	// from a different backend are ignored.
	DrawText(layout TextLayout, origin geom.Point)

	// Save pushes the current transform and clip state.
	Save() error

	// Restore pops the most recently saved state.
	Restore() error

	// Finish flushes any pending work after the last drawing operation.
	Finish() error

	// Transform replaces the current transform. It does not compose:
	// callers wanting composition read CurrentTransform and multiply.
	Transform(t geom.Affine)

	// CurrentTransform returns the current transform.
	CurrentTransform() geom.Affine

	// MakeImage creates a backend image from raw pixel data. The pixel
	// buffer is copied; it must hold exactly width*height packed pixels
	// of the given format.
	MakeImage(width, height int, pixels []byte, format ImageFormat) (Image, error)

	// DrawImage draws the image scaled into the destination rect.
	DrawImage(img Image, dst geom.Rect, interp InterpolationMode)

	// DrawImageArea draws the src sub-rect of the image into dst.
	DrawImageArea(img Image, src, dst geom.Rect, interp InterpolationMode)

	// CaptureImageArea snapshots a region of the render target. Backends
	// without read-back return ErrNotSupported.
	CaptureImageArea(src geom.Rect) (Image, error)

	// BlurredRect fills a rectangle with its edges blurred by the given
	// radius.
	BlurredRect(rect geom.Rect, blurRadius float64, brush Brush) error
}
