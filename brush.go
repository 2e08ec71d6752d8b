package render

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Brushes are plain values: a backend reads the brush when an operation
// executes and translates it into its own paint state. Obtain brushes from
// [Context.SolidBrush]; gradient descriptors go through [Context.Gradient],
// which a backend may decline with [ErrNotSupported].
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color Color
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// Solid creates a SolidBrush from a packed color.
//
// Example:
//
//	brush := render.Solid(render.Red)
func Solid(c Color) SolidBrush {
	return SolidBrush{Color: c}
}
