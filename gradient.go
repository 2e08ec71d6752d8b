package render

import (
	"sort"

	"github.com/gogpu/render/geom"
)

// Gradient describes a color gradient in resolved coordinates.
// This is a sealed interface - only types in this package implement it.
//
// A gradient is a descriptor, not paint state: pass it to [Context.Gradient]
// to obtain a brush. Backends without gradient support return
// [ErrNotSupported] there.
type Gradient interface {
	// gradientMarker is an unexported method that seals this interface.
	gradientMarker()

	// Stops returns the gradient's color stops.
	Stops() []GradientStop
}

// GradientStop represents a color at a specific position in a gradient.
type GradientStop struct {
	Pos   float64 // Position along the gradient, 0.0 to 1.0
	Color Color   // Color at this position
}

// SortStops sorts the stops by position, in place, preserving the relative
// order of stops with equal positions.
func SortStops(stops []GradientStop) {
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Pos < stops[j].Pos
	})
}

// LinearGradient is a gradient between two points.
type LinearGradient struct {
	// Start is the point where the gradient begins.
	Start geom.Point
	// End is the point where the gradient ends.
	End geom.Point
	// ColorStops are the gradient stops, positions in [0, 1].
	ColorStops []GradientStop
}

// gradientMarker implements the sealed Gradient interface.
func (LinearGradient) gradientMarker() {}

// Stops returns the gradient's color stops.
func (g LinearGradient) Stops() []GradientStop { return g.ColorStops }

// RadialGradient is a gradient radiating from a center point.
type RadialGradient struct {
	// Center is the center of the gradient circle.
	Center geom.Point
	// OriginOffset shifts the gradient origin relative to the center,
	// producing an off-axis highlight. Zero keeps the origin centered.
	OriginOffset geom.Point
	// Radius is the radius of the gradient circle.
	Radius float64
	// ColorStops are the gradient stops, positions in [0, 1].
	ColorStops []GradientStop
}

// gradientMarker implements the sealed Gradient interface.
func (RadialGradient) gradientMarker() {}

// Stops returns the gradient's color stops.
func (g RadialGradient) Stops() []GradientStop { return g.ColorStops }
