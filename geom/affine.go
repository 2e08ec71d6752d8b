// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import "math"

// Affine is a 2D affine transform stored as the six coefficients
// [a b c d e f] in column layout:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// This is the layout used by PDF and by most generic 2D drawing contracts.
// Conversion to a backend's own matrix layout is the backend's concern.
type Affine [6]float64

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{1, 0, 0, 1, 0, 0}
}

// Translate returns a transform that moves points by (dx, dy).
func Translate(dx, dy float64) Affine {
	return Affine{1, 0, 0, 1, dx, dy}
}

// Scale returns a transform that scales points by (sx, sy) about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a transform that rotates points by theta radians about the
// origin, counterclockwise in a y-up coordinate system.
func Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Shear returns a transform that shears points by the given factors.
func Shear(sx, sy float64) Affine {
	return Affine{1, sy, sx, 1, 0, 0}
}

// Mul returns the composition of a with b, applying b first:
//
//	a.Mul(b).Apply(p) == a.Apply(b.Apply(p))
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

// Apply transforms the point.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a[0]*p.X + a[2]*p.Y + a[4],
		Y: a[1]*p.X + a[3]*p.Y + a[5],
	}
}

// IsIdentity reports whether the transform is exactly the identity.
func (a Affine) IsIdentity() bool {
	return a == Affine{1, 0, 0, 1, 0, 0}
}
