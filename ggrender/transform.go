// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/render/geom"
)

// toMatrix re-expresses a column-layout affine in gg's row-major matrix.
// The conversion is a pure coefficient permutation; round-tripping through
// fromMatrix is exact.
func toMatrix(t geom.Affine) gg.Matrix {
	return gg.Matrix{
		A: t[0], B: t[2], C: t[4],
		D: t[1], E: t[3], F: t[5],
	}
}

// fromMatrix is the inverse permutation of toMatrix.
func fromMatrix(m gg.Matrix) geom.Affine {
	return geom.Affine{m.A, m.D, m.B, m.E, m.C, m.F}
}
