// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Skew returns the 3x3 matrix M such that M*x == v×x for any x.
func Skew(v []float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v[2], v[1],
		v[2], 0, -v[0],
		-v[1], v[0], 0,
	})
}

// DqDR returns the 3x9 linearization of the map from a rotation matrix to
// the vector part of its quaternion, using the closed form valid for
// positive trace (the small-angle regime at the linearization point after
// the previous retraction step). Reused by every 3D factor Jacobian.
//
// Columns are ordered as the column-major flattening of R: (0,0), (1,0),
// (2,0), (0,1), (1,1), (2,1), (0,2), (1,2), (2,2).
func DqDR(R mat.Matrix) *mat.Dense {
	trace := R.At(0, 0) + R.At(1, 1) + R.At(2, 2)
	sin := 0.5 * math.Sqrt(trace+1.0)
	factor := -0.03125 / (sin * sin * sin)
	a1 := (R.At(2, 1) - R.At(1, 2)) * factor
	a2 := (R.At(0, 2) - R.At(2, 0)) * factor
	a3 := (R.At(1, 0) - R.At(0, 1)) * factor
	b := 0.25 / sin

	out := mat.NewDense(3, 9, nil)
	setCol := func(col int, v0, v1, v2 float64) {
		out.Set(0, col, v0)
		out.Set(1, col, v1)
		out.Set(2, col, v2)
	}
	setCol(0, a1, a2, a3)
	setCol(1, 0, 0, b)
	setCol(2, 0, -b, 0)
	setCol(3, 0, 0, -b)
	setCol(4, a1, a2, a3)
	setCol(5, b, 0, 0)
	setCol(6, 0, b, 0)
	setCol(7, -b, 0, 0)
	setCol(8, a1, a2, a3)
	return out
}

// SkewBlocks returns the 9x3 matrix whose three stacked 3x3 blocks are
// A·skew(col_k(M)) for k = 0, 1, 2.
func SkewBlocks(M, A mat.Matrix) *mat.Dense {
	return skewBlocksImpl(M, A, false)
}

// SkewBlocksT is SkewBlocks with each stacked block transposed before the
// multiplication by A, i.e. A·skew(col_k(M))ᵀ.
func SkewBlocksT(M, A mat.Matrix) *mat.Dense {
	return skewBlocksImpl(M, A, true)
}

func skewBlocksImpl(M, A mat.Matrix, transpose bool) *mat.Dense {
	out := mat.NewDense(9, 3, nil)
	for k := 0; k < 3; k++ {
		col := []float64{M.At(0, k), M.At(1, k), M.At(2, k)}
		S := Skew(col)
		// a skew-symmetric matrix satisfies Sᵀ = -S
		if transpose {
			S.Scale(-1, S)
		}
		var block mat.Dense
		block.Mul(A, S)
		out.Slice(3*k, 3*k+3, 0, 3).(*mat.Dense).Copy(&block)
	}
	return out
}
