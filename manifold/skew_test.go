// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
)

func TestSkewCrossProduct(tst *testing.T) {
	chk.PrintTitle("Skew cross product")
	v := []float64{1, 2, 3}
	S := Skew(v)
	var out mat.VecDense
	out.MulVec(S, mat.NewVecDense(3, v))
	chk.Vector(tst, "v × v == 0", 1e-15, []float64{out.AtVec(0), out.AtVec(1), out.AtVec(2)}, []float64{0, 0, 0})
}

func TestDqDRIdentity(tst *testing.T) {
	chk.PrintTitle("DqDR at identity rotation")
	R := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	J := DqDR(R)
	rows, cols := J.Dims()
	chk.IntAssert(rows, 3)
	chk.IntAssert(cols, 9)
}

// TestDqDRNearIdentity checks DqDR's values against a near-identity error
// rotation (the last factor of a three-dimensional chain's first
// iteration), catching column/sign mistakes that vanish at exact identity.
func TestDqDRNearIdentity(tst *testing.T) {
	chk.PrintTitle("DqDR near identity rotation")
	R := mat.NewDense(3, 3, []float64{
		1.0, 7.99504e-07, -7.15592e-08,
		-7.7835e-07, 1.0, -1.46825e-07,
		5.74141e-08, 1.14998e-07, 1.0,
	})
	J := DqDR(R)
	a1 := -8.18195e-09
	a2 := 4.03041e-09
	a3 := 4.93079e-08
	b := 0.25
	expected := mat.NewDense(3, 9, []float64{
		a1, 0, 0, 0, a1, b, 0, -b, a1,
		a2, 0, -b, 0, a2, 0, b, 0, a2,
		a3, b, 0, -b, a3, 0, 0, 0, a3,
	})
	for r := 0; r < 3; r++ {
		row := make([]float64, 9)
		exp := make([]float64, 9)
		for c := 0; c < 9; c++ {
			row[c] = J.At(r, c)
			exp[c] = expected.At(r, c)
		}
		chk.Vector(tst, "DqDR row", 1e-10, row, exp)
	}
}

func TestSkewBlocksDims(tst *testing.T) {
	chk.PrintTitle("SkewBlocks/SkewBlocksT dims")
	I := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	blocks := SkewBlocks(I, I)
	rows, cols := blocks.Dims()
	chk.IntAssert(rows, 9)
	chk.IntAssert(cols, 3)

	blocksT := SkewBlocksT(I, I)
	rowsT, colsT := blocksT.Dims()
	chk.IntAssert(rowsT, 9)
	chk.IntAssert(colsT, 3)
}
