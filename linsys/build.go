// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linsys assembles the dense normal-equation system H, b from a
// finalized graph by scatter-adding each factor's weighted Jacobian
// contribution, the same assembly-map pattern used by a finite-element
// stiffness matrix: walk every element (factor), compute its local
// tangent block, and add it into the global matrix at the rows/columns
// given by its touched degrees of freedom. Contributions that touch a
// fixed variable are dropped rather than assembled.
package linsys

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/posegraph/factor"
	"github.com/cpmech/posegraph/graph"
)

// Build returns the Gauss-Newton normal-equation system for one
// linearization of g: a dense symmetric H = Σ JᵀΩJ and a vector
// b = Σ JᵀΩe, summed over every factor and restricted to the non-fixed
// variables' index ranges. The optimizer solves H·Δx = -b.
func Build(g *graph.Graph) (*mat.SymDense, *mat.VecDense) {
	n := g.N()
	H := mat.NewSymDense(n, nil)
	b := mat.NewVecDense(n, nil)

	for i := 0; i < g.NumVertices(); i++ {
		for _, ref := range g.OutgoingEdges(i) {
			f := ref.Factor
			values := make([][]float64, len(f.Vertices))
			for k, vidx := range f.Vertices {
				values[k] = g.VariableAt(vidx).Value
			}
			e, jacobians := factor.Evaluate(f, values)
			omega := toDense(f.Information)

			var omegaE mat.VecDense
			omegaE.MulVec(omega, mat.NewVecDense(len(e), e))

			for a := range f.Vertices {
				varA := g.VariableAt(f.Vertices[a])
				if varA.Fixed {
					continue
				}
				Ja := jacobians[a]

				var ga mat.VecDense
				ga.MulVec(Ja.T(), &omegaE)
				addVec(b, varA.Lo, &ga)

				var JaTOmega mat.Dense
				JaTOmega.Mul(Ja.T(), omega)

				for bb := a; bb < len(f.Vertices); bb++ {
					varB := g.VariableAt(f.Vertices[bb])
					if varB.Fixed {
						continue
					}
					Jb := jacobians[bb]
					var block mat.Dense
					block.Mul(&JaTOmega, Jb)
					addBlock(H, varA.Lo, varB.Lo, &block)
				}
			}
		}
	}
	return H, b
}

func toDense(info [][]float64) *mat.Dense {
	d := len(info)
	flat := make([]float64, 0, d*d)
	for _, row := range info {
		flat = append(flat, row...)
	}
	return mat.NewDense(d, d, flat)
}

func addVec(b *mat.VecDense, lo int, delta *mat.VecDense) {
	n := delta.Len()
	for r := 0; r < n; r++ {
		b.SetVec(lo+r, b.AtVec(lo+r)+delta.AtVec(r))
	}
}

// addBlock scatter-adds a dense rows x cols block into H at (rowLo,
// colLo). Calling it once per unordered variable pair is sufficient:
// SetSym mirrors the update across the diagonal, and the transpose
// relationship between a factor's (a, b) and (b, a) blocks means the
// mirrored half is exactly the contribution the other ordering would
// have produced. A diagonal block (rowLo == colLo) is itself symmetric,
// so only its upper triangle is added; adding both halves would count
// each of its off-diagonal entries twice.
func addBlock(H *mat.SymDense, rowLo, colLo int, block mat.Matrix) {
	rows, cols := block.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rowLo == colLo && c < r {
				continue
			}
			i, j := rowLo+r, colLo+c
			H.SetSym(i, j, H.At(i, j)+block.At(r, c))
		}
	}
}
