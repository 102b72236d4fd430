// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/posegraph/manifold"
)

// odometry3D is the Odometry3D edge between two Vehicle3D vertices i and j:
// a measured relative pose expected to explain T_i^-1 ⊗ T_j. A = T_m^-1,
// B = T_i^-1 ⊗ T_j, E = A ⊗ B is the error isometry whose translation and
// quaternion vector-part form the 6-vector residual.
func odometry3D(vi, vj, m []float64) (e []float64, Ai, Bj *mat.Dense) {
	Tm := poseFromSlice(m)
	Ti := poseFromSlice(vi)
	Tj := poseFromSlice(vj)

	A := manifold.InverseSE3(Tm)
	B := manifold.ComposeSE3(manifold.InverseSE3(Ti), Tj)
	E := manifold.ComposeSE3(A, B)

	RA := rotOf(A)
	RB := rotOf(B)
	RE := rotOf(E)

	e = []float64{E.X, E.Y, E.Z, E.Qx, E.Qy, E.Qz}

	dqdrE := manifold.DqDR(RE)

	// Ai: top-left -R_A, top-right R_A*skew(t_B)^T, bottom-right
	// dq/dR(R_E)*skewBlocksT(R_B, R_A).
	negRA := mat.NewDense(3, 3, nil)
	negRA.Scale(-1, RA)

	tBskew := manifold.Skew([]float64{B.X, B.Y, B.Z})
	var topRight mat.Dense
	topRight.Mul(RA, tBskew.T())

	var bottomRightI mat.Dense
	bottomRightI.Mul(dqdrE, manifold.SkewBlocksT(RB, RA))

	Ai = mat.NewDense(6, 6, nil)
	setBlock(Ai, 0, 0, negRA)
	setBlock(Ai, 0, 3, &topRight)
	setBlock(Ai, 3, 3, &bottomRightI)

	// Bj: top-left R_E, bottom-right dq/dR(R_E)*skewBlocks(I, R_E).
	var bottomRightJ mat.Dense
	bottomRightJ.Mul(dqdrE, manifold.SkewBlocks(identity3(), RE))

	Bj = mat.NewDense(6, 6, nil)
	setBlock(Bj, 0, 0, RE)
	setBlock(Bj, 3, 3, &bottomRightJ)
	return e, Ai, Bj
}
