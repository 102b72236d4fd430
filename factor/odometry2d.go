// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/posegraph/manifold"
)

// odometry2D is the Odometry2D edge between two Vehicle2D vertices i and j:
// a measured relative pose (tx, ty, theta) expected to explain vj in vi's
// frame. Jacobians follow the standard relative-pose-2D forms, with
// R(-theta_m) folded into R(-(theta_i+theta_m)) on the left.
func odometry2D(vi, vj, m []float64) (e []float64, Ai, Bj *mat.Dense) {
	thetaI, thetaJ, thetaM := vi[2], vj[2], m[2]
	dx, dy := vj[0]-vi[0], vj[1]-vi[1]

	Ri := manifold.Rot2(-thetaI)
	var p mat.VecDense
	p.MulVec(Ri, mat.NewVecDense(2, []float64{dx, dy}))

	Rm := manifold.Rot2(-thetaM)
	var et mat.VecDense
	et.MulVec(Rm, mat.NewVecDense(2, []float64{p.AtVec(0) - m[0], p.AtVec(1) - m[1]}))
	eTheta := manifold.WrapAngle(thetaJ - thetaI - thetaM)
	e = []float64{et.AtVec(0), et.AtVec(1), eTheta}

	// Rcomb = R(-theta_m)*R(-theta_i) = R(-(theta_i+theta_m))
	Rcomb := manifold.Rot2(-(thetaI + thetaM))
	// skew(theta)*[dx,dy] = [-dy, dx]
	var rOmegaDelta mat.VecDense
	rOmegaDelta.MulVec(Rcomb, mat.NewVecDense(2, []float64{-dy, dx}))

	Ai = mat.NewDense(3, 3, nil)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			Ai.Set(r, c, -Rcomb.At(r, c))
		}
	}
	Ai.Set(0, 2, -rOmegaDelta.AtVec(0))
	Ai.Set(1, 2, -rOmegaDelta.AtVec(1))
	Ai.Set(2, 2, -1)

	Bj = mat.NewDense(3, 3, nil)
	setBlock(Bj, 0, 0, Rcomb)
	Bj.Set(2, 2, 1)
	return e, Ai, Bj
}
