// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/posegraph/manifold"
)

// position2D is the Position2D prior: a direct measurement (tx, ty, theta)
// of a single Vehicle2D vertex. The residual rotates the translation error
// into the measurement frame and wraps the angular error.
func position2D(v, m []float64) (e []float64, J *mat.Dense) {
	thetaM := m[2]
	R := manifold.Rot2(-thetaM)
	dx, dy := v[0]-m[0], v[1]-m[1]
	var et mat.VecDense
	et.MulVec(R, mat.NewVecDense(2, []float64{dx, dy}))
	eTheta := manifold.WrapAngle(v[2] - thetaM)
	e = []float64{et.AtVec(0), et.AtVec(1), eTheta}

	J = mat.NewDense(3, 3, nil)
	setBlock(J, 0, 0, R)
	J.Set(2, 2, 1)
	return e, J
}
