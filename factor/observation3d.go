// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/posegraph/manifold"
)

// observation3D is the Observation3D edge between a Vehicle3D vertex i and
// a Landmark3D vertex k: a measured landmark position in i's frame.
func observation3D(vi, vk, m []float64) (e []float64, Ji, Jk *mat.Dense) {
	Ti := poseFromSlice(vi)
	Ri := rotOf(Ti)
	var Rit mat.Dense
	Rit.CloneFrom(Ri.T())

	d := mat.NewVecDense(3, []float64{vk[0] - vi[0], vk[1] - vi[1], vk[2] - vi[2]})
	var p mat.VecDense
	p.MulVec(&Rit, d)
	e = []float64{p.AtVec(0) - m[0], p.AtVec(1) - m[1], p.AtVec(2) - m[2]}

	pSkewT := manifold.Skew([]float64{p.AtVec(0), p.AtVec(1), p.AtVec(2)})
	pSkewT.Scale(-1, pSkewT) // skew(p)^T == -skew(p)

	Ji = mat.NewDense(3, 6, nil)
	negI := identity3()
	negI.Scale(-1, negI)
	setBlock(Ji, 0, 0, negI)
	setBlock(Ji, 0, 3, pSkewT)

	Jk = mat.NewDense(3, 3, nil)
	Jk.Copy(&Rit)
	return e, Ji, Jk
}
