// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/posegraph/manifold"
)

// position3D is the Position3D prior: a direct measurement of a single
// Vehicle3D vertex's pose. The residual is the 6-vector (translation,
// vector-part-of-quaternion) of the error isometry T_m^-1 ⊗ T_v; the
// Jacobian couples the translation block through the error rotation and
// the quaternion block through dq/dR at the linearization point.
func position3D(v, m []float64) (e []float64, J *mat.Dense) {
	Tm := poseFromSlice(m)
	Tv := poseFromSlice(v)
	Terr := manifold.ComposeSE3(manifold.InverseSE3(Tm), Tv)
	Rerr := rotOf(Terr)

	e = []float64{Terr.X, Terr.Y, Terr.Z, Terr.Qx, Terr.Qy, Terr.Qz}

	var bottomRight mat.Dense
	bottomRight.Mul(manifold.DqDR(Rerr), manifold.SkewBlocks(identity3(), Rerr))

	J = mat.NewDense(6, 6, nil)
	setBlock(J, 0, 0, Rerr)
	setBlock(J, 3, 3, &bottomRight)
	return e, J
}
