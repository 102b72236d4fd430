// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Pose3 is a spatial rigid-body pose: translation plus a unit quaternion
// rotation, stored vector-part-first as (qx, qy, qz, qw) to match the
// variable layout used throughout this module.
type Pose3 struct {
	X, Y, Z         float64
	Qx, Qy, Qz, Qw float64
}

// NormalizeQuat renormalizes (qx, qy, qz, qw) by its Euclidean norm.
func NormalizeQuat(qx, qy, qz, qw float64) (float64, float64, float64, float64) {
	n := math.Sqrt(qx*qx + qy*qy + qz*qz + qw*qw)
	return qx / n, qy / n, qz / n, qw / n
}

func toQuat(qx, qy, qz, qw float64) quat.Number {
	return quat.Number{Real: qw, Imag: qx, Jmag: qy, Kmag: qz}
}

func fromQuat(q quat.Number) (qx, qy, qz, qw float64) {
	return q.Imag, q.Jmag, q.Kmag, q.Real
}

// QuatToRotMat converts a unit quaternion (qx, qy, qz, qw) to its 3x3
// rotation matrix.
func QuatToRotMat(qx, qy, qz, qw float64) *mat.Dense {
	xx, yy, zz := qx*qx, qy*qy, qz*qz
	xy, xz, yz := qx*qy, qx*qz, qy*qz
	wx, wy, wz := qw*qx, qw*qy, qw*qz
	return mat.NewDense(3, 3, []float64{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	})
}

// ComposeSE3 returns a ⊗ b: translation a.t + Ra*b.t, rotation qa*qb.
func ComposeSE3(a, b Pose3) Pose3 {
	Ra := QuatToRotMat(a.Qx, a.Qy, a.Qz, a.Qw)
	bt := mat.NewVecDense(3, []float64{b.X, b.Y, b.Z})
	var rt mat.VecDense
	rt.MulVec(Ra, bt)
	qa := toQuat(a.Qx, a.Qy, a.Qz, a.Qw)
	qb := toQuat(b.Qx, b.Qy, b.Qz, b.Qw)
	qx, qy, qz, qw := fromQuat(quat.Mul(qa, qb))
	qx, qy, qz, qw = NormalizeQuat(qx, qy, qz, qw)
	return Pose3{
		X: a.X + rt.AtVec(0), Y: a.Y + rt.AtVec(1), Z: a.Z + rt.AtVec(2),
		Qx: qx, Qy: qy, Qz: qz, Qw: qw,
	}
}

// InverseSE3 returns a^-1: rotation conj(qa), translation -Ra^T*a.t.
func InverseSE3(a Pose3) Pose3 {
	qx, qy, qz, qw := -a.Qx, -a.Qy, -a.Qz, a.Qw
	Rinv := QuatToRotMat(qx, qy, qz, qw)
	at := mat.NewVecDense(3, []float64{a.X, a.Y, a.Z})
	var t mat.VecDense
	t.MulVec(Rinv, at)
	return Pose3{
		X: -t.AtVec(0), Y: -t.AtVec(1), Z: -t.AtVec(2),
		Qx: qx, Qy: qy, Qz: qz, Qw: qw,
	}
}
