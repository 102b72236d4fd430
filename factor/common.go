// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package factor implements the per-factor-type residual and analytic
// Jacobian used by the linear system builder: one pair of pure functions
// of the current variable values and the factor per edge kind, following
// the same assembly rule described in the linsys package.
package factor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/posegraph/graph"
	"github.com/cpmech/posegraph/manifold"
)

func identity3() *mat.Dense {
	I := mat.NewDense(3, 3, nil)
	I.Set(0, 0, 1)
	I.Set(1, 1, 1)
	I.Set(2, 2, 1)
	return I
}

func poseFromSlice(v []float64) manifold.Pose3 {
	return manifold.Pose3{X: v[0], Y: v[1], Z: v[2], Qx: v[3], Qy: v[4], Qz: v[5], Qw: v[6]}
}

func rotOf(p manifold.Pose3) *mat.Dense {
	return manifold.QuatToRotMat(p.Qx, p.Qy, p.Qz, p.Qw)
}

// setBlock copies src into J starting at (r0, c0).
func setBlock(J *mat.Dense, r0, c0 int, src mat.Matrix) {
	rows, cols := src.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			J.Set(r0+r, c0+c, src.At(r, c))
		}
	}
}

// Evaluate dispatches to the residual/Jacobian pair for f.Type, given the
// current values of the vertices it touches in f.Vertices order. It
// returns the residual vector and one Jacobian block per touched
// variable, each sized residual_dim x local_dim.
func Evaluate(f *graph.Factor, values [][]float64) (residual []float64, jacobians []*mat.Dense) {
	switch f.Type {
	case graph.Position2D:
		e, J := position2D(values[0], f.Constraint)
		return e, []*mat.Dense{J}
	case graph.Odometry2D:
		e, Ji, Jj := odometry2D(values[0], values[1], f.Constraint)
		return e, []*mat.Dense{Ji, Jj}
	case graph.Observation2D:
		e, Ji, Jk := observation2D(values[0], values[1], f.Constraint)
		return e, []*mat.Dense{Ji, Jk}
	case graph.Position3D:
		e, J := position3D(values[0], f.Constraint)
		return e, []*mat.Dense{J}
	case graph.Odometry3D:
		e, Ji, Jj := odometry3D(values[0], values[1], f.Constraint)
		return e, []*mat.Dense{Ji, Jj}
	case graph.Observation3D:
		e, Ji, Jk := observation3D(values[0], values[1], f.Constraint)
		return e, []*mat.Dense{Ji, Jk}
	default:
		panic("factor: unreachable factor type")
	}
}
