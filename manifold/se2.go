// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifold implements the rigid-body algebra used by the factor
// kit's Jacobians and by the optimizer's retraction step: composition and
// inversion of planar and spatial poses, quaternion utilities, and the
// small dense-matrix helpers (skew, dq/dR, skewBlocks) shared by every 3D
// Jacobian.
package manifold

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Pose2 is a planar rigid-body pose (x, y, theta).
type Pose2 struct {
	X, Y, Theta float64
}

// WrapAngle normalizes theta to (-pi, pi].
func WrapAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	w := math.Mod(math.Mod(theta, twoPi)+twoPi, twoPi)
	if w > math.Pi {
		w -= twoPi
	}
	return w
}

// Rot2 returns the 2x2 rotation matrix R(theta).
func Rot2(theta float64) *mat.Dense {
	s, c := math.Sin(theta), math.Cos(theta)
	return mat.NewDense(2, 2, []float64{c, -s, s, c})
}

// ComposeSE2 returns a ⊗ b.
func ComposeSE2(a, b Pose2) Pose2 {
	s, c := math.Sin(a.Theta), math.Cos(a.Theta)
	return Pose2{
		X:     a.X + c*b.X - s*b.Y,
		Y:     a.Y + s*b.X + c*b.Y,
		Theta: WrapAngle(a.Theta + b.Theta),
	}
}

// InverseSE2 returns a^-1.
func InverseSE2(a Pose2) Pose2 {
	s, c := math.Sin(a.Theta), math.Cos(a.Theta)
	return Pose2{
		X:     -c*a.X - s*a.Y,
		Y:     s*a.X - c*a.Y,
		Theta: WrapAngle(-a.Theta),
	}
}
