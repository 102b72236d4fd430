// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "github.com/cpmech/gosl/chk"

// FactorType is the closed set of six edge kinds.
type FactorType int

const (
	Position2D FactorType = iota
	Odometry2D
	Observation2D
	Position3D
	Odometry3D
	Observation3D
)

func (t FactorType) String() string {
	switch t {
	case Position2D:
		return "Position2D"
	case Odometry2D:
		return "Odometry2D"
	case Observation2D:
		return "Observation2D"
	case Position3D:
		return "Position3D"
	case Odometry3D:
		return "Odometry3D"
	case Observation3D:
		return "Observation3D"
	default:
		chk.Panic("unknown factor type %d", int(t))
		return ""
	}
}

// Arity is the number of vertices a factor of this type touches.
func (t FactorType) Arity() int {
	switch t {
	case Position2D, Position3D:
		return 1
	default:
		return 2
	}
}

// ConstraintDim is the length of the factor's stored measurement vector.
func (t FactorType) ConstraintDim() int {
	switch t {
	case Position2D, Odometry2D:
		return 3
	case Observation2D:
		return 2
	case Position3D, Odometry3D:
		return 7 // translation(3) + quaternion(4)
	case Observation3D:
		return 3
	default:
		chk.Panic("unknown factor type %d", int(t))
		return 0
	}
}

// ResidualDim is the dimension of the residual vector and of the square
// information matrix — equal to ConstraintDim except for the 3D pose
// factors, whose rotation residual lives in SO(3)'s 3-dimensional tangent
// space rather than the 4-component quaternion used to store the
// measurement.
func (t FactorType) ResidualDim() int {
	switch t {
	case Position3D, Odometry3D:
		return 6
	default:
		return t.ConstraintDim()
	}
}

// VertexKinds lists the expected kind of each vertex a factor of this type
// touches, in the order they must appear in Factor.Vertices.
func (t FactorType) VertexKinds() []Kind {
	switch t {
	case Position2D:
		return []Kind{Vehicle2D}
	case Odometry2D:
		return []Kind{Vehicle2D, Vehicle2D}
	case Observation2D:
		return []Kind{Vehicle2D, Landmark2D}
	case Position3D:
		return []Kind{Vehicle3D}
	case Odometry3D:
		return []Kind{Vehicle3D, Vehicle3D}
	case Observation3D:
		return []Kind{Vehicle3D, Landmark3D}
	default:
		chk.Panic("unknown factor type %d", int(t))
		return nil
	}
}

// Factor is an edge: its type tag, the ordered internal indices of the
// vertices it touches (populated at Finalize), the measurement vector,
// and a dense symmetric information matrix (inverse covariance).
type Factor struct {
	Type        FactorType
	Vertices    []int // internal indices, length == Type.Arity()
	Constraint  []float64
	Information [][]float64 // ResidualDim() x ResidualDim(), symmetric
}
