// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements the factor-graph data model: vertices
// (vehicle/landmark variables), edges (factors), the fixed set, and the
// contiguous index layout the linear system builder iterates over.
package graph

import "github.com/cpmech/gosl/chk"

// Kind is the closed set of variable variants. Go has no sum types, so a
// small tagged struct with a Kind switch stands in for the pattern match
// the design calls for — the four kinds are small and share nearly all
// their fields, so a dynamic-dispatch interface hierarchy buys nothing.
type Kind int

const (
	Vehicle2D Kind = iota
	Landmark2D
	Vehicle3D
	Landmark3D
)

func (k Kind) String() string {
	switch k {
	case Vehicle2D:
		return "Vehicle2D"
	case Landmark2D:
		return "Landmark2D"
	case Vehicle3D:
		return "Vehicle3D"
	case Landmark3D:
		return "Landmark3D"
	default:
		chk.Panic("unknown variable kind %d", int(k))
		return ""
	}
}

// LocalDim is the dimensionality of the tangent space at this kind's
// current value — the number of columns it contributes to any Jacobian
// block and the length of its index range when not fixed.
func (k Kind) LocalDim() int {
	switch k {
	case Vehicle2D:
		return 3
	case Landmark2D:
		return 2
	case Vehicle3D:
		return 6
	case Landmark3D:
		return 3
	default:
		chk.Panic("unknown variable kind %d", int(k))
		return 0
	}
}

// ValueDim is the length of the stored value vector, which for Vehicle3D
// exceeds LocalDim because the rotation is stored as a 4-component unit
// quaternion rather than its 3-component tangent.
func (k Kind) ValueDim() int {
	if k == Vehicle3D {
		return 7
	}
	return k.LocalDim()
}

// Variable is a vertex in the factor graph: a stable external identifier,
// a mutable value vector, a fixed flag, and — when not fixed — a
// half-open index range into the optimization state vector assigned at
// Finalize.
type Variable struct {
	ID     int
	Kind   Kind
	Value  []float64
	Fixed  bool
	Lo, Hi int // valid iff !Fixed; Lo == Hi == -1 otherwise
}
