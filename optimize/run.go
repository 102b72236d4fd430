// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optimize runs the fixed-iteration Gauss-Newton loop: build the
// normal equations, solve, retract every non-fixed variable onto its
// manifold, repeat. There is no line search, no damping, and no
// convergence check — the caller chooses the iteration count.
package optimize

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/posegraph/graph"
	"github.com/cpmech/posegraph/linsys"
	"github.com/cpmech/posegraph/manifold"
	"github.com/cpmech/posegraph/solve"
)

// Run performs iterations rounds of build-solve-retract on g. With zero
// free variables (N() == 0) or zero iterations, it is a no-op: the fixed
// set and every variable's value are left bitwise unchanged.
func Run(g *graph.Graph, iterations int) error {
	for iter := 0; iter < iterations; iter++ {
		if g.N() == 0 {
			continue
		}
		H, b := linsys.Build(g)

		var negB mat.VecDense
		negB.ScaleVec(-1, b)

		delta, err := solve.Solve(H, &negB)
		if err != nil {
			return chk.Err("iteration %d: %v", iter, err)
		}

		for i := 0; i < g.NumVertices(); i++ {
			v := g.VariableAt(i)
			if v.Fixed {
				continue
			}
			d := make([]float64, v.Hi-v.Lo)
			for k := range d {
				d[k] = delta.AtVec(v.Lo + k)
			}
			switch v.Kind {
			case graph.Vehicle2D:
				v.Value = manifold.RetractVehicle2D(v.Value, d)
			case graph.Vehicle3D:
				v.Value = manifold.RetractVehicle3D(v.Value, d)
			case graph.Landmark2D, graph.Landmark3D:
				v.Value = manifold.RetractLandmark(v.Value, d)
			default:
				chk.Panic("unknown variable kind %v", v.Kind)
			}
		}
	}
	return nil
}
