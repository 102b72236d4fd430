// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posegraph_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/posegraph/format/g2o"
	"github.com/cpmech/posegraph/format/model"
	"github.com/cpmech/posegraph/optimize"
)

func TestEndToEndChainConverges(tst *testing.T) {
	chk.PrintTitle("read g2o, optimize, check convergence")
	data, err := io.ReadFile("testdata/basic.g2o")
	if err != nil {
		tst.Fatal(err)
	}
	m, err := g2o.Read(data)
	if err != nil {
		tst.Fatal(err)
	}
	g, err := model.ToGraph(m)
	if err != nil {
		tst.Fatal(err)
	}

	chk.IntAssert(g.NumVertices(), 3)
	chk.IntAssert(g.N(), 6) // two free Vehicle2D vertices, 3 dof each

	if err := optimize.Run(g, 20); err != nil {
		tst.Fatal(err)
	}

	// the chain 0 -> 1 -> 2 with unit-step odometry plus a prior pulling
	// vertex 2 to (2,0,0) is already mutually consistent, so the solution
	// should sit at the chained values.
	v1 := g.VariableAt(1)
	chk.Vector(tst, "vertex 1", 1e-6, v1.Value, []float64{1, 0, 0})
	v2 := g.VariableAt(2)
	chk.Vector(tst, "vertex 2", 1e-6, v2.Value, []float64{2, 0, 0})

	// the fixed vertex never moves
	v0 := g.VariableAt(0)
	chk.Vector(tst, "vertex 0 (fixed)", 1e-15, v0.Value, []float64{0, 0, 0})
}
