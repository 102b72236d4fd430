// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsys

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/posegraph/graph"
)

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

func TestBuildDimsAndFixedExclusion(tst *testing.T) {
	chk.PrintTitle("Build excludes fixed variables")
	g := graph.NewGraph()
	if err := g.AddVariable(1, graph.Vehicle2D, []float64{0, 0, 0}, true); err != nil {
		tst.Fatal(err)
	}
	if err := g.AddVariable(2, graph.Vehicle2D, []float64{1, 0, 0}, false); err != nil {
		tst.Fatal(err)
	}
	if err := g.AddFactor(graph.Odometry2D, []int{1, 2}, []float64{1, 0, 0}, identity(3)); err != nil {
		tst.Fatal(err)
	}
	if err := g.AddFactor(graph.Position2D, []int{2}, []float64{1, 0, 0}, identity(3)); err != nil {
		tst.Fatal(err)
	}
	if err := g.Finalize(); err != nil {
		tst.Fatal(err)
	}

	H, b := Build(g)
	chk.IntAssert(g.N(), 3)
	rows, cols := H.Dims()
	chk.IntAssert(rows, 3)
	chk.IntAssert(cols, 3)
	chk.IntAssert(b.Len(), 3)

	// both factors' residuals vanish at the current values, so b should be ~0
	chk.Vector(tst, "b", 1e-9, []float64{b.AtVec(0), b.AtVec(1), b.AtVec(2)}, []float64{0, 0, 0})
}
