// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package g2o

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/posegraph/format/model"
)

func sample() *model.Model {
	return &model.Model{
		Vertices: []model.Vertex{
			{ID: 1, Kind: "Vehicle2D", Value: []float64{0, 0, 0}},
			{ID: 2, Kind: "Vehicle2D", Value: []float64{1, 0, 0}},
			{ID: 3, Kind: "Landmark2D", Value: []float64{2, 2}},
		},
		Edges: []model.Edge{
			{Type: "Odometry2D", Vertices: []int{1, 2}, Constraint: []float64{1, 0, 0}, Information: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Type: "Observation2D", Vertices: []int{2, 3}, Constraint: []float64{1, 2}, Information: [][]float64{{2, 0}, {0, 2}}},
		},
		FixedVertices: []int{1},
	}
}

func TestWriteReadRoundTrip(tst *testing.T) {
	chk.PrintTitle("g2o write/read round trip")
	m := sample()
	data, err := Write(m)
	if err != nil {
		tst.Fatal(err)
	}
	out, err := Read(data)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(out.Vertices), len(m.Vertices))
	chk.IntAssert(len(out.Edges), len(m.Edges))
	chk.IntAssert(len(out.FixedVertices), 1)
	chk.IntAssert(out.FixedVertices[0], 1)
	for i, v := range out.Vertices {
		chk.Vector(tst, "vertex value", 1e-12, v.Value, m.Vertices[i].Value)
	}
	for i, e := range out.Edges {
		chk.Vector(tst, "edge constraint", 1e-12, e.Constraint, m.Edges[i].Constraint)
		for r := range e.Information {
			chk.Vector(tst, "edge information row", 1e-12, e.Information[r], m.Edges[i].Information[r])
		}
	}
}

func TestReadSkipsCommentsAndBlankLines(tst *testing.T) {
	chk.PrintTitle("comments and blank lines are skipped")
	data := []byte("# a comment\n\nVERTEX_SE2 1 0 0 0\n")
	m, err := Read(data)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(m.Vertices), 1)
}

func TestReadRejectsUnknownKey(tst *testing.T) {
	chk.PrintTitle("unknown record key is an error")
	if _, err := Read([]byte("NOT_A_KEY 1 2 3\n")); err == nil {
		tst.Fatal("expected an error for an unknown record key")
	}
}

func sample3D() *model.Model {
	return &model.Model{
		Vertices: []model.Vertex{
			{ID: 1, Kind: "Vehicle3D", Value: []float64{0, 0, 0, 0, 0, 0, 1}},
			{ID: 2, Kind: "Vehicle3D", Value: []float64{1, 0, 0, 0, 0, 0, 1}},
			{ID: 3, Kind: "Landmark3D", Value: []float64{2, 2, 2}},
		},
		Edges: []model.Edge{
			{Type: "Position3D", Vertices: []int{1}, Constraint: []float64{0, 0, 0, 0, 0, 0, 1}, Information: identity6()},
			{Type: "Odometry3D", Vertices: []int{1, 2}, Constraint: []float64{1, 0, 0, 0, 0, 0, 1}, Information: identity6()},
			{Type: "Observation3D", Vertices: []int{2, 3}, Constraint: []float64{1, 2, 2}, Information: identity3Info()},
		},
		FixedVertices: []int{1},
	}
}

func identity6() [][]float64 {
	m := make([][]float64, 6)
	for i := range m {
		m[i] = make([]float64, 6)
		m[i][i] = 1
	}
	return m
}

func identity3Info() [][]float64 {
	m := make([][]float64, 3)
	for i := range m {
		m[i] = make([]float64, 3)
		m[i][i] = 1
	}
	return m
}

func TestWriteReadRoundTrip3D(tst *testing.T) {
	chk.PrintTitle("g2o write/read round trip for SE3 prior and track-xyz edges")
	m := sample3D()
	data, err := Write(m)
	if err != nil {
		tst.Fatal(err)
	}
	out, err := Read(data)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(out.Vertices), len(m.Vertices))
	chk.IntAssert(len(out.Edges), len(m.Edges))
	for i, e := range out.Edges {
		chk.IntAssert(len(e.Vertices), len(m.Edges[i].Vertices))
		for k, v := range e.Vertices {
			chk.IntAssert(v, m.Edges[i].Vertices[k])
		}
		chk.Vector(tst, "edge constraint", 1e-12, e.Constraint, m.Edges[i].Constraint)
		for r := range e.Information {
			chk.Vector(tst, "edge information row", 1e-12, e.Information[r], m.Edges[i].Information[r])
		}
	}
}

func TestEdgeSE3PriorRejectsNonZeroOffset(tst *testing.T) {
	chk.PrintTitle("EDGE_SE3_PRIOR rejects a non-identity offset-vertex index")
	line := "EDGE_SE3_PRIOR 1 1 0 0 0 0 0 0 1 1 0 0 0 0 0 1 0 0 0 0 1 0 0 0 1 0 0 1 0 1\n"
	if _, err := Read([]byte(line)); err == nil {
		tst.Fatal("expected an error for a non-zero offset-vertex index")
	}
}

func TestEdgeSE3TrackXYZRejectsNonZeroOffset(tst *testing.T) {
	chk.PrintTitle("EDGE_SE3_TRACKXYZ rejects a non-identity offset-vertex index")
	line := "EDGE_SE3_TRACKXYZ 1 2 1 1 2 2 1 0 0 1 0 1\n"
	if _, err := Read([]byte(line)); err == nil {
		tst.Fatal("expected an error for a non-zero offset-vertex index")
	}
}

func TestParamsSE3OffsetRejectsNonIdentity(tst *testing.T) {
	chk.PrintTitle("PARAMS_SE3OFFSET must be the identity transform")
	if _, err := Read([]byte("PARAMS_SE3OFFSET 0 1 0 0 0 0 0 1\n")); err == nil {
		tst.Fatal("expected an error for a non-identity sensor offset")
	}
	if _, err := Read([]byte("PARAMS_SE3OFFSET 0 0 0 0 0 0 0 1\n")); err != nil {
		tst.Fatalf("identity offset should be accepted: %v", err)
	}
}
