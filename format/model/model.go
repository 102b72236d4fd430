// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model is the format-agnostic intermediate representation every
// reader/writer (g2o, json) converts through: a flat list of vertices, a
// flat list of edges, and the set of fixed vertex identifiers.
package model

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/posegraph/graph"
)

// Vertex is one vertex record: its external identifier, kind, and value
// vector (ValueDim components, in the same layout Graph.AddVariable
// expects).
type Vertex struct {
	ID    int       `json:"id"`
	Kind  string    `json:"type"`
	Value []float64 `json:"content"`
}

// Edge is one factor record: its type, the external identifiers of the
// vertices it touches in order, the measurement vector, and a full
// (non-triangular) information matrix.
type Edge struct {
	Type        string      `json:"type"`
	Vertices    []int       `json:"vertices"`
	Constraint  []float64   `json:"restriction"`
	Information [][]float64 `json:"informationMatrix"`
}

// Model is the whole intermediate document.
type Model struct {
	Vertices      []Vertex `json:"vertices"`
	Edges         []Edge   `json:"edges"`
	FixedVertices []int    `json:"fixedVertices"`
}

func parseKind(s string) (graph.Kind, error) {
	for _, k := range []graph.Kind{graph.Vehicle2D, graph.Landmark2D, graph.Vehicle3D, graph.Landmark3D} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, chk.Err("unknown vertex kind %q", s)
}

func parseFactorType(s string) (graph.FactorType, error) {
	types := []graph.FactorType{
		graph.Position2D, graph.Odometry2D, graph.Observation2D,
		graph.Position3D, graph.Odometry3D, graph.Observation3D,
	}
	for _, t := range types {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, chk.Err("unknown factor type %q", s)
}

// ToGraph builds and finalizes a Graph from the intermediate model.
func ToGraph(m *Model) (*graph.Graph, error) {
	g := graph.NewGraph()
	for _, v := range m.Vertices {
		kind, err := parseKind(v.Kind)
		if err != nil {
			return nil, err
		}
		if err := g.AddVariable(v.ID, kind, v.Value, false); err != nil {
			return nil, err
		}
	}
	for _, id := range m.FixedVertices {
		if err := g.MarkFixed(id); err != nil {
			return nil, err
		}
	}
	for _, e := range m.Edges {
		typ, err := parseFactorType(e.Type)
		if err != nil {
			return nil, err
		}
		if err := g.AddFactor(typ, e.Vertices, e.Constraint, e.Information); err != nil {
			return nil, err
		}
	}
	if err := g.Finalize(); err != nil {
		return nil, err
	}
	return g, nil
}

// FromGraph flattens a finalized graph back into the intermediate model,
// in vertex insertion order, with fixed identifiers sorted for a
// deterministic round trip.
func FromGraph(g *graph.Graph) *Model {
	m := &Model{}
	for i := 0; i < g.NumVertices(); i++ {
		v := g.VariableAt(i)
		m.Vertices = append(m.Vertices, Vertex{ID: v.ID, Kind: v.Kind.String(), Value: v.Value})
	}
	for i := 0; i < g.NumVertices(); i++ {
		for _, ref := range g.OutgoingEdges(i) {
			f := ref.Factor
			ext := make([]int, len(f.Vertices))
			for k, idx := range f.Vertices {
				ext[k] = g.VariableAt(idx).ID
			}
			m.Edges = append(m.Edges, Edge{
				Type:        f.Type.String(),
				Vertices:    ext,
				Constraint:  f.Constraint,
				Information: f.Information,
			})
		}
	}
	fixed := g.FixedIDs()
	for id := range fixed {
		m.FixedVertices = append(m.FixedVertices, id)
	}
	sort.Ints(m.FixedVertices)
	return m
}
