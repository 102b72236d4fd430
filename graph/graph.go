// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "github.com/cpmech/gosl/chk"

// pendingFactor holds a factor before Finalize resolves its external
// vertex identifiers into internal indices.
type pendingFactor struct {
	typ         FactorType
	extVertices []int
	constraint  []float64
	information [][]float64
}

// EdgeRef is one outgoing edge of a vertex: the factor payload and the
// internal index of the "other" vertex it touches (itself, for the
// single-vertex prior factors).
type EdgeRef struct {
	Factor      *Factor
	TargetIndex int
}

// Graph is a factor graph: vertices in insertion order, an adjacency list
// of outgoing edges keyed by source vertex (built once at Finalize), the
// set of fixed external identifiers, the external-to-internal identifier
// map, and the total optimization dimension N.
//
// Variables and edges are created once during parsing via AddVariable and
// AddFactor and are immutable in structure after Finalize; only variable
// Values are mutated afterwards, by the optimizer's retraction step.
type Graph struct {
	vertices  []Variable
	ext2int   map[int]int
	pending   []pendingFactor
	factors   []Factor
	adjacency [][]int // per internal index, indices into factors
	finalized bool
	n         int
}

// NewGraph returns an empty graph ready for AddVariable/AddFactor calls.
func NewGraph() *Graph {
	return &Graph{ext2int: make(map[int]int)}
}

// AddVariable appends a new vertex. id must be unique within the graph.
func (g *Graph) AddVariable(id int, kind Kind, value []float64, fixed bool) error {
	if g.finalized {
		chk.Panic("cannot add a variable to a finalized graph")
	}
	if _, exists := g.ext2int[id]; exists {
		return chk.Err("duplicate vertex identifier %d", id)
	}
	if len(value) != kind.ValueDim() {
		return chk.Err("vertex %d: %s requires %d value components, got %d", id, kind, kind.ValueDim(), len(value))
	}
	idx := len(g.vertices)
	g.ext2int[id] = idx
	g.vertices = append(g.vertices, Variable{ID: id, Kind: kind, Value: value, Fixed: fixed})
	return nil
}

// MarkFixed marks an already-added vertex as fixed.
func (g *Graph) MarkFixed(id int) error {
	if g.finalized {
		chk.Panic("cannot mark a vertex fixed on a finalized graph")
	}
	idx, ok := g.ext2int[id]
	if !ok {
		return chk.Err("cannot fix unknown vertex identifier %d", id)
	}
	g.vertices[idx].Fixed = true
	return nil
}

// AddFactor appends a new edge. Vertex identifiers are external and are
// resolved to internal indices at Finalize, which is also where an
// unknown identifier is reported.
func (g *Graph) AddFactor(typ FactorType, vertexIDs []int, constraint []float64, information [][]float64) error {
	if g.finalized {
		chk.Panic("cannot add a factor to a finalized graph")
	}
	if len(vertexIDs) != typ.Arity() {
		return chk.Err("%s factor requires %d vertices, got %d", typ, typ.Arity(), len(vertexIDs))
	}
	if len(constraint) != typ.ConstraintDim() {
		return chk.Err("%s factor requires a %d-entry constraint, got %d", typ, typ.ConstraintDim(), len(constraint))
	}
	dim := typ.ResidualDim()
	if len(information) != dim {
		return chk.Err("%s factor requires a %dx%d information matrix, got %d rows", typ, dim, dim, len(information))
	}
	for _, row := range information {
		if len(row) != dim {
			return chk.Err("%s factor requires a %dx%d information matrix, got a %d-entry row", typ, dim, dim, len(row))
		}
	}
	ids := append([]int(nil), vertexIDs...)
	g.pending = append(g.pending, pendingFactor{typ: typ, extVertices: ids, constraint: constraint, information: information})
	return nil
}

// Finalize resolves pending factors against the vertex set, validates the
// §3 invariants (known vertex identifiers, vertex-type/factor-type
// compatibility), assigns contiguous index ranges to the non-fixed
// variables in insertion order, and builds the outgoing-edge adjacency.
// It is a programming error to call Finalize twice.
func (g *Graph) Finalize() error {
	if g.finalized {
		chk.Panic("graph already finalized")
	}

	n := 0
	for i := range g.vertices {
		v := &g.vertices[i]
		if v.Fixed {
			v.Lo, v.Hi = -1, -1
			continue
		}
		dim := v.Kind.LocalDim()
		v.Lo, v.Hi = n, n+dim
		n += dim
	}

	g.factors = make([]Factor, 0, len(g.pending))
	adjacency := make([][]int, len(g.vertices))
	for _, p := range g.pending {
		internal := make([]int, len(p.extVertices))
		kinds := p.typ.VertexKinds()
		for i, extID := range p.extVertices {
			idx, ok := g.ext2int[extID]
			if !ok {
				return chk.Err("%s factor references unknown vertex identifier %d", p.typ, extID)
			}
			if g.vertices[idx].Kind != kinds[i] {
				return chk.Err("%s factor expects vertex %d to be %s, found %s", p.typ, extID, kinds[i], g.vertices[idx].Kind)
			}
			internal[i] = idx
		}
		factorIdx := len(g.factors)
		g.factors = append(g.factors, Factor{
			Type:        p.typ,
			Vertices:    internal,
			Constraint:  p.constraint,
			Information: p.information,
		})
		source := internal[0]
		adjacency[source] = append(adjacency[source], factorIdx)
	}

	g.adjacency = adjacency
	g.pending = nil
	g.n = n
	g.finalized = true
	return nil
}

// N is the total optimization dimension.
func (g *Graph) N() int { return g.n }

// NumVertices is the number of vertices in the graph.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// VariableAt returns a pointer to the vertex at internal index i, giving
// the caller exclusive access for the retraction step (or a read-only
// borrow during assembly — the graph is the single owner throughout).
func (g *Graph) VariableAt(i int) *Variable { return &g.vertices[i] }

// InternalIndex resolves an external vertex identifier, for callers (such
// as format converters) that still deal in external identifiers.
func (g *Graph) InternalIndex(id int) (int, bool) {
	idx, ok := g.ext2int[id]
	return idx, ok
}

// OutgoingEdges returns the outgoing edges of the vertex at internal index
// i: one EdgeRef per factor whose first touched vertex is i.
func (g *Graph) OutgoingEdges(i int) []EdgeRef {
	if !g.finalized {
		chk.Panic("graph not finalized")
	}
	refs := make([]EdgeRef, len(g.adjacency[i]))
	for k, factorIdx := range g.adjacency[i] {
		f := &g.factors[factorIdx]
		target := f.Vertices[0]
		if len(f.Vertices) > 1 {
			target = f.Vertices[1]
		}
		refs[k] = EdgeRef{Factor: f, TargetIndex: target}
	}
	return refs
}

// FixedIDs returns the set of external identifiers marked fixed.
func (g *Graph) FixedIDs() map[int]bool {
	out := make(map[int]bool)
	for _, v := range g.vertices {
		if v.Fixed {
			out[v.ID] = true
		}
	}
	return out
}
