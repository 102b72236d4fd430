// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package g2o reads and writes the g2o text format: one whitespace-
// separated record per line, blank lines and "#"-prefixed comments
// ignored, information matrices serialized diagonal-first upper
// triangle.
package g2o

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/posegraph/format/model"
)

const (
	keyVertexSE2       = "VERTEX_SE2"
	keyVertexXY        = "VERTEX_XY"
	keyVertexSE3Quat   = "VERTEX_SE3:QUAT"
	keyVertexTrackXYZ  = "VERTEX_TRACKXYZ"
	keyEdgePriorSE2    = "EDGE_PRIOR_SE2"
	keyEdgeSE2         = "EDGE_SE2"
	keyEdgeSE2XY       = "EDGE_SE2_XY"
	keyEdgeSE3Prior    = "EDGE_SE3_PRIOR"
	keyEdgeSE3Quat     = "EDGE_SE3:QUAT"
	keyEdgeSE3TrackXYZ = "EDGE_SE3_TRACKXYZ"
	keyFix             = "FIX"
	keyParamsSE3Offset = "PARAMS_SE3OFFSET"
)

// Read parses a g2o document into the intermediate model.
func Read(data []byte) (*model.Model, error) {
	m := &model.Model{}
	var fixed []int

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		key := fields[0]
		args := fields[1:]

		switch key {
		case keyVertexSE2:
			id, vals, err := parseIDAndFloats(args, 3)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Vertices = append(m.Vertices, model.Vertex{ID: id, Kind: "Vehicle2D", Value: vals})

		case keyVertexXY:
			id, vals, err := parseIDAndFloats(args, 2)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Vertices = append(m.Vertices, model.Vertex{ID: id, Kind: "Landmark2D", Value: vals})

		case keyVertexSE3Quat:
			id, vals, err := parseIDAndFloats(args, 7)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Vertices = append(m.Vertices, model.Vertex{ID: id, Kind: "Vehicle3D", Value: vals})

		case keyVertexTrackXYZ:
			id, vals, err := parseIDAndFloats(args, 3)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Vertices = append(m.Vertices, model.Vertex{ID: id, Kind: "Landmark3D", Value: vals})

		case keyEdgePriorSE2:
			id, constraint, info, err := parseUnaryEdge(args, 3, 3)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Edges = append(m.Edges, model.Edge{Type: "Position2D", Vertices: []int{id}, Constraint: constraint, Information: info})

		case keyEdgeSE2:
			i, j, constraint, info, err := parseBinaryEdge(args, 3, 3)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Edges = append(m.Edges, model.Edge{Type: "Odometry2D", Vertices: []int{i, j}, Constraint: constraint, Information: info})

		case keyEdgeSE2XY:
			i, j, constraint, info, err := parseBinaryEdge(args, 2, 2)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Edges = append(m.Edges, model.Edge{Type: "Observation2D", Vertices: []int{i, j}, Constraint: constraint, Information: info})

		case keyEdgeSE3Prior:
			id, constraint, info, err := parseUnaryEdgeWithOffset(args, 7, 6)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Edges = append(m.Edges, model.Edge{Type: "Position3D", Vertices: []int{id}, Constraint: constraint, Information: info})

		case keyEdgeSE3Quat:
			i, j, constraint, info, err := parseBinaryEdge(args, 7, 6)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Edges = append(m.Edges, model.Edge{Type: "Odometry3D", Vertices: []int{i, j}, Constraint: constraint, Information: info})

		case keyEdgeSE3TrackXYZ:
			i, j, constraint, info, err := parseBinaryEdgeWithOffset(args, 3, 3)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			m.Edges = append(m.Edges, model.Edge{Type: "Observation3D", Vertices: []int{i, j}, Constraint: constraint, Information: info})

		case keyFix:
			ids, err := parseInts(args)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			fixed = append(fixed, ids...)

		case keyParamsSE3Offset:
			if err := validateIdentityOffset(args); err != nil {
				return nil, lineErr(lineNo, err)
			}

		default:
			return nil, lineErr(lineNo, chk.Err("unknown record key %q", key))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, chk.Err("g2o: %v", err)
	}

	m.FixedVertices = fixed
	return m, nil
}

func lineErr(lineNo int, err error) error {
	return chk.Err("g2o line %d: %v", lineNo, err)
}

func parseIDAndFloats(args []string, n int) (id int, vals []float64, err error) {
	if len(args) != 1+n {
		return 0, nil, chk.Err("expected %d fields, got %d", 1+n, len(args))
	}
	id, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, chk.Err("bad vertex identifier %q", args[0])
	}
	vals, err = parseFloats(args[1:])
	return id, vals, err
}

func parseUnaryEdge(args []string, constraintLen, infoDim int) (id int, constraint []float64, info [][]float64, err error) {
	need := 1 + constraintLen + infoDim*(infoDim+1)/2
	if len(args) != need {
		return 0, nil, nil, chk.Err("expected %d fields, got %d", need, len(args))
	}
	id, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, nil, chk.Err("bad vertex identifier %q", args[0])
	}
	constraint, err = parseFloats(args[1 : 1+constraintLen])
	if err != nil {
		return 0, nil, nil, err
	}
	info, err = parseUpperTriangle(args[1+constraintLen:], infoDim)
	return id, constraint, info, err
}

// parseUnaryEdgeWithOffset is parseUnaryEdge for the SE3 prior record, which
// embeds an offset-vertex index between the vertex identifier and the
// constraint. Only the identity offset (0) is supported.
func parseUnaryEdgeWithOffset(args []string, constraintLen, infoDim int) (id int, constraint []float64, info [][]float64, err error) {
	need := 2 + constraintLen + infoDim*(infoDim+1)/2
	if len(args) != need {
		return 0, nil, nil, chk.Err("expected %d fields, got %d", need, len(args))
	}
	id, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, nil, chk.Err("bad vertex identifier %q", args[0])
	}
	if err := parseOffsetIndex(args[1]); err != nil {
		return 0, nil, nil, err
	}
	constraint, err = parseFloats(args[2 : 2+constraintLen])
	if err != nil {
		return 0, nil, nil, err
	}
	info, err = parseUpperTriangle(args[2+constraintLen:], infoDim)
	return id, constraint, info, err
}

// parseBinaryEdgeWithOffset is parseBinaryEdge for the SE3 track-XYZ record,
// which embeds an offset-vertex index after the two vertex identifiers.
// Only the identity offset (0) is supported.
func parseBinaryEdgeWithOffset(args []string, constraintLen, infoDim int) (i, j int, constraint []float64, info [][]float64, err error) {
	need := 3 + constraintLen + infoDim*(infoDim+1)/2
	if len(args) != need {
		return 0, 0, nil, nil, chk.Err("expected %d fields, got %d", need, len(args))
	}
	i, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, nil, nil, chk.Err("bad vertex identifier %q", args[0])
	}
	j, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, nil, nil, chk.Err("bad vertex identifier %q", args[1])
	}
	if err := parseOffsetIndex(args[2]); err != nil {
		return 0, 0, nil, nil, err
	}
	constraint, err = parseFloats(args[3 : 3+constraintLen])
	if err != nil {
		return 0, 0, nil, nil, err
	}
	info, err = parseUpperTriangle(args[3+constraintLen:], infoDim)
	return i, j, constraint, info, err
}

// parseOffsetIndex validates the embedded offset-vertex index carried by
// EDGE_SE3_PRIOR and EDGE_SE3_TRACKXYZ records; only index 0 (the identity
// offset declared by PARAMS_SE3OFFSET) is supported.
func parseOffsetIndex(token string) error {
	idx, err := strconv.Atoi(token)
	if err != nil {
		return chk.Err("bad offset-vertex index %q", token)
	}
	if idx != 0 {
		return chk.Err("unsupported offset-vertex index %d; only 0 is supported", idx)
	}
	return nil
}

func parseBinaryEdge(args []string, constraintLen, infoDim int) (i, j int, constraint []float64, info [][]float64, err error) {
	need := 2 + constraintLen + infoDim*(infoDim+1)/2
	if len(args) != need {
		return 0, 0, nil, nil, chk.Err("expected %d fields, got %d", need, len(args))
	}
	i, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, nil, nil, chk.Err("bad vertex identifier %q", args[0])
	}
	j, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, nil, nil, chk.Err("bad vertex identifier %q", args[1])
	}
	constraint, err = parseFloats(args[2 : 2+constraintLen])
	if err != nil {
		return 0, 0, nil, nil, err
	}
	info, err = parseUpperTriangle(args[2+constraintLen:], infoDim)
	return i, j, constraint, info, err
}

func parseFloats(tokens []string) ([]float64, error) {
	vals := make([]float64, len(tokens))
	for i, t := range tokens {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, chk.Err("bad number %q", t)
		}
		vals[i] = v
	}
	return vals, nil
}

func parseInts(tokens []string) ([]int, error) {
	vals := make([]int, len(tokens))
	for i, t := range tokens {
		v, err := strconv.Atoi(t)
		if err != nil {
			return nil, chk.Err("bad identifier %q", t)
		}
		vals[i] = v
	}
	return vals, nil
}

// parseUpperTriangle reads dim*(dim+1)/2 tokens in diagonal-first
// row-major order and expands them into a full symmetric dim x dim
// matrix.
func parseUpperTriangle(tokens []string, dim int) ([][]float64, error) {
	need := dim * (dim + 1) / 2
	if len(tokens) != need {
		return nil, chk.Err("expected %d information values, got %d", need, len(tokens))
	}
	vals, err := parseFloats(tokens)
	if err != nil {
		return nil, err
	}
	info := make([][]float64, dim)
	for i := range info {
		info[i] = make([]float64, dim)
	}
	idx := 0
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			info[i][j] = vals[idx]
			info[j][i] = vals[idx]
			idx++
		}
	}
	return info, nil
}

func formatUpperTriangle(info [][]float64) []string {
	dim := len(info)
	out := make([]string, 0, dim*(dim+1)/2)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			out = append(out, strconv.FormatFloat(info[i][j], 'g', -1, 64))
		}
	}
	return out
}

func validateIdentityOffset(args []string) error {
	if len(args) != 8 {
		return chk.Err("expected 8 fields, got %d", len(args))
	}
	vals, err := parseFloats(args[1:])
	if err != nil {
		return err
	}
	const eps = 1e-9
	identity := []float64{0, 0, 0, 0, 0, 0, 1}
	for i, want := range identity {
		if diff := vals[i] - want; diff > eps || diff < -eps {
			return chk.Err("PARAMS_SE3OFFSET must be the identity transform")
		}
	}
	return nil
}

func formatFloats(vals []float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// Write serializes the intermediate model to the g2o text format.
func Write(m *model.Model) ([]byte, error) {
	var buf bytes.Buffer
	for _, v := range m.Vertices {
		key, err := vertexKey(v.Kind)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%s %d %s\n", key, v.ID, strings.Join(formatFloats(v.Value), " "))
	}
	for _, e := range m.Edges {
		key, err := edgeKey(e.Type)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(e.Vertices))
		for i, id := range e.Vertices {
			ids[i] = strconv.Itoa(id)
		}
		if e.Type == "Position3D" || e.Type == "Observation3D" {
			ids = append(ids, "0") // embedded offset-vertex index; only the identity offset is supported
		}
		fields := append(ids, formatFloats(e.Constraint)...)
		fields = append(fields, formatUpperTriangle(e.Information)...)
		fmt.Fprintf(&buf, "%s %s\n", key, strings.Join(fields, " "))
	}
	if len(m.FixedVertices) > 0 {
		ids := make([]string, len(m.FixedVertices))
		for i, id := range m.FixedVertices {
			ids[i] = strconv.Itoa(id)
		}
		fmt.Fprintf(&buf, "%s %s\n", keyFix, strings.Join(ids, " "))
	}
	return buf.Bytes(), nil
}

func vertexKey(kind string) (string, error) {
	switch kind {
	case "Vehicle2D":
		return keyVertexSE2, nil
	case "Landmark2D":
		return keyVertexXY, nil
	case "Vehicle3D":
		return keyVertexSE3Quat, nil
	case "Landmark3D":
		return keyVertexTrackXYZ, nil
	default:
		return "", chk.Err("unknown vertex kind %q", kind)
	}
}

func edgeKey(typ string) (string, error) {
	switch typ {
	case "Position2D":
		return keyEdgePriorSE2, nil
	case "Odometry2D":
		return keyEdgeSE2, nil
	case "Observation2D":
		return keyEdgeSE2XY, nil
	case "Position3D":
		return keyEdgeSE3Prior, nil
	case "Odometry3D":
		return keyEdgeSE3Quat, nil
	case "Observation3D":
		return keyEdgeSE3TrackXYZ, nil
	default:
		return "", chk.Err("unknown factor type %q", typ)
	}
}
