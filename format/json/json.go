// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package json reads and writes the JSON serialization of the
// intermediate model: a single object with vertices, edges, and
// fixedVertices arrays, row-major full information matrices.
package json

import (
	gojson "github.com/goccy/go-json"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/posegraph/format/model"
)

// Decode parses a JSON document into the intermediate model.
func Decode(data []byte) (*model.Model, error) {
	var m model.Model
	if err := gojson.Unmarshal(data, &m); err != nil {
		return nil, chk.Err("json: %v", err)
	}
	return &m, nil
}

// Encode serializes the intermediate model as indented JSON.
func Encode(m *model.Model) ([]byte, error) {
	data, err := gojson.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, chk.Err("json: %v", err)
	}
	return data, nil
}
