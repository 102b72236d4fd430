// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command posegraph reads a pose graph (g2o or json), runs a fixed
// number of Gauss-Newton iterations over it, and writes the optimized
// graph back out.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/posegraph/format/g2o"
	"github.com/cpmech/posegraph/format/json"
	"github.com/cpmech/posegraph/format/model"
	"github.com/cpmech/posegraph/optimize"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	inFile := flag.String("in", "", "input graph file (.g2o or .json)")
	outFile := flag.String("out", "", "output graph file")
	iterations := flag.Int("iter", 10, "number of Gauss-Newton iterations")
	format := flag.String("format", "", "input/output format: g2o or json (default: by extension)")
	verbose := flag.Bool("v", false, "verbose progress messages")
	flag.Parse()

	if *inFile == "" || *outFile == "" {
		chk.Panic("both -in and -out are required")
	}

	inFormat := resolveFormat(*format, *inFile)
	outFormat := resolveFormat(*format, *outFile)

	if *verbose {
		io.Pf("> reading %s (%s)\n", *inFile, inFormat)
	}
	raw, err := io.ReadFile(*inFile)
	if err != nil {
		chk.Panic("cannot read %q: %v", *inFile, err)
	}

	m, err := decode(inFormat, raw)
	if err != nil {
		chk.Panic("%v", err)
	}

	g, err := model.ToGraph(m)
	if err != nil {
		chk.Panic("%v", err)
	}

	if *verbose {
		io.Pf("> optimizing: %d vertices, %d free dimensions, %d iterations\n", g.NumVertices(), g.N(), *iterations)
	}
	if err := optimize.Run(g, *iterations); err != nil {
		chk.Panic("%v", err)
	}

	out := model.FromGraph(g)
	data, err := encode(outFormat, out)
	if err != nil {
		chk.Panic("%v", err)
	}

	if err := io.WriteFileV(*outFile, data); err != nil {
		chk.Panic("cannot write %q: %v", *outFile, err)
	}
	if *verbose {
		io.PfGreen("> wrote %s\n", *outFile)
	}
}

func resolveFormat(flagVal, fname string) string {
	if flagVal != "" {
		return flagVal
	}
	ext := strings.TrimPrefix(io.FnExt(fname), ".")
	return ext
}

func decode(format string, data []byte) (*model.Model, error) {
	switch format {
	case "g2o":
		return g2o.Read(data)
	case "json":
		return json.Decode(data)
	default:
		return nil, chk.Err("unknown format %q", format)
	}
}

func encode(format string, m *model.Model) ([]byte, error) {
	switch format {
	case "g2o":
		return g2o.Write(m)
	case "json":
		return json.Encode(m)
	default:
		return nil, chk.Err("unknown format %q", format)
	}
}
