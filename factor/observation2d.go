// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// observation2D is the Observation2D edge between a Vehicle2D vertex i and
// a Landmark2D vertex k: a measured landmark position (tx, ty) in i's
// frame.
func observation2D(vi, vk, m []float64) (e []float64, Ji, Jk *mat.Dense) {
	thetaI := vi[2]
	s, c := math.Sin(thetaI), math.Cos(thetaI)
	dx, dy := vk[0]-vi[0], vk[1]-vi[1]

	px := c*dx + s*dy
	py := -s*dx + c*dy
	e = []float64{px - m[0], py - m[1]}

	Ji = mat.NewDense(2, 3, []float64{
		-c, -s, -s*dx + c*dy,
		s, -c, -c*dx - s*dy,
	})
	Jk = mat.NewDense(2, 2, []float64{c, s, -s, c})
	return e, Ji, Jk
}
