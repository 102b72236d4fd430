// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestRetractVehicle2D(tst *testing.T) {
	chk.PrintTitle("RetractVehicle2D")
	v := []float64{1, 2, math.Pi - 0.1}
	delta := []float64{0.5, -0.5, 0.2}
	out := RetractVehicle2D(v, delta)
	chk.Vector(tst, "x,y", 1e-15, out[:2], []float64{1.5, 1.5})
	chk.Scalar(tst, "theta wrapped", 1e-12, out[2], WrapAngle(math.Pi-0.1+0.2))
}

func TestRetractLandmark(tst *testing.T) {
	chk.PrintTitle("RetractLandmark")
	out := RetractLandmark([]float64{1, 2, 3}, []float64{0.1, 0.2, 0.3})
	chk.Vector(tst, "landmark", 1e-15, out, []float64{1.1, 2.2, 3.3})
}

func TestRetractVehicle3DZeroDelta(tst *testing.T) {
	chk.PrintTitle("RetractVehicle3D zero delta")
	v := []float64{1, 2, 3, 0, 0, 0, 1}
	out := RetractVehicle3D(v, []float64{0, 0, 0, 0, 0, 0})
	chk.Vector(tst, "pose unchanged", 1e-12, out, v)
}

func TestRetractVehicle3DUnitQuat(tst *testing.T) {
	chk.PrintTitle("RetractVehicle3D stays unit")
	v := []float64{0, 0, 0, 0, 0, 0, 1}
	out := RetractVehicle3D(v, []float64{0.1, -0.2, 0.05, 0.01, 0.02, 0.03})
	n := math.Sqrt(out[3]*out[3] + out[4]*out[4] + out[5]*out[5] + out[6]*out[6])
	chk.Scalar(tst, "unit norm", 1e-12, n, 1)
}
