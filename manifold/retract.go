// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

// RetractVehicle2D applies the 3-vector increment delta = (dx, dy, dtheta)
// to the planar pose v = (x, y, theta): additive on (x, y), additive then
// wrapped on theta.
func RetractVehicle2D(v []float64, delta []float64) []float64 {
	return []float64{
		v[0] + delta[0],
		v[1] + delta[1],
		WrapAngle(v[2] + delta[2]),
	}
}

// RetractVehicle3D applies the 6-vector increment delta = (translation[3],
// tangent-rotation[3]) to the pose v = (x, y, z, qx, qy, qz, qw):
// new = old ⊗ exp(delta), where exp maps the rotation tangent through the
// quaternion (1, dx, dy, dz) renormalized.
func RetractVehicle3D(v []float64, delta []float64) []float64 {
	dqx, dqy, dqz, dqw := NormalizeQuat(delta[3], delta[4], delta[5], 1.0)
	old := Pose3{X: v[0], Y: v[1], Z: v[2], Qx: v[3], Qy: v[4], Qz: v[5], Qw: v[6]}
	step := Pose3{X: delta[0], Y: delta[1], Z: delta[2], Qx: dqx, Qy: dqy, Qz: dqz, Qw: dqw}
	next := ComposeSE3(old, step)
	return []float64{next.X, next.Y, next.Z, next.Qx, next.Qy, next.Qz, next.Qw}
}

// RetractLandmark applies a pure additive update to a landmark position.
func RetractLandmark(v []float64, delta []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] + delta[i]
	}
	return out
}
