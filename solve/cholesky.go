// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve factorizes and solves the dense normal-equation system
// assembled by linsys, failing loudly rather than silently recovering
// when H is not positive definite.
package solve

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
)

// Solve computes H·x = b via a dense Cholesky factorization of the
// symmetric H. It reports an error — it does not panic — when H is not
// positive definite, since that condition reflects the input graph (an
// under-constrained or degenerate system) rather than a programming
// invariant violation.
func Solve(H *mat.SymDense, b *mat.VecDense) (x *mat.VecDense, err error) {
	var chol mat.Cholesky
	ok := chol.Factorize(H)
	if !ok {
		return nil, chk.Err("normal-equation matrix is not positive definite; the graph may be under-constrained")
	}
	x = mat.NewVecDense(b.Len(), nil)
	if err := chol.SolveVecTo(x, b); err != nil {
		return nil, chk.Err("cholesky solve failed: %v", err)
	}
	return x, nil
}
