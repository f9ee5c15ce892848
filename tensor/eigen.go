// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Principal returns the eigenvalues of the symmetric part of a sorted in descending order;
// i.e. λ[0] ≥ λ[1] ≥ λ[2]
func (a RankTwo) Principal() (λ [3]float64, err error) {
	s := a.Sym()
	data := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		data = append(data, s[i][:]...)
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(3, data), false); !ok {
		return λ, chk.Err("eigen decomposition failed for tensor %v", a)
	}
	vals := eig.Values(nil) // ascending
	for i := 0; i < 3; i++ {
		λ[i] = vals[2-i]
	}
	return
}
