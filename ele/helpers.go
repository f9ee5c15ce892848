// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/tensor"
)

// reaction force keys
var reacforceKeys = []string{"reacforce_x", "reacforce_y", "reacforce_z"}

// SetReactions sets proj["reacforce_x|y|z"] = σ_i·∇N for all 3 directions
func SetReactions(proj gp.Projection, σ tensor.RankTwo, gradTest tensor.Vector) {
	for i := 1; i <= 3; i++ {
		proj[reacforceKeys[i-1]] = σ.IthRow(i).Dot(gradTest)
	}
}

// ErrCalcType returns the error for an unsupported calculation type
func ErrCalcType(kernel string, calc gp.CalcType) error {
	return gp.NewConfigError(kernel, "unsupported calculation type %v", calc)
}
