// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_uniaxial01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniaxial01")

	var sol Uniaxial
	sol.Init(1000, 0.25, 0.01)
	λ, μ := sol.Lame()
	chk.Float64(tst, "λ", 1e-13, λ, 400)
	chk.Float64(tst, "μ", 1e-13, μ, 400)
	σxx, σyy, σzz := sol.Stresses()
	chk.Float64(tst, "σxx", 1e-14, σxx, 12)
	chk.Float64(tst, "σyy", 1e-14, σyy, 4)
	chk.Float64(tst, "σzz", 1e-14, σzz, 4)

	// K u = F for the imposed displacements
	K := sol.Q4Stiffness()
	F := sol.NodalForces()
	u := make([]float64, 8)
	for a, x := range []float64{0, 1, 1, 0} {
		u[a*2], u[a*2+1] = sol.Displacements(x, 0)
	}
	for i := 0; i < 8; i++ {
		Ku := 0.0
		for j := 0; j < 8; j++ {
			Ku += K[i][j] * u[j]
		}
		chk.Float64(tst, io.Sf("(Ku)%d", i), 1e-13, Ku, F[i/2][i%2])
	}

	// symmetry and rigid body translations
	for i := 0; i < 8; i++ {
		sx, sy := 0.0, 0.0
		for j := 0; j < 8; j++ {
			chk.Float64(tst, "Kij-Kji", 1e-14, K[i][j], K[j][i])
			if j%2 == 0 {
				sx += K[i][j]
			} else {
				sy += K[i][j]
			}
		}
		chk.Float64(tst, "ΣKix", 1e-13, sx, 0)
		chk.Float64(tst, "ΣKiy", 1e-13, sy, 0)
	}
	chk.Array(tst, "pressures", 1e-14, sol.Pressures(), []float64{-4, -12, -4, -12})
}
