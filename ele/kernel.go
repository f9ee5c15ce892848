// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the element kernels registry and the Gauss point call boundary
package ele

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
)

// Kernel defines what an element kernel computes for one test/trial pair at one Gauss point.
//  Note: R has one entry per field; K has one row/column per field. Both use 1-based indices
//        and are owned (allocated and zeroed) by the caller. Rows and columns of spatial
//        dimensions beyond info.Ndim are never written
type Kernel interface {
	Name() string       // name of kernel; e.g. "mechanics"
	Ndofs(ndim int) int // number of fields per node
	Requires() mdl.Keys // material keys read by Compute
	Compute(calc gp.CalcType, info *gp.Info, ctan [3]float64, soln *gp.Solution, shp *gp.Shape,
		mate, mateOld *mdl.Materials, proj gp.Projection, K *gp.LocalK, R *gp.LocalR) error
}

// allocators holds all available kernels
var allocators = make(map[string]func() Kernel)

// SetAllocator registers a kernel allocator. It panics on duplicated names
func SetAllocator(name string, allocator func() Kernel) {
	if _, ok := allocators[name]; ok {
		chk.Panic("element kernel named %q is already registered", name)
	}
	allocators[name] = allocator
}

// New allocates a new kernel
func New(name string) (Kernel, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, gp.NewConfigError(name, "element kernel is not available in [%s]", strings.Join(Names(), ", "))
	}
	return allocator(), nil
}

// Names returns the sorted names of registered kernels
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Validate checks that model provides all keys required by kernel
func Validate(kernel Kernel, model mdl.Model) error {
	if missing := mdl.Missing(model.Provides(), kernel.Requires()); len(missing) > 0 {
		return gp.NewConfigError(kernel.Name(), "material model %q does not provide %s", model.Name(), missing)
	}
	return nil
}

// Evaluate checks the consistency of the Gauss point data and calls kernel.Compute.
// Local buffers may be sized for info.Ndim or for 3D. On error, the caller must discard R, K and proj
func Evaluate(kernel Kernel, calc gp.CalcType, info *gp.Info, ctan [3]float64, soln *gp.Solution, shp *gp.Shape,
	mate, mateOld *mdl.Materials, proj gp.Projection, K *gp.LocalK, R *gp.LocalR) error {

	name := kernel.Name()
	if info.Ndim < 1 || info.Ndim > 3 {
		return gp.NewConfigError(name, "space dimension must be 1, 2 or 3; %d is invalid", info.Ndim)
	}
	ndofs := kernel.Ndofs(info.Ndim)
	if err := soln.Check(name, ndofs, info.Ndim); err != nil {
		return err
	}
	sizeOk := func(n int) bool { return n == ndofs || n == kernel.Ndofs(3) }
	switch calc {
	case gp.Residual:
		if R == nil || !sizeOk(R.Len()) {
			return gp.NewConfigError(name, "residual buffer must have %d entries", ndofs)
		}
	case gp.Jacobian:
		if K == nil || !sizeOk(K.Len()) {
			return gp.NewConfigError(name, "jacobian buffer must be %d×%d", ndofs, ndofs)
		}
	case gp.Project:
		if proj == nil {
			return gp.NewConfigError(name, "projection map must be allocated")
		}
	}
	if mate == nil {
		return gp.NewConfigError(name, "material bag is required")
	}
	if err := mate.Require(name, kernel.Requires()); err != nil {
		return err
	}
	return kernel.Compute(calc, info, ctan, soln, shp, mate, mateOld, proj, K, R)
}
