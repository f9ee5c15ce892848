// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mpfem/gp"
)

// Model defines material models that fill the property bag of a Gauss point.
//  Note: after Init, models hold read-only parameters only; they may be shared by goroutines
type Model interface {
	Name() string                // name of model; e.g. "miehe-fracture"
	ParamNames() []string        // names of positional parameters
	Init(params []float64) error // validates and sets parameters
	Provides() Keys              // keys written to the bag

	// InitMaterialProperties returns the bag at the beginning of the analysis (the first old bag)
	InitMaterialProperties(info *gp.Info, soln *gp.Solution) (*Materials, error)

	// ComputeMaterialProperties returns the current bag given the bag of the last converged state
	ComputeMaterialProperties(info *gp.Info, soln *gp.Solution, old *Materials) (*Materials, error)
}

// allocators holds all available models
var allocators = make(map[string]func() Model)

// SetAllocator registers a model allocator. It panics on duplicated names
func SetAllocator(name string, allocator func() Model) {
	if _, ok := allocators[name]; ok {
		chk.Panic("material model named %q is already registered", name)
	}
	allocators[name] = allocator
}

// New allocates a new (uninitialised) model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, gp.NewConfigError(name, "material model is not available in [%s]", strings.Join(Names(), ", "))
	}
	return allocator(), nil
}

// Names returns the sorted names of registered models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// CheckParams checks the number of positional parameters; the last nopt names are optional
func CheckParams(owner string, params []float64, names []string, nopt int) error {
	nreq := len(names) - nopt
	if len(params) < nreq || len(params) > len(names) {
		if nopt == 0 {
			return gp.NewConfigError(owner, "%d parameters %v are required; %d were given", len(names), names, len(params))
		}
		return gp.NewConfigError(owner, "%d to %d parameters %v are required; %d were given", nreq, len(names), names, len(params))
	}
	for i, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return gp.NewConfigError(owner, "parameter %q must be finite; %g is invalid", names[i], p)
		}
	}
	return nil
}

// CheckPositive returns a ConfigError if val ≤ 0
func CheckPositive(owner, name string, val float64) error {
	if val <= 0 {
		return gp.NewConfigError(owner, "parameter %q must be positive; %g is invalid", name, val)
	}
	return nil
}

// CheckPoisson returns a ConfigError if nu is not in (-1, 0.5)
func CheckPoisson(owner string, nu float64) error {
	if nu <= -1 || nu >= 0.5 {
		return gp.NewConfigError(owner, "Poisson's coefficient must be in (-1, 0.5); %g is invalid", nu)
	}
	return nil
}

// Flag reads an optional boolean parameter (absent or 0 = false, 1 = true)
func Flag(owner, name string, params []float64, idx int) (bool, error) {
	if idx >= len(params) {
		return false, nil
	}
	switch params[idx] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, gp.NewConfigError(owner, "parameter %q must be 0 or 1; %g is invalid", name, params[idx])
}
