// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of verification cases read from (.yaml) files
package inp

import (
	_ "embed"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mpfem/shp"
	"gopkg.in/yaml.v3"
)

// FaceBc holds data of a boundary condition applied to one face
type FaceBc struct {
	Face   int       `yaml:"face"`   // local index of face
	Cond   string    `yaml:"cond"`   // name of boundary condition; e.g. "convective"
	Params []float64 `yaml:"params"` // positional parameters
	Dofs   []int     `yaml:"dofs"`   // targeted fields (1-based)
	Value  float64   `yaml:"value"`  // value passed to the integrator; e.g. pressure
}

// Case holds data of one consistency check
type Case struct {

	// element
	Name   string      `yaml:"name"`   // name of case
	Geo    string      `yaml:"geo"`    // geometry type; e.g. "qua4"
	Kernel string      `yaml:"kernel"` // element kernel; e.g. "mechanics"
	Model  string      `yaml:"model"`  // material model; e.g. "linear-elastic"
	Params []float64   `yaml:"params"` // parameters of material model
	Coords [][]float64 `yaml:"coords"` // [ndim][nverts] coordinates; nil means unit element
	Faces  []*FaceBc   `yaml:"faces"`  // boundary conditions

	// random states
	Base    []float64 `yaml:"base"`    // mean values of fields
	Amp     float64   `yaml:"amp"`     // amplitude of perturbations
	Dt      float64   `yaml:"dt"`      // time step
	Seed    int64     `yaml:"seed"`    // seed of random numbers generator
	Nstates int       `yaml:"nstates"` // number of states; each one is committed after checking

	// checker
	Step float64 `yaml:"step"` // step of central differences
	Tol  float64 `yaml:"tol"`  // tolerance on absolute or relative difference
}

// Cases holds a set of consistency checks
type Cases struct {
	Desc     string  `yaml:"desc"`     // description
	Nworkers int     `yaml:"nworkers"` // max number of concurrent checks; 0 means no limit
	Cases    []*Case `yaml:"cases"`    // all cases
}

// defaultYaml holds the built-in cases
//go:embed default.yaml
var defaultYaml []byte

// SetDefault sets default values
func (o *Case) SetDefault() {
	if o.Amp == 0 {
		o.Amp = 0.01
	}
	if o.Dt == 0 {
		o.Dt = 0.1
	}
	if o.Seed == 0 {
		o.Seed = 1234
	}
	if o.Nstates == 0 {
		o.Nstates = 1
	}
	if o.Step == 0 {
		o.Step = 1e-6
	}
	if o.Tol == 0 {
		o.Tol = 1e-6
	}
}

// Validate checks the data of a case
func (o *Case) Validate() error {
	if o.Name == "" {
		return chk.Err("name of case must be given")
	}
	if o.Kernel == "" || o.Model == "" {
		return chk.Err("case %q: kernel and model must be given", o.Name)
	}
	s, err := shp.New(o.Geo)
	if err != nil {
		return chk.Err("case %q: %v", o.Name, err)
	}
	if o.Coords != nil {
		if len(o.Coords) != s.Gndim {
			return chk.Err("case %q: coordinates of %q must be %d×%d; %d rows is invalid", o.Name, o.Geo, s.Gndim, s.Nverts, len(o.Coords))
		}
		for i, row := range o.Coords {
			if len(row) != s.Nverts {
				return chk.Err("case %q: coordinates of %q must be %d×%d; row %d has %d entries", o.Name, o.Geo, s.Gndim, s.Nverts, i, len(row))
			}
		}
	}
	for _, f := range o.Faces {
		if f.Cond == "" {
			return chk.Err("case %q: boundary condition on face %d has no name", o.Name, f.Face)
		}
	}
	if o.Amp < 0 || o.Nstates < 0 || o.Step < 0 || o.Tol < 0 {
		return chk.Err("case %q: amp, nstates, step and tol must be non-negative", o.Name)
	}
	return nil
}

// PostProcess sets defaults and validates all cases
func (o *Cases) PostProcess() error {
	if len(o.Cases) == 0 {
		return chk.Err("at least one case must be given")
	}
	names := make(map[string]bool)
	for _, c := range o.Cases {
		c.SetDefault()
		if err := c.Validate(); err != nil {
			return err
		}
		if names[c.Name] {
			return chk.Err("case %q is repeated", c.Name)
		}
		names[c.Name] = true
	}
	if o.Nworkers < 0 {
		return chk.Err("nworkers must be non-negative; %d is invalid", o.Nworkers)
	}
	return nil
}

// ParseCases parses and post-processes cases given as YAML
func ParseCases(b []byte) (o *Cases, err error) {
	o = new(Cases)
	if err = yaml.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse cases:\n%v", err)
	}
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// ReadCases reads cases from a (.yaml) file
func ReadCases(fn string) (*Cases, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read cases file %q:\n%v", fn, err)
	}
	return ParseCases(b)
}

// DefaultCases returns the built-in cases: every physics combination in 2D and 3D
func DefaultCases() *Cases {
	o, err := ParseCases(defaultYaml)
	if err != nil {
		chk.Panic("built-in cases are invalid:\n%v", err)
	}
	return o
}
