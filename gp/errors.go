// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// sentinels for errors.Is
var (
	ErrConfig  = errors.New("configuration error")
	ErrCompute = errors.New("computation error")
)

// ConfigError reports an inconsistent setup: unknown calculation type, missing material keys,
// wrong number of parameters, wrong buffer sizes, etc.
type ConfigError struct {
	Owner string // name of element kind, material model or boundary condition
	Msg   string
}

// NewConfigError returns a new ConfigError with a formatted message
func NewConfigError(owner, msg string, prm ...interface{}) *ConfigError {
	return &ConfigError{Owner: owner, Msg: io.Sf(msg, prm...)}
}

func (o *ConfigError) Error() string {
	return io.Sf("%v in %q: %s", ErrConfig, o.Owner, o.Msg)
}

// Is makes errors.Is(err, ErrConfig) succeed
func (o *ConfigError) Is(target error) bool { return target == ErrConfig }

// ComputeError reports a non-physical value found at a Gauss point
type ComputeError struct {
	Key   string  // offending quantity; e.g. "c" or "F"
	Value float64 // offending value (or a representative one, e.g. det(F))
	Eid   int     // element id
	Ip    int     // index of Gauss point
	Msg   string
}

// NewComputeError returns a new ComputeError tagged with the Gauss point identity
func NewComputeError(info *Info, key string, value float64, msg string, prm ...interface{}) *ComputeError {
	e := &ComputeError{Key: key, Value: value, Msg: io.Sf(msg, prm...)}
	if info != nil {
		e.Eid, e.Ip = info.Eid, info.Ip
	}
	return e
}

func (o *ComputeError) Error() string {
	return io.Sf("%v: %s = %g at element %d, ip %d: %s", ErrCompute, o.Key, o.Value, o.Eid, o.Ip, o.Msg)
}

// Is makes errors.Is(err, ErrCompute) succeed
func (o *ComputeError) Is(target error) bool { return target == ErrCompute }
