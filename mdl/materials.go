// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the material property bag and the material models registry
package mdl

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/tensor"
)

// Kind defines the type of a material quantity
type Kind int

const (
	KindScalar Kind = iota
	KindVector
	KindRank2
	KindRank4
)

var kindNames = []string{"scalar", "vector", "rank-2", "rank-4"}

func (o Kind) String() string { return kindNames[o] }

// Key identifies a material quantity
type Key struct {
	Name string
	Kind Kind
}

// Keys is a list of material quantities
type Keys []Key

// ScalarKey returns a key for a scalar quantity
func ScalarKey(name string) Key { return Key{name, KindScalar} }

// VectorKey returns a key for a vector quantity
func VectorKey(name string) Key { return Key{name, KindVector} }

// Rank2Key returns a key for a second order tensor quantity
func Rank2Key(name string) Key { return Key{name, KindRank2} }

// Rank4Key returns a key for a fourth order tensor quantity
func Rank4Key(name string) Key { return Key{name, KindRank4} }

// Materials holds material quantities computed at one Gauss point
type Materials struct {
	scalars map[string]float64
	vectors map[string]tensor.Vector
	rank2   map[string]tensor.RankTwo
	rank4   map[string]tensor.RankFour
}

// NewMaterials returns an empty bag
func NewMaterials() *Materials {
	return &Materials{
		scalars: make(map[string]float64),
		vectors: make(map[string]tensor.Vector),
		rank2:   make(map[string]tensor.RankTwo),
		rank4:   make(map[string]tensor.RankFour),
	}
}

// SetScalar sets a scalar quantity
func (o *Materials) SetScalar(name string, val float64) { o.scalars[name] = val }

// SetVector sets a vector quantity
func (o *Materials) SetVector(name string, val tensor.Vector) { o.vectors[name] = val }

// SetRank2 sets a second order tensor quantity
func (o *Materials) SetRank2(name string, val tensor.RankTwo) { o.rank2[name] = val }

// SetRank4 sets a fourth order tensor quantity
func (o *Materials) SetRank4(name string, val *tensor.RankFour) { o.rank4[name] = *val }

// Scalar returns a scalar quantity. It panics if name is missing
func (o *Materials) Scalar(name string) float64 {
	val, ok := o.scalars[name]
	if !ok {
		chk.Panic("material bag has no scalar named %q", name)
	}
	return val
}

// Vector returns a vector quantity. It panics if name is missing
func (o *Materials) Vector(name string) tensor.Vector {
	val, ok := o.vectors[name]
	if !ok {
		chk.Panic("material bag has no vector named %q", name)
	}
	return val
}

// Rank2 returns a second order tensor quantity. It panics if name is missing
func (o *Materials) Rank2(name string) tensor.RankTwo {
	val, ok := o.rank2[name]
	if !ok {
		chk.Panic("material bag has no rank-2 tensor named %q", name)
	}
	return val
}

// Rank4 returns a fourth order tensor quantity. It panics if name is missing
func (o *Materials) Rank4(name string) tensor.RankFour {
	val, ok := o.rank4[name]
	if !ok {
		chk.Panic("material bag has no rank-4 tensor named %q", name)
	}
	return val
}

// Has tells whether the bag holds key
func (o *Materials) Has(key Key) (ok bool) {
	switch key.Kind {
	case KindScalar:
		_, ok = o.scalars[key.Name]
	case KindVector:
		_, ok = o.vectors[key.Name]
	case KindRank2:
		_, ok = o.rank2[key.Name]
	case KindRank4:
		_, ok = o.rank4[key.Name]
	}
	return
}

// Require returns a ConfigError listing the keys that are missing in the bag
func (o *Materials) Require(owner string, keys Keys) error {
	if missing := Missing(o.Keys(), keys); len(missing) > 0 {
		return gp.NewConfigError(owner, "material bag misses %s", missing)
	}
	return nil
}

// Keys returns all keys in the bag, sorted by name
func (o *Materials) Keys() (keys Keys) {
	for name := range o.scalars {
		keys = append(keys, ScalarKey(name))
	}
	for name := range o.vectors {
		keys = append(keys, VectorKey(name))
	}
	for name := range o.rank2 {
		keys = append(keys, Rank2Key(name))
	}
	for name := range o.rank4 {
		keys = append(keys, Rank4Key(name))
	}
	keys.sort()
	return
}

// Clone returns a deep copy of the bag
func (o *Materials) Clone() *Materials {
	p := NewMaterials()
	for k, v := range o.scalars {
		p.scalars[k] = v
	}
	for k, v := range o.vectors {
		p.vectors[k] = v
	}
	for k, v := range o.rank2 {
		p.rank2[k] = v
	}
	for k, v := range o.rank4 {
		p.rank4[k] = v
	}
	return p
}

// Missing returns the keys in required that are not in available
func Missing(available, required Keys) (missing Keys) {
	set := make(map[Key]bool, len(available))
	for _, k := range available {
		set[k] = true
	}
	for _, k := range required {
		if !set[k] {
			missing = append(missing, k)
		}
	}
	return
}

func (o Keys) sort() {
	sort.Slice(o, func(i, j int) bool {
		if o[i].Name == o[j].Name {
			return o[i].Kind < o[j].Kind
		}
		return o[i].Name < o[j].Name
	})
}

// String returns a list such as `[H (scalar), stress (rank-2)]`
func (o Keys) String() string {
	l := make([]string, len(o))
	for i, k := range o {
		l[i] = k.Name + " (" + k.Kind.String() + ")"
	}
	return "[" + strings.Join(l, ", ") + "]"
}
