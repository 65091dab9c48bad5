// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements fluid models carrying physical property data
// associated with a network
package phase

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/jgostick/OpenPNM/network"
)

// Model defines the interface for fluid models
type Model interface {
	GetPrms() fun.Prms // returns the default property table
}

// allocators holds all available fluid models
var allocators = make(map[string]func() Model)

// GetModel allocates a new fluid model; returns nil for unknown names
func GetModel(name string) Model {
	if alloc, ok := allocators[name]; ok {
		return alloc()
	}
	return nil
}

// Phase holds a named fluid model and its property table. Scalar properties
// are shared by all pores and throats unless overridden per-throat; the
// network topology is referenced but never modified.
type Phase struct {

	// input
	Name  string           // name of this phase; e.g. "water"
	Model string           // fluid model name; e.g. "water", "mercury"
	Net   *network.Network // the network (not owned)

	// properties
	Prms fun.Prms // property table

	// per-throat overrides
	throatVals map[string][]float64
}

// New creates a phase from a fluid model with optional property overrides
//  Input:
//   net   -- the network
//   name  -- name of this phase instance
//   model -- fluid model name; e.g. "water"
//   ovrs  -- property overrides applied on top of the model defaults; may be nil
func New(net *network.Network, name, model string, ovrs fun.Prms) (o *Phase, err error) {
	mdl := GetModel(model)
	if mdl == nil {
		return nil, chk.Err("cannot find fluid model named %q", model)
	}
	o = &Phase{
		Name:       name,
		Model:      model,
		Net:        net,
		Prms:       mdl.GetPrms(),
		throatVals: make(map[string][]float64),
	}
	for _, p := range ovrs {
		o.Set(p.N, p.V)
	}
	return
}

// Val returns the scalar value of a property; e.g. "Mu", "RhoL"
func (o *Phase) Val(name string) (v float64, err error) {
	if prm := o.Prms.Find(name); prm != nil {
		return prm.V, nil
	}
	return 0, chk.Err("phase %q has no property named %q", o.Name, name)
}

// Set sets (or adds) a scalar property
func (o *Phase) Set(name string, v float64) {
	if prm := o.Prms.Find(name); prm != nil {
		prm.V = v
		return
	}
	o.Prms = append(o.Prms, &fun.Prm{N: name, V: v})
}

// SetThroats overrides a property on all throats with per-throat values
func (o *Phase) SetThroats(name string, vals []float64) error {
	if len(vals) != o.Net.Nt() {
		return chk.Err("phase %q: need %d throat values for %q; got %d", o.Name, o.Net.Nt(), name, len(vals))
	}
	o.throatVals[name] = vals
	return nil
}

// ThroatVals returns per-throat property values: the override array if one
// was set, otherwise the scalar value broadcast over all throats
func (o *Phase) ThroatVals(name string) (vals []float64, err error) {
	if vv, ok := o.throatVals[name]; ok {
		return vv, nil
	}
	v, err := o.Val(name)
	if err != nil {
		return
	}
	vals = make([]float64, o.Net.Nt())
	for i := range vals {
		vals[i] = v
	}
	return
}

// String returns a summary of this phase
func (o *Phase) String() string {
	l := io.Sf("{\"name\":%q, \"model\":%q, \"prms\":[", o.Name, o.Model)
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{%q: %g}", p.N, p.V)
	}
	l += "] }"
	return l
}
