// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geometry implements geometric models assigning pore and throat
// sizes, lengths and volumes to a network
package geometry

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/jgostick/OpenPNM/network"
)

// Model defines the interface for geometric models
type Model interface {
	Init(prms fun.Prms) error // initialises model with parameters
	Compute(g *Geometry) error
}

// allocators holds all available geometric models
var allocators = make(map[string]func() Model)

// GetModel allocates a new geometric model; returns nil for unknown names
func GetModel(name string) Model {
	if alloc, ok := allocators[name]; ok {
		return alloc()
	}
	return nil
}

// Geometry maps pores and throats of a network to geometric scalars.
// Arrays are indexed by pore/throat id; entries outside the selected
// pores/throats sets remain zero.
type Geometry struct {

	// input
	Name    string           // name of this geometry
	Net     *network.Network // the network (not owned)
	Pores   []int            // selected pores
	Throats []int            // selected throats

	// computed
	PoreDiameter   []float64 // [np] sphere diameter of each pore
	PoreVolume     []float64 // [np] sphere volume of each pore
	ThroatDiameter []float64 // [nt] cylinder diameter of each throat
	ThroatLength   []float64 // [nt] cylinder length of each throat
	ThroatVolume   []float64 // [nt] cylinder volume of each throat
}

// New computes a new geometry for the given pores and throats of net
//  Input:
//   net     -- the network
//   model   -- model name; e.g. "stick_and_ball"
//   prms    -- model parameters; nil => use defaults
//   pores   -- pore ids to cover; e.g. net.Ps()
//   throats -- throat ids to cover; e.g. net.Ts()
func New(net *network.Network, model string, prms fun.Prms, pores, throats []int) (o *Geometry, err error) {

	// check entities
	err = net.CheckPores(pores)
	if err != nil {
		return
	}
	err = net.CheckThroats(throats)
	if err != nil {
		return
	}

	// model
	mdl := GetModel(model)
	if mdl == nil {
		return nil, chk.Err("cannot find geometric model named %q", model)
	}
	err = mdl.Init(prms)
	if err != nil {
		return
	}

	// allocate and compute
	o = &Geometry{
		Name:           model,
		Net:            net,
		Pores:          pores,
		Throats:        throats,
		PoreDiameter:   make([]float64, net.Np()),
		PoreVolume:     make([]float64, net.Np()),
		ThroatDiameter: make([]float64, net.Nt()),
		ThroatLength:   make([]float64, net.Nt()),
		ThroatVolume:   make([]float64, net.Nt()),
	}
	err = mdl.Compute(o)
	if err != nil {
		return nil, err
	}
	return
}

// String returns a summary of this geometry
func (o *Geometry) String() string {
	return io.Sf("{\"name\":%q, \"npores\":%d, \"nthroats\":%d}", o.Name, len(o.Pores), len(o.Throats))
}
