// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// StickAndBall implements the stick-and-ball geometric model: pores are
// spheres and throats are cylinders. Pore diameters take a fixed fraction of
// the smallest lattice spacing; throat diameters take a fraction of the
// smaller adjacent pore diameter; throat lengths span the gap between the
// two pore surfaces.
type StickAndBall struct {
	Fp   float64 // pore diameter as fraction of the smallest spacing
	Ft   float64 // throat diameter as fraction of the smaller pore diameter
	Lmin float64 // minimum throat length to avoid overlapping pores
}

// add model to factory
func init() {
	allocators["stick_and_ball"] = func() Model { return new(StickAndBall) }
}

// Init initialises model
func (o *StickAndBall) Init(prms fun.Prms) (err error) {

	// default values
	o.Fp = 0.7
	o.Ft = 0.5
	o.Lmin = 1e-9

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Fp":
			o.Fp = p.V
		case "Ft":
			o.Ft = p.V
		case "Lmin":
			o.Lmin = p.V
		default:
			return chk.Err("stick_and_ball: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.Fp <= 0 || o.Fp >= 1 {
		return chk.Err("stick_and_ball: Fp=%g must be within (0, 1)", o.Fp)
	}
	if o.Ft <= 0 || o.Ft > 1 {
		return chk.Err("stick_and_ball: Ft=%g must be within (0, 1]", o.Ft)
	}
	return
}

// Compute computes pore and throat attributes
func (o *StickAndBall) Compute(g *Geometry) (err error) {

	// pores: spheres filling a fraction of the available void space
	net := g.Net
	smin := utl.Min(net.Spacing[0], utl.Min(net.Spacing[1], net.Spacing[2]))
	for _, p := range g.Pores {
		d := o.Fp * smin
		g.PoreDiameter[p] = d
		g.PoreVolume[p] = math.Pi * d * d * d / 6.0
	}

	// throats: cylinders spanning the gap between pore surfaces
	for _, t := range g.Throats {
		pa, pb, e := net.ConnectedPores(t)
		if e != nil {
			return e
		}
		cdist, e := net.ThroatLength(t)
		if e != nil {
			return e
		}
		da, db := g.PoreDiameter[pa], g.PoreDiameter[pb]
		d := o.Ft * utl.Min(da, db)
		l := utl.Max(cdist-(da+db)/2.0, o.Lmin)
		g.ThroatDiameter[t] = d
		g.ThroatLength[t] = l
		g.ThroatVolume[t] = math.Pi * d * d * l / 4.0
	}
	return
}
