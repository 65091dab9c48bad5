// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package alg implements algorithms running on pore networks such as steady
// conduction (flow, ohmic) and mercury intrusion porosimetry
package alg

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/phase"
	"github.com/jgostick/OpenPNM/phys"
)

// Conduction solves steady conduction of a scalar potential on the throat
// graph: for every internal pore the conductance-weighted sum of potential
// differences to its neighbors vanishes. Dirichlet (value) boundary
// conditions fix the potential on labeled pore sets.
type Conduction struct {

	// input
	Geo *geometry.Geometry // geometry (with network)
	Ph  *phase.Phase       // phase providing transport properties
	G   []float64          // [nt] per-throat conductance

	// results
	X []float64 // [np] potential at each pore

	// boundary conditions
	bcs map[int]float64 // pore => fixed potential
}

// newConduction allocates a conduction algorithm with conductances from a
// physics model; e.g. "hagen_poiseuille"
func newConduction(geo *geometry.Geometry, ph *phase.Phase, model string) (o *Conduction, err error) {
	mdl := phys.Get(model)
	if mdl == nil {
		return nil, chk.Err("cannot find physics model named %q", model)
	}
	g, err := mdl(geo, ph)
	if err != nil {
		return
	}
	o = &Conduction{
		Geo: geo,
		Ph:  ph,
		G:   g,
		bcs: make(map[int]float64),
	}
	return
}

// SetValueBC fixes the potential on a set of pores
func (o *Conduction) SetValueBC(pores []int, value float64) (err error) {
	err = o.Geo.Net.CheckPores(pores)
	if err != nil {
		return
	}
	for _, p := range pores {
		o.bcs[p] = value
	}
	return
}

// Run assembles and solves the linear system
func (o *Conduction) Run() (err error) {

	// check
	net := o.Geo.Net
	if len(o.bcs) == 0 {
		return chk.Err("at least one value boundary condition is required")
	}

	// equation numbers for unknown pores
	np := net.Np()
	p2eq := make([]int, np)
	n := 0
	for p := 0; p < np; p++ {
		if _, fixed := o.bcs[p]; fixed {
			p2eq[p] = -1
			continue
		}
		p2eq[p] = n
		n++
	}

	// potential vector with prescribed values
	o.X = make([]float64, np)
	for p, v := range o.bcs {
		o.X[p] = v
	}
	if n == 0 {
		return
	}

	// assemble Kb and right-hand side
	var Kb la.Triplet
	Kb.Init(n, n, 4*len(o.G)+n)
	b := make([]float64, n)
	for t, c := range net.Conns {
		g := o.G[t]
		if g == 0 {
			continue
		}
		pa, pb := c[0], c[1]
		ea, eb := p2eq[pa], p2eq[pb]
		switch {
		case ea >= 0 && eb >= 0:
			Kb.Put(ea, ea, g)
			Kb.Put(eb, eb, g)
			Kb.Put(ea, eb, -g)
			Kb.Put(eb, ea, -g)
		case ea >= 0:
			Kb.Put(ea, ea, g)
			b[ea] += g * o.X[pb]
		case eb >= 0:
			Kb.Put(eb, eb, g)
			b[eb] += g * o.X[pa]
		}
	}

	// solve
	lis := la.GetSolver("umfpack")
	defer lis.Clean()
	err = lis.InitR(&Kb, false, false, false)
	if err != nil {
		return chk.Err("cannot initialise linear solver:\n%v", err)
	}
	err = lis.Fact()
	if err != nil {
		return chk.Err("factorisation failed:\n%v", err)
	}
	x := make([]float64, n)
	err = lis.SolveR(x, b, false)
	if err != nil {
		return chk.Err("solve failed:\n%v", err)
	}

	// scatter
	for p := 0; p < np; p++ {
		if p2eq[p] >= 0 {
			o.X[p] = x[p2eq[p]]
		}
	}
	return
}

// Rate computes the net rate leaving a set of pores through throats crossing
// the set boundary. Run must be called first.
func (o *Conduction) Rate(pores []int) (q float64, err error) {
	net := o.Geo.Net
	err = net.CheckPores(pores)
	if err != nil {
		return
	}
	if o.X == nil {
		return 0, chk.Err("Run must be called before Rate")
	}
	inset := make(map[int]bool)
	for _, p := range pores {
		inset[p] = true
	}
	for t, c := range net.Conns {
		pa, pb := c[0], c[1]
		switch {
		case inset[pa] && !inset[pb]:
			q += o.G[t] * (o.X[pa] - o.X[pb])
		case inset[pb] && !inset[pa]:
			q += o.G[t] * (o.X[pb] - o.X[pa])
		}
	}
	return
}

// StokesFlow solves steady viscous flow driven by pressure differences with
// Hagen-Poiseuille throat conductances
type StokesFlow struct {
	Conduction
}

// NewStokesFlow allocates a Stokes flow algorithm
func NewStokesFlow(geo *geometry.Geometry, ph *phase.Phase) (o *StokesFlow, err error) {
	c, err := newConduction(geo, ph, "hagen_poiseuille")
	if err != nil {
		return
	}
	return &StokesFlow{*c}, nil
}

// OhmicConduction solves steady electrical conduction driven by voltage
// differences with slit electrical throat conductances
type OhmicConduction struct {
	Conduction
}

// NewOhmicConduction allocates an ohmic conduction algorithm
func NewOhmicConduction(geo *geometry.Geometry, ph *phase.Phase) (o *OhmicConduction, err error) {
	c, err := newConduction(geo, ph, "electrical")
	if err != nil {
		return
	}
	return &OhmicConduction{*c}, nil
}
