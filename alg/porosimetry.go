// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/phase"
	"github.com/jgostick/OpenPNM/phys"
)

// Porosimetry simulates mercury intrusion: the non-wetting fluid invades
// from inlet pores through every throat whose Washburn entry pressure is
// below the applied pressure, without trapping of the defending fluid.
type Porosimetry struct {

	// input
	Geo *geometry.Geometry // geometry (with network)
	Ph  *phase.Phase       // intruding (non-wetting) phase
	Pe  []float64          // [nt] throat entry pressures

	// results
	Pcs   []float64      // applied pressure points
	Snwp  []float64      // intruding phase saturation at each point
	State []*phase.State // occupancy state at each point

	// inlets
	inlets []int
}

// NewPorosimetry allocates a porosimetry algorithm
func NewPorosimetry(geo *geometry.Geometry, ph *phase.Phase) (o *Porosimetry, err error) {
	pe, err := phys.Get("washburn")(geo, ph)
	if err != nil {
		return
	}
	return &Porosimetry{Geo: geo, Ph: ph, Pe: pe}, nil
}

// SetInlets defines the pores where the intruding fluid enters
func (o *Porosimetry) SetInlets(pores []int) (err error) {
	err = o.Geo.Net.CheckPores(pores)
	if err != nil {
		return
	}
	o.inlets = pores
	return
}

// Run computes the intrusion curve with npts pressure points spanning the
// range of entry pressures
func (o *Porosimetry) Run(npts int) (err error) {

	// check
	if len(o.inlets) == 0 {
		return chk.Err("inlet pores must be set before running porosimetry")
	}
	if npts < 2 {
		return chk.Err("at least 2 pressure points are required; got %d", npts)
	}

	// pressure range
	pmin, pmax := o.Pe[0], o.Pe[0]
	for _, p := range o.Pe {
		pmin = utl.Min(pmin, p)
		pmax = utl.Max(pmax, p)
	}

	// total void volume
	var vtot float64
	for _, p := range o.Geo.Pores {
		vtot += o.Geo.PoreVolume[p]
	}
	for _, t := range o.Geo.Throats {
		vtot += o.Geo.ThroatVolume[t]
	}
	if vtot <= 0 {
		return chk.Err("total void volume must be positive")
	}

	// invade with increasing pressure
	o.Pcs = utl.LinSpace(pmin, pmax, npts)
	o.Snwp = make([]float64, npts)
	o.State = make([]*phase.State, npts)
	pcPrev := 0.0
	for i, pc := range o.Pcs {
		vin := o.invadedVolume(pc)
		o.Snwp[i] = vin / vtot
		o.State[i] = &phase.State{
			A_snwp: o.Snwp[i],
			A_pc:   pc,
			A_Δpc:  pc - pcPrev,
			A_wet:  false,
		}
		pcPrev = pc
	}

	// saturation must not decrease with pressure
	for i := 1; i < npts; i++ {
		if o.Snwp[i] < o.Snwp[i-1] {
			return chk.Err("intrusion saturation decreased at point %d", i)
		}
	}
	return
}

// PlotIntrusionCurve plots the capillary pressure curve
func (o *Porosimetry) PlotIntrusionCurve(args, label string) {
	if o.Pcs == nil {
		return
	}
	plt.Plot(o.Pcs, o.Snwp, io.Sf("%s, label='%s', clip_on=0", args, label))
	plt.Gll("$p_c$", "$s_{nwp}$", "")
}

// invadedVolume computes the void volume reached from the inlets through
// throats with entry pressure not above pc
func (o *Porosimetry) invadedVolume(pc float64) (v float64) {

	// breadth-first invasion
	net := o.Geo.Net
	seenP := make([]bool, net.Np())
	seenT := make([]bool, net.Nt())
	front := make([]int, 0, len(o.inlets))
	for _, p := range o.inlets {
		if !seenP[p] {
			seenP[p] = true
			front = append(front, p)
		}
	}
	for len(front) > 0 {
		p := front[0]
		front = front[1:]
		for _, t := range o.Geo.Net.P2ts[p] {
			if seenT[t] || o.Pe[t] > pc {
				continue
			}
			seenT[t] = true
			pa, pb := net.Conns[t][0], net.Conns[t][1]
			q := pa
			if q == p {
				q = pb
			}
			if !seenP[q] {
				seenP[q] = true
				front = append(front, q)
			}
		}
	}

	// sum volumes
	for p, in := range seenP {
		if in {
			v += o.Geo.PoreVolume[p]
		}
	}
	for t, in := range seenT {
		if in {
			v += o.Geo.ThroatVolume[t]
		}
	}
	return
}
