// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/network"
	"github.com/jgostick/OpenPNM/phase"
)

// axis face labels: inlet and outlet faces along x, y and z
var axisFaces = [][]string{
	{"front", "back"},
	{"left", "right"},
	{"bottom", "top"},
}

// Porosity computes the ratio of void volume (pores plus throats) to the
// bulk volume of the lattice
func Porosity(geo *geometry.Geometry) (e float64, err error) {
	var vv float64
	for _, p := range geo.Pores {
		vv += geo.PoreVolume[p]
	}
	for _, t := range geo.Throats {
		vv += geo.ThroatVolume[t]
	}
	net := geo.Net
	vb := 1.0
	for i := 0; i < 3; i++ {
		vb *= float64(net.Shape[i]) * net.Spacing[i]
	}
	if vb <= 0 {
		return 0, chk.Err("bulk volume must be positive")
	}
	return vv / vb, nil
}

// Permeability computes the absolute permeability along an axis by solving
// Stokes flow between the two faces normal to it:
//  K = Q μ L / (A Δp)
//  Input:
//   axis     -- 0, 1 or 2
//   pin,pout -- inlet and outlet pressures; pin > pout
func Permeability(geo *geometry.Geometry, ph *phase.Phase, axis int, pin, pout float64) (kxx float64, err error) {

	// check
	if axis < 0 || axis > 2 {
		return 0, chk.Err("axis must be 0, 1 or 2; got %d", axis)
	}
	if pin <= pout {
		return 0, chk.Err("pin=%g must be greater than pout=%g", pin, pout)
	}

	// solve flow
	net := geo.Net
	sf, err := NewStokesFlow(geo, ph)
	if err != nil {
		return
	}
	err = sf.SetValueBC(net.Pores(axisFaces[axis][0]), pin)
	if err != nil {
		return
	}
	err = sf.SetValueBC(net.Pores(axisFaces[axis][1]), pout)
	if err != nil {
		return
	}
	err = sf.Run()
	if err != nil {
		return
	}
	q, err := sf.Rate(net.Pores(axisFaces[axis][0]))
	if err != nil {
		return
	}

	// Darcy's law
	mu, err := ph.Val("Mu")
	if err != nil {
		return
	}
	a, l := sectionAndLength(net, axis)
	return math.Abs(q) * mu * l / (a * (pin - pout)), nil
}

// FormationFactor computes the ratio of the conductivity of the fluid to the
// effective conductivity of the fluid-filled network along an axis:
//  F = σ A ΔV / (I L)
func FormationFactor(geo *geometry.Geometry, ph *phase.Phase, axis int, vin, vout float64) (f float64, err error) {

	// check
	if axis < 0 || axis > 2 {
		return 0, chk.Err("axis must be 0, 1 or 2; got %d", axis)
	}
	if vin <= vout {
		return 0, chk.Err("vin=%g must be greater than vout=%g", vin, vout)
	}

	// solve conduction
	net := geo.Net
	om, err := NewOhmicConduction(geo, ph)
	if err != nil {
		return
	}
	err = om.SetValueBC(net.Pores(axisFaces[axis][0]), vin)
	if err != nil {
		return
	}
	err = om.SetValueBC(net.Pores(axisFaces[axis][1]), vout)
	if err != nil {
		return
	}
	err = om.Run()
	if err != nil {
		return
	}
	i, err := om.Rate(net.Pores(axisFaces[axis][0]))
	if err != nil {
		return
	}
	if math.Abs(i) < 1e-30 {
		return 0, chk.Err("no current flows; network may be disconnected")
	}

	// resistance ratio
	sig, err := ph.Val("SigmaE")
	if err != nil {
		return
	}
	a, l := sectionAndLength(net, axis)
	return sig * a * (vin - vout) / (math.Abs(i) * l), nil
}

// sectionAndLength returns the bulk cross-section area normal to axis and
// the bulk length along it
func sectionAndLength(net *network.Network, axis int) (a, l float64) {
	a = 1.0
	for i := 0; i < 3; i++ {
		if i == axis {
			l = float64(net.Shape[i]) * net.Spacing[i]
			continue
		}
		a *= float64(net.Shape[i]) * net.Spacing[i]
	}
	return
}
