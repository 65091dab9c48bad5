// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys implements pore-scale physics models combining network
// topology, geometry and phase properties into per-throat quantities
package phys

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/phase"
)

// Model computes a per-throat quantity; e.g. hydraulic conductance
type Model func(geo *geometry.Geometry, ph *phase.Phase) ([]float64, error)

// allocators holds all available physics models
var allocators = make(map[string]Model)

// Get returns a physics model; returns nil for unknown names
func Get(name string) Model {
	return allocators[name]
}

// register models
func init() {
	allocators["hagen_poiseuille"] = HagenPoiseuille
	allocators["electrical"] = Electrical
	allocators["washburn"] = Washburn
}

// HagenPoiseuille computes hydraulic conductance of cylindrical throats:
//  g = π d⁴ / (128 μ L)
func HagenPoiseuille(geo *geometry.Geometry, ph *phase.Phase) (g []float64, err error) {
	muv, err := ph.ThroatVals("Mu")
	if err != nil {
		return
	}
	g = make([]float64, geo.Net.Nt())
	for _, t := range geo.Throats {
		d := geo.ThroatDiameter[t]
		l := geo.ThroatLength[t]
		if l <= 0 {
			return nil, chk.Err("throat %d has non-positive length", t)
		}
		g[t] = math.Pi * d * d * d * d / (128.0 * muv[t] * l)
	}
	return
}

// Electrical computes electrical conductance of cylindrical throats filled
// with a conducting fluid:
//  g = σ A / L,  A = π d² / 4
func Electrical(geo *geometry.Geometry, ph *phase.Phase) (g []float64, err error) {
	sig, err := ph.ThroatVals("SigmaE")
	if err != nil {
		return
	}
	g = make([]float64, geo.Net.Nt())
	for _, t := range geo.Throats {
		d := geo.ThroatDiameter[t]
		l := geo.ThroatLength[t]
		if l <= 0 {
			return nil, chk.Err("throat %d has non-positive length", t)
		}
		g[t] = sig[t] * math.Pi * d * d / (4.0 * l)
	}
	return
}

// Washburn computes the capillary entry pressure of cylindrical throats:
//  pc = -4 σ cos(θ) / d
func Washburn(geo *geometry.Geometry, ph *phase.Phase) (pc []float64, err error) {
	sig, err := ph.ThroatVals("Sig")
	if err != nil {
		return
	}
	theta, err := ph.ThroatVals("Theta")
	if err != nil {
		return
	}
	pc = make([]float64, geo.Net.Nt())
	for _, t := range geo.Throats {
		d := geo.ThroatDiameter[t]
		if d <= 0 {
			return nil, chk.Err("throat %d has non-positive diameter", t)
		}
		pc[t] = -4.0 * sig[t] * math.Cos(theta[t]*math.Pi/180.0) / d
	}
	return
}
