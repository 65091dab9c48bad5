// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for simple tube networks
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// TubeChain implements the analytical solution for steady conduction along a
// single chain of tubes (throats) in series:
//
//   o---=---o---=---o ... o---=---o
//  x=xa                          x=xb
//
// The effective conductance is the harmonic sum of the tube conductances and
// the rate is proportional to the end-to-end potential difference.
type TubeChain struct {

	// input
	g []float64 // conductance of each tube

	// derived
	geff float64 // effective conductance of the chain
}

// Init initialises this structure with tube data
//  prms: "d" diameter, "l" length, "mu" viscosity, "n" number of tubes
func (o *TubeChain) Init(prms fun.Prms) {
	var d, l, mu float64
	n := 1
	for _, p := range prms {
		switch p.N {
		case "d":
			d = p.V
		case "l":
			l = p.V
		case "mu":
			mu = p.V
		case "n":
			n = int(p.V)
		}
	}
	g := math.Pi * d * d * d * d / (128.0 * mu * l)
	o.g = make([]float64, n)
	for i := 0; i < n; i++ {
		o.g[i] = g
	}
	o.calcGeff()
}

// InitWithConductances initialises this structure with explicit conductances
func (o *TubeChain) InitWithConductances(g []float64) {
	o.g = g
	o.calcGeff()
}

// Geff returns the effective conductance of the chain
func (o *TubeChain) Geff() float64 {
	return o.geff
}

// Rate returns the steady rate through the chain for end potentials xa and xb
func (o *TubeChain) Rate(xa, xb float64) float64 {
	return o.geff * (xa - xb)
}

// Potential returns the potential at the i-th junction (0 => xa end)
func (o *TubeChain) Potential(i int, xa, xb float64) float64 {
	q := o.Rate(xa, xb)
	x := xa
	for j := 0; j < i; j++ {
		x -= q / o.g[j]
	}
	return x
}

// calcGeff computes the harmonic sum of conductances
func (o *TubeChain) calcGeff() {
	var sum float64
	for _, g := range o.g {
		sum += 1.0 / g
	}
	o.geff = 1.0 / sum
}

// ParallelTubes returns the effective conductance of tubes in parallel
func ParallelTubes(g []float64) (geff float64) {
	for _, gi := range g {
		geff += gi
	}
	return
}
