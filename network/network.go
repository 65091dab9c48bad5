// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package network implements pore-throat graphs for pore-network modeling
package network

import (
	"sort"

	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const (
	Ctol = 1e-10 // tolerance to compare x-y-z coordinates
	Ndiv = 20    // bins n-division
)

// ShapeError indicates an invalid lattice shape
type ShapeError struct {
	Shape []int // the offending shape
}

// SpacingError indicates an invalid lattice spacing
type SpacingError struct {
	Spacing []float64 // the offending spacing
}

// EntityError indicates a reference to a pore or throat absent from a network
type EntityError struct {
	Kind string // "pore" or "throat"
	Id   int    // the offending id
}

func (e *ShapeError) Error() string {
	return io.Sf("invalid shape %v: all dimensions must be positive", e.Shape)
}

func (e *SpacingError) Error() string {
	return io.Sf("invalid spacing %v: all components must be positive", e.Spacing)
}

func (e *EntityError) Error() string {
	return io.Sf("%s # %d is not in the network", e.Kind, e.Id)
}

// Network holds a pore (node) and throat (edge) graph
//  Pore ids run from 0 to Np()-1 and throat ids from 0 to Nt()-1.
//  Conns[t] holds the two pores connected by throat t, smaller id first.
type Network struct {

	// essential
	Name    string      // name of network
	Shape   []int       // [3] number of pores along each axis
	Spacing []float64   // [3] distance between adjacent pore centers
	Coords  [][]float64 // [np][3] pore center coordinates
	Conns   [][]int     // [nt][2] pore pair of each throat

	// derived
	Labels  map[string][]int // label => sorted pore ids
	P2ts    [][]int          // [np] throats touching each pore
	porBins gm.Bins          // bins for finding pores by coordinates
}

// Np returns the number of pores
func (o *Network) Np() int {
	return len(o.Coords)
}

// Nt returns the number of throats
func (o *Network) Nt() int {
	return len(o.Conns)
}

// Ps returns the full ordered sequence of pore ids
func (o *Network) Ps() []int {
	return utl.IntRange(o.Np())
}

// Ts returns the full ordered sequence of throat ids
func (o *Network) Ts() []int {
	return utl.IntRange(o.Nt())
}

// ConnectedPores returns the two pores connected by throat t
func (o *Network) ConnectedPores(t int) (pa, pb int, err error) {
	if t < 0 || t >= o.Nt() {
		return 0, 0, &EntityError{"throat", t}
	}
	return o.Conns[t][0], o.Conns[t][1], nil
}

// FindNeighborThroats returns the throats touching pore p
func (o *Network) FindNeighborThroats(p int) (ts []int, err error) {
	if p < 0 || p >= o.Np() {
		return nil, &EntityError{"pore", p}
	}
	return o.P2ts[p], nil
}

// Pores returns the sorted pore ids carrying a label; e.g. "front", "top"
//  Note: returns nil if the label is not defined
func (o *Network) Pores(label string) []int {
	return o.Labels[label]
}

// SetLabel labels a set of pores
func (o *Network) SetLabel(label string, pores []int) {
	ids := utl.IntsClone(pores)
	sort.Ints(ids)
	o.Labels[label] = ids
}

// FindPore returns the id of the pore sitting at x; returns -1 if not found
func (o *Network) FindPore(x []float64) int {
	return o.porBins.Find(x)
}

// ThroatLength returns the center-to-center distance of the pores of throat t
func (o *Network) ThroatLength(t int) (l float64, err error) {
	pa, pb, err := o.ConnectedPores(t)
	if err != nil {
		return
	}
	a, b := o.Coords[pa], o.Coords[pb]
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	dz := b[2] - a[2]
	return dist3(dx, dy, dz), nil
}

// CheckPores returns an error if any id in pores is not a pore of this network
func (o *Network) CheckPores(pores []int) error {
	for _, p := range pores {
		if p < 0 || p >= o.Np() {
			return &EntityError{"pore", p}
		}
	}
	return nil
}

// CheckThroats returns an error if any id in throats is not a throat of this network
func (o *Network) CheckThroats(throats []int) error {
	for _, t := range throats {
		if t < 0 || t >= o.Nt() {
			return &EntityError{"throat", t}
		}
	}
	return nil
}

// String returns a summary of this network
func (o *Network) String() string {
	return io.Sf("{\"name\":%q, \"shape\":%v, \"spacing\":%v, \"npores\":%d, \"nthroats\":%d}",
		o.Name, o.Shape, o.Spacing, o.Np(), o.Nt())
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// initDerived builds pore-to-throat maps and coordinate bins
func (o *Network) initDerived() (err error) {

	// pore => throats
	o.P2ts = make([][]int, o.Np())
	for t, c := range o.Conns {
		o.P2ts[c[0]] = append(o.P2ts[c[0]], t)
		o.P2ts[c[1]] = append(o.P2ts[c[1]], t)
	}

	// bins
	xmin := []float64{o.Coords[0][0], o.Coords[0][1], o.Coords[0][2]}
	xmax := []float64{o.Coords[0][0], o.Coords[0][1], o.Coords[0][2]}
	for _, x := range o.Coords {
		for j := 0; j < 3; j++ {
			xmin[j] = utl.Min(xmin[j], x[j])
			xmax[j] = utl.Max(xmax[j], x[j])
		}
	}
	δ := Ctol * 2
	xi := []float64{xmin[0] - δ, xmin[1] - δ, xmin[2] - δ}
	xf := []float64{xmax[0] + δ, xmax[1] + δ, xmax[2] + δ}
	err = o.porBins.Init(xi, xf, Ndiv)
	if err != nil {
		return
	}
	for p, x := range o.Coords {
		err = o.porBins.Append(x, p)
		if err != nil {
			return
		}
	}
	return
}
