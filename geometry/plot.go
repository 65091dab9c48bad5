// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotPsd plots volume-weighted pore and throat size distributions
//  args1 -- arguments for pore curve; e.g. "'b*-'"; if args1 == "", plot is skipped
//  args2 -- arguments for throat curve; if args2 == "", plot is skipped
func PlotPsd(g *Geometry, nbins int, args1, args2, label string) {

	// pores
	if args1 != "" {
		x, y := sizeHistogram(g.Pores, g.PoreDiameter, g.PoreVolume, nbins)
		plt.Plot(x, y, io.Sf("%s, label='%s_pores', clip_on=0", args1, label))
	}

	// throats
	if args2 != "" {
		x, y := sizeHistogram(g.Throats, g.ThroatDiameter, g.ThroatVolume, nbins)
		plt.Plot(x, y, io.Sf("%s, label='%s_throats', clip_on=0", args2, label))
	}
}

// PlotEnd ends plot and show figure, if show==true
func PlotEnd(show bool) {
	plt.Gll("$d$", "$V$", "")
	if show {
		plt.Show()
	}
}

// sizeHistogram bins diameters weighted by volumes; returns bin centers and weights
func sizeHistogram(ids []int, diam, vol []float64, nbins int) (x, y []float64) {
	if len(ids) == 0 || nbins < 1 {
		return
	}
	dmin, dmax := diam[ids[0]], diam[ids[0]]
	for _, i := range ids {
		dmin = utl.Min(dmin, diam[i])
		dmax = utl.Max(dmax, diam[i])
	}
	if dmax-dmin < 1e-14 {
		dmax = dmin + 1e-14
	}
	edges := utl.LinSpace(dmin, dmax, nbins+1)
	x = make([]float64, nbins)
	y = make([]float64, nbins)
	for i := 0; i < nbins; i++ {
		x[i] = (edges[i] + edges[i+1]) / 2.0
	}
	dδ := (dmax - dmin) / float64(nbins)
	for _, i := range ids {
		b := int((diam[i] - dmin) / dδ)
		if b >= nbins {
			b = nbins - 1
		}
		y[b] += vol[i]
	}
	return
}
