// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jgostick/OpenPNM/export"
	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/inp"
	"github.com/jgostick/OpenPNM/network"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, fnkey := io.ArgToFilename(0, "data/salome", ".pnm", true)
	io.Pf("\n%s\n", io.ArgsTable(
		"simulation filename", "simfn", simfn,
	))

	// read simulation file
	sim := inp.ReadSim(simfn, "", false)
	if sim == nil {
		io.PfRed("cannot read simulation file\n")
		return
	}

	// build network and geometry
	net, err := network.NewCubic(sim.Net.Shape, sim.Net.Spacing)
	if err != nil {
		chk.Panic("cannot build network:\n%v", err)
	}
	geo, err := geometry.New(net, sim.Geom.Model, sim.Geom.Prms, net.Ps(), net.Ts())
	if err != nil {
		chk.Panic("cannot compute geometry:\n%v", err)
	}

	// write vtu file
	err = export.Data(geo, nil, "/tmp/gopnm", fnkey, "Vtk")
	if err != nil {
		chk.Panic("cannot export network:\n%v", err)
	}
}
