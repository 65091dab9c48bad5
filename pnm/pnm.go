// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"

	"github.com/jgostick/OpenPNM/alg"
	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/inp"
	"github.com/jgostick/OpenPNM/network"
	"github.com/jgostick/OpenPNM/phase"
)

// PNM holds all data for building, characterising and exporting one
// pore network from an input file
type PNM struct {
	Sim     *inp.Simulation // simulation data
	Ws      *Workspace      // the workspace
	Proj    *Project        // the project owning all objects
	Verbose bool            // show messages
}

// NewPNM returns a new PNM structure
//  Input:
//   simfilepath -- simulation (.pnm) filename including full path
//   alias       -- word to be appended to simulation key
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewPNM(simfilepath, alias string, erasePrev, verbose bool) (o *PNM) {

	// new PNM object
	o = new(PNM)
	o.Verbose = verbose

	// read input data
	o.Sim = inp.ReadSim(simfilepath, alias, erasePrev)
	if o.Sim == nil {
		chk.Panic("cannot read simulation input data")
	}

	// workspace and project
	o.Ws = NewWorkspace()
	o.Ws.SetLoglevel(o.Sim.Data.Loglevel)
	proj, err := o.Ws.NewProject(o.Sim.Key)
	if err != nil {
		chk.Panic("cannot allocate project:\n%v", err)
	}
	o.Proj = proj

	// seed random number generator; the built-in geometric models are
	// deterministic and do not consume it
	if o.Sim.Data.Seed >= 0 {
		rnd.Init(o.Sim.Data.Seed)
	}
	return
}

// Run executes the full pipeline: network, geometry, phases, flow analyses
// and exports
func (o *PNM) Run() (err error) {

	// network
	if o.Sim.Net.Kind != "cubic" {
		return chk.Err("network kind %q is not available", o.Sim.Net.Kind)
	}
	net, err := network.NewCubic(o.Sim.Net.Shape, o.Sim.Net.Spacing)
	if err != nil {
		return
	}
	err = o.Proj.SetNetwork(net)
	if err != nil {
		return
	}
	if o.Verbose {
		io.Pf("network: %v\n", net)
	}

	// geometry over all pores and throats
	geo, err := geometry.New(net, o.Sim.Geom.Model, o.Sim.Geom.Prms, net.Ps(), net.Ts())
	if err != nil {
		return
	}
	o.Proj.AddGeom(geo)

	// phases
	for _, pd := range o.Sim.Phases {
		fluid := o.Sim.Fluids.Find(pd.Fluid)
		if fluid == nil {
			return chk.Err("cannot find fluid %q in database", pd.Fluid)
		}
		ph, e := phase.New(net, pd.Name, fluid.Model, fluid.Prms)
		if e != nil {
			return e
		}
		for _, prm := range pd.Prms {
			ph.Set(prm.N, prm.V)
		}
		o.Proj.AddPhase(ph)
	}

	// flow analyses
	for _, fd := range o.Sim.Flows {
		err = o.runFlow(geo, fd)
		if err != nil {
			return
		}
	}

	// exports
	for _, ed := range o.Sim.Exports {
		var phases []*phase.Phase
		for _, name := range ed.Phases {
			ph := o.Proj.GetPhase(name)
			if ph == nil {
				return chk.Err("cannot find phase %q for export", name)
			}
			phases = append(phases, ph)
		}
		err = o.Proj.ExportData(phases, o.Sim.DirOut, ed.Filename, ed.Filetype)
		if err != nil {
			return
		}
		if o.Verbose {
			io.Pf("exported %q as %q\n", ed.Filename, ed.Filetype)
		}
	}
	return
}

// runFlow runs one flow/conduction analysis and prints its summary
func (o *PNM) runFlow(geo *geometry.Geometry, fd *inp.FlowData) (err error) {
	ph := o.Proj.GetPhase(fd.Phase)
	if ph == nil {
		return chk.Err("cannot find phase %q for %q analysis", fd.Phase, fd.Kind)
	}
	switch fd.Kind {
	case "stokes":
		kxx, e := alg.Permeability(geo, ph, fd.Axis, fd.Vin, fd.Vout)
		if e != nil {
			return e
		}
		if o.Verbose {
			io.Pf("permeability along axis %d: %v mD\n", fd.Axis, kxx/1e-15)
		}
	case "ohmic":
		f, e := alg.FormationFactor(geo, ph, fd.Axis, fd.Vin, fd.Vout)
		if e != nil {
			return e
		}
		if o.Verbose {
			io.Pf("formation factor along axis %d: %v\n", fd.Axis, f)
		}
	default:
		return chk.Err("flow kind %q is not available", fd.Kind)
	}
	return
}
