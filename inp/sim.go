// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.pnm) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	Fldfile  string `json:"fldfile"`  // fluids database file path
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/gopnm
	Loglevel int    `json:"loglevel"` // log verbosity threshold; messages below are suppressed
	Seed     int    `json:"seed"`     // random number generator seed
}

// NetData holds network generation data
type NetData struct {
	Kind    string    `json:"kind"`    // network kind; "cubic" only, for now
	Shape   []int     `json:"shape"`   // [3] number of pores along each axis
	Spacing []float64 `json:"spacing"` // [1] or [3] distance between pore centers
}

// GeomData holds geometric model data
type GeomData struct {
	Model string   `json:"model"` // geometric model name; e.g. "stick_and_ball"
	Prms  fun.Prms `json:"prms"`  // model parameters
}

// PhaseData holds one phase definition
type PhaseData struct {
	Name  string   `json:"name"`  // name of this phase instance
	Fluid string   `json:"fluid"` // fluid name in the fluids database
	Prms  fun.Prms `json:"prms"`  // property overrides
}

// FlowData holds one flow/conduction analysis definition
type FlowData struct {
	Kind  string  `json:"kind"`  // "stokes" or "ohmic"
	Phase string  `json:"phase"` // name of phase to use
	Axis  int     `json:"axis"`  // flow axis: 0, 1 or 2
	Vin   float64 `json:"vin"`   // inlet potential (pressure or voltage)
	Vout  float64 `json:"vout"`  // outlet potential
}

// ExportData holds one export definition
type ExportData struct {
	Filename string   `json:"filename"` // output filename base; e.g. "OUT"
	Filetype string   `json:"filetype"` // format tag; e.g. "Salome"
	Phases   []string `json:"phases"`   // names of phases to include
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data          `json:"data"`    // global simulation data
	Net     NetData       `json:"network"` // network generation data
	Geom    GeomData      `json:"geom"`    // geometric model data
	Phases  []*PhaseData  `json:"phases"`  // all phase definitions
	Flows   []*FlowData   `json:"flows"`   // flow analyses; may be empty
	Exports []*ExportData `json:"exports"` // export definitions

	// derived
	DirOut string    // directory to save results
	Key    string    // simulation key; e.g. mysim01.pnm => mysim01 or mysim01-alias
	Fluids *FluidsDb // fluids database
}

// ReadSim reads all simulation data from a .pnm JSON file
func ReadSim(simfilepath, alias string, erasefiles bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopnm/" + fnkey
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// read fluids database
	o.Fluids = ReadFld(dir, o.Data.Fldfile)
	if o.Fluids == nil {
		chk.Panic("ReadSim: cannot read fluids database\n")
	}

	// check phases reference known fluids
	for _, ph := range o.Phases {
		if o.Fluids.Find(ph.Fluid) == nil {
			chk.Panic("ReadSim: cannot find fluid %q in database", ph.Fluid)
		}
	}

	// results
	return &o
}

// SetDefault sets default values
func (o *Simulation) SetDefault() {
	o.Data.Loglevel = 30
	o.Data.Seed = -1
	o.Net.Kind = "cubic"
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// GetPhase returns the PhaseData corresponding to a name
//  Note: returns nil if not found
func (o *Simulation) GetPhase(name string) *PhaseData {
	for _, ph := range o.Phases {
		if ph.Name == name {
			return ph
		}
	}
	return nil
}
