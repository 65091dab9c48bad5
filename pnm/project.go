// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/jgostick/OpenPNM/export"
	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/network"
	"github.com/jgostick/OpenPNM/phase"
)

// Project owns one network and its derived geometries and phases. Geometries
// and phases reference the network but are owned by the project.
type Project struct {

	// data
	Name   string               // name of project
	Net    *network.Network     // the network
	Geoms  []*geometry.Geometry // all geometries
	Phases []*phase.Phase       // all phases

	// access
	ws *Workspace // parent workspace
}

// SetNetwork attaches the network; a project owns exactly one
func (o *Project) SetNetwork(net *network.Network) error {
	if o.Net != nil {
		return chk.Err("project %q has a network already", o.Name)
	}
	o.Net = net
	return nil
}

// AddGeom registers a geometry under this project
func (o *Project) AddGeom(geo *geometry.Geometry) {
	o.Geoms = append(o.Geoms, geo)
}

// AddPhase registers a phase under this project
func (o *Project) AddPhase(ph *phase.Phase) {
	o.Phases = append(o.Phases, ph)
}

// GetPhase returns a registered phase
//  Note: returns nil if not found
func (o *Project) GetPhase(name string) *phase.Phase {
	for _, ph := range o.Phases {
		if ph.Name == name {
			return ph
		}
	}
	return nil
}

// ExportData serializes the project's network, geometry and the given phases
// to dirout without mutating any of them
func (o *Project) ExportData(phases []*phase.Phase, dirout, fnkey, filetype string) error {
	if o.Net == nil || len(o.Geoms) == 0 {
		return chk.Err("project %q needs a network and a geometry before exporting", o.Name)
	}
	return export.Data(o.Geoms[0], phases, dirout, fnkey, filetype)
}
