// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pnm implements containers and the pipeline runner for building,
// characterising and exporting pore networks
package pnm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// log levels following the usual 10/20/30/40 convention
const (
	LogDebug   = 10
	LogInfo    = 20
	LogWarning = 30
	LogError   = 40
)

// Settings holds workspace-wide options
type Settings struct {
	Loglevel int // verbosity threshold; messages below are suppressed
}

// Workspace is an explicit registry of projects. It is passed by reference
// to constructors instead of living as a process-wide singleton.
type Workspace struct {
	Settings Settings            // global settings
	projects map[string]*Project // name => project
	count    int                 // counter for automatic project names
}

// NewWorkspace returns a new, empty workspace
func NewWorkspace() (o *Workspace) {
	o = new(Workspace)
	o.Settings.Loglevel = LogWarning
	o.projects = make(map[string]*Project)
	return
}

// SetLoglevel sets the verbosity threshold; messages with severity below the
// threshold are suppressed
func (o *Workspace) SetLoglevel(level int) {
	o.Settings.Loglevel = level
	io.Verbose = level < LogWarning
}

// NewProject creates, registers and returns a new empty project.
// An empty name generates "proj_01", "proj_02", ...
func (o *Workspace) NewProject(name string) (*Project, error) {
	if name == "" {
		o.count++
		name = io.Sf("proj_%02d", o.count)
	}
	if _, ok := o.projects[name]; ok {
		return nil, chk.Err("project named %q exists already", name)
	}
	p := &Project{Name: name, ws: o}
	o.projects[name] = p
	return p, nil
}

// GetProject returns a registered project
//  Note: returns nil if not found
func (o *Workspace) GetProject(name string) *Project {
	return o.projects[name]
}

// CloseProject removes a project and everything it owns from the workspace
func (o *Workspace) CloseProject(name string) {
	delete(o.projects, name)
}

// Nprojects returns the number of registered projects
func (o *Workspace) Nprojects() int {
	return len(o.projects)
}
