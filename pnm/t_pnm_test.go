// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/jgostick/OpenPNM/network"
	"github.com/jgostick/OpenPNM/phase"
)

func Test_ws01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ws01. workspace and projects")

	ws := NewWorkspace()
	chk.IntAssert(ws.Settings.Loglevel, LogWarning)
	ws.SetLoglevel(LogError)
	chk.IntAssert(ws.Settings.Loglevel, LogError)

	proj, err := ws.NewProject("")
	if err != nil {
		tst.Errorf("NewProject failed:\n%v", err)
		return
	}
	chk.String(tst, proj.Name, "proj_01")
	chk.IntAssert(ws.Nprojects(), 1)

	// duplicate names are rejected
	if _, err := ws.NewProject("proj_01"); err == nil {
		tst.Errorf("duplicate project name must fail")
		return
	}

	// lookup and close
	if ws.GetProject("proj_01") != proj {
		tst.Errorf("GetProject must return the registered project")
		return
	}
	ws.CloseProject("proj_01")
	chk.IntAssert(ws.Nprojects(), 0)
}

func Test_proj01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("proj01. project ownership rules")

	ws := NewWorkspace()
	proj, err := ws.NewProject("test")
	if err != nil {
		tst.Errorf("NewProject failed:\n%v", err)
		return
	}

	// exporting without network/geometry fails
	if err := proj.ExportData(nil, "/tmp/gopnm", "nothing", "Salome"); err == nil {
		tst.Errorf("export on empty project must fail")
		return
	}

	net, err := network.NewCubic([]int{2, 2, 2}, []float64{1e-4})
	if err != nil {
		tst.Errorf("NewCubic failed:\n%v", err)
		return
	}
	err = proj.SetNetwork(net)
	if err != nil {
		tst.Errorf("SetNetwork failed:\n%v", err)
		return
	}

	// a project owns exactly one network
	if err := proj.SetNetwork(net); err == nil {
		tst.Errorf("second SetNetwork must fail")
		return
	}

	// phases
	water, err := phase.New(net, "water", "water", nil)
	if err != nil {
		tst.Errorf("New phase failed:\n%v", err)
		return
	}
	proj.AddPhase(water)
	if proj.GetPhase("water") != water {
		tst.Errorf("GetPhase must return the registered phase")
		return
	}
	if proj.GetPhase("oil") != nil {
		tst.Errorf("GetPhase must return nil for unknown phases")
		return
	}
}

func Test_pnm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pnm01. salome export pipeline end-to-end")

	analysis := NewPNM("data/salome.pnm", "", true, chk.Verbose)
	err := analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// network was built as specified
	net := analysis.Proj.Net
	chk.IntAssert(net.Np(), 36)
	chk.IntAssert(net.Nt(), 75)

	// water phase registered
	if analysis.Proj.GetPhase("water") == nil {
		tst.Errorf("water phase must be registered")
		return
	}

	// export artifact exists
	if _, err := os.Stat(analysis.Sim.DirOut + "/OUT.py"); err != nil {
		tst.Errorf("OUT.py was not created:\n%v", err)
		return
	}
}

func Test_pnm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pnm02. flow characterisation pipeline")

	analysis := NewPNM("data/berea.pnm", "", true, chk.Verbose)
	err := analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// two phases and one vtu artifact
	chk.IntAssert(len(analysis.Proj.Phases), 2)
	if _, err := os.Stat(analysis.Sim.DirOut + "/net.vtu"); err != nil {
		tst.Errorf("net.vtu was not created:\n%v", err)
		return
	}
}
