// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/network"
	"github.com/jgostick/OpenPNM/phase"
)

func buildSmall(tst *testing.T) (*geometry.Geometry, []*phase.Phase) {
	net, err := network.NewCubic([]int{2, 2, 2}, []float64{1e-4})
	if err != nil {
		tst.Fatalf("NewCubic failed:\n%v", err)
	}
	geo, err := geometry.New(net, "stick_and_ball", nil, net.Ps(), net.Ts())
	if err != nil {
		tst.Fatalf("New geometry failed:\n%v", err)
	}
	water, err := phase.New(net, "water", "water", nil)
	if err != nil {
		tst.Fatalf("New phase failed:\n%v", err)
	}
	return geo, []*phase.Phase{water}
}

func Test_export01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export01. salome script")

	geo, phases := buildSmall(tst)
	dirout := "/tmp/gopnm"

	os.Remove(dirout + "/OUT.py")
	err := Data(geo, phases, dirout, "OUT", "Salome")
	if err != nil {
		tst.Errorf("Data failed:\n%v", err)
		return
	}
	if _, err := os.Stat(dirout + "/OUT.py"); err != nil {
		tst.Errorf("OUT.py was not created:\n%v", err)
		return
	}

	// content mentions geompy and all entities
	b, err := io.ReadFile(dirout + "/OUT.py")
	if err != nil {
		tst.Errorf("cannot read OUT.py:\n%v", err)
		return
	}
	s := string(b)
	for _, want := range []string{"geomBuilder", "MakeSpherePntR", "MakeCylinderPntPntR", "8 pores, 12 throats"} {
		if !strings.Contains(s, want) {
			tst.Errorf("script misses %q", want)
			return
		}
	}
}

func Test_export02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export02. vtu file")

	geo, phases := buildSmall(tst)
	dirout := "/tmp/gopnm"

	os.Remove(dirout + "/net.vtu")
	err := Data(geo, phases, dirout, "net", "Vtk")
	if err != nil {
		tst.Errorf("Data failed:\n%v", err)
		return
	}
	b, err := io.ReadFile(dirout + "/net.vtu")
	if err != nil {
		tst.Errorf("cannot read net.vtu:\n%v", err)
		return
	}
	s := string(b)
	for _, want := range []string{"NumberOfPoints=\"8\"", "NumberOfCells=\"12\"", "pore.diameter", "throat.volume", "water.Mu"} {
		if !strings.Contains(s, want) {
			tst.Errorf("vtu misses %q", want)
			return
		}
	}
}

func Test_export03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export03. unsupported filetype")

	geo, phases := buildSmall(tst)
	dirout := "/tmp/gopnm"

	os.Remove(dirout + "/bad.stl")
	err := Data(geo, phases, dirout, "bad", "Stl")
	if err == nil {
		tst.Errorf("unsupported filetype must fail")
		return
	}
	if _, ok := err.(*FormatError); !ok {
		tst.Errorf("expected FormatError; got %v", err)
		return
	}

	// no file must be created
	if _, err := os.Stat(dirout + "/bad.stl"); err == nil {
		tst.Errorf("no output must be created for unsupported filetype")
		return
	}

	// registry lists both formats
	chk.IntAssert(len(Formats()), 2)
}
