// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/jgostick/OpenPNM/network"
)

func Test_phase01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phase01. water defaults and overrides")

	net, err := network.NewCubic([]int{2, 2, 2}, []float64{1e-4})
	if err != nil {
		tst.Errorf("NewCubic failed:\n%v", err)
		return
	}

	water, err := New(net, "water", "water", nil)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	io.Pforan("water = %v\n", water)

	rho, err := water.Val("RhoL")
	if err != nil {
		tst.Errorf("Val failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "RhoL", 1e-17, rho, 997.0)
	mu, _ := water.Val("Mu")
	chk.Scalar(tst, "Mu", 1e-17, mu, 0.000893)

	// unknown property
	if _, err := water.Val("Cp"); err == nil {
		tst.Errorf("unknown property must fail")
		return
	}

	// scalar override at construction
	thin, err := New(net, "thin_water", "water", fun.Prms{&fun.Prm{N: "Mu", V: 0.0001}})
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	mu, _ = thin.Val("Mu")
	chk.Scalar(tst, "Mu override", 1e-17, mu, 0.0001)

	// defaults untouched
	mu, _ = water.Val("Mu")
	chk.Scalar(tst, "Mu original", 1e-17, mu, 0.000893)
}

func Test_phase02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phase02. mercury and per-throat overrides")

	net, err := network.NewCubic([]int{2, 1, 1}, []float64{1e-4})
	if err != nil {
		tst.Errorf("NewCubic failed:\n%v", err)
		return
	}

	hg, err := New(net, "mercury", "mercury", nil)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	theta, _ := hg.Val("Theta")
	chk.Scalar(tst, "Theta", 1e-17, theta, 140.0)

	// broadcast
	vals, err := hg.ThroatVals("Sig")
	if err != nil {
		tst.Errorf("ThroatVals failed:\n%v", err)
		return
	}
	chk.Vector(tst, "Sig broadcast", 1e-17, vals, []float64{0.4865})

	// per-throat override
	err = hg.SetThroats("Theta", []float64{130.0})
	if err != nil {
		tst.Errorf("SetThroats failed:\n%v", err)
		return
	}
	vals, _ = hg.ThroatVals("Theta")
	chk.Vector(tst, "Theta override", 1e-17, vals, []float64{130.0})

	// wrong length
	if err := hg.SetThroats("Theta", []float64{130.0, 120.0}); err == nil {
		tst.Errorf("wrong length must fail")
		return
	}

	// unknown model
	if _, err := New(net, "oil", "oil", nil); err == nil {
		tst.Errorf("unknown model must fail")
		return
	}
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. occupancy state copy and set")

	state0 := &State{A_snwp: 0.3, A_pc: 1000, A_Δpc: 50, A_wet: true}
	state1 := state0.GetCopy()
	chk.Scalar(tst, "snwp", 1e-17, state1.A_snwp, 0.3)
	chk.Scalar(tst, "pc", 1e-17, state1.A_pc, 1000)

	state1.A_snwp = 0.8
	chk.Scalar(tst, "snwp0 unchanged", 1e-17, state0.A_snwp, 0.3)

	var state2 State
	state2.Set(state1)
	chk.Scalar(tst, "snwp2", 1e-17, state2.A_snwp, 0.8)
	if !state2.A_wet {
		tst.Errorf("wet flag must be copied")
		return
	}
}
