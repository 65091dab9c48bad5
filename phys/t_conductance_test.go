// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/network"
	"github.com/jgostick/OpenPNM/phase"
)

func Test_conduct01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conduct01. hagen-poiseuille and electrical")

	net, err := network.NewCubic([]int{2, 1, 1}, []float64{1e-4})
	if err != nil {
		tst.Errorf("NewCubic failed:\n%v", err)
		return
	}
	geo, err := geometry.New(net, "stick_and_ball", nil, net.Ps(), net.Ts())
	if err != nil {
		tst.Errorf("New geometry failed:\n%v", err)
		return
	}
	water, err := phase.New(net, "water", "water", nil)
	if err != nil {
		tst.Errorf("New phase failed:\n%v", err)
		return
	}

	// defaults: d = 0.35e-4, l = 0.3e-4, μ = 0.000893
	d, l, mu := 0.35e-4, 0.3e-4, 0.000893

	g, err := Get("hagen_poiseuille")(geo, water)
	if err != nil {
		tst.Errorf("HagenPoiseuille failed:\n%v", err)
		return
	}
	chk.IntAssert(len(g), 1)
	chk.Scalar(tst, "g_h", 1e-22, g[0], math.Pi*math.Pow(d, 4)/(128.0*mu*l))

	g, err = Get("electrical")(geo, water)
	if err != nil {
		tst.Errorf("Electrical failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "g_e", 1e-18, g[0], 0.05*math.Pi*d*d/(4.0*l))

	// unknown model
	if Get("stokes_einstein") != nil {
		tst.Errorf("unknown model must return nil")
		return
	}
}

func Test_conduct02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conduct02. washburn entry pressure")

	net, err := network.NewCubic([]int{2, 1, 1}, []float64{1e-4})
	if err != nil {
		tst.Errorf("NewCubic failed:\n%v", err)
		return
	}
	geo, err := geometry.New(net, "stick_and_ball", nil, net.Ps(), net.Ts())
	if err != nil {
		tst.Errorf("New geometry failed:\n%v", err)
		return
	}
	hg, err := phase.New(net, "mercury", "mercury", fun.Prms{
		&fun.Prm{N: "Sig", V: 0.48},
		&fun.Prm{N: "Theta", V: 140},
	})
	if err != nil {
		tst.Errorf("New phase failed:\n%v", err)
		return
	}

	pc, err := Get("washburn")(geo, hg)
	if err != nil {
		tst.Errorf("Washburn failed:\n%v", err)
		return
	}
	d := 0.35e-4
	expected := -4.0 * 0.48 * math.Cos(140.0*math.Pi/180.0) / d
	chk.Scalar(tst, "pc", 1e-8, pc[0], expected)
	if pc[0] <= 0 {
		tst.Errorf("non-wetting entry pressure must be positive")
		return
	}
}
