// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"github.com/cpmech/gosl/fun"
)

// Water implements the fluid model for liquid water at 25°C and 1 atm
type Water struct{}

// add model to factory
func init() {
	allocators["water"] = func() Model { return new(Water) }
}

// GetPrms returns the default property table
func (o Water) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "RhoL", V: 997.0},        // intrinsic density [kg/m³]
		&fun.Prm{N: "Mu", V: 0.000893},       // dynamic viscosity [Pa·s]
		&fun.Prm{N: "Sig", V: 0.0728},        // surface tension [N/m]
		&fun.Prm{N: "Theta", V: 110.0},       // contact angle [°]
		&fun.Prm{N: "Pvap", V: 3169.0},       // vapor pressure [Pa]
		&fun.Prm{N: "Kbulk", V: 2.2e9},       // bulk modulus [Pa]
		&fun.Prm{N: "SigmaE", V: 0.05},       // electrical conductivity [S/m]
		&fun.Prm{N: "MolarMass", V: 0.01802}, // molar mass [kg/mol]
	}
}
