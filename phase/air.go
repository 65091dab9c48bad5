// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"github.com/cpmech/gosl/fun"
)

// Air implements the fluid model for dry air at 25°C and 1 atm
type Air struct{}

// add model to factory
func init() {
	allocators["air"] = func() Model { return new(Air) }
}

// GetPrms returns the default property table
func (o Air) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "RhoG", V: 1.184},         // density [kg/m³]
		&fun.Prm{N: "Mu", V: 1.84e-5},         // dynamic viscosity [Pa·s]
		&fun.Prm{N: "MolarMass", V: 0.028964}, // molar mass [kg/mol]
	}
}
