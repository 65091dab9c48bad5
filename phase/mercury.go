// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"github.com/cpmech/gosl/fun"
)

// Mercury implements the fluid model for mercury at 25°C, the standard
// non-wetting fluid of intrusion porosimetry
type Mercury struct{}

// add model to factory
func init() {
	allocators["mercury"] = func() Model { return new(Mercury) }
}

// GetPrms returns the default property table
func (o Mercury) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "RhoL", V: 13546.0}, // intrinsic density [kg/m³]
		&fun.Prm{N: "Mu", V: 0.0015},    // dynamic viscosity [Pa·s]
		&fun.Prm{N: "Sig", V: 0.4865},   // surface tension [N/m]
		&fun.Prm{N: "Theta", V: 140.0},  // contact angle [°]
	}
}
