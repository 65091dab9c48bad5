// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

// State holds occupancy state variables for a two-fluid pore network
type State struct {
	A_snwp float64 // 1 non-wetting phase saturation
	A_pc   float64 // 2 current capillary pressure
	A_Δpc  float64 // 3 step increment of capillary pressure
	A_wet  bool    // 4 wetting (pressure decreasing) flag
}

// GetCopy returns a copy of State
func (o State) GetCopy() *State {
	return &State{
		o.A_snwp, // 1
		o.A_pc,   // 2
		o.A_Δpc,  // 3
		o.A_wet,  // 4
	}
}

// Set sets this State with another State
func (o *State) Set(s *State) {
	o.A_snwp = s.A_snwp // 1
	o.A_pc = s.A_pc     // 2
	o.A_Δpc = s.A_Δpc   // 3
	o.A_wet = s.A_wet   // 4
}
