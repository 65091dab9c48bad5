// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Fluid holds fluid data
type Fluid struct {
	Name  string   `json:"name"`  // name of fluid; e.g. "water"
	Model string   `json:"model"` // fluid model name; e.g. "water", "mercury"
	Desc  string   `json:"desc"`  // description of fluid
	Prms  fun.Prms `json:"prms"`  // properties overriding the model defaults
}

// FluidsDb implements a database of fluids
type FluidsDb struct {
	Functions []string `json:"functions"` // not used but needed when unmarshalling
	Fluids    []*Fluid `json:"fluids"`    // all fluids
}

// ReadFld reads fluids database from a .fld JSON file
//  Note: returns nil on errors
func ReadFld(dir, fn string) *FluidsDb {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil
	}

	// decode
	var o FluidsDb
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil
	}
	return &o
}

// Find returns the fluid with a given name
//  Note: returns nil if not found
func (o *FluidsDb) Find(name string) *Fluid {
	for _, f := range o.Fluids {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// String outputs fluids database
func (o FluidsDb) String() string {
	l := "{\n  \"fluids\" : [\n"
	for i, f := range o.Fluids {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\"name\":%q, \"model\":%q, \"desc\":%q}", f.Name, f.Model, f.Desc)
	}
	l += "\n  ]\n}"
	return l
}
