// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package export implements serialization of networks, geometries and phases
// to files consumable by external tools
package export

import (
	"github.com/cpmech/gosl/io"

	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/phase"
)

// FormatError indicates an unrecognized export filetype tag
type FormatError struct {
	Filetype string // the offending tag
}

func (e *FormatError) Error() string {
	return io.Sf("filetype %q is not supported", e.Filetype)
}

// Exporter defines the interface of format-specific exporters. Exporters
// only read from the given objects; they must not mutate them.
type Exporter interface {
	Export(geo *geometry.Geometry, phases []*phase.Phase, dirout, fnkey string) error
}

// allocators holds all available exporters, keyed by filetype tag
var allocators = make(map[string]func() Exporter)

// Data serializes a geometry (with its network) and phases to dirout
//  Input:
//   filetype -- format tag; e.g. "Salome", "Vtk"
//   fnkey    -- output filename without extension; the extension is chosen
//               by the exporter
func Data(geo *geometry.Geometry, phases []*phase.Phase, dirout, fnkey, filetype string) error {
	alloc, ok := allocators[filetype]
	if !ok {
		return &FormatError{filetype}
	}
	return alloc().Export(geo, phases, dirout, fnkey)
}

// Formats returns the tags of all registered exporters
func Formats() (tags []string) {
	for tag := range allocators {
		tags = append(tags, tag)
	}
	return
}
