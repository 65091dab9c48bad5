// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/jgostick/OpenPNM/geometry"
	"github.com/jgostick/OpenPNM/phase"
)

// Salome exports a geometry as a Python script for the Salome platform. The
// script is meant to be run from Salome with "load script"; it rebuilds the
// pore spheres and throat cylinders with geompy. Geometry generation on
// Salome may take some time depending on the number of pores.
type Salome struct{}

// add exporter to registry
func init() {
	allocators["Salome"] = func() Exporter { return new(Salome) }
}

// Export writes <fnkey>.py under dirout
func (o Salome) Export(geo *geometry.Geometry, phases []*phase.Phase, dirout, fnkey string) (err error) {

	// header
	net := geo.Net
	buf := new(bytes.Buffer)
	io.Ff(buf, "# -*- coding: utf-8 -*-\n")
	io.Ff(buf, "# pore network: %d pores, %d throats\n", net.Np(), net.Nt())
	for _, ph := range phases {
		io.Ff(buf, "# phase %q (%s)\n", ph.Name, ph.Model)
	}
	io.Ff(buf, "\nimport salome\nsalome.salome_init()\n")
	io.Ff(buf, "import GEOM\nfrom salome.geom import geomBuilder\n")
	io.Ff(buf, "geompy = geomBuilder.New()\n\n")

	// data arrays
	io.Ff(buf, "coords = [\n")
	for _, p := range geo.Pores {
		x := net.Coords[p]
		io.Ff(buf, "    [%23.15e, %23.15e, %23.15e],\n", x[0], x[1], x[2])
	}
	io.Ff(buf, "]\n")
	io.Ff(buf, "pradius = [")
	for _, p := range geo.Pores {
		io.Ff(buf, "%23.15e, ", geo.PoreDiameter[p]/2.0)
	}
	io.Ff(buf, "]\n")
	io.Ff(buf, "conns = [")
	for _, t := range geo.Throats {
		io.Ff(buf, "[%d, %d], ", net.Conns[t][0], net.Conns[t][1])
	}
	io.Ff(buf, "]\n")
	io.Ff(buf, "tradius = [")
	for _, t := range geo.Throats {
		io.Ff(buf, "%23.15e, ", geo.ThroatDiameter[t]/2.0)
	}
	io.Ff(buf, "]\n\n")

	// build commands
	io.Ff(buf, "pores = []\n")
	io.Ff(buf, "for c, r in zip(coords, pradius):\n")
	io.Ff(buf, "    v = geompy.MakeVertex(c[0], c[1], c[2])\n")
	io.Ff(buf, "    pores.append(geompy.MakeSpherePntR(v, r))\n\n")
	io.Ff(buf, "throats = []\n")
	io.Ff(buf, "for pair, r in zip(conns, tradius):\n")
	io.Ff(buf, "    a = coords[pair[0]]\n")
	io.Ff(buf, "    b = coords[pair[1]]\n")
	io.Ff(buf, "    va = geompy.MakeVertex(a[0], a[1], a[2])\n")
	io.Ff(buf, "    vb = geompy.MakeVertex(b[0], b[1], b[2])\n")
	io.Ff(buf, "    throats.append(geompy.MakeCylinderPntPntR(va, vb, r))\n\n")
	io.Ff(buf, "network = geompy.MakeFuseList(pores + throats, True, True)\n")
	io.Ff(buf, "geompy.addToStudy(network, 'network')\n")
	io.Ff(buf, "if salome.sg.hasDesktop():\n")
	io.Ff(buf, "    salome.sg.updateObjBrowser()\n")

	// save file
	io.WriteFileVD(dirout, fnkey+".py", buf)
	return
}
