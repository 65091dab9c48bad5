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

// vtkLine is the VTK code of a 2-node line cell
const vtkLine = 3

// Vtk exports a geometry as an unstructured grid (.vtu) file for Paraview:
// pores become points, throats become line cells; geometric attributes and
// scalar phase properties are attached as data arrays.
//  Note: the geometry must cover all pores of the network in id order,
//  otherwise the line connectivities would reference the wrong points
type Vtk struct{}

// add exporter to registry
func init() {
	allocators["Vtk"] = func() Exporter { return new(Vtk) }
}

// Export writes <fnkey>.vtu under dirout
func (o Vtk) Export(geo *geometry.Geometry, phases []*phase.Phase, dirout, fnkey string) (err error) {

	// buffers
	net := geo.Net
	top := new(bytes.Buffer)
	dat := new(bytes.Buffer)

	// topology
	io.Ff(top, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, p := range geo.Pores {
		x := net.Coords[p]
		io.Ff(top, "%23.15e %23.15e %23.15e ", x[0], x[1], x[2])
	}
	io.Ff(top, "\n</DataArray>\n</Points>\n")
	io.Ff(top, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, t := range geo.Throats {
		io.Ff(top, "%d %d ", net.Conns[t][0], net.Conns[t][1])
	}
	io.Ff(top, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for i := range geo.Throats {
		io.Ff(top, "%d ", 2*(i+1))
	}
	io.Ff(top, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for range geo.Throats {
		io.Ff(top, "%d ", vtkLine)
	}
	io.Ff(top, "\n</DataArray>\n</Cells>\n")

	// points data
	io.Ff(dat, "<PointData Scalars=\"TheScalars\">\n")
	writePdata(dat, "pore.diameter", geo.Pores, geo.PoreDiameter)
	writePdata(dat, "pore.volume", geo.Pores, geo.PoreVolume)
	io.Ff(dat, "</PointData>\n")

	// cells data
	io.Ff(dat, "<CellData Scalars=\"TheScalars\">\n")
	writePdata(dat, "throat.diameter", geo.Throats, geo.ThroatDiameter)
	writePdata(dat, "throat.length", geo.Throats, geo.ThroatLength)
	writePdata(dat, "throat.volume", geo.Throats, geo.ThroatVolume)
	for _, ph := range phases {
		for _, prm := range ph.Prms {
			vals, e := ph.ThroatVals(prm.N)
			if e != nil {
				return e
			}
			writePdata(dat, io.Sf("%s.%s", ph.Name, prm.N), geo.Throats, vals)
		}
	}
	io.Ff(dat, "</CellData>\n")

	// write vtu file
	nv := len(geo.Pores)
	nc := len(geo.Throats)
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, fnkey+".vtu", &hdr, top, dat, &foo)
	return
}

// writePdata writes one scalar data array
func writePdata(buf *bytes.Buffer, name string, ids []int, vals []float64) {
	io.Ff(buf, "<DataArray type=\"Float64\" Name=%q NumberOfComponents=\"1\" format=\"ascii\">\n", name)
	for _, i := range ids {
		io.Ff(buf, "%23.15e ", vals[i])
	}
	io.Ff(buf, "\n</DataArray>\n")
}
