// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"math"
)

// NewCubic builds a regular cubic lattice with 6-connectivity
//  Input:
//   shape   -- [3] number of pores along x, y and z
//   spacing -- [1] or [3] distance between adjacent pore centers
//  Output:
//   a network with nx*ny*nz pores where the pore at lattice position (i,j,k)
//   connects to (i±1,j,k), (i,j±1,k) and (i,j,k±1) whenever inside the shape.
//   Pore ids follow (i*ny + j)*nz + k; pore centers sit at (i+1/2)*dx etc.
//  Boundary pores are labeled: front/back (x), left/right (y), bottom/top (z)
func NewCubic(shape []int, spacing []float64) (o *Network, err error) {

	// check
	if len(shape) != 3 {
		return nil, &ShapeError{shape}
	}
	for _, n := range shape {
		if n < 1 {
			return nil, &ShapeError{shape}
		}
	}
	s, err := expandSpacing(spacing)
	if err != nil {
		return
	}

	// allocate
	nx, ny, nz := shape[0], shape[1], shape[2]
	np := nx * ny * nz
	nt := (nx-1)*ny*nz + nx*(ny-1)*nz + nx*ny*(nz-1)
	o = &Network{
		Name:    "cubic",
		Shape:   []int{nx, ny, nz},
		Spacing: s,
		Coords:  make([][]float64, np),
		Conns:   make([][]int, 0, nt),
		Labels:  make(map[string][]int),
	}

	// pores
	pid := func(i, j, k int) int { return (i*ny+j)*nz + k }
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				o.Coords[pid(i, j, k)] = []float64{
					(float64(i) + 0.5) * s[0],
					(float64(j) + 0.5) * s[1],
					(float64(k) + 0.5) * s[2],
				}
			}
		}
	}

	// throats: +x, +y, +z neighbors of each pore, in pore order
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				p := pid(i, j, k)
				if i+1 < nx {
					o.Conns = append(o.Conns, []int{p, pid(i+1, j, k)})
				}
				if j+1 < ny {
					o.Conns = append(o.Conns, []int{p, pid(i, j+1, k)})
				}
				if k+1 < nz {
					o.Conns = append(o.Conns, []int{p, pid(i, j, k+1)})
				}
			}
		}
	}

	// boundary labels
	var front, back, left, right, bottom, top []int
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				p := pid(i, j, k)
				if i == 0 {
					front = append(front, p)
				}
				if i == nx-1 {
					back = append(back, p)
				}
				if j == 0 {
					left = append(left, p)
				}
				if j == ny-1 {
					right = append(right, p)
				}
				if k == 0 {
					bottom = append(bottom, p)
				}
				if k == nz-1 {
					top = append(top, p)
				}
			}
		}
	}
	o.SetLabel("front", front)
	o.SetLabel("back", back)
	o.SetLabel("left", left)
	o.SetLabel("right", right)
	o.SetLabel("bottom", bottom)
	o.SetLabel("top", top)

	// derived data
	err = o.initDerived()
	if err != nil {
		return nil, err
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// expandSpacing expands a scalar spacing into a 3-vector and checks positivity
func expandSpacing(spacing []float64) (s []float64, err error) {
	switch len(spacing) {
	case 1:
		s = []float64{spacing[0], spacing[0], spacing[0]}
	case 3:
		s = []float64{spacing[0], spacing[1], spacing[2]}
	default:
		return nil, &SpacingError{spacing}
	}
	for _, v := range s {
		if v <= 0 {
			return nil, &SpacingError{spacing}
		}
	}
	return
}

func dist3(dx, dy, dz float64) float64 {
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
