// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// A Grid is a square grid of modules, one bit each.  Modules are
// stored in row-major order, module (x, y) at index y*Size()+x, most
// significant bit first.
//
// Grids returned by this package are read-only.
type Grid struct {
	size int
	b    []byte
}

func newGrid(size int) *Grid {
	return &Grid{size: size, b: make([]byte, (size*size+7)>>3)}
}

// Size returns the number of modules on a side.
func (g *Grid) Size() int { return g.size }

// Index returns the linear index of module (x, y).
func (g *Grid) Index(x, y int) int { return y*g.size + x }

// Coords returns the coordinates of the module at linear index i.
func (g *Grid) Coords(i int) (x, y int) { return i % g.size, i / g.size }

func (g *Grid) in(x, y int) bool {
	return 0 <= x && x < g.size && 0 <= y && y < g.size
}

// At reports whether module (x, y) is set.
// Modules outside the grid are not set.
func (g *Grid) At(x, y int) bool {
	if !g.in(x, y) {
		return false
	}
	i := g.Index(x, y)
	return g.b[i>>3]&(0x80>>(i&7)) != 0
}

// Count returns the number of set modules.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.b {
		n += bits.OnesCount8(v)
	}
	return n
}

// set sets module (x, y) to v.  Modules outside the grid are ignored.
func (g *Grid) set(x, y int, v bool) {
	if !g.in(x, y) {
		return
	}
	i := g.Index(x, y)
	if v {
		g.b[i>>3] |= 0x80 >> (i & 7)
	} else {
		g.b[i>>3] &^= 0x80 >> (i & 7)
	}
}

// hline sets modules x1 to x2 inclusive in row y.
func (g *Grid) hline(x1, x2, y int, v bool) {
	for x := x1; x <= x2; x++ {
		g.set(x, y, v)
	}
}

// vline sets modules y1 to y2 inclusive in column x.
func (g *Grid) vline(x, y1, y2 int, v bool) {
	for y := y1; y <= y2; y++ {
		g.set(x, y, v)
	}
}

// square draws the outline of an n×n square with the upper left
// corner at (x, y).
func (g *Grid) square(x, y, n int, v bool) {
	if n == 0 {
		return
	}
	n--
	g.hline(x, x+n, y, v)
	g.hline(x, x+n, y+n, v)
	g.vline(x, y+1, y+n-1, v)
	g.vline(x+n, y+1, y+n-1, v)
}
