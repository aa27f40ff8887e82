// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Plan describes the fixed structure of a QR code with a specific
// version: the function patterns and the modules left for data and
// checksum.  Plans returned by NewPlan are shared: their fields must
// not be assigned.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of modules on a side

	// Pattern holds function pattern modules: 1 is dark, 0 is light
	// or not yet known.
	Pattern *Grid

	// Reserved is the reservation mask: 1 is a function pattern or
	// format information module, 0 is free for data or checksum.
	// Every dark module in Pattern is reserved.
	Reserved *Grid
}

// Pre-allocated Plans.  A Plan is created the first time a version
// is used and shared afterwards.  Its grids are never modified.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for a QR code with the given version.
// The returned Plan is shared and must not be modified.
func NewPlan(v Version) (*Plan, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

// DataModules returns the number of modules free for data and
// checksum.
func (p *Plan) DataModules() int {
	return p.Size*p.Size - p.Reserved.Count()
}

// IsFree reports whether module (x, y) is free for data or checksum.
func (p *Plan) IsFree(x, y int) bool {
	return 0 <= x && x < p.Size && 0 <= y && y < p.Size &&
		!p.Reserved.At(x, y)
}

const finderSize = 7 // finder pattern modules on a side

// layout draws function patterns, reserving each module it draws.
type layout struct {
	pat, res *Grid
}

func (l layout) set(x, y int, v bool) {
	l.pat.set(x, y, v)
	l.res.set(x, y, true)
}

func (l layout) hline(x1, x2, y int, v bool) {
	l.pat.hline(x1, x2, y, v)
	l.res.hline(x1, x2, y, true)
}

func (l layout) vline(x, y1, y2 int, v bool) {
	l.pat.vline(x, y1, y2, v)
	l.res.vline(x, y1, y2, true)
}

func (l layout) square(x, y, n int, v bool) {
	l.pat.square(x, y, n, v)
	l.res.square(x, y, n, true)
}

// vplan creates a Plan for the given version.
func vplan(v Version) *Plan {
	siz := v.Size()
	p := &Plan{
		Version:  v,
		Size:     siz,
		Pattern:  newGrid(siz),
		Reserved: newGrid(siz),
	}
	l := layout{p.Pattern, p.Reserved}
	const fs = finderSize
	far := siz - fs // far edge of the right and bottom finders

	// Format information strips, light until the format is known.
	// Row 8 beside the top left and top right finders, column 8
	// beside the top left and bottom left ones.  The bottom left
	// strip starts with one lonely dark module.
	l.hline(0, fs+1, fs+1, false)
	// The top right strip is 8 long, the separator column included.
	l.hline(far-1, siz-1, fs+1, false)
	l.vline(fs+1, 0, fs+1, false)
	l.vline(fs+1, far-1, siz-1, false)
	l.set(fs+1, far-1, true)

	// Timing patterns (overwritten by finders and separators).
	for c := 0; c < siz; c++ {
		l.set(c, fs-1, c%2 == 0)
		l.set(fs-1, c, c%2 == 0)
	}

	// Finder patterns and their separators.  Together with the
	// format strips they take 9x9 modules on top left, 8x9 on top
	// right and 9x8 on bottom left.
	for _, c := range [3][2]int{{0, 0}, {far, 0}, {0, far}} {
		x, y := c[0], c[1]
		l.square(x, y, fs, true)
		l.square(x+1, y+1, fs-2, false)
		l.square(x+2, y+2, fs-4, true)
		l.square(x+3, y+3, 1, true)
	}
	l.hline(0, fs, fs, false)
	l.vline(fs, 0, fs-1, false)
	l.hline(far-1, siz-1, fs, false)
	l.vline(far-1, 0, fs-1, false)
	l.hline(0, fs, far-1, false)
	l.vline(fs, far, siz-1, false)

	// Alignment patterns.  A candidate is dropped if any corner of
	// its 5x5 box is already taken by a finder.
	ac := v.AlignmentCoords()
	for _, y := range ac {
		for _, x := range ac {
			if p.Reserved.At(x-2, y-2) || p.Reserved.At(x-2, y+2) ||
				p.Reserved.At(x+2, y-2) || p.Reserved.At(x+2, y+2) {
				continue
			}
			l.square(x-2, y-2, 5, true)
			l.square(x-1, y-1, 3, false)
			l.square(x, y, 1, true)
		}
	}

	// Version pattern.
	// Top right: 3x6 modules at (siz-11, 0).
	// Bottom left: 6x3 modules at (0, siz-11).
	if vi := v.VersionInfo(); vi != 0 {
		for i := 0; i < 18; i++ {
			dark := vi>>i&1 != 0
			a, b := siz-11+i%3, i/3
			l.set(a, b, dark)
			l.set(b, a, dark)
		}
	}
	return p
}
