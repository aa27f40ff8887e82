// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr displays the fixed structure of QR codes: the function
patterns of a version and the reservation mask marking modules that
data and checksum placement must leave alone.
*/
package qr // import "github.com/unixdj/qrmatrix"

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/unixdj/qrmatrix/coding"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// Palette indices of module colours.
const (
	Light = iota // light module or quiet zone
	Dark         // dark module
	Free         // module free for data, not yet known
)

// DefaultPalette is used when Code.Palette is nil.
var DefaultPalette = [3]color.Color{
	Light: color.Gray{0xff},
	Dark:  color.Gray{0x00},
	Free:  color.Gray{0x7f},
}

// A Code is a square grid of modules prepared for display.
type Code struct {
	Grid *coding.Grid // 1 is dark, 0 is light

	// Reserved, if not nil, is the reservation mask for Grid.
	// Modules not reserved are shown in the free colour.
	Reserved *coding.Grid

	Scale   int             // number of image pixels per module
	Border  int             // quiet zone width in modules
	Reverse bool            // swap light and dark colours
	Palette *[3]color.Color // light, dark and free colours
}

// Layout returns a Code displaying the function patterns of version
// v, with modules free for data in the free colour.
func Layout(v coding.Version) (*Code, error) {
	p, err := coding.NewPlan(v)
	if err != nil {
		return nil, err
	}
	return &Code{Grid: p.Pattern, Reserved: p.Reserved, Scale: 8, Border: 4}, nil
}

// Mask returns a Code displaying the reservation mask of version v:
// reserved modules are dark, free ones light.
func Mask(v coding.Version) (*Code, error) {
	p, err := coding.NewPlan(v)
	if err != nil {
		return nil, err
	}
	return &Code{Grid: p.Reserved, Scale: 8, Border: 4}, nil
}

// Size returns the number of modules on a side.
func (c *Code) Size() int { return c.Grid.Size() }

func (c *Code) isValid() bool {
	return c != nil && c.Grid != nil && c.Scale > 0 && c.Border >= 0 &&
		(c.Reserved == nil || c.Reserved.Size() == c.Grid.Size())
}

// Module returns the palette index of module (x, y) before colour
// reversal.  Modules outside the grid are light.
func (c *Code) Module(x, y int) int {
	switch {
	case c.Grid.At(x, y):
		return Dark
	case c.Reserved != nil && !c.Reserved.At(x, y) &&
		0 <= x && x < c.Size() && 0 <= y && y < c.Size():
		return Free
	}
	return Light
}

// index returns the displayed palette index of module (x, y).
func (c *Code) index(x, y int) uint8 {
	i := uint8(c.Module(x, y))
	if c.Reverse && i != Free {
		i ^= 1
	}
	return i
}

// Black reports whether module (x, y) is displayed in the dark
// colour.
func (c *Code) Black(x, y int) bool { return c.index(x, y) == Dark }

func (c *Code) palette() color.Palette {
	pal := DefaultPalette
	if c.Palette != nil {
		pal = *c.Palette
	}
	return pal[:]
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.palette()}
}

// codeImage implements image.PalettedImage
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size() + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(c.Bounds())) {
		return c.index(-1, -1)
	}
	return c.index(x/c.Scale-c.Border, y/c.Scale-c.Border)
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	if c.Scale*(c.Size()+2*c.Border) > 32767*8 {
		return ErrLargeImage // limit is under 64 gigapixels
	}
	return png.Encode(w, c.Image())
}

// String returns the code as Unicode half blocks, two rows of modules
// per line, light modules drawn as blocks.  Free modules are drawn
// light.  Scale is ignored.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	bord := c.Border
	end := c.Size() + bord
	var b strings.Builder
	for y := -bord; y < end; y += 2 {
		for x := -bord; x < end; x++ {
			n := 0
			if !c.Black(x, y) {
				n |= 2
			}
			if !c.Black(x, y+1) {
				n |= 1
			}
			b.WriteString([4]string{" ", "▄", "▀", "█"}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
