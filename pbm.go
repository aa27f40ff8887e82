// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.  Free modules are drawn light.
func (c *Code) EncodePBM(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	if c.Scale*(c.Size()+2*c.Border) > 32767*8 {
		return ErrLargeImage
	}
	b := bufio.NewWriter(w)
	bord := c.Border
	end := c.Size() + bord
	scale := c.Scale
	length := scale * (end + bord)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -bord; y < end; y++ {
		pbmRow(row, c, y)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes row y of the code, quiet zone included, in PBM
// format.  1 is black.
func pbmRow(row []byte, c *Code, y int) {
	clear(row)
	j := 0
	for x := -c.Border; x < c.Size()+c.Border; x++ {
		if !c.Black(x, y) {
			j += c.Scale
			continue
		}
		for i := 0; i < c.Scale; i++ {
			row[j>>3] |= 0x80 >> (j & 7)
			j++
		}
	}
}
