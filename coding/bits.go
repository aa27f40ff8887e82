// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strings"

// Bits is a growable bit buffer written most significant bit first.
// Bits past the written length in the last byte are always zero.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with capacity for n bits.
func NewBits(n int) *Bits {
	return &Bits{b: make([]byte, 0, (n+7)>>3)}
}

// Reset empties b, keeping its capacity.
func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Len returns the number of bits written.
func (b *Bits) Len() int { return b.nbit }

// Bytes returns the written bits.  The last byte is padded with
// zeros if the length is not a multiple of 8.
func (b *Bits) Bytes() []byte { return b.b }

// Bit returns bit i as 0 or 1.  Past the end Bit returns 0.
func (b *Bits) Bit(i int) byte {
	if i < 0 || i >= b.nbit {
		return 0
	}
	return b.b[i>>3] >> (7 &^ i) & 1
}

// Write appends the low nbit bits of v, most significant first.
// nbit must be at most 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit <= 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Pad appends zero bits up to the next byte boundary.
func (b *Bits) Pad() {
	b.nbit = len(b.b) * 8
}

// String returns the bits as binary digits.
func (b *Bits) String() string {
	var s strings.Builder
	s.Grow(b.nbit)
	for i := 0; i < b.nbit; i++ {
		s.WriteByte('0' + b.Bit(i))
	}
	return s.String()
}
