// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Segment is text encoded in one mode for a specific version:
// mode indicator, character count, data, terminator and zero bits
// padding it to a byte boundary.
type Segment struct {
	Mode    Mode    // encoding mode
	Version Version // version the count field is sized for
	Count   int     // number of characters

	b Bits
}

// Len returns the length of the segment in bits, a multiple of 8.
func (s *Segment) Len() int { return s.b.Len() }

// Bytes returns the encoded segment.  The slice must not be
// modified.
func (s *Segment) Bytes() []byte { return s.b.Bytes() }

// Bit returns bit i of the segment as 0 or 1.
func (s *Segment) Bit(i int) byte { return s.b.Bit(i) }

// String returns the segment bits as binary digits.
func (s *Segment) String() string { return s.b.String() }

// CharError reports a character the mode cannot encode.
type CharError struct {
	Mode Mode
	Rune rune
}

func (e CharError) Error() string {
	return fmt.Sprintf("qr: invalid %s character %q", e.Mode, e.Rune)
}

// LengthError reports text too long for the character count field.
type LengthError struct {
	Mode    Mode
	Version Version
	Count   int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("qr: %d characters too long for %s mode "+
		"in version %s, maximum %d",
		e.Count, e.Mode, e.Version, e.Mode.MaxCount(e.Version))
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// IsAlphanumeric reports whether r is in the alphanumeric character
// set: digits, upper case letters, space and "$%*+-./:".
func IsAlphanumeric(r rune) bool {
	return uint32(r-' ') < 64 && alphamask>>(uint32(r)-' ')&1 != 0
}

// AlphanumericValue returns the alphanumeric mode value of r, from 0
// to 44, and whether r is in the character set.
func AlphanumericValue(r rune) (byte, bool) {
	if !IsAlphanumeric(r) {
		return 0, false
	}
	return alpha[r&0x3f], true
}

// Encode encodes text in the given mode for version v.
// Only Alphanumeric is supported; other modes return a ModeError.
func Encode(v Version, mode Mode, text string) (*Segment, error) {
	switch mode {
	case Alphanumeric:
		return EncodeAlphanumeric(v, text)
	default:
		return nil, ModeError(mode)
	}
}

// EncodeAlphanumeric encodes text in alphanumeric mode for version v.
// Characters are packed in pairs as 11 bit values, a trailing single
// character as 6 bits.  If text contains a character outside the
// alphanumeric set, EncodeAlphanumeric returns a CharError for the
// first one; if it is too long for the character count field, a
// LengthError.
func EncodeAlphanumeric(v Version, text string) (*Segment, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	const mode = Alphanumeric
	for _, r := range text {
		if !IsAlphanumeric(r) {
			return nil, CharError{mode, r}
		}
	}
	// All characters are ASCII.
	n := len(text)
	if n > mode.MaxCount(v) {
		return nil, LengthError{mode, v, n}
	}

	s := &Segment{Mode: mode, Version: v, Count: n}
	nbit := mode.EncodedLength(n, v) + 4
	s.b = *NewBits(nbit)
	b := &s.b
	b.Write(uint32(mode.Indicator()), 4)
	b.Write(uint32(n), mode.CountLength(v))
	for ; len(text) >= 2; text = text[2:] {
		b.Write(uint32(alpha[text[0]&0x3f])*45+
			uint32(alpha[text[1]&0x3f]), 11)
	}
	if text != "" {
		b.Write(uint32(alpha[text[0]&0x3f]), 6)
	}
	b.Write(0, 4) // terminator
	b.Pad()
	return s, nil
}
