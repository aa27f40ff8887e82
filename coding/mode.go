// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
)

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes.  Only Alphanumeric is supported by the encoder.
const (
	Numeric      Mode = iota // numeric mode
	Alphanumeric             // alphanumeric mode
	Byte                     // byte mode
	Kanji                    // kanji mode
	nmodes
)

// modeEncoder describes a QR segment encoding.
type modeEncoder struct {
	name      string // name for error reporting
	indicator byte   // 4 bit mode indicator

	// chunk is the number of characters packed together, and
	// chunkBits their encoded length.  Zero for unsupported modes.
	chunk, chunkBits int

	// countLength lists lengths of the character count field in
	// three QR version size classes.
	countLength [3]byte
}

var modes = [nmodes]modeEncoder{
	Numeric: {
		name:        "numeric",
		indicator:   0b0001,
		chunk:       3,
		chunkBits:   10,
		countLength: [3]byte{10, 12, 14},
	},
	Alphanumeric: {
		name:        "alphanumeric",
		indicator:   0b0001,
		chunk:       2,
		chunkBits:   11,
		countLength: [3]byte{9, 11, 13},
	},
	Byte: {
		name:        "byte",
		indicator:   0b0100,
		countLength: [3]byte{8, 16, 16},
	},
	Kanji: {
		name:        "kanji",
		indicator:   0b1000,
		countLength: [3]byte{8, 10, 12},
	},
}

func getMode(mode Mode) *modeEncoder {
	if 0 <= mode && mode < nmodes {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// Indicator returns the 4 bit mode indicator, or 0 for an invalid
// mode.
func (mode Mode) Indicator() byte {
	if m := getMode(mode); m != nil {
		return m.indicator
	}
	return 0
}

// ChunkLength returns the length in bits of a full group of
// characters packed together, or 0 if the mode is not supported.
func (mode Mode) ChunkLength() int {
	if m := getMode(mode); m != nil {
		return m.chunkBits
	}
	return 0
}

// CountLength returns the length in bits of the character count
// field for version v, or 0 if the mode or version is invalid.
func (mode Mode) CountLength(v Version) int {
	if m := getMode(mode); m != nil && v.Valid() {
		return int(m.countLength[v.SizeClass()])
	}
	return 0
}

// MaxCount returns the largest character count encodable in version
// v, or 0 if the mode or version is invalid.
func (mode Mode) MaxCount(v Version) int {
	return 1<<mode.CountLength(v) - 1
}

// EncodedLength returns the length in bits of a segment of n
// characters in version v, including the mode indicator and character
// count but not the terminator and padding.  EncodedLength returns 0
// if the mode is not supported or the version is invalid.
func (mode Mode) EncodedLength(n int, v Version) int {
	if mode != Alphanumeric || !v.Valid() {
		return 0
	}
	return 4 + mode.CountLength(v) + (11*n+1)/2
}

// ModeError reports a Mode the encoder does not support.
type ModeError Mode

func (e ModeError) Error() string {
	if getMode(Mode(e)) != nil {
		return fmt.Sprintf("qr: %s mode not supported", Mode(e))
	}
	return fmt.Sprintf("qr: invalid mode %d", int(e))
}
