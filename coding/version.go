// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate sh -c "go run gen.go | gofmt > tables.go"

// Package coding implements the low-level geometry and bit packing of
// QR codes: symbol versions, function pattern layout with the
// reservation mask, and segment encoding.
package coding // import "github.com/unixdj/qrmatrix/coding"

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrVersion is returned, wrapped in a VersionError, for a version
// outside MinVersion to MaxVersion.
var ErrVersion = errors.New("qr: invalid version")

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

// Version range.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

// VersionError reports a version number out of range.
type VersionError int

func (e VersionError) Error() string {
	return fmt.Sprintf("qr: version %d out of range %d to %d",
		int(e), MinVersion, MaxVersion)
}

// Unwrap returns ErrVersion.
func (e VersionError) Unwrap() error { return ErrVersion }

// NewVersion returns n as a Version, or a VersionError if n is out of
// range.
func NewVersion(n int) (Version, error) {
	if n < int(MinVersion) || n > int(MaxVersion) {
		return 0, VersionError(n)
	}
	return Version(n), nil
}

// Valid reports whether v is in range.
func (v Version) Valid() bool { return MinVersion <= v && v <= MaxVersion }

func (v Version) check() error {
	if !v.Valid() {
		return VersionError(v)
	}
	return nil
}

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Size returns the number of modules on a side, 4(v-1)+21.
func (v Version) Size() int { return int(v-1)*4 + 21 }

// Modules returns the total number of modules in the symbol.
func (v Version) Modules() int { return v.Size() * v.Size() }

// QR version size classes.  The class selects the length of the
// character count field.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// AlignmentCoords returns the alignment pattern centre coordinates of
// v, in ascending order.  Every pair drawn from the list is a
// candidate centre; candidates overlapping a finder pattern are not
// used.  The returned slice must not be modified.
func (v Version) AlignmentCoords() []int {
	if !v.Valid() {
		return nil
	}
	return atab[v]
}

// VersionInfo returns the 18 bit version information pattern of v,
// or 0 for versions below 7.
func (v Version) VersionInfo() uint32 {
	if !v.Valid() {
		return 0
	}
	return vinfo[v]
}
