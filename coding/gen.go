// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
)

const maxVersion = 40

// First two alignment pattern coordinates after 6, from
// qrencode-3.1.1/qrspec.c.  A second coordinate of 0 means there is
// only one.  The rest are spaced evenly up to size-7.
var align = [maxVersion + 1][2]int{
	{0, 0},
	{0, 0}, {18, 0}, {22, 0}, {26, 0}, {30, 0}, // 1- 5
	{34, 0}, {22, 38}, {24, 42}, {26, 46}, {28, 50}, // 6-10
	{30, 54}, {32, 58}, {34, 62}, {26, 46}, {26, 48}, //11-15
	{26, 50}, {30, 54}, {30, 56}, {30, 58}, {34, 62}, //16-20
	{28, 50}, {26, 50}, {30, 54}, {28, 54}, {32, 58}, //21-25
	{30, 58}, {34, 62}, {26, 50}, {30, 54}, {26, 52}, //26-30
	{30, 56}, {34, 60}, {30, 58}, {34, 62}, {30, 54}, //31-35
	{24, 50}, {28, 54}, {32, 58}, {26, 54}, {30, 58}, //36-40
}

// calcVersion returns the version number followed by its BCH(18,6)
// check bits.
func calcVersion(v uint32) uint32 {
	const versionPoly = 0x1f25
	rem := v << 12
	for i := 5; i >= 0; i-- {
		if rem&((1<<12)<<i) != 0 {
			rem ^= versionPoly << i
		}
	}
	return v<<12 | rem
}

func alignCoords(v int) []int {
	c := []int{6}
	first, second := align[v][0], align[v][1]
	if second == 0 {
		return append(c, first)
	}
	for x := first; x <= v*4+17-7; x += second - first {
		c = append(c, x)
	}
	return c
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Alignment pattern centre coordinates, used as both x and y.
// Versions 2 and up.
var atab = [MaxVersion + 1][]int{
`)
	for v := 2; v <= maxVersion; v++ {
		fmt.Fprintf(w, "\t%d: {", v)
		for i, c := range alignCoords(v) {
			if i != 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, c)
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprint(w, `}

// Version information: 6 bit version number followed by 12 bit BCH
// code.  Versions 7 and up.
var vinfo = [MaxVersion + 1]uint32{
`)
	for v := 7; v <= maxVersion; v++ {
		fmt.Fprintf(w, "\t%d: %#05x,\n", v, calcVersion(uint32(v)))
	}
	fmt.Fprintln(w, "}")
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}
}
