// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"fmt"
	"log"

	"github.com/unixdj/qrmatrix/coding"
)

func ExampleEncodeAlphanumeric() {
	v, err := coding.NewVersion(1)
	if err != nil {
		log.Fatalln(err)
	}
	s, err := coding.EncodeAlphanumeric(v, "AC-42")
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(s.Len(), s)
	fmt.Printf("% x\n", s.Bytes())

	_, err = coding.EncodeAlphanumeric(v, "ac-42")
	fmt.Println(err)
	// Output:
	// 48 000100000010100111001110111001110010000100000000
	// 10 29 ce e7 21 00
	// qr: invalid alphanumeric character 'a'
}

func ExampleNewPlan() {
	for _, v := range []coding.Version{1, 2, 7, 40} {
		p, err := coding.NewPlan(v)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("version %d: %dx%d, %d data modules\n",
			v, p.Size, p.Size, p.DataModules())
	}
	_, err := coding.NewPlan(41)
	fmt.Println(err)
	// Output:
	// version 1: 21x21, 208 data modules
	// version 2: 25x25, 359 data modules
	// version 7: 45x45, 1568 data modules
	// version 40: 177x177, 29648 data modules
	// qr: version 41 out of range 1 to 40
}

func ExampleMode_CountLength() {
	for _, v := range []coding.Version{9, 10, 26, 27} {
		fmt.Println(v, coding.Alphanumeric.CountLength(v))
	}
	// Output:
	// 9 9
	// 10 11
	// 26 11
	// 27 13
}
