// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitsWrite(t *testing.T) {
	writes := []struct {
		v    uint32
		nbit int
	}{
		{1, 4}, {5, 9}, {462, 11}, {0, 0}, {0x7f, 3},
		{0xdeadbeef, 32}, {1, 1}, {0, 8}, {0x1849, 13},
	}
	var b Bits
	var want strings.Builder
	for _, w := range writes {
		b.Write(w.v, w.nbit)
		if w.nbit != 0 {
			fmt.Fprintf(&want, "%0*b", w.nbit,
				uint64(w.v)&(1<<w.nbit-1))
		}
		if diff := cmp.Diff(want.String(), b.String()); diff != "" {
			t.Fatalf("after Write(%#x, %d) (-want +got):\n%s",
				w.v, w.nbit, diff)
		}
	}
	n := b.Len()
	b.Pad()
	if b.Len()%8 != 0 || b.Len()-n >= 8 || b.Len() != 8*len(b.Bytes()) {
		t.Errorf("Pad: length %d -> %d, %d bytes", n, b.Len(), len(b.Bytes()))
	}
	if !strings.HasPrefix(b.String(), want.String()) ||
		strings.Trim(b.String()[n:], "0") != "" {
		t.Errorf("Pad: bits %s", b.String())
	}
	c := cap(b.Bytes())
	b.Reset()
	if b.Len() != 0 || len(b.Bytes()) != 0 || cap(b.Bytes()) != c {
		t.Errorf("Reset: %d bits, capacity %d -> %d",
			b.Len(), c, cap(b.Bytes()))
	}
}

func TestEncodeAlphanumericAC42(t *testing.T) {
	s, err := EncodeAlphanumeric(1, "AC-42")
	if err != nil {
		t.Fatal(err)
	}
	fields := []string{
		"0001",        // mode indicator
		"000000101",   // character count 5
		"00111001110", // A C: 10*45+12 = 462
		"11100111001", // - 4: 41*45+4 = 1849
		"000010",      // 2
		"0000",        // terminator
		"000",         // padding
	}
	if diff := cmp.Diff(strings.Join(fields, ""), s.String()); diff != "" {
		t.Errorf("bits mismatch (-want +got):\n%s", diff)
	}
	want := []byte{0x10, 0x29, 0xce, 0xe7, 0x21, 0x00}
	if diff := cmp.Diff(want, s.Bytes()); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}
	if s.Mode != Alphanumeric || s.Version != 1 || s.Count != 5 || s.Len() != 48 {
		t.Errorf("segment %v %d %d, %d bits", s.Mode, s.Version, s.Count, s.Len())
	}
}

func TestEncodeAlphanumeric(t *testing.T) {
	for _, tt := range []struct {
		v    Version
		text string
		want string
	}{
		{1, "", "0001" + "000000000" + "0000" + "0000000"},
		{1, "Z", "0001" + "000000001" + "100011" + "0000" + "0"},
		{1, " :", "0001" + "000000010" + fmt.Sprintf("%011b", 36*45+44) + "0000" + "0000"},
		{10, "$%", "0001" + "00000000010" + fmt.Sprintf("%011b", 37*45+38) + "0000" + "00"},
		{40, "*+./", "0001" + "0000000000100" +
			fmt.Sprintf("%011b%011b", 39*45+40, 42*45+43) + "0000" + "00000"},
	} {
		s, err := EncodeAlphanumeric(tt.v, tt.text)
		if err != nil {
			t.Errorf("EncodeAlphanumeric(%d, %q): %v", tt.v, tt.text, err)
			continue
		}
		if diff := cmp.Diff(tt.want, s.String()); diff != "" {
			t.Errorf("EncodeAlphanumeric(%d, %q) mismatch (-want +got):\n%s",
				tt.v, tt.text, diff)
		}
	}
}

func TestEncodeAlphanumericInvalid(t *testing.T) {
	for _, tt := range []struct {
		text string
		r    rune
	}{
		{"a", 'a'},
		{"HELLO world", 'w'},
		{"AB@C", '@'},
		{"A\x00", 0},
		{"ÄB", 'Ä'},
		{"12#", '#'},
		{"\xff", '\uFFFD'},
	} {
		s, err := EncodeAlphanumeric(1, tt.text)
		if s != nil {
			t.Errorf("EncodeAlphanumeric(%q) returned a segment", tt.text)
		}
		var ce CharError
		if !errors.As(err, &ce) || ce.Rune != tt.r || ce.Mode != Alphanumeric {
			t.Errorf("EncodeAlphanumeric(%q): err = %v, want CharError %q",
				tt.text, err, tt.r)
		}
	}
}

func TestIsAlphanumeric(t *testing.T) {
	const set = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
	for r := rune(-1); r < 0x200; r++ {
		i := strings.IndexRune(set, r)
		if got := IsAlphanumeric(r); got != (i >= 0) {
			t.Errorf("IsAlphanumeric(%q) = %v", r, got)
		}
		v, ok := AlphanumericValue(r)
		if ok != (i >= 0) || ok && int(v) != i {
			t.Errorf("AlphanumericValue(%q) = %d, %v; want %d",
				r, v, ok, i)
		}
	}
}

func TestCountLength(t *testing.T) {
	for _, tt := range []struct {
		v    Version
		want [4]int // numeric, alphanumeric, byte, kanji
	}{
		{1, [4]int{10, 9, 8, 8}},
		{9, [4]int{10, 9, 8, 8}},
		{10, [4]int{12, 11, 16, 10}},
		{26, [4]int{12, 11, 16, 10}},
		{27, [4]int{14, 13, 16, 12}},
		{40, [4]int{14, 13, 16, 12}},
	} {
		var got [4]int
		for m := Numeric; m <= Kanji; m++ {
			got[m] = m.CountLength(tt.v)
		}
		if got != tt.want {
			t.Errorf("version %d: count lengths %v, want %v",
				tt.v, got, tt.want)
		}
		s, err := EncodeAlphanumeric(tt.v, "A")
		if err != nil {
			t.Fatal(err)
		}
		if want := "0001" + strings.Repeat("0", tt.want[1]-1) + "1"; !strings.HasPrefix(s.String(), want) {
			t.Errorf("version %d: segment %s, want prefix %s",
				tt.v, s.String(), want)
		}
	}
	if n := Alphanumeric.CountLength(0); n != 0 {
		t.Errorf("CountLength(0) = %d, want 0", n)
	}
	if n := Mode(7).CountLength(1); n != 0 {
		t.Errorf("Mode(7).CountLength(1) = %d, want 0", n)
	}
}

func TestEncodeAlphanumericTooLong(t *testing.T) {
	for _, tt := range []struct {
		v  Version
		ok int
	}{
		{9, 511}, {10, 2047}, {26, 2047}, {27, 8191},
	} {
		if _, err := EncodeAlphanumeric(tt.v, strings.Repeat("A", tt.ok)); err != nil {
			t.Errorf("version %d, %d characters: %v", tt.v, tt.ok, err)
		}
		_, err := EncodeAlphanumeric(tt.v, strings.Repeat("A", tt.ok+1))
		want := LengthError{Alphanumeric, tt.v, tt.ok + 1}
		var le LengthError
		if !errors.As(err, &le) || le != want {
			t.Errorf("version %d, %d characters: err = %v, want %v",
				tt.v, tt.ok+1, err, want)
		}
	}
}

func TestEncodedLength(t *testing.T) {
	const text = "THE QUICK BROWN FOX JUMPS OVER 13 LAZY DOGS."
	for _, v := range []Version{1, 10, 27} {
		for n := 0; n <= len(text); n++ {
			s, err := EncodeAlphanumeric(v, text[:n])
			if err != nil {
				t.Fatal(err)
			}
			l := Alphanumeric.EncodedLength(n, v)
			if want := (l + 4 + 7) &^ 7; s.Len() != want {
				t.Errorf("version %d, %d characters: length %d, want %d",
					v, n, s.Len(), want)
			}
			if b := s.Bytes(); cap(b) != len(b) {
				t.Errorf("version %d, %d characters: %d bytes, "+
					"capacity %d", v, n, len(b), cap(b))
			}
			if s.Len()%8 != 0 {
				t.Errorf("version %d, %d characters: length %d",
					v, n, s.Len())
			}
			// Bits between data and padding are zero.
			for i := l; i < s.Len(); i++ {
				if s.Bit(i) != 0 {
					t.Errorf("version %d, %d characters: bit %d set",
						v, n, i)
				}
			}
		}
	}
	if n := Byte.EncodedLength(3, 1); n != 0 {
		t.Errorf("Byte.EncodedLength = %d, want 0", n)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	for _, m := range []Mode{Numeric, Byte, Kanji, Mode(9)} {
		s, err := Encode(1, m, "123")
		var me ModeError
		if s != nil || !errors.As(err, &me) || Mode(me) != m {
			t.Errorf("Encode(%v): %v, %v; want ModeError", m, s, err)
		}
	}
	s, err := Encode(1, Alphanumeric, "AC-42")
	if err != nil || s.Len() != 48 {
		t.Errorf("Encode(Alphanumeric): %v, %v", s, err)
	}
}

func TestEncodeInvalidVersion(t *testing.T) {
	for _, v := range []Version{0, 41} {
		if _, err := EncodeAlphanumeric(v, "A"); !errors.Is(err, ErrVersion) {
			t.Errorf("version %d: err = %v, want ErrVersion", v, err)
		}
	}
}

func TestModeStrings(t *testing.T) {
	for _, tt := range []struct {
		err  error
		want string
	}{
		{ModeError(Byte), "qr: byte mode not supported"},
		{ModeError(12), "qr: invalid mode 12"},
		{CharError{Alphanumeric, 'a'}, `qr: invalid alphanumeric character 'a'`},
		{LengthError{Alphanumeric, 1, 600}, "qr: 600 characters too long " +
			"for alphanumeric mode in version 1, maximum 511"},
		{VersionError(41), "qr: version 41 out of range 1 to 40"},
	} {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
	if got := Alphanumeric.Indicator(); got != 0b0001 {
		t.Errorf("Alphanumeric.Indicator() = %#b", got)
	}
	if got := Alphanumeric.ChunkLength(); got != 11 {
		t.Errorf("Alphanumeric.ChunkLength() = %d", got)
	}
}
