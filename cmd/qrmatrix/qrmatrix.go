// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrmatrix draws the function patterns and reservation mask of QR
// codes, and encodes text as alphanumeric mode segments.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"github.com/unixdj/qrmatrix"
	"github.com/unixdj/qrmatrix/coding"
)

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	palette *[3]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	ver     coding.Version  // QR version
	format  int             // output file format
	bg, fg  rgba            // colour
	free    rgba            // free module colour
	colSet  bool            // colour set
	mask    bool            // draw reservation mask
	info    bool            // print module counts
	alnum   bool            // encode alphanumeric segment
	upper   bool            // uppercase
}{
	bg:   rgba{0xff, 0xff, 0xff, 0xff},
	fg:   rgba{0x00, 0x00, 0x00, 0xff},
	free: rgba{0x7f, 0x7f, 0x7f, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	fmt.Fprint(w, "QR code layout viewer\nUsage: ", prog, " ",
		cl.UsageLine(), ` [string ...]
Draws the function patterns of a QR code version, modules free for
data shown in grey.  With -a, encodes the strings (or standard input,
final newline stripped) as an alphanumeric mode segment instead.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrmatrix version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

type rgba struct {
	R, G, B, A uint8
}

var colourNames = map[string]rgba{
	"black": {0x00, 0x00, 0x00, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"gray":  {0x7f, 0x7f, 0x7f, 0xff},
	"grey":  {0x7f, 0x7f, 0x7f, 0xff},
	"red":   {0xff, 0x00, 0x00, 0xff},
	"green": {0x00, 0xff, 0x00, 0xff},
	"blue":  {0x00, 0x00, 0xff, 0xff},
}

func (c *rgba) String() string {
	for k, v := range colourNames {
		if *c == v && k != "grey" {
			return k
		}
	}
	if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ps returns the colour as PostScript setrgbcolor operands.
func (c rgba) ps() string {
	return fmt.Sprintf("%.3g %.3g %.3g",
		float64(c.R)/0xff, float64(c.G)/0xff, float64(c.B)/0xff)
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	var ok bool
	if *c, ok = colourNames[strings.ToLower(s)]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	eps,
	func(c *qr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	ascii,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or a colour name; `+
		`only for types png[i] and eps[i]`, "RGB[A]|name")
	getopt.FlagLong(&g.free, "free", 'G', `free module colour; `+
		`see -F; only for types png[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(&g.mask, 'M', "draw the reservation mask: "+
		"reserved modules dark, free ones light")
	getopt.Flag(&g.info, 'n', "print module counts instead of drawing")
	getopt.Flag(&g.alnum, 'a', "encode input as an alphanumeric "+
		"segment and print its bits instead of drawing")
	getopt.Flag(&g.upper, 'i', `fold width and convert input to `+
		`uppercase; for -a`)
	getopt.Flag(&g.border, 'm', `quiet zone modules`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ver := getopt.Unsigned('v', 1, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"QR code version", "ver")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels (type eps[i]: points) per QR module; `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.alnum && (g.mask || g.info) {
		fmt.Fprintln(os.Stderr, "-a is incompatible with -M and -n")
		usage()
	}
	g.scale = int(*scale)
	g.ver = coding.Version(*ver)
	if !getopt.IsSet('m') {
		g.border = -1
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[3]color.Color{
			qr.Light: color.RGBA(g.bg),
			qr.Dark:  color.RGBA(g.fg),
			qr.Free:  color.RGBA(g.free),
		}
	}
}

// input returns the command line arguments joined by spaces, or
// standard input with the final newline stripped.  Input starting
// with a UTF-16 byte order mark is converted to UTF-8.
func input() string {
	if args := getopt.Args(); len(args) != 0 {
		return strings.Join(args, " ")
	}
	var b strings.Builder
	r := transform.NewReader(os.Stdin,
		unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	if _, err := io.Copy(&b, r); err != nil {
		log.Fatalln(err)
	}
	s, _ := strings.CutSuffix(
		strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return s
}

// fold converts fullwidth forms to their ASCII counterparts and
// lowercase letters to uppercase.
func fold(s string) string {
	return cases.Upper(language.Und).String(width.Narrow.String(s))
}

func main() {
	log.SetFlags(0)
	parseFlags()

	switch {
	case g.alnum:
		s := input()
		if g.upper {
			s = fold(s)
		}
		seg, err := coding.EncodeAlphanumeric(g.ver, s)
		if err != nil {
			log.Fatalln(err)
		}
		writeSegment(seg)
	case g.info:
		p, err := coding.NewPlan(g.ver)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("version %d: %dx%d modules, %d reserved, %d free\n",
			p.Version, p.Size, p.Size, p.Reserved.Count(),
			p.DataModules())
	default:
		newCode := qr.Layout
		if g.mask {
			newCode = qr.Mask
		}
		c, err := newCode(g.ver)
		if err != nil {
			log.Fatalln(err)
		}
		write(c)
	}
}

func writeSegment(s *coding.Segment) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s mode, version %d, %d characters, %d bits\n",
		s.Mode, s.Version, s.Count, s.Len())
	fmt.Fprintln(&b, s)
	fmt.Fprintf(&b, "% x\n", s.Bytes())
	if _, err := b.WriteTo(os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func write(c *qr.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Palette = g.palette
	c.Reverse = g.rev
	if g.border >= 0 {
		c.Border = g.border
	}
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// eps writes the code as Encapsulated PostScript.  Dark modules and
// free ones are stroked as horizontal runs, one pass per colour.
// Light modules show the background.
func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size()
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	var b bytes.Buffer
	fmt.Fprintf(&b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: qrmatrix https://github.com/unixdj/qrmatrix
%%%%Title: QR Code Version %d
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		(siz-17)/4, xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	bg, fg := g.bg, g.fg
	if c.Reverse {
		bg, fg = fg, bg
	}
	if c.Reverse || g.colSet {
		fmt.Fprintf(&b, `gsave
newpath %d %d moveto
%d dup neg scale
%s setrgbcolor
1 0 rlineto stroke
grestore
`,
			-bord, siz/2, siz+2*bord, bg.ps())
	}
	epsRuns(&b, c, qr.Dark, fg)
	if c.Reserved != nil {
		epsRuns(&b, c, qr.Free, g.free)
	}
	b.WriteString("grestore\nend\n%%Trailer\n")
	_, err := b.WriteTo(w)
	return err
}

// epsRuns strokes the runs of modules with palette index i, as
// returned by Code.Module, in colour col.
func epsRuns(b *bytes.Buffer, c *qr.Code, i int, col rgba) {
	fmt.Fprintf(b, "%s setrgbcolor\n/row 0 def\nnewpath 0 0 moveto\n",
		col.ps())
	siz := c.Size()
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && c.Module(x, y) != i {
				x++
			}
			if x == siz {
				break
			}
			d := x
			for x < siz && c.Module(x, y) == i {
				x++
			}
			fmt.Fprintf(b, "%d %d p ", x-d, d-s)
		}
		b.WriteString("r\n")
	}
	b.WriteString("stroke\n")
}

// ascii draws dark modules as "##", light ones as spaces and free
// ones as "..".
func ascii(c *qr.Code, w io.Writer) error {
	siz := c.Size()
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Module(x, y) == qr.Free {
				p = '.'
			} else if c.Black(x, y) {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
