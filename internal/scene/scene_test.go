package scene

import (
	"errors"
	"strings"
	"testing"

	"fbgfx/gfx"
	"fbgfx/hal"
)

func newCanvas(t *testing.T, w, h int) *gfx.Canvas {
	t.Helper()
	desc, err := hal.NewMemoryDescriptor(w, h, w, hal.LayoutXRGB)
	if err != nil {
		t.Fatalf("NewMemoryDescriptor: %v", err)
	}
	return gfx.New(desc)
}

func TestParseAndApply(t *testing.T) {
	src := `
width: 8
height: 8
ops:
  - op: clear
    color: blue
  - op: rect
    x: 1
    y: 1
    width: 2
    height: 2
    color: "#00FF00"
  - op: line
    x0: 0
    y0: 7
    x1: 7
    y1: 7
    color: "0xFFFFFF"
  - op: bitmap
    x: 5
    y: 0
    color: red
    rows:
      - "#."
      - ".#"
`
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 ops, got %d", s.Len())
	}

	c := newCanvas(t, 8, 8)
	s.Apply(c)

	checks := []struct {
		x, y int
		want gfx.Color
	}{
		{0, 0, gfx.Blue},
		{1, 1, gfx.Green},
		{2, 2, gfx.Green},
		{3, 3, gfx.Blue},
		{4, 7, gfx.White},
		{5, 0, gfx.Red},
		{6, 0, gfx.Blue},
		{6, 1, gfx.Red},
	}
	for _, tc := range checks {
		if got := c.Pixel(tc.x, tc.y); got != tc.want {
			t.Fatalf("(%d,%d): expected %#06x, got %#06x", tc.x, tc.y, uint32(tc.want), uint32(got))
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"unknown op", "ops:\n  - op: spiral\n", ErrUnknownOp},
		{"missing field", "ops:\n  - op: rect\n    x: 1\n    y: 1\n    width: 2\n    color: red\n", ErrMissingField},
		{"bad color", "ops:\n  - op: clear\n    color: \"#12345\"\n", ErrBadColor},
		{"unknown color name", "ops:\n  - op: clear\n    color: chartreuse\n", ErrBadColor},
		{"ragged bitmap", "ops:\n  - op: bitmap\n    x: 0\n    y: 0\n    color: red\n    rows: [\"##\", \"#\"]\n", ErrBadBitmap},
		{"bitmap without data", "ops:\n  - op: bitmap\n    x: 0\n    y: 0\n    color: red\n", ErrMissingField},
		{"data out of range", "ops:\n  - op: bitmap\n    x: 0\n    y: 0\n    width: 8\n    height: 1\n    data: [300]\n    color: red\n", ErrBadBitmap},
		{"bad layout", "layout: rgb565\nops: []\n", ErrBadLayout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestParseErrorNamesOpIndex(t *testing.T) {
	_, err := Parse([]byte("ops:\n  - op: clear\n    color: red\n  - op: nope\n"))
	if err == nil || !strings.Contains(err.Error(), "op 1") {
		t.Fatalf("expected error naming op 1, got %v", err)
	}
}

func TestBitmapData(t *testing.T) {
	s, err := Parse([]byte("ops:\n  - op: bitmap\n    x: 0\n    y: 0\n    width: 3\n    height: 3\n    data: [0xAA, 0x80]\n    color: white\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := newCanvas(t, 3, 3)
	s.Apply(c)
	if c.Pixel(0, 0) != gfx.White || c.Pixel(1, 0) != 0 || c.Pixel(2, 2) != gfx.White {
		t.Fatal("unexpected bitmap result")
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]gfx.Color{
		"#102030":  0x102030,
		"0xABCDEF": 0xABCDEF,
		"0Xabcdef": 0xABCDEF,
		"purple":   gfx.Purple,
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %#06x, got %#06x (%v)", in, uint32(want), uint32(got), err)
		}
	}
	for _, in := range []string{"", "#GGGGGG", "0x1234567", "#FFF"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrBadColor) {
			t.Fatalf("%q: expected ErrBadColor, got %v", in, err)
		}
	}
}

func TestSceneDescriptor(t *testing.T) {
	s, err := Parse([]byte("width: 10\nheight: 4\nstride: 12\nlayout: xbgr\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d, err := s.Descriptor(320, 240)
	if err != nil {
		t.Fatalf("Descriptor: %v", err)
	}
	if d.Width() != 10 || d.Height() != 4 || d.Stride() != 12 || d.Layout() != hal.LayoutXBGR {
		t.Fatalf("unexpected descriptor %s", d)
	}

	empty, err := Parse([]byte("ops: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d, err = empty.Descriptor(16, 8)
	if err != nil {
		t.Fatalf("Descriptor: %v", err)
	}
	if d.Width() != 16 || d.Height() != 8 || d.Stride() != 16 {
		t.Fatalf("unexpected default descriptor %s", d)
	}
}

func TestDefaultSceneParses(t *testing.T) {
	s := Default()
	if s.Len() == 0 {
		t.Fatal("expected ops in default scene")
	}
	d, err := s.Descriptor(0, 0)
	if err != nil {
		t.Fatalf("Descriptor: %v", err)
	}
	c := gfx.New(d)
	s.Apply(c)
	c.Present()
	if c.Pixel(0, 0) == 0 {
		t.Fatal("expected the background gradient to cover (0,0)")
	}
}
