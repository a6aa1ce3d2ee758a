package main

import (
	"bytes"
	"image/color"
	"testing"

	"fbgfx/internal/scene"

	"golang.org/x/image/bmp"
)

func TestRenderScaledBMP(t *testing.T) {
	s, err := scene.Parse([]byte(`
width: 4
height: 3
stride: 6
layout: xbgr
ops:
  - op: clear
    color: red
  - op: pixel
    x: 3
    y: 2
    color: "#00FF00"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	img, err := render(s, 0, 0, 2)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("unexpected bounds %v", b)
	}

	var buf bytes.Buffer
	if err := writeBMP(&buf, img); err != nil {
		t.Fatalf("writeBMP: %v", err)
	}
	got, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}

	red := color.RGBAModel.Convert(got.At(0, 0)).(color.RGBA)
	if red.R != 0xFF || red.G != 0 || red.B != 0 {
		t.Fatalf("expected red at (0,0), got %+v", red)
	}
	green := color.RGBAModel.Convert(got.At(7, 5)).(color.RGBA)
	if green.R != 0 || green.G != 0xFF || green.B != 0 {
		t.Fatalf("expected green at (7,5), got %+v", green)
	}
}

func TestRenderRejectsScale(t *testing.T) {
	if _, err := render(scene.Default(), 0, 0, 0); err == nil {
		t.Fatal("expected error for scale 0")
	}
}
