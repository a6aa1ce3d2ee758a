// Command fbshot renders a scene into a simulated framebuffer and writes the
// presented physical memory as a BMP screenshot.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"fbgfx/gfx"
	"fbgfx/internal/scene"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "YAML scene (default: embedded demo).")
		outPath   = flag.String("out", "", "Output .bmp file.")
		scale     = flag.Int("scale", 1, "Integer upscale factor (nearest neighbour).")
		width     = flag.Int("width", 320, "Width when the scene does not set one.")
		height    = flag.Int("height", 240, "Height when the scene does not set one.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: fbshot -out shot.bmp [-scene scene.yaml] [-scale 2]")
	}

	s := scene.Default()
	if *scenePath != "" {
		data, err := os.ReadFile(*scenePath)
		if err != nil {
			fatalf("read scene: %v", err)
		}
		if s, err = scene.Parse(data); err != nil {
			fatalf("%v", err)
		}
	}

	img, err := render(s, *width, *height, *scale)
	if err != nil {
		fatalf("render: %v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		fatalf("create: %v", err)
	}
	defer out.Close()
	if err := writeBMP(out, img); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// render draws s, presents it and decodes the physical framebuffer.
func render(s *scene.Scene, defWidth, defHeight, scale int) (image.Image, error) {
	if scale < 1 || scale > 16 {
		return nil, fmt.Errorf("scale out of range: %d", scale)
	}
	desc, err := s.Descriptor(defWidth, defHeight)
	if err != nil {
		return nil, err
	}
	c := gfx.New(desc)
	s.Apply(c)
	c.Present()

	img := desc.RGBA()
	if scale == 1 {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*scale, img.Bounds().Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

func writeBMP(w io.Writer, img image.Image) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	if err := bmp.Encode(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}
