package hal

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrInvalidGeometry   = errors.New("invalid framebuffer geometry")
	ErrShortMemory       = errors.New("framebuffer memory shorter than stride*height")
	ErrUnsupportedLayout = errors.New("unsupported pixel layout")
)

// Descriptor describes the physical framebuffer: its geometry, channel layout
// and a writable view over exactly Stride*Height pixel words.
//
// Stride is measured in pixel words and may exceed Width when scanlines are
// padded. A Descriptor is immutable; copies share the same memory view.
type Descriptor struct {
	width  int
	height int
	stride int
	layout PixelLayout
	mem    []uint32
}

// NewDescriptor validates the geometry and wraps mem as the physical view.
// mem is re-sliced to exactly stride*height words.
func NewDescriptor(mem []uint32, width, height, stride int, layout PixelLayout) (Descriptor, error) {
	if width <= 0 || height <= 0 || stride < width {
		return Descriptor{}, fmt.Errorf("%w: %dx%d stride %d", ErrInvalidGeometry, width, height, stride)
	}
	if !layout.Valid() {
		return Descriptor{}, fmt.Errorf("%w: r=%d g=%d b=%d", ErrUnsupportedLayout, layout.RedShift, layout.GreenShift, layout.BlueShift)
	}
	n := stride * height
	if len(mem) < n {
		return Descriptor{}, fmt.Errorf("%w: have %d words, need %d", ErrShortMemory, len(mem), n)
	}
	return Descriptor{
		width:  width,
		height: height,
		stride: stride,
		layout: layout,
		mem:    mem[:n:n],
	}, nil
}

// NewMemoryDescriptor allocates a zeroed region of stride*height words.
func NewMemoryDescriptor(width, height, stride int, layout PixelLayout) (Descriptor, error) {
	if width <= 0 || height <= 0 || stride < width {
		return Descriptor{}, fmt.Errorf("%w: %dx%d stride %d", ErrInvalidGeometry, width, height, stride)
	}
	return NewDescriptor(make([]uint32, stride*height), width, height, stride, layout)
}

func (d Descriptor) Width() int          { return d.width }
func (d Descriptor) Height() int         { return d.height }
func (d Descriptor) Stride() int         { return d.stride }
func (d Descriptor) Layout() PixelLayout { return d.layout }

// Memory returns the physical view. Its length is always Stride*Height.
func (d Descriptor) Memory() []uint32 { return d.mem }

// Valid reports whether d came from NewDescriptor.
func (d Descriptor) Valid() bool { return d.mem != nil }

func (d Descriptor) String() string {
	return fmt.Sprintf("%dx%d stride %d %s", d.width, d.height, d.stride, d.layout)
}

// RGBA decodes the visible part of physical memory into an image.
func (d Descriptor) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	d.DecodeInto(img)
	return img
}

// DecodeInto writes the visible pixels into dst, which must be at least
// Width x Height. Padding words are skipped.
func (d Descriptor) DecodeInto(dst *image.RGBA) {
	if dst == nil || dst.Bounds().Dx() < d.width || dst.Bounds().Dy() < d.height {
		return
	}
	for y := 0; y < d.height; y++ {
		row := d.mem[y*d.stride : y*d.stride+d.width]
		j := y * dst.Stride
		for _, w := range row {
			c := d.layout.Decode(w)
			dst.Pix[j+0] = uint8(c >> 16)
			dst.Pix[j+1] = uint8(c >> 8)
			dst.Pix[j+2] = uint8(c)
			dst.Pix[j+3] = 0xFF
			j += 4
		}
	}
}
