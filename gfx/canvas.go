package gfx

import "fbgfx/hal"

// Canvas owns a back buffer sized to its framebuffer descriptor.
type Canvas struct {
	desc hal.Descriptor
	w    int
	h    int
	back []uint32
}

// New allocates a zeroed back buffer for desc. desc must come from
// hal.NewDescriptor (or a HAL display); New panics on a zero Descriptor.
func New(desc hal.Descriptor) *Canvas {
	if !desc.Valid() {
		panic(ErrInvalidDescriptor)
	}
	w, h := desc.Width(), desc.Height()
	return &Canvas{
		desc: desc,
		w:    w,
		h:    h,
		back: make([]uint32, w*h),
	}
}

func (c *Canvas) Width() int                 { return c.w }
func (c *Canvas) Height() int                { return c.h }
func (c *Canvas) Descriptor() hal.Descriptor { return c.desc }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// SetPixel writes col at (x, y). Out-of-bounds writes are dropped.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.back[y*c.w+x] = uint32(col) & colorMask
}

// Pixel returns the back-buffer color at (x, y), or 0 when out of bounds.
func (c *Canvas) Pixel(x, y int) Color {
	if !c.inBounds(x, y) {
		return 0
	}
	return Color(c.back[y*c.w+x])
}

// Clear fills the whole back buffer with col.
func (c *Canvas) Clear(col Color) {
	v := uint32(col) & colorMask
	for i := range c.back {
		c.back[i] = v
	}
}

// Row returns a read-only copy of back-buffer row y, or nil when out of range.
func (c *Canvas) Row(y int) []Color {
	if y < 0 || y >= c.h {
		return nil
	}
	out := make([]Color, c.w)
	for i, v := range c.back[y*c.w : (y+1)*c.w] {
		out[i] = Color(v)
	}
	return out
}
