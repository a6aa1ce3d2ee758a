package gfx

// lerp256 mixes two colors with ratio in [0,256): 0 gives a, 256 would give b.
func lerp256(a, b Color, ratio int) Color {
	r1, g1, b1 := channels(a)
	r2, g2, b2 := channels(b)
	inv := 256 - ratio
	return pack(
		(r1*inv+r2*ratio)/256,
		(g1*inv+g2*ratio)/256,
		(b1*inv+b2*ratio)/256,
	)
}

// DrawGradientVertical fills the rectangle with one solid row per scanline,
// interpolating from top to bottom.
func (c *Canvas) DrawGradientVertical(x, y, width, height int, top, bottom Color) {
	for dy := 0; dy < height; dy++ {
		col := lerp256(top, bottom, dy*256/height)
		for dx := 0; dx < width; dx++ {
			c.SetPixel(x+dx, y+dy, col)
		}
	}
}

// DrawGradientHorizontal fills the rectangle with one solid column per
// pixel, interpolating from left to right.
func (c *Canvas) DrawGradientHorizontal(x, y, width, height int, left, right Color) {
	for dx := 0; dx < width; dx++ {
		col := lerp256(left, right, dx*256/width)
		for dy := 0; dy < height; dy++ {
			c.SetPixel(x+dx, y+dy, col)
		}
	}
}
