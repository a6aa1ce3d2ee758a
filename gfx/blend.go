package gfx

// BlendColors mixes fg over bg. alpha 0 yields bg and 255 yields fg.
func BlendColors(bg, fg Color, alpha uint8) Color {
	a := int(alpha)
	inv := 255 - a
	br, bgc, bb := channels(bg)
	fr, fgc, fb := channels(fg)
	return pack(
		(br*inv+fr*a)/255,
		(bgc*inv+fgc*a)/255,
		(bb*inv+fb*a)/255,
	)
}

// BlendPixel blends col into the existing pixel at (x, y).
func (c *Canvas) BlendPixel(x, y int, col Color, alpha uint8) {
	if !c.inBounds(x, y) {
		return
	}
	c.SetPixel(x, y, BlendColors(c.Pixel(x, y), col, alpha))
}

// maxShadowAlpha is the opacity of the shadow under the shape itself.
const maxShadowAlpha = 128

// DrawShadow darkens a soft-edged box behind a shape drawn earlier at
// (x, y, width, height). The shadow box is offset by offset on both axes
// and grows by blur pixels on every side; opacity falls off linearly with
// the Chebyshev distance to the unexpanded box.
//
// A blur of zero or less draws a hard shadow at full shadow opacity.
func (c *Canvas) DrawShadow(x, y, width, height, offset, blur int) {
	if width <= 0 || height <= 0 {
		return
	}
	if blur <= 0 {
		for dy := 0; dy < height; dy++ {
			for dx := 0; dx < width; dx++ {
				c.BlendPixel(x+offset+dx, y+offset+dy, Black, maxShadowAlpha)
			}
		}
		return
	}

	for dy := 0; dy < height+2*blur; dy++ {
		for dx := 0; dx < width+2*blur; dx++ {
			dist := shadowDist(dx, width, blur)
			if d := shadowDist(dy, height, blur); d > dist {
				dist = d
			}
			dist = clampInt(dist, 0, blur)
			alpha := uint8((blur - dist) * maxShadowAlpha / blur)
			c.BlendPixel(x+offset+dx, y+offset+dy, Black, alpha)
		}
	}
}

// shadowDist is the distance of position p (in the expanded span) outside
// the unexpanded run [blur, size+blur).
func shadowDist(p, size, blur int) int {
	switch {
	case p < blur:
		return blur - p
	case p >= size+blur:
		return p - size - blur + 1
	}
	return 0
}
