package gfx

// DrawRect fills [x, x+width) x [y, y+height).
func (c *Canvas) DrawRect(x, y, width, height int, col Color) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			c.SetPixel(x+dx, y+dy, col)
		}
	}
}

// DrawRectOutline draws a border of thickness pixels on every side of the
// rectangle. A thickness of at least half the smaller side fills it.
func (c *Canvas) DrawRectOutline(x, y, width, height int, col Color, thickness int) {
	if width <= 0 || height <= 0 {
		return
	}
	for t := 0; t < thickness && t < height; t++ {
		for dx := 0; dx < width; dx++ {
			c.SetPixel(x+dx, y+t, col)
			c.SetPixel(x+dx, y+height-1-t, col)
		}
	}
	for t := 0; t < thickness && t < width; t++ {
		for dy := 0; dy < height; dy++ {
			c.SetPixel(x+t, y+dy, col)
			c.SetPixel(x+width-1-t, y+dy, col)
		}
	}
}

// DrawRoundedRect fills a rectangle whose corners are quarter disks of the
// given radius.
func (c *Canvas) DrawRoundedRect(x, y, width, height, radius int, col Color) {
	if width <= 0 || height <= 0 {
		return
	}
	if radius <= 0 {
		c.DrawRect(x, y, width, height, col)
		return
	}

	// Middle band, full width.
	for dy := radius; dy < height-radius; dy++ {
		for dx := 0; dx < width; dx++ {
			c.SetPixel(x+dx, y+dy, col)
		}
	}

	// Top and bottom bands between the corners.
	for dy := 0; dy < radius && dy < height; dy++ {
		for dx := radius; dx < width-radius; dx++ {
			c.SetPixel(x+dx, y+dy, col)
			c.SetPixel(x+dx, y+height-1-dy, col)
		}
	}

	r2 := radius * radius
	left, top := x+radius, y+radius
	right, bottom := x+width-radius-1, y+height-radius-1
	for cy := 0; cy <= radius; cy++ {
		for cx := 0; cx <= radius; cx++ {
			if cx*cx+cy*cy > r2 {
				continue
			}
			c.SetPixel(left-cx, top-cy, col)
			if width > radius {
				c.SetPixel(right+cx, top-cy, col)
			}
			if height > radius {
				c.SetPixel(left-cx, bottom+cy, col)
			}
			if width > radius && height > radius {
				c.SetPixel(right+cx, bottom+cy, col)
			}
		}
	}
}
