package gfx

// DrawCircle draws a circle outline with the midpoint algorithm. Each of the
// eight symmetric points is skipped independently when it has a negative
// coordinate.
func (c *Canvas) DrawCircle(cx, cy, radius int, col Color) {
	x, y, err := radius, 0, 0
	for x >= y {
		c.plotClipped(cx+x, cy+y, col)
		c.plotClipped(cx+y, cy+x, col)
		c.plotClipped(cx-y, cy+x, col)
		c.plotClipped(cx-x, cy+y, col)
		c.plotClipped(cx-x, cy-y, col)
		c.plotClipped(cx-y, cy-x, col)
		c.plotClipped(cx+y, cy-x, col)
		c.plotClipped(cx+x, cy-y, col)

		y++
		err += 1 + 2*y
		if 2*(err-x)+1 > 0 {
			x--
			err += 1 - 2*x
		}
	}
}

// FillCircle sets every pixel (cx+dx, cy+dy) with dx*dx+dy*dy <= radius*radius.
func (c *Canvas) FillCircle(cx, cy, radius int, col Color) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.plotClipped(cx+dx, cy+dy, col)
			}
		}
	}
}

func (c *Canvas) plotClipped(x, y int, col Color) {
	if x >= 0 && y >= 0 {
		c.SetPixel(x, y, col)
	}
}
