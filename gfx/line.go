package gfx

// DrawLine rasterizes the segment (x0,y0)-(x1,y1) with Bresenham's
// algorithm. Both endpoints are plotted; points with a negative coordinate
// are skipped.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x >= 0 && y >= 0 {
			c.SetPixel(x, y, col)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawTriangle draws the three edges of a triangle.
func (c *Canvas) DrawTriangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	c.DrawLine(x0, y0, x1, y1, col)
	c.DrawLine(x1, y1, x2, y2, col)
	c.DrawLine(x2, y2, x0, y0, col)
}

// FillTriangle fills a triangle of either winding. Pixel centers on the
// top or left edges are included, so adjacent triangles sharing an edge
// never overlap.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		c.DrawTriangle(x0, y0, x1, y1, x2, y2, col)
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	minX := clampInt(min3(x0, x1, x2), 0, c.w-1)
	maxX := clampInt(max3(x0, x1, x2), 0, c.w-1)
	minY := clampInt(min3(y0, y1, y2), 0, c.h-1)
	maxY := clampInt(max3(y0, y1, y2), 0, c.h-1)

	b0 := topLeftBias(x1, y1, x2, y2)
	b1 := topLeftBias(x2, y2, x0, y0)
	b2 := topLeftBias(x0, y0, x1, y1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y) + b0
			w1 := edgeFn(x2, y2, x0, y0, x, y) + b1
			w2 := edgeFn(x0, y0, x1, y1, x, y) + b2
			if w0 > 0 && w1 > 0 && w2 > 0 {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// edgeFn is twice the signed area of (a, b, p); positive when p lies to the
// right of a->b in screen coordinates (y down).
func edgeFn(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// topLeftBias turns the strict inside test into an inclusive one for top and
// left edges of a clockwise (screen space) triangle.
func topLeftBias(ax, ay, bx, by int) int {
	dx, dy := bx-ax, by-ay
	if (dy == 0 && dx > 0) || dy < 0 {
		return 1
	}
	return 0
}
