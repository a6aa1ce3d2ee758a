package gfx

// DrawBitmap plots col wherever a bit is set in a 1-bit-per-pixel bitmap.
//
// bits is tightly packed, row-major and most significant bit first. Clear
// bits leave the destination untouched; bits past the end of the slice
// count as clear.
func (c *Canvas) DrawBitmap(x, y, width, height int, bits []byte, col Color) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			i := dy*width + dx
			byteIndex := i / 8
			if byteIndex >= len(bits) {
				return
			}
			if bits[byteIndex]>>(7-uint(i%8))&1 == 1 {
				c.SetPixel(x+dx, y+dy, col)
			}
		}
	}
}

// BitmapBytes returns the number of bytes a width x height bitmap occupies.
func BitmapBytes(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return (width*height + 7) / 8
}
