package gfx

// Present copies the back buffer into physical memory.
//
// Row y of the back buffer (offset y*Width) lands at physical offset
// y*Stride. Padding words past Width are never written. A single bulk
// copy is only used when the strides match and the layout is native.
func (c *Canvas) Present() {
	mem := c.desc.Memory()
	stride := c.desc.Stride()
	layout := c.desc.Layout()

	if layout.Native() {
		if stride == c.w {
			copy(mem, c.back)
			return
		}
		for y := 0; y < c.h; y++ {
			copy(mem[y*stride:y*stride+c.w], c.back[y*c.w:(y+1)*c.w])
		}
		return
	}

	for y := 0; y < c.h; y++ {
		dst := mem[y*stride : y*stride+c.w]
		src := c.back[y*c.w : (y+1)*c.w]
		for x, v := range src {
			dst[x] = layout.Encode(v)
		}
	}
}
