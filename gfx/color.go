package gfx

import "image/color"

// Color is a packed 0x00RRGGBB word. The top byte is always zero when stored.
type Color uint32

const colorMask = 0x00FFFFFF

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB unpacks the channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA returns the opaque color.RGBA equivalent.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// FromRGBA drops the alpha channel.
func FromRGBA(c color.RGBA) Color { return RGB(c.R, c.G, c.B) }

func channels(c Color) (r, g, b int) {
	return int(c>>16) & 0xFF, int(c>>8) & 0xFF, int(c) & 0xFF
}

func pack(r, g, b int) Color {
	return Color(uint32(r&0xFF)<<16 | uint32(g&0xFF)<<8 | uint32(b&0xFF))
}
