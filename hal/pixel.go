package hal

// PixelLayout gives the bit position of each 8-bit channel inside a 32-bit
// framebuffer word. The remaining byte is padding and is always written as 0.
type PixelLayout struct {
	RedShift   uint8
	GreenShift uint8
	BlueShift  uint8
}

var (
	// LayoutXRGB is 0x00RRGGBB, the packing used by the back buffer.
	LayoutXRGB = PixelLayout{RedShift: 16, GreenShift: 8, BlueShift: 0}
	// LayoutXBGR is 0x00BBGGRR.
	LayoutXBGR = PixelLayout{RedShift: 0, GreenShift: 8, BlueShift: 16}
)

// Native reports whether words in this layout match the back-buffer packing.
func (l PixelLayout) Native() bool { return l == LayoutXRGB }

// Valid reports whether the shifts are byte aligned, in the low 24 bits and distinct.
func (l PixelLayout) Valid() bool {
	ok := func(s uint8) bool { return s == 0 || s == 8 || s == 16 }
	if !ok(l.RedShift) || !ok(l.GreenShift) || !ok(l.BlueShift) {
		return false
	}
	return l.RedShift != l.GreenShift && l.RedShift != l.BlueShift && l.GreenShift != l.BlueShift
}

// Encode converts a native 0x00RRGGBB word into this layout.
func (l PixelLayout) Encode(c uint32) uint32 {
	if l.Native() {
		return c & 0x00FFFFFF
	}
	r := (c >> 16) & 0xFF
	g := (c >> 8) & 0xFF
	b := c & 0xFF
	return r<<l.RedShift | g<<l.GreenShift | b<<l.BlueShift
}

// Decode converts a word in this layout back into 0x00RRGGBB.
func (l PixelLayout) Decode(w uint32) uint32 {
	if l.Native() {
		return w & 0x00FFFFFF
	}
	r := (w >> l.RedShift) & 0xFF
	g := (w >> l.GreenShift) & 0xFF
	b := (w >> l.BlueShift) & 0xFF
	return r<<16 | g<<8 | b
}

func (l PixelLayout) String() string {
	switch l {
	case LayoutXRGB:
		return "xrgb"
	case LayoutXBGR:
		return "xbgr"
	}
	return "custom"
}
