package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer adapts the canvas to the TinyGo drivers display contract so
// tinyfont and similar renderers can draw into the back buffer. Its Display
// method presents the canvas.
func (c *Canvas) Displayer() drivers.Displayer { return canvasDisplay{c: c} }

type canvasDisplay struct {
	c *Canvas
}

func (d canvasDisplay) Size() (x, y int16) {
	return int16(d.c.w), int16(d.c.h)
}

// SetPixel blends translucent colors into the existing pixel.
func (d canvasDisplay) SetPixel(x, y int16, c color.RGBA) {
	if c.A < 0xFF {
		d.c.BlendPixel(int(x), int(y), FromRGBA(c), c.A)
		return
	}
	d.c.SetPixel(int(x), int(y), FromRGBA(c))
}

func (d canvasDisplay) Display() error {
	d.c.Present()
	return nil
}

// FillRectangle matches the optional fill method of drivers displays.
func (d canvasDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.c.DrawRect(int(x), int(y), int(width), int(height), FromRGBA(c))
	return nil
}
