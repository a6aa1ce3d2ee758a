// Package scene loads YAML draw lists and replays them onto a gfx.Canvas.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fbgfx/gfx"
	"fbgfx/hal"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownOp    = errors.New("unknown op")
	ErrMissingField = errors.New("missing field")
	ErrBadColor     = errors.New("bad color")
	ErrBadBitmap    = errors.New("bad bitmap")
	ErrBadLayout    = errors.New("bad layout")
)

//go:embed default.yaml
var defaultScene []byte

// Scene is a parsed draw list plus the framebuffer geometry it was authored for.
type Scene struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Stride int    `yaml:"stride"`
	Layout string `yaml:"layout"`
	Ops    []Op   `yaml:"ops"`

	steps []func(*gfx.Canvas)
}

// Op is one draw call. Only the fields used by the named op are read.
type Op struct {
	Op        string   `yaml:"op"`
	X         int      `yaml:"x"`
	Y         int      `yaml:"y"`
	X0        int      `yaml:"x0"`
	Y0        int      `yaml:"y0"`
	X1        int      `yaml:"x1"`
	Y1        int      `yaml:"y1"`
	X2        int      `yaml:"x2"`
	Y2        int      `yaml:"y2"`
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Radius    int      `yaml:"radius"`
	Thickness int      `yaml:"thickness"`
	Offset    int      `yaml:"offset"`
	Blur      int      `yaml:"blur"`
	Color     string   `yaml:"color"`
	From      string   `yaml:"from"`
	To        string   `yaml:"to"`
	Rows      []string `yaml:"rows"`
	Data      []int    `yaml:"data"`

	keys map[string]bool
}

// UnmarshalYAML decodes the op and records which keys were present.
func (o *Op) UnmarshalYAML(n *yaml.Node) error {
	type plain Op
	if err := n.Decode((*plain)(o)); err != nil {
		return err
	}
	o.keys = make(map[string]bool)
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			o.keys[n.Content[i].Value] = true
		}
	}
	return nil
}

var required = map[string][]string{
	"clear":         {"color"},
	"pixel":         {"x", "y", "color"},
	"line":          {"x0", "y0", "x1", "y1", "color"},
	"triangle":      {"x0", "y0", "x1", "y1", "x2", "y2", "color"},
	"fill_triangle": {"x0", "y0", "x1", "y1", "x2", "y2", "color"},
	"rect":          {"x", "y", "width", "height", "color"},
	"rect_outline":  {"x", "y", "width", "height", "thickness", "color"},
	"rounded_rect":  {"x", "y", "width", "height", "radius", "color"},
	"circle":        {"x", "y", "radius", "color"},
	"fill_circle":   {"x", "y", "radius", "color"},
	"gradient_v":    {"x", "y", "width", "height", "from", "to"},
	"gradient_h":    {"x", "y", "width", "height", "from", "to"},
	"bitmap":        {"x", "y", "color"},
	"shadow":        {"x", "y", "width", "height", "offset", "blur"},
}

// Default returns the embedded demo scene.
func Default() *Scene {
	s, err := Parse(defaultScene)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded default: %v", err))
	}
	return s
}

// Parse decodes and validates a YAML scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if _, err := s.PixelLayout(); err != nil {
		return nil, err
	}
	for i := range s.Ops {
		step, err := compile(&s.Ops[i])
		if err != nil {
			return nil, fmt.Errorf("scene: op %d (%s): %w", i, s.Ops[i].Op, err)
		}
		s.steps = append(s.steps, step)
	}
	return &s, nil
}

// Apply replays the ops in order.
func (s *Scene) Apply(c *gfx.Canvas) {
	for _, step := range s.steps {
		step(c)
	}
}

// Len reports the number of ops.
func (s *Scene) Len() int { return len(s.steps) }

// PixelLayout maps the layout name; empty means xrgb.
func (s *Scene) PixelLayout() (hal.PixelLayout, error) {
	switch strings.ToLower(strings.TrimSpace(s.Layout)) {
	case "", "xrgb", "rgb":
		return hal.LayoutXRGB, nil
	case "xbgr", "bgr":
		return hal.LayoutXBGR, nil
	}
	return hal.PixelLayout{}, fmt.Errorf("scene: %w: %q", ErrBadLayout, s.Layout)
}

// Descriptor allocates a memory framebuffer matching the scene geometry.
// Missing dimensions fall back to the given defaults.
func (s *Scene) Descriptor(defWidth, defHeight int) (hal.Descriptor, error) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = defWidth
	}
	if h <= 0 {
		h = defHeight
	}
	stride := s.Stride
	if stride <= 0 {
		stride = w
	}
	layout, err := s.PixelLayout()
	if err != nil {
		return hal.Descriptor{}, err
	}
	return hal.NewMemoryDescriptor(w, h, stride, layout)
}

func compile(o *Op) (func(*gfx.Canvas), error) {
	name := strings.ToLower(strings.TrimSpace(o.Op))
	fields, ok := required[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, o.Op)
	}
	for _, f := range fields {
		if !o.keys[f] {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}

	var col, from, to gfx.Color
	var err error
	if o.keys["color"] {
		if col, err = ParseColor(o.Color); err != nil {
			return nil, err
		}
	}
	if o.keys["from"] {
		if from, err = ParseColor(o.From); err != nil {
			return nil, err
		}
	}
	if o.keys["to"] {
		if to, err = ParseColor(o.To); err != nil {
			return nil, err
		}
	}

	op := *o
	switch name {
	case "clear":
		return func(c *gfx.Canvas) { c.Clear(col) }, nil
	case "pixel":
		return func(c *gfx.Canvas) { c.SetPixel(op.X, op.Y, col) }, nil
	case "line":
		return func(c *gfx.Canvas) { c.DrawLine(op.X0, op.Y0, op.X1, op.Y1, col) }, nil
	case "triangle":
		return func(c *gfx.Canvas) { c.DrawTriangle(op.X0, op.Y0, op.X1, op.Y1, op.X2, op.Y2, col) }, nil
	case "fill_triangle":
		return func(c *gfx.Canvas) { c.FillTriangle(op.X0, op.Y0, op.X1, op.Y1, op.X2, op.Y2, col) }, nil
	case "rect":
		return func(c *gfx.Canvas) { c.DrawRect(op.X, op.Y, op.Width, op.Height, col) }, nil
	case "rect_outline":
		return func(c *gfx.Canvas) { c.DrawRectOutline(op.X, op.Y, op.Width, op.Height, col, op.Thickness) }, nil
	case "rounded_rect":
		return func(c *gfx.Canvas) { c.DrawRoundedRect(op.X, op.Y, op.Width, op.Height, op.Radius, col) }, nil
	case "circle":
		return func(c *gfx.Canvas) { c.DrawCircle(op.X, op.Y, op.Radius, col) }, nil
	case "fill_circle":
		return func(c *gfx.Canvas) { c.FillCircle(op.X, op.Y, op.Radius, col) }, nil
	case "gradient_v":
		return func(c *gfx.Canvas) { c.DrawGradientVertical(op.X, op.Y, op.Width, op.Height, from, to) }, nil
	case "gradient_h":
		return func(c *gfx.Canvas) { c.DrawGradientHorizontal(op.X, op.Y, op.Width, op.Height, from, to) }, nil
	case "bitmap":
		w, h, bits, err := bitmapOf(o)
		if err != nil {
			return nil, err
		}
		return func(c *gfx.Canvas) { c.DrawBitmap(op.X, op.Y, w, h, bits, col) }, nil
	case "shadow":
		return func(c *gfx.Canvas) { c.DrawShadow(op.X, op.Y, op.Width, op.Height, op.Offset, op.Blur) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, o.Op)
}

// bitmapOf packs `rows` ('#', 'X' or '1' = set) or takes raw `data` with
// explicit width and height.
func bitmapOf(o *Op) (w, h int, bits []byte, err error) {
	if len(o.Rows) > 0 {
		w, h = len(o.Rows[0]), len(o.Rows)
		bits = make([]byte, gfx.BitmapBytes(w, h))
		for y, row := range o.Rows {
			if len(row) != w {
				return 0, 0, nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadBitmap, y, len(row), w)
			}
			for x := 0; x < w; x++ {
				switch row[x] {
				case '#', 'X', 'x', '1':
					i := y*w + x
					bits[i/8] |= 0x80 >> uint(i%8)
				case '.', ' ', '0', '_':
				default:
					return 0, 0, nil, fmt.Errorf("%w: row %d: unexpected %q", ErrBadBitmap, y, row[x])
				}
			}
		}
		return w, h, bits, nil
	}
	if !o.keys["data"] || !o.keys["width"] || !o.keys["height"] {
		return 0, 0, nil, fmt.Errorf("%w: rows or data with width and height", ErrMissingField)
	}
	bits = make([]byte, len(o.Data))
	for i, v := range o.Data {
		if v < 0 || v > 0xFF {
			return 0, 0, nil, fmt.Errorf("%w: data[%d] = %d out of byte range", ErrBadBitmap, i, v)
		}
		bits[i] = byte(v)
	}
	return o.Width, o.Height, bits, nil
}

// ParseColor accepts "#RRGGBB", "0xRRGGBB" or a palette name.
func ParseColor(s string) (gfx.Color, error) {
	v := strings.TrimSpace(s)
	var hex string
	switch {
	case strings.HasPrefix(v, "#"):
		hex = v[1:]
	case strings.HasPrefix(v, "0x"), strings.HasPrefix(v, "0X"):
		hex = v[2:]
	default:
		if c, ok := gfx.PaletteColor(v); ok {
			return c, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return gfx.Color(n), nil
}
