package gfx

import "strings"

const (
	Black     Color = 0x000000
	White     Color = 0xFFFFFF
	Red       Color = 0xFF0000
	Green     Color = 0x00FF00
	Blue      Color = 0x0000FF
	Yellow    Color = 0xFFFF00
	Cyan      Color = 0x00FFFF
	Magenta   Color = 0xFF00FF
	Gray      Color = 0x808080
	DarkGray  Color = 0x404040
	LightGray Color = 0xC0C0C0
	Orange    Color = 0xFF8000
	Purple    Color = 0x8000FF
)

var palette = map[string]Color{
	"black":      Black,
	"white":      White,
	"red":        Red,
	"green":      Green,
	"blue":       Blue,
	"yellow":     Yellow,
	"cyan":       Cyan,
	"magenta":    Magenta,
	"gray":       Gray,
	"grey":       Gray,
	"dark_gray":  DarkGray,
	"light_gray": LightGray,
	"orange":     Orange,
	"purple":     Purple,
}

// PaletteColor looks up a named palette color. Names are case-insensitive;
// "-" and spaces are accepted in place of "_".
func PaletteColor(name string) (Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	c, ok := palette[key]
	return c, ok
}
