package gfx

import "testing"

func TestDrawRect(t *testing.T) {
	c := newTestCanvas(t, 4, 4)
	c.DrawRect(1, 1, 2, 2, Green)
	expectExactly(t, c, [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}, Green)
}

func TestDrawRectClipsEdges(t *testing.T) {
	c := newTestCanvas(t, 4, 4)
	c.DrawRect(-1, 2, 3, 5, Green)
	expectExactly(t, c, [][2]int{{0, 2}, {1, 2}, {0, 3}, {1, 3}}, Green)
}

func TestDrawRectOutlineRing(t *testing.T) {
	const ox, oy = 2, 3
	for _, size := range [][2]int{{8, 6}, {5, 5}, {3, 9}, {1, 1}, {12, 2}} {
		for thickness := 1; thickness <= 4; thickness++ {
			w, h := size[0], size[1]
			c := newTestCanvas(t, 16, 16)
			c.DrawRectOutline(ox, oy, w, h, White, thickness)
			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					dx, dy := x-ox, y-oy
					want := false
					if dx >= 0 && dy >= 0 && dx < w && dy < h {
						d := min(min(dx, w-1-dx), min(dy, h-1-dy))
						want = d <= thickness-1
					}
					if got := c.Pixel(x, y) == White; got != want {
						t.Fatalf("%dx%d t=%d: (%d,%d) set=%v, want %v", w, h, thickness, x, y, got, want)
					}
				}
			}
		}
	}
}

func TestDrawRectOutlineZeroThickness(t *testing.T) {
	c := newTestCanvas(t, 6, 6)
	c.DrawRectOutline(1, 1, 4, 4, White, 0)
	if got := setPixels(c, 0); len(got) != 0 {
		t.Fatalf("expected nothing drawn, got %v", got)
	}
}

func TestDrawRoundedRect(t *testing.T) {
	c := newTestCanvas(t, 12, 12)
	c.DrawRoundedRect(0, 0, 10, 8, 3, Blue)

	set := [][2]int{{1, 1}, {0, 3}, {0, 4}, {3, 0}, {5, 0}, {5, 7}, {9, 4}, {8, 6}, {5, 4}}
	unset := [][2]int{{0, 0}, {0, 2}, {0, 5}, {9, 7}, {9, 0}, {10, 4}, {5, 8}}
	for _, p := range set {
		if c.Pixel(p[0], p[1]) != Blue {
			t.Fatalf("expected %v set", p)
		}
	}
	for _, p := range unset {
		if c.Pixel(p[0], p[1]) != 0 {
			t.Fatalf("expected %v unset", p)
		}
	}
}

func TestDrawRoundedRectZeroRadiusIsRect(t *testing.T) {
	a := newTestCanvas(t, 6, 6)
	a.DrawRoundedRect(1, 1, 4, 3, 0, Red)
	b := newTestCanvas(t, 6, 6)
	b.DrawRect(1, 1, 4, 3, Red)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if a.Pixel(x, y) != b.Pixel(x, y) {
				t.Fatalf("(%d,%d) differs", x, y)
			}
		}
	}
}
