package app

import (
	"fmt"
	"math"

	"fbgfx/gfx"
	"fbgfx/hal"
	"fbgfx/internal/buildinfo"
	"fbgfx/internal/scene"

	"tinygo.org/x/tinyfont"
)

type Config struct {
	// Scene is replayed at the start of every frame. Nil uses the embedded demo.
	Scene *scene.Scene
	// NoOverlay skips the animated ball and the status label.
	NoOverlay bool
}

// New acquires the framebuffer, initializes the process-wide canvas and
// returns the per-frame step used by the host runners.
func New(h hal.HAL, cfg Config) (func() error, error) {
	desc, err := h.Display().Acquire()
	if err != nil {
		return nil, fmt.Errorf("app: acquire framebuffer: %w", err)
	}
	c := gfx.Init(desc)
	logf(h, "app: %s", buildinfo.String())
	logf(h, "gfx: canvas %s", desc)

	r := newRenderer(c, cfg)
	r.log = h.Logger()
	return r.step, nil
}

// Run starts the render loop and never returns (TinyGo entrypoint).
// Without a framebuffer there is nothing to show; the failure is logged and
// the system halts.
func Run(h hal.HAL, cfg Config) {
	step, err := New(h, cfg)
	if err != nil {
		fatal(h, err)
		return
	}
	for {
		if err := step(); err != nil {
			fatal(h, err)
			return
		}
	}
}

const (
	ballRadius = 12
	labelColor = gfx.White
	ballColor  = gfx.Orange
)

type renderer struct {
	c     *gfx.Canvas
	scene *scene.Scene
	cfg   Config
	log   hal.Logger
	frame uint64
}

func newRenderer(c *gfx.Canvas, cfg Config) *renderer {
	s := cfg.Scene
	if s == nil {
		s = scene.Default()
	}
	return &renderer{c: c, scene: s, cfg: cfg}
}

func (r *renderer) step() error {
	r.draw()
	r.c.Present()
	if r.frame == 0 && r.log != nil {
		r.log.WriteLineString("app: first frame presented")
	}
	r.frame++
	return nil
}

func (r *renderer) draw() {
	r.scene.Apply(r.c)
	if r.cfg.NoOverlay {
		return
	}

	x, y := r.ballPosition()
	r.c.DrawShadow(x-ballRadius, y-ballRadius, 2*ballRadius, 2*ballRadius, 3, 4)
	r.c.FillCircle(x, y, ballRadius, ballColor)
	r.c.DrawCircle(x, y, ballRadius, gfx.Black)

	label := fmt.Sprintf("fbgfx %s  frame %d", buildinfo.Short(), r.frame)
	tinyfont.WriteLine(r.c.Displayer(), &tinyfont.TomThumb, 4, int16(r.c.Height()-4), label, labelColor.RGBA())
}

// ballPosition orbits the canvas center, one revolution per 240 frames.
func (r *renderer) ballPosition() (int, int) {
	w, h := r.c.Width(), r.c.Height()
	a := 2 * math.Pi * float64(r.frame%240) / 240
	x := w/2 + int(float64(w/4)*math.Cos(a))
	y := h/2 + int(float64(h/4)*math.Sin(a))
	return x, y
}

func logf(h hal.HAL, format string, args ...any) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}
