//go:build !tinygo && cgo

package hal

import (
	"image"
	"os"

	"fbgfx/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that shows the physical framebuffer.
// It blocks until the window closes.
func RunWindow(cfg HostConfig, newApp func(HAL) (func() error, error)) error {
	h, err := newHostHAL(cfg, os.Stdout)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("fbgfx (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.Width()*2, h.fb.Height()*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

// Update runs one app step; ebiten calls Update and Draw from the same
// goroutine, so the physical memory is never read mid-present.
func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}
	fb.DecodeInto(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.Width(), g.h.fb.Height()
}
