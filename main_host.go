//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fbgfx/app"
	"fbgfx/hal"
	"fbgfx/internal/scene"
)

func main() {
	var (
		host      hal.HostConfig
		headless  hal.HeadlessConfig
		bgr       bool
		scenePath string
		noOverlay bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.IntVar(&host.Width, "width", 320, "Framebuffer width in pixels.")
	flag.IntVar(&host.Height, "height", 240, "Framebuffer height in pixels.")
	flag.IntVar(&host.StridePad, "stride-pad", 16, "Padding words per scanline of the simulated framebuffer.")
	flag.BoolVar(&bgr, "bgr", false, "Simulate a framebuffer with blue in the high byte.")
	flag.StringVar(&scenePath, "scene", "", "YAML scene to draw (default: embedded demo).")
	flag.BoolVar(&noOverlay, "no-overlay", false, "Draw only the scene.")
	flag.Parse()

	host.Layout = hal.LayoutXRGB
	if bgr {
		host.Layout = hal.LayoutXBGR
	}

	cfg := app.Config{NoOverlay: noOverlay}
	if scenePath != "" {
		data, err := os.ReadFile(scenePath)
		if err != nil {
			fatalf("read scene: %v", err)
		}
		s, err := scene.Parse(data)
		if err != nil {
			fatalf("%v", err)
		}
		cfg.Scene = s
	}

	newApp := func(h hal.HAL) (func() error, error) { return app.New(h, cfg) }

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, host, headless, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatalf("%v", err)
		}
		return
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
