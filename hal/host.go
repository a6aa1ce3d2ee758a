//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig describes the simulated framebuffer of the host HAL.
type HostConfig struct {
	Width  int
	Height int
	// StridePad is the number of padding words appended to every scanline.
	StridePad int
	Layout    PixelLayout
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.StridePad < 0 {
		c.StridePad = 0
	}
	if c.Layout == (PixelLayout{}) {
		c.Layout = LayoutXRGB
	}
	return c
}

type hostHAL struct {
	cfg    HostConfig
	logger *hostLogger
	disp   *onceDisplay
	fb     Descriptor
}

// New returns a host HAL implementation backed by a heap framebuffer.
func New(cfg HostConfig) (HAL, error) {
	h, err := newHostHAL(cfg, os.Stdout)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func newHostHAL(cfg HostConfig, w io.Writer) (*hostHAL, error) {
	cfg = cfg.withDefaults()
	fb, err := NewMemoryDescriptor(cfg.Width, cfg.Height, cfg.Width+cfg.StridePad, cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("host framebuffer: %w", err)
	}
	h := &hostHAL{
		cfg:    cfg,
		logger: &hostLogger{w: w},
		fb:     fb,
	}
	h.disp = &onceDisplay{source: func() (Descriptor, error) { return h.fb, nil }}
	return h, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
