package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoFramebuffer reports that the boot environment supplied no framebuffer.
	ErrNoFramebuffer = errors.New("no framebuffer response")

	// ErrAlreadyAcquired reports a second Acquire on the same display.
	ErrAlreadyAcquired = errors.New("framebuffer already acquired")
)

// Display hands out the physical framebuffer descriptor.
//
// Acquire succeeds at most once per display; the descriptor is owned by the
// caller afterwards.
type Display interface {
	Acquire() (Descriptor, error)
}

// HAL provides the only contact point between the library and the platform.
type HAL interface {
	Logger() Logger
	Display() Display
}

// onceDisplay wraps a descriptor source so it yields exactly once.
type onceDisplay struct {
	acquired bool
	source   func() (Descriptor, error)
}

func (d *onceDisplay) Acquire() (Descriptor, error) {
	if d.acquired {
		return Descriptor{}, ErrAlreadyAcquired
	}
	desc, err := d.source()
	if err != nil {
		return Descriptor{}, err
	}
	d.acquired = true
	return desc, nil
}
