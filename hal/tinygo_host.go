//go:build tinygo && !baremetal

package hal

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	disp   *onceDisplay
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no boot
// protocol; a boot response recorded with SetBootFramebuffer still wins,
// otherwise a 320x240 heap framebuffer is used.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		disp: &onceDisplay{source: func() (Descriptor, error) {
			if bootFB != nil {
				return bootDescriptor()
			}
			return NewMemoryDescriptor(320, 240, 320, LayoutXRGB)
		}},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return h.disp }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
