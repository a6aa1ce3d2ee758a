package app

import (
	"fbgfx/hal"
)

// halt parks the caller forever; replaced in tests.
var halt = func() { select {} }

// fatal reports an unrecoverable boot failure and stops. There is no
// fallback display target, so the logger is the only channel left.
func fatal(h hal.HAL, err error) {
	if h != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("app: fatal: " + err.Error())
		}
	}
	halt()
}
