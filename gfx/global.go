package gfx

import "fbgfx/hal"

// The process-wide canvas. Access is unsynchronized: Init and Default must
// only be used from a single execution context (no interrupt handlers or
// goroutines drawing concurrently).
var defaultCanvas *Canvas

// Init constructs the process-wide canvas from desc and returns it.
// Calling Init twice is a programming error and panics.
func Init(desc hal.Descriptor) *Canvas {
	if defaultCanvas != nil {
		panic(ErrAlreadyInitialized)
	}
	defaultCanvas = New(desc)
	return defaultCanvas
}

// Default returns the canvas created by Init. It panics before Init.
func Default() *Canvas {
	if defaultCanvas == nil {
		panic(ErrNotInitialized)
	}
	return defaultCanvas
}

// Initialized reports whether Init has run.
func Initialized() bool { return defaultCanvas != nil }
