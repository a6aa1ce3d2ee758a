package gfx

import "errors"

var (
	ErrInvalidDescriptor  = errors.New("gfx: invalid framebuffer descriptor")
	ErrNotInitialized     = errors.New("gfx: canvas used before Init")
	ErrAlreadyInitialized = errors.New("gfx: Init called twice")
)
