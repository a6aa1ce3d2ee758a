// Package gfx draws into a double-buffered canvas over a physical framebuffer.
//
// All drawing goes to a back buffer of Width*Height packed 0x00RRGGBB words
// with a row stride equal to the width. Present copies the back buffer into
// the physical framebuffer row by row, honoring the physical stride and
// channel layout.
//
// Coordinates outside the canvas are clipped silently: writes are dropped and
// reads return 0. Shapes partly off-canvas draw their visible part.
//
// A Canvas is not safe for concurrent use. Drawing calls and Present must not
// overlap; the package uses no locks.
package gfx
