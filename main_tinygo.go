//go:build tinygo

package main

import (
	"fbgfx/app"
	"fbgfx/hal"
)

func main() {
	app.Run(hal.New(), app.Config{})
}
