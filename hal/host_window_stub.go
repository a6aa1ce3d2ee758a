//go:build !tinygo && !cgo

package hal

import "fmt"

func RunWindow(_ HostConfig, _ func(HAL) (func() error, error)) error {
	return fmt.Errorf("%w: window mode requires cgo (build/run with CGO_ENABLED=1)", ErrNotImplemented)
}
