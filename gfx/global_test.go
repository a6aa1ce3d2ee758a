package gfx

import (
	"testing"

	"fbgfx/hal"
)

func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != want {
			t.Fatalf("expected panic %v, got %v", want, r)
		}
	}()
	fn()
}

func TestDefaultLifecycle(t *testing.T) {
	saved := defaultCanvas
	defaultCanvas = nil
	defer func() { defaultCanvas = saved }()

	if Initialized() {
		t.Fatal("expected no canvas before Init")
	}
	expectPanic(t, ErrNotInitialized, func() { Default() })

	desc, err := hal.NewMemoryDescriptor(8, 8, 8, hal.LayoutXRGB)
	if err != nil {
		t.Fatalf("NewMemoryDescriptor: %v", err)
	}
	c := Init(desc)
	if Default() != c {
		t.Fatal("Default must return the canvas built by Init")
	}
	expectPanic(t, ErrAlreadyInitialized, func() { Init(desc) })
}
