package hal

import (
	"fmt"
	"unsafe"
)

// BootFramebuffer is the framebuffer entry of a boot-protocol response:
// a linear region at Addr with PitchBytes between scanlines.
type BootFramebuffer struct {
	Addr       uintptr
	Width      int
	Height     int
	PitchBytes int
	BPP        int

	RedShift   uint8
	GreenShift uint8
	BlueShift  uint8
}

var bootFB *BootFramebuffer

// SetBootFramebuffer records the boot-protocol framebuffer response.
// Early boot code calls it before the display is acquired.
func SetBootFramebuffer(fb BootFramebuffer) {
	bootFB = &fb
}

func bootDescriptor() (Descriptor, error) {
	if bootFB == nil {
		return Descriptor{}, ErrNoFramebuffer
	}
	return DescriptorFromBoot(*bootFB)
}

// DescriptorFromBoot builds a bounds-checked view over the boot framebuffer.
//
// The region must stay mapped for the lifetime of the process.
func DescriptorFromBoot(fb BootFramebuffer) (Descriptor, error) {
	if fb.Addr == 0 {
		return Descriptor{}, ErrNoFramebuffer
	}
	if fb.BPP != 32 {
		return Descriptor{}, fmt.Errorf("%w: %d bpp", ErrUnsupportedLayout, fb.BPP)
	}
	if fb.PitchBytes <= 0 || fb.PitchBytes%4 != 0 || fb.Height <= 0 {
		return Descriptor{}, fmt.Errorf("%w: pitch %d bytes", ErrInvalidGeometry, fb.PitchBytes)
	}
	stride := fb.PitchBytes / 4
	mem := unsafe.Slice((*uint32)(unsafe.Pointer(fb.Addr)), stride*fb.Height)
	layout := PixelLayout{RedShift: fb.RedShift, GreenShift: fb.GreenShift, BlueShift: fb.BlueShift}
	return NewDescriptor(mem, fb.Width, fb.Height, stride, layout)
}
