package hal

import (
	"errors"
	"testing"
)

func TestNewDescriptorValidates(t *testing.T) {
	cases := []struct {
		name   string
		mem    int
		w, h   int
		stride int
		layout PixelLayout
		want   error
	}{
		{"zero width", 16, 0, 4, 4, LayoutXRGB, ErrInvalidGeometry},
		{"zero height", 16, 4, 0, 4, LayoutXRGB, ErrInvalidGeometry},
		{"stride below width", 16, 4, 4, 3, LayoutXRGB, ErrInvalidGeometry},
		{"short memory", 15, 4, 4, 4, LayoutXRGB, ErrShortMemory},
		{"bad layout", 16, 4, 4, 4, PixelLayout{RedShift: 8, GreenShift: 8}, ErrUnsupportedLayout},
		{"ok", 16, 4, 4, 4, LayoutXRGB, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDescriptor(make([]uint32, tc.mem), tc.w, tc.h, tc.stride, tc.layout)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDescriptorMemoryIsExact(t *testing.T) {
	d, err := NewDescriptor(make([]uint32, 100), 4, 3, 6, LayoutXRGB)
	if err != nil {
		t.Fatalf("NewDescriptor: %v", err)
	}
	if got := len(d.Memory()); got != 18 {
		t.Fatalf("expected view of 18 words, got %d", got)
	}
	if got := cap(d.Memory()); got != 18 {
		t.Fatalf("expected capacity 18, got %d", got)
	}
	if !d.Valid() {
		t.Fatal("expected valid descriptor")
	}
	if (Descriptor{}).Valid() {
		t.Fatal("zero descriptor must not be valid")
	}
}

func TestDescriptorRGBASkipsPadding(t *testing.T) {
	d, err := NewMemoryDescriptor(2, 2, 3, LayoutXBGR)
	if err != nil {
		t.Fatalf("NewMemoryDescriptor: %v", err)
	}
	mem := d.Memory()
	mem[0] = LayoutXBGR.Encode(0x112233)
	mem[2] = 0xFFFFFFFF // padding
	mem[4] = LayoutXBGR.Encode(0xAABBCC)

	img := d.RGBA()
	if got := img.RGBAAt(0, 0); got.R != 0x11 || got.G != 0x22 || got.B != 0x33 || got.A != 0xFF {
		t.Fatalf("unexpected (0,0): %+v", got)
	}
	if got := img.RGBAAt(1, 1); got.R != 0xAA || got.G != 0xBB || got.B != 0xCC {
		t.Fatalf("unexpected (1,1): %+v", got)
	}
	if got := img.RGBAAt(0, 1); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Fatalf("padding leaked into (0,1): %+v", got)
	}
}
