package render

import (
	"image/color"
	"testing"
)

func TestColorPacking(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if uint32(c) != 0x12345678 {
		t.Fatalf("RGBA packed = %#08x, want 0x12345678", uint32(c))
	}
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x78 {
		t.Errorf("components = %02x %02x %02x %02x, want 12 34 56 78",
			c.R(), c.G(), c.B(), c.A())
	}
	if got := RGB(0x12, 0x34, 0x56); got.A() != 0xFF {
		t.Errorf("RGB alpha = %02x, want FF", got.A())
	}
}

func TestColorNRGBA(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	if got := c.NRGBA(); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Color
	}{
		{"opaque nrgba", color.NRGBA{R: 10, G: 20, B: 30, A: 255}, RGBA(10, 20, 30, 255)},
		{"translucent nrgba", color.NRGBA{R: 10, G: 20, B: 30, A: 40}, RGBA(10, 20, 30, 40)},
		{"premultiplied rgba", color.RGBA{R: 128, G: 0, B: 0, A: 128}, RGBA(255, 0, 0, 128)},
		{"black", color.Black, Black},
		{"white", color.White, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.c); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{"short rgb", "#F00", Red},
		{"short rgba", "#F008", RGBA(0xFF, 0, 0, 0x88)},
		{"long rgb", "00FF00", Green},
		{"long rgba", "#11223344", RGBA(0x11, 0x22, 0x33, 0x44)},
		{"no hash", "0000FF", Blue},
		{"bad length", "12345", Black},
		{"empty", "", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	if got := Red.WithAlpha(0x80); got != RGBA(0xFF, 0, 0, 0x80) {
		t.Errorf("WithAlpha = %v", got)
	}
}

func TestColorString(t *testing.T) {
	if got := Red.String(); got != "#FF0000FF" {
		t.Errorf("String() = %q, want %q", got, "#FF0000FF")
	}
}
