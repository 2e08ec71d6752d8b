package render

import (
	"fmt"
	"image/color"
)

// Color is a non-premultiplied sRGB color packed as 0xRRGGBBAA.
// The compact representation keeps brushes comparable and cheap to copy;
// backends unpack it into their own color model.
type Color uint32

// Common colors.
const (
	Black       Color = 0x000000FF
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFF0000FF
	Green       Color = 0x00FF00FF
	Blue        Color = 0x0000FFFF
	Transparent Color = 0x00000000
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA creates a color from 8-bit non-premultiplied components.
func RGBA(r, g, b, a uint8) Color {
	return Color(r)<<24 | Color(g)<<16 | Color(b)<<8 | Color(a)
}

// FromColor converts a standard color.Color to a packed Color,
// unpremultiplying if necessary.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c) }

// NRGBA returns the color as a standard non-premultiplied color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// WithAlpha returns the color with the alpha component replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0xFFFFFF00 | Color(a)
}

// String formats the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// Strings of any other length yield opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return RGBA(uint8(r), uint8(g), uint8(b), uint8(a))
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}
