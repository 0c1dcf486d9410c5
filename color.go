package pix

import "fmt"

// Color is an 8-bit-per-channel RGB color with an optional alpha.
// It is an immutable value object; construct one with NewColor or Hex.
type Color struct {
	R, G, B uint8

	// A is kept so callers can inspect the alpha a color was built
	// with. The packed pixel format carries no alpha channel, so A
	// never reaches a surface.
	A uint8
}

// NewColor builds a Color from 3 (RGB) or 4 (RGBA) integer channels,
// each in [0, 255]. A 3-channel color is opaque.
func NewColor(channels ...int) (Color, error) {
	if len(channels) != 3 && len(channels) != 4 {
		return Color{}, invalidf("color", "need 3 or 4 channels, got %d", len(channels))
	}
	for i, v := range channels {
		if v < 0 || v > 255 {
			return Color{}, invalidf("color", "channel %d out of range [0, 255]: %d", i, v)
		}
	}
	c := Color{
		R: uint8(channels[0]),
		G: uint8(channels[1]),
		B: uint8(channels[2]),
		A: 0xFF,
	}
	if len(channels) == 4 {
		c.A = uint8(channels[3])
	}
	return c, nil
}

// Hex builds a Color from a 6-digit RRGGBB or 8-digit RRGGBBAA hex
// string. Digits are case-insensitive; no "#" prefix is accepted.
func Hex(s string) (Color, error) {
	if len(s) != 6 && len(s) != 8 {
		return Color{}, invalidf("color", "hex string must have 6 or 8 digits, got %q", s)
	}
	var ch [4]uint8
	ch[3] = 0xFF
	for i := 0; i < len(s)/2; i++ {
		hi, ok1 := hexNibble(s[2*i])
		lo, ok2 := hexNibble(s[2*i+1])
		if !ok1 || !ok2 {
			return Color{}, invalidf("color", "non-hex digit in %q", s)
		}
		ch[i] = hi<<4 | lo
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Packed returns the color in COLORREF layout: blue in bits 16-23,
// green in bits 8-15, red in bits 0-7. Alpha is never encoded.
func (c Color) Packed() uint32 {
	return uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Common colors
var (
	Black   = Color{0x00, 0x00, 0x00, 0xFF}
	White   = Color{0xFF, 0xFF, 0xFF, 0xFF}
	Red     = Color{0xFF, 0x00, 0x00, 0xFF}
	Green   = Color{0x00, 0xFF, 0x00, 0xFF}
	Blue    = Color{0x00, 0x00, 0xFF, 0xFF}
	Yellow  = Color{0xFF, 0xFF, 0x00, 0xFF}
	Cyan    = Color{0x00, 0xFF, 0xFF, 0xFF}
	Magenta = Color{0xFF, 0x00, 0xFF, 0xFF}
)
