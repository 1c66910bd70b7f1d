package matrix

import "image/color"

// A Color is an opaque RGB color with 8 bits per channel.
// The zero Color is black.
type Color struct {
	R, G, B uint8
}

// Packed returns c as 0xRRGGBB, the form most drawing surfaces
// take for a solid color.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack returns the Color for the packed value 0xRRGGBB.
// Bits above the low 24 are ignored.
func Unpack(p uint32) Color {
	return Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

// RGBA implements the color.Color interface.
// The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

var _ color.Color = Color{}

// Gray maps a scalar onto the blue-to-red gradient used for cells.
// The scalar is clamped to [0, 1] first, so 0 and anything below it is
// pure blue, 1 and anything above it is pure red. NaN maps to blue.
// Green is always zero.
func Gray(v float64) Color {
	if !(v > 0) {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return Color{
		R: uint8(int(v*255 + .5)),
		B: uint8(int((1-v)*255 + .5)),
	}
}
