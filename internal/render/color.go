package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is an opaque 24-bit RGB value.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// NewColor builds a Color from its channels.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Packed returns the color as 0x00RRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack is the inverse of Packed. The high byte is ignored.
func Unpack(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// RGBA implements color.Color. The alpha channel is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// ParseColor parses a #rrggbb or #rgb string.
func ParseColor(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "parse color %q", s)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
