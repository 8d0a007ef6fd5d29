package core

import (
	"fmt"
	"math"
)

// Color is an 8-bit-per-channel RGB color
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromVec converts a linear color with channels nominally in [0, 1]
// to a Color, clamping to [0, 255] and rounding. NaN channels become 0.
func ColorFromVec(v Vec3) Color {
	scaled := v.Multiply(255).Clamp(0, 255)
	return Color{
		R: channelToByte(scaled.X),
		G: channelToByte(scaled.Y),
		B: channelToByte(scaled.Z),
	}
}

// Vec returns the color as a Vec3 with channels in [0, 1]
func (c Color) Vec() Vec3 {
	return Vec3{
		X: float64(c.R) / 255.0,
		Y: float64(c.G) / 255.0,
		Z: float64(c.B) / 255.0,
	}
}

// Bytes returns the color as an RGB byte triple
func (c Color) Bytes() [3]byte {
	return [3]byte{c.R, c.G, c.B}
}

// RGBA implements image/color.Color with an opaque alpha channel
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String formats the color as rgb(r, g, b)
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// channelToByte rounds a channel already clamped to [0, 255]. Clamp passes
// NaN through, so it is mapped to 0 here.
func channelToByte(f float64) uint8 {
	if math.IsNaN(f) {
		return 0
	}
	return uint8(math.Round(f))
}
