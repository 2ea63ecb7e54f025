package core

import (
	"math"
)

// Color is an RGB triple in linear space. It has no Length; convert with
// Vec3() when geometric operations are needed.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromVec reinterprets the components of v as r, g, b
func ColorFromVec(v Vec3) Color {
	return Color{R: v.X, G: v.Y, B: v.Z}
}

// Vec3 reinterprets the channels as x, y, z
func (c Color) Vec3() Vec3 {
	return Vec3{X: c.R, Y: c.G, Z: c.B}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the channel-wise product (attenuation)
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Lerp linearly interpolates from c (t=0) to other (t=1)
func (c Color) Lerp(other Color, t float64) Color {
	return c.Multiply(1.0 - t).Add(other.Multiply(t))
}

// Clamp returns a color with channels clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// GammaCorrect applies gamma correction to every channel.
// Gamma 2 is a plain square root.
func (c Color) GammaCorrect(gamma float64) Color {
	if gamma == 2.0 {
		return Color{math.Sqrt(c.R), math.Sqrt(c.G), math.Sqrt(c.B)}
	}
	invGamma := 1.0 / gamma
	return Color{
		R: math.Pow(c.R, invGamma),
		G: math.Pow(c.G, invGamma),
		B: math.Pow(c.B, invGamma),
	}
}

// ToBytes maps each channel to round(clamp(channel, 0, 1) * 255)
func (c Color) ToBytes() (r, g, b uint8) {
	return channelToByte(c.R), channelToByte(c.G), channelToByte(c.B)
}

func channelToByte(v float64) uint8 {
	// min and max propagate NaN
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(max(0, min(1, v)) * 255))
}
