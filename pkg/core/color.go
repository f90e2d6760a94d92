package core

import "math"

// Color is an HDR linear-radiance RGB triple. Channels are unbounded and may
// exceed 1.0; values are only clamped during tone mapping.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Mul returns component-wise multiplication of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// ToneMap converts HDR radiance to displayable 8-bit channels. Each channel
// is scaled by exposure, gamma-corrected, clamped to [0,1], then scaled to
// [0,255]. With exposure = gamma = 1 a channel in [0,1] maps to
// round(255*value) exactly.
func (c Color) ToneMap(exposure, gamma float64) (r, g, b uint8) {
	return toneMapChannel(c.R, exposure, gamma),
		toneMapChannel(c.G, exposure, gamma),
		toneMapChannel(c.B, exposure, gamma)
}

func toneMapChannel(v, exposure, gamma float64) uint8 {
	v *= exposure
	if v <= 0 {
		return 0
	}
	if gamma != 1.0 {
		v = math.Pow(v, 1.0/gamma)
	}
	if v > 1 {
		v = 1
	}
	return uint8(255.0*v + 0.5)
}
