package sdfvm

import (
	"image/color"
	"math"
)

// RGBA is a straight-alpha color with float64 components in [0, 1].
// Intermediate arithmetic (blend modes, gradients) may take components
// outside that range; they are clamped when converting to 8-bit output.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Lerp performs componentwise linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// MulAlpha returns the color with its alpha multiplied by f.
func (c RGBA) MulAlpha(f float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A * f}
}

// GammaEncode raises each color channel to the output gamma exponent,
// leaving alpha untouched. Applied once per pixel after the last
// instruction executes.
func (c RGBA) GammaEncode() RGBA {
	return RGBA{
		R: math.Pow(math.Max(c.R, 0), outputGamma),
		G: math.Pow(math.Max(c.G, 0), outputGamma),
		B: math.Pow(math.Max(c.B, 0), outputGamma),
		A: c.A,
	}
}

// outputGamma is the exponent applied to each channel of the final pixel.
const outputGamma = 2.2

// clamp255 restricts a value to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
