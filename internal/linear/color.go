package linear

import (
	"fmt"
	"math"
)

// Color is a linear-light RGB triple. Components are not clamped; HDR values
// above 1 are expected from environment maps.
type Color struct {
	R, G, B float64
}

// White is the albedo of an untextured material.
var White = Color{1, 1, 1}

// Mul returns the component-wise product of c and d.
func (c Color) Mul(d Color) Color { return Color{c.R * d.R, c.G * d.G, c.B * d.B} }

// Add returns c + d.
func (c Color) Add(d Color) Color { return Color{c.R + d.R, c.G + d.G, c.B + d.B} }

// Scale returns c * s.
func (c Color) Scale(s float64) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Luminance returns the Rec. 709 relative luminance of c.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Lerp interpolates between c and d.
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		c.R + (d.R-c.R)*t,
		c.G + (d.G-c.G)*t,
		c.B + (d.B-c.B)*t,
	}
}

// SRGBToLinear decodes an 8-bit sRGB channel.
func SRGBToLinear(v uint8) float64 {
	return srgbLUT[v]
}

var srgbLUT = func() [256]float64 {
	var lut [256]float64
	for i := range lut {
		c := float64(i) / 255
		if c <= 0.04045 {
			lut[i] = c / 12.92
		} else {
			lut[i] = math.Pow((c+0.055)/1.055, 2.4)
		}
	}
	return lut
}()

// LinearToSRGB encodes a linear channel to 8-bit sRGB, clamping to [0,1].
func LinearToSRGB(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	var c float64
	if v <= 0.0031308 {
		c = v * 12.92
	} else {
		c = 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return uint8(math.Round(c * 255))
}

// RGB8 returns c encoded as 8-bit sRGB.
func (c Color) RGB8() (r, g, b uint8) {
	return LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B)
}

// Hex returns c as a #RRGGBB sRGB string.
func (c Color) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
