package asset

import (
	"math"

	"github.com/litescript/ls-planets/internal/linear"
)

// Irradiance map resolution. Small enough to build quickly, large enough to
// keep the sky/ground split of an outdoor HDRI.
const (
	irradianceWidth  = 32
	irradianceHeight = 16
)

// Environment is an equirectangular environment map used for image based
// lighting. Radiance is the full map; Irradiance is a blurred copy used for
// diffuse shading.
type Environment struct {
	Radiance   *Texture
	Irradiance *Texture
}

// NewEnvironment prepares an environment from an equirectangular texture.
func NewEnvironment(tex *Texture) *Environment {
	small := tex.Downsample(irradianceWidth, irradianceHeight)
	return &Environment{
		Radiance:   tex,
		Irradiance: blur(blur(small)),
	}
}

// equirectUV maps a world direction to equirectangular coordinates, with v
// measured from the top row.
func equirectUV(dir linear.Vec3) (u, v float64) {
	d := dir.Norm()
	y := math.Max(-1, math.Min(1, d.Y))
	u = math.Atan2(d.Z, d.X)/(2*math.Pi) + 0.5
	v = 0.5 - math.Asin(y)/math.Pi
	return u, v
}

// Radiant returns the environment color seen along dir.
func (e *Environment) Radiant(dir linear.Vec3) linear.Color {
	u, v := equirectUV(dir)
	return e.Radiance.Sample(u, v)
}

// Diffuse returns the irradiance arriving at a surface with normal n.
func (e *Environment) Diffuse(n linear.Vec3) linear.Color {
	u, v := equirectUV(n)
	return e.Irradiance.SampleBilinear(u, v)
}

// blur is a 3x3 box filter that wraps horizontally.
func blur(t *Texture) *Texture {
	out := NewTexture(t.Width, t.Height)
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			var sum linear.Color
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sum = sum.Add(t.At(x+dx, y+dy))
				}
			}
			out.Set(x, y, sum.Scale(1.0/9))
		}
	}
	return out
}
