package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"math"

	"github.com/litescript/ls-planets/internal/linear"
)

// Texture is a decoded image stored as linear-light colors, row-major from
// the top-left corner.
type Texture struct {
	Width  int
	Height int
	Pix    []linear.Color
}

// NewTexture allocates a black texture.
func NewTexture(w, h int) *Texture {
	return &Texture{Width: w, Height: h, Pix: make([]linear.Color, w*h)}
}

// At returns the texel at column x and row y. Coordinates wrap horizontally
// and clamp vertically.
func (t *Texture) At(x, y int) linear.Color {
	x %= t.Width
	if x < 0 {
		x += t.Width
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pix[y*t.Width+x]
}

// Set writes the texel at column x and row y.
func (t *Texture) Set(x, y int, c linear.Color) {
	t.Pix[y*t.Width+x] = c
}

// Sample returns the nearest texel for u in [0,1) left to right and v in
// [0,1] top to bottom.
func (t *Texture) Sample(u, v float64) linear.Color {
	x := int(math.Floor(u * float64(t.Width)))
	y := int(math.Floor(v * float64(t.Height)))
	return t.At(x, y)
}

// SampleBilinear filters between the four nearest texels.
func (t *Texture) SampleBilinear(u, v float64) linear.Color {
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	top := t.At(x0, y0).Lerp(t.At(x0+1, y0), tx)
	bottom := t.At(x0, y0+1).Lerp(t.At(x0+1, y0+1), tx)
	return top.Lerp(bottom, ty)
}

// DecodeTexture decodes a PNG or JPEG image whose pixels are sRGB encoded.
func DecodeTexture(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("decode texture: %w", ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return TextureFromImage(img), nil
}

// TextureFromImage converts an sRGB image to a linear texture.
func TextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	tex := NewTexture(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			tex.Set(x-b.Min.X, y-b.Min.Y, linear.Color{
				R: linear.SRGBToLinear(uint8(r >> 8)),
				G: linear.SRGBToLinear(uint8(g >> 8)),
				B: linear.SRGBToLinear(uint8(bl >> 8)),
			})
		}
	}
	return tex
}

// Downsample returns a w x h texture where each texel is the average of the
// source block it covers.
func (t *Texture) Downsample(w, h int) *Texture {
	out := NewTexture(w, h)
	for y := 0; y < h; y++ {
		y0 := y * t.Height / h
		y1 := max((y+1)*t.Height/h, y0+1)
		for x := 0; x < w; x++ {
			x0 := x * t.Width / w
			x1 := max((x+1)*t.Width/w, x0+1)
			var sum linear.Color
			n := 0
			for sy := y0; sy < y1 && sy < t.Height; sy++ {
				for sx := x0; sx < x1 && sx < t.Width; sx++ {
					sum = sum.Add(t.Pix[sy*t.Width+sx])
					n++
				}
			}
			if n > 0 {
				out.Set(x, y, sum.Scale(1/float64(n)))
			}
		}
	}
	return out
}
