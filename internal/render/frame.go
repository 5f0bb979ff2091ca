package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-planets/internal/linear"
)

// asciiRamp goes from dark to bright.
const asciiRamp = " .:-=+*#%@"

// Frame is a grid of linear colors, row-major from the top-left.
type Frame struct {
	Width  int
	Height int
	Pix    []linear.Color
}

// NewFrame allocates a black frame.
func NewFrame(w, h int) *Frame {
	return &Frame{Width: w, Height: h, Pix: make([]linear.Color, w*h)}
}

// At returns the pixel at (x, y).
func (f *Frame) At(x, y int) linear.Color {
	return f.Pix[y*f.Width+x]
}

// Set writes the pixel at (x, y).
func (f *Frame) Set(x, y int, c linear.Color) {
	f.Pix[y*f.Width+x] = c
}

// Rows returns the number of terminal rows the frame occupies.
func (f *Frame) Rows() int {
	return (f.Height + 1) / 2
}

// cellColor is a quantized sRGB color used to merge neighbouring cells into
// a single styled run.
type cellColor struct {
	r, g, b uint8
}

func quantize(c linear.Color) cellColor {
	r, g, b := c.RGB8()
	return cellColor{r &^ 7, g &^ 7, b &^ 7}
}

func (c cellColor) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

type cell struct {
	top, bottom cellColor
}

// ANSI renders the frame with upper half blocks: the foreground is the top
// pixel, the background the bottom one.
func (f *Frame) ANSI() string {
	var b strings.Builder
	rows := f.Rows()
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		runStart := 0
		var run cell
		for x := 0; x <= f.Width; x++ {
			var c cell
			if x < f.Width {
				c = f.cellAt(x, row)
				if x == 0 {
					run = c
				}
				if c == run {
					continue
				}
			}
			writeRun(&b, run, x-runStart)
			runStart = x
			run = c
		}
	}
	return b.String()
}

func (f *Frame) cellAt(x, row int) cell {
	c := cell{top: quantize(f.At(x, row*2))}
	if row*2+1 < f.Height {
		c.bottom = quantize(f.At(x, row*2+1))
	}
	return c
}

func writeRun(b *strings.Builder, c cell, n int) {
	if n <= 0 {
		return
	}
	if c == (cell{}) {
		b.WriteString(strings.Repeat(" ", n))
		return
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.top.hex())).
		Background(lipgloss.Color(c.bottom.hex()))
	b.WriteString(style.Render(strings.Repeat("▀", n)))
}

// ASCII renders the frame as a luminance ramp, for output that cannot carry
// color.
func (f *Frame) ASCII() string {
	var b strings.Builder
	rows := f.Rows()
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < f.Width; x++ {
			lum := f.At(x, row*2).Luminance()
			if row*2+1 < f.Height {
				lum = (lum + f.At(x, row*2+1).Luminance()) / 2
			}
			b.WriteByte(rampChar(lum))
		}
	}
	return b.String()
}

func rampChar(lum float64) byte {
	// Ramp positions are spaced in sRGB so mid greys land mid ramp.
	v := float64(linear.LinearToSRGB(lum)) / 255
	i := int(v * float64(len(asciiRamp)-1))
	return asciiRamp[i]
}
