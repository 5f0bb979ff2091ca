package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeadingsModel draws the planet titles stacked in a strip of headingRows
// rows. Each heading is offset by a percentage of the strip height.
type HeadingsModel struct {
	titles  []string
	offsets []float64
	width   int
}

// NewHeadingsModel creates a strip with every offset at zero.
func NewHeadingsModel(titles []string) HeadingsModel {
	return HeadingsModel{
		titles:  titles,
		offsets: make([]float64, len(titles)),
	}
}

// SetSize updates the strip width.
func (h HeadingsModel) SetSize(width int) HeadingsModel {
	h.width = width
	return h
}

// Offsets returns pointers to each heading's offset in percent. Copies of the
// model share the same offsets.
func (h HeadingsModel) Offsets() []*float64 {
	ptrs := make([]*float64, len(h.offsets))
	for i := range h.offsets {
		ptrs[i] = &h.offsets[i]
	}
	return ptrs
}

// Title returns heading i, or "" when out of range.
func (h HeadingsModel) Title(i int) string {
	if i < 0 || i >= len(h.titles) {
		return ""
	}
	return h.titles[i]
}

// top returns the strip row heading i starts on.
func (h HeadingsModel) top(i int) int {
	return i*headingRows + int(math.Round(h.offsets[i]/100*headingRows))
}

// View implements the strip rendering.
func (h HeadingsModel) View() string {
	rows := make([]string, headingRows)
	for i := range h.titles {
		top := h.top(i)
		block := h.block(i)
		for r := range rows {
			if rel := r - top; rel >= 0 && rel < len(block) {
				rows[r] = block[rel]
			}
		}
	}

	for r, row := range rows {
		if h.width > 0 {
			rows[r] = lipgloss.PlaceHorizontal(h.width, lipgloss.Center, row)
		}
	}
	return strings.Join(rows, "\n")
}

// block returns the headingRows lines of heading i.
func (h HeadingsModel) block(i int) []string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	caption := fmt.Sprintf("%02d / %02d", i+1, len(h.titles))
	return []string{
		"",
		renderGradientTitle(h.titles[i]),
		muted.Render(caption),
	}
}

// renderGradientTitle letter-spaces an uppercased title and colors it with
// the nebula gradient.
func renderGradientTitle(title string) string {
	runes := []rune(strings.Join(strings.Split(strings.ToUpper(title), ""), " "))

	var b strings.Builder
	for col, r := range runes {
		color := gradientColor(col, 0, len(runes), 1)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// gradientColor returns a hex color for a position in the title gradient.
// Blue -> purple -> magenta -> pink, fading toward the bottom rows.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Blue (#3B82F6) -> Purple (#8B5CF6) -> Magenta (#D946EF) -> Pink (#EC4899)
	var r, g, b float64

	if xRatio < 0.33 {
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else if xRatio < 0.66 {
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	} else {
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	brightness := 1.0 - (yRatio * 0.5)

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r*brightness), clampByte(g*brightness), clampByte(b*brightness))
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}
