package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func newTestHeadings() HeadingsModel {
	return NewHeadingsModel([]string{"Csilla", "Earth", "Venus", "Volcanic"}).SetSize(30)
}

func setOffsets(h HeadingsModel, v float64) {
	for _, p := range h.Offsets() {
		*p = v
	}
}

func TestHeadingsModel_View(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		want    []string
		notWant []string
	}{
		{"first heading", 0, []string{"C S I L L A", "01 / 04"}, []string{"E A R T H"}},
		{"second heading", -100, []string{"E A R T H", "02 / 04"}, []string{"C S I L L A"}},
		{"last heading", -300, []string{"V O L C A N I C", "04 / 04"}, []string{"V E N U S"}},
		{"mid slide", -50, []string{"01 / 04", "E A R T H"}, []string{"C S I L L A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHeadings()
			setOffsets(h, tt.offset)
			view := h.View()

			for _, s := range tt.want {
				if !strings.Contains(view, s) {
					t.Errorf("view missing %q:\n%s", s, view)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(view, s) {
					t.Errorf("view should not contain %q:\n%s", s, view)
				}
			}
		})
	}
}

func TestHeadingsModel_StripHeight(t *testing.T) {
	h := newTestHeadings()
	lines := strings.Split(h.View(), "\n")
	if len(lines) != headingRows {
		t.Fatalf("strip has %d lines, want %d", len(lines), headingRows)
	}
	for i, line := range lines {
		if n := lipgloss.Width(line); n != 30 {
			t.Errorf("line %d width = %d, want 30", i, n)
		}
	}
}

func TestHeadingsModel_OffsetsShared(t *testing.T) {
	h := newTestHeadings()
	copied := h.SetSize(50)
	*h.Offsets()[2] = -42

	if got := copied.offsets[2]; got != -42 {
		t.Errorf("copied offset = %v, want -42", got)
	}
}

func TestHeadingsModel_Title(t *testing.T) {
	h := newTestHeadings()
	if got := h.Title(2); got != "Venus" {
		t.Errorf("Title(2) = %q, want Venus", got)
	}
	if got := h.Title(9); got != "" {
		t.Errorf("Title(9) = %q, want empty", got)
	}
}

func TestGradientColor(t *testing.T) {
	tests := []struct {
		name string
		col  int
		row  int
		want string
	}{
		{"left edge is blue", 0, 0, "#3B82F6"},
		{"bottom row is dimmed", 0, 1, "#2C61B8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gradientColor(tt.col, tt.row, 10, 2); got != tt.want {
				t.Errorf("gradientColor = %s, want %s", got, tt.want)
			}
		})
	}
}
