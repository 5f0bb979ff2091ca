package render

import (
	"math"
	"strings"
	"testing"

	"github.com/litescript/ls-planets/internal/asset"
	"github.com/litescript/ls-planets/internal/linear"
	"github.com/litescript/ls-planets/internal/scene"
)

func uniformTexture(c linear.Color) *asset.Texture {
	tex := asset.NewTexture(4, 2)
	for i := range tex.Pix {
		tex.Pix[i] = c
	}
	return tex
}

// flatScene places planet 1 dead ahead of the camera. The viewport is wide
// enough that its corners miss every planet.
func flatScene() (*scene.Scene, *scene.Camera, *Renderer) {
	cfg := scene.DefaultConfig()
	cfg.GroupTiltX = 0
	cfg.GroupOffsetY = 0
	s := scene.Build(cfg)

	r := New(DefaultOptions())
	r.SetSize(41, 5)
	cam := scene.NewCamera(cfg.Camera, r.Aspect())
	return s, cam, r
}

func TestRenderer_PixelSize(t *testing.T) {
	r := New(DefaultOptions())
	r.SetSize(80, 20)

	w, h := r.PixelSize()
	if w != 80 || h != 40 {
		t.Errorf("PixelSize = %dx%d, want 80x40", w, h)
	}
	if r.Aspect() != 2 {
		t.Errorf("Aspect = %v, want 2", r.Aspect())
	}

	r.SetSize(0, -3)
	if w, h := r.PixelSize(); w != 1 || h != 2 {
		t.Errorf("PixelSize after invalid size = %dx%d, want 1x2", w, h)
	}
}

func TestRenderer_SetPixelRatioClamps(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{0.5, 1},
		{1, 1},
		{1.6, 2},
		{3, 2},
	}
	for _, tt := range tests {
		r := New(DefaultOptions())
		r.SetPixelRatio(tt.ratio)
		if r.samples != tt.want {
			t.Errorf("SetPixelRatio(%v) samples = %d, want %d", tt.ratio, r.samples, tt.want)
		}
	}
}

func TestRender_NoEnvironmentIsDark(t *testing.T) {
	s, cam, r := flatScene()
	s.SetStarTexture(uniformTexture(linear.White))

	f := r.Render(s, cam)
	for i, c := range f.Pix {
		if c != (linear.Color{}) {
			t.Fatalf("pixel %d = %v, want black without environment", i, c)
		}
	}
}

func TestRender_EnvironmentLightsPlanet(t *testing.T) {
	s, cam, r := flatScene()
	s.SetEnvironment(asset.NewEnvironment(uniformTexture(linear.White)))

	f := r.Render(s, cam)

	center := f.At(20, 5)
	if math.Abs(center.R-1) > 1e-9 || math.Abs(center.G-1) > 1e-9 {
		t.Errorf("center pixel = %v, want white planet", center)
	}
	if corner := f.At(0, 0); corner != (linear.Color{}) {
		t.Errorf("corner pixel = %v, want black without stars", corner)
	}
}

func TestRender_StarsFillBackground(t *testing.T) {
	s, cam, r := flatScene()
	s.SetEnvironment(asset.NewEnvironment(uniformTexture(linear.White)))
	s.SetStarTexture(uniformTexture(linear.Color{R: 0.5, G: 0.5, B: 0.5}))

	f := r.Render(s, cam)
	if corner := f.At(0, 0); math.Abs(corner.R-0.5) > 1e-9 {
		t.Errorf("corner pixel = %v, want star texture 0.5", corner)
	}
}

func TestRender_PlanetTextureTinted(t *testing.T) {
	s, cam, r := flatScene()
	s.SetEnvironment(asset.NewEnvironment(uniformTexture(linear.White)))
	s.SetPlanetTexture(1, uniformTexture(linear.Color{G: 1}))

	f := r.Render(s, cam)
	if got := f.At(20, 5); got.R > 1e-9 || math.Abs(got.G-1) > 1e-9 {
		t.Errorf("center pixel = %v, want green planet", got)
	}
}

func TestRender_ExposureScales(t *testing.T) {
	s, cam, _ := flatScene()
	s.SetEnvironment(asset.NewEnvironment(uniformTexture(linear.White)))

	r := New(Options{PixelRatio: 1, Exposure: 0.25})
	r.SetSize(41, 5)
	f := r.Render(s, cam)
	if got := f.At(20, 5).R; math.Abs(got-0.25) > 1e-9 {
		t.Errorf("center R = %v, want 0.25", got)
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name  string
		n     linear.Vec3
		wantU float64
		wantV float64
	}{
		{"-X seam", linear.Vec3{X: -1}, 0, 0.5},
		{"+Z quarter", linear.Vec3{Z: 1}, 0.25, 0.5},
		{"+X half", linear.Vec3{X: 1}, 0.5, 0.5},
		{"north pole", linear.Vec3{Y: 1}, 0.5, 0},
		{"south pole", linear.Vec3{Y: -1}, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.n)
			if math.Abs(u-tt.wantU) > 1e-9 || math.Abs(v-tt.wantV) > 1e-9 {
				t.Errorf("sphereUV(%v) = (%v, %v), want (%v, %v)", tt.n, u, v, tt.wantU, tt.wantV)
			}
		})
	}
}

func TestFrame_ASCII(t *testing.T) {
	f := NewFrame(3, 4)
	for y := 0; y < 4; y++ {
		f.Set(2, y, linear.White)
	}
	f.Set(1, 0, linear.White) // half-lit top cell

	got := f.ASCII()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0][0] != ' ' || lines[0][2] != '@' {
		t.Errorf("row 0 = %q, want dark first and bright last", lines[0])
	}
	if c := lines[0][1]; c == ' ' || c == '@' {
		t.Errorf("half-lit cell = %q, want a mid ramp character", c)
	}
	if lines[1] != "  @" {
		t.Errorf("row 1 = %q, want %q", lines[1], "  @")
	}
}

func TestFrame_ANSIBlackIsPlain(t *testing.T) {
	f := NewFrame(4, 2)
	if got := f.ANSI(); got != "    " {
		t.Errorf("ANSI of black frame = %q, want four spaces", got)
	}
}

func TestFrame_ANSIMergesRuns(t *testing.T) {
	f := NewFrame(4, 2)
	for x := 0; x < 4; x++ {
		f.Set(x, 0, linear.White)
	}

	got := f.ANSI()
	if n := strings.Count(got, "▀"); n != 4 {
		t.Errorf("half block count = %d, want 4", n)
	}
	if strings.Contains(got, " ") {
		t.Errorf("uniform lit row should not contain spaces: %q", got)
	}
}

func TestFrame_Rows(t *testing.T) {
	if got := NewFrame(2, 5).Rows(); got != 3 {
		t.Errorf("Rows = %d, want 3", got)
	}
}
