// Package render ray-casts the planet scene into a pixel frame that can be
// printed to a terminal.
package render

import (
	"math"

	"github.com/litescript/ls-planets/internal/asset"
	"github.com/litescript/ls-planets/internal/linear"
	"github.com/litescript/ls-planets/internal/scene"
)

// Options tune output quality.
type Options struct {
	// PixelRatio is the supersampling factor per axis, clamped to [1,2].
	PixelRatio float64
	// Exposure scales lighting before tone mapping.
	Exposure float64
}

// DefaultOptions returns one sample per pixel and neutral exposure.
func DefaultOptions() Options {
	return Options{PixelRatio: 1, Exposure: 1}
}

// Renderer draws a scene from a camera. Each terminal cell holds two
// vertically stacked pixels.
type Renderer struct {
	cols, rows int
	samples    int
	exposure   float64
}

// New creates a renderer with a 1x1 cell viewport.
func New(opts Options) *Renderer {
	r := &Renderer{cols: 1, rows: 1, exposure: opts.Exposure}
	if r.exposure <= 0 {
		r.exposure = 1
	}
	r.SetPixelRatio(opts.PixelRatio)
	return r
}

// SetSize sets the viewport in terminal cells.
func (r *Renderer) SetSize(cols, rows int) {
	r.cols = max(cols, 1)
	r.rows = max(rows, 1)
}

// SetPixelRatio sets supersampling, clamped to [1, 2].
func (r *Renderer) SetPixelRatio(ratio float64) {
	r.samples = int(math.Round(math.Min(math.Max(ratio, 1), 2)))
}

// PixelSize returns the frame dimensions in pixels.
func (r *Renderer) PixelSize() (w, h int) {
	return r.cols, r.rows * 2
}

// Aspect returns the pixel aspect ratio of the viewport.
func (r *Renderer) Aspect() float64 {
	w, h := r.PixelSize()
	return float64(w) / float64(h)
}

// Render draws s as seen from cam.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) *Frame {
	w, h := r.PixelSize()
	f := NewFrame(w, h)
	n := r.samples
	weight := 1 / float64(n*n)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum linear.Color
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					sx := (float64(x) + (float64(i)+0.5)/float64(n)) / float64(w)
					sy := (float64(y) + (float64(j)+0.5)/float64(n)) / float64(h)
					sum = sum.Add(r.trace(s, cam, cam.Ray(sx, sy)))
				}
			}
			f.Set(x, y, sum.Scale(weight*r.exposure))
		}
	}
	return f
}

// trace returns the linear color seen along ray. Empty space is black.
func (r *Renderer) trace(s *scene.Scene, cam *scene.Camera, ray linear.Ray) linear.Color {
	g := s.Planets
	local := linear.Ray{
		Origin: g.Rotation.Inverse(ray.Origin.Sub(g.Position)),
		Dir:    g.Rotation.Inverse(ray.Dir),
	}

	var hitNode *scene.Node
	best := cam.Far
	for _, p := range g.Children {
		t, ok := linear.IntersectSphere(local, p.Position, p.Mesh.Radius)
		if ok && t >= cam.Near && t < best {
			best = t
			hitNode = p
		}
	}

	if hitNode != nil {
		n := local.At(best).Sub(hitNode.Position).Scale(1 / hitNode.Mesh.Radius)
		albedo := surfaceColor(hitNode.Material, hitNode.Rotation.Inverse(n))
		return shade(albedo, g.Rotation.Apply(n), s.Environment)
	}

	if st := s.Stars; st != nil {
		t, ok := linear.IntersectSphere(ray, st.Position, st.Mesh.Radius)
		if ok && t >= cam.Near && t <= cam.Far {
			n := ray.At(t).Sub(st.Position).Scale(1 / st.Mesh.Radius)
			albedo := surfaceColor(st.Material, st.Rotation.Inverse(n))
			normal := n
			if st.Material.Side == scene.BackSide {
				normal = n.Scale(-1)
			}
			return shade(albedo, normal, s.Environment)
		}
	}

	return linear.Color{}
}

// surfaceColor returns the albedo at the point with object-space unit
// normal n.
func surfaceColor(m *scene.Material, n linear.Vec3) linear.Color {
	if m.Texture == nil {
		return m.Color
	}
	u, v := sphereUV(n)
	return m.Texture.Sample(u, v).Mul(m.Color)
}

// sphereUV maps a unit normal to equirectangular texture coordinates, with u
// starting at -X and v measured from the top row of the texture.
func sphereUV(n linear.Vec3) (u, v float64) {
	y := math.Max(-1, math.Min(1, n.Y))
	phi := math.Atan2(n.Z, -n.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi / (2 * math.Pi), math.Acos(y) / math.Pi
}

// shade applies diffuse image based lighting. Without an environment there
// is no light at all.
func shade(albedo linear.Color, normal linear.Vec3, env *asset.Environment) linear.Color {
	if env == nil {
		return linear.Color{}
	}
	return albedo.Mul(env.Diffuse(normal))
}
