// Package scene builds the planet scene graph and its camera.
package scene

import (
	"math"

	"github.com/litescript/ls-planets/internal/asset"
	"github.com/litescript/ls-planets/internal/linear"
)

// Side selects which faces of a mesh are visible.
type Side int

const (
	FrontSide Side = iota
	BackSide
)

// Sphere is a UV sphere mesh. Segments describes the tessellation; the
// renderer intersects the analytic sphere.
type Sphere struct {
	Radius   float64
	Segments int
}

// Material is an environment-lit surface. A nil Texture renders as Color.
type Material struct {
	Color   linear.Color
	Texture *asset.Texture
	Side    Side
}

// Node is an element of the scene graph.
type Node struct {
	Name     string
	Position linear.Vec3
	Rotation linear.Euler
	Mesh     *Sphere
	Material *Material
	Children []*Node
}

// Add appends children to n.
func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Scene is the root of the graph plus its image based lighting.
type Scene struct {
	Environment *asset.Environment

	// Stars is nil until its texture has loaded.
	Stars   *Node
	Planets *Node

	cfg Config
}

// Build constructs the scene graph once. Textures and the environment are
// attached later as their loads complete.
func Build(cfg Config) *Scene {
	group := &Node{
		Name:     "planets",
		Position: linear.Vec3{Y: cfg.GroupOffsetY},
		Rotation: linear.Euler{X: cfg.GroupTiltX},
	}

	n := len(cfg.Planets)
	for i, p := range cfg.Planets {
		angle := float64(i) / float64(n) * (math.Pi * 2)
		group.Add(&Node{
			Name: p.Name,
			Position: linear.Vec3{
				X: cfg.OrbitRadius * math.Cos(angle),
				Z: cfg.OrbitRadius * math.Sin(angle),
			},
			Mesh:     &Sphere{Radius: cfg.PlanetRadius, Segments: cfg.PlanetSegments},
			Material: &Material{Color: linear.White},
		})
	}

	return &Scene{Planets: group, cfg: cfg}
}

// Config returns the configuration the scene was built from.
func (s *Scene) Config() Config {
	return s.cfg
}

// PlanetNodes returns the planets in orbit order.
func (s *Scene) PlanetNodes() []*Node {
	return s.Planets.Children
}

// SetEnvironment installs the lighting environment.
func (s *Scene) SetEnvironment(env *asset.Environment) {
	s.Environment = env
}

// SetPlanetTexture wraps tex around planet i. Out of range indexes are ignored.
func (s *Scene) SetPlanetTexture(i int, tex *asset.Texture) {
	if i < 0 || i >= len(s.Planets.Children) {
		return
	}
	s.Planets.Children[i].Material.Texture = tex
}

// SetStarTexture adds the starfield sphere, textured on its inside.
func (s *Scene) SetStarTexture(tex *asset.Texture) {
	s.Stars = &Node{
		Name:     "stars",
		Mesh:     &Sphere{Radius: s.cfg.StarRadius, Segments: s.cfg.StarSegments},
		Material: &Material{Color: linear.White, Texture: tex, Side: BackSide},
	}
}

// SetSpin sets every planet's rotation about its vertical axis to the same
// absolute angle.
func (s *Scene) SetSpin(angle float64) {
	for _, p := range s.Planets.Children {
		p.Rotation.Y = angle
	}
}

// SpinAt returns the planet rotation for the given elapsed seconds.
func (s *Scene) SpinAt(elapsedSec float64) float64 {
	return elapsedSec * s.cfg.SpinRate
}

// GroupRotationY exposes the planet group's vertical rotation for tweening.
func (s *Scene) GroupRotationY() *float64 {
	return &s.Planets.Rotation.Y
}

// WorldPosition returns the world-space center of planet i.
func (s *Scene) WorldPosition(i int) linear.Vec3 {
	p := s.Planets.Children[i]
	return s.Planets.Position.Add(s.Planets.Rotation.Apply(p.Position))
}
