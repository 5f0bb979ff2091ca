package scene

import (
	"math"

	"github.com/litescript/ls-planets/internal/linear"
)

// Camera is a perspective camera looking down -Z.
type Camera struct {
	FOVDeg   float64 // vertical field of view
	Aspect   float64
	Near     float64
	Far      float64
	Position linear.Vec3

	tanHalf float64
}

// NewCamera creates a camera from cfg with the given aspect ratio.
func NewCamera(cfg CameraConfig, aspect float64) *Camera {
	c := &Camera{
		FOVDeg:   cfg.FOVDeg,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Position: linear.Vec3{Z: cfg.Z},
	}
	c.SetAspect(aspect)
	return c
}

// SetAspect changes the aspect ratio and updates the projection.
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = 1
	}
	c.Aspect = aspect
	c.UpdateProjection()
}

// UpdateProjection recomputes derived projection terms after a field changes.
func (c *Camera) UpdateProjection() {
	c.tanHalf = math.Tan(c.FOVDeg * math.Pi / 360)
}

// Ray returns the view ray through normalized screen coordinates, where
// (0,0) is the top-left corner and (1,1) the bottom-right.
func (c *Camera) Ray(sx, sy float64) linear.Ray {
	x := (2*sx - 1) * c.tanHalf * c.Aspect
	y := (1 - 2*sy) * c.tanHalf
	return linear.Ray{
		Origin: c.Position,
		Dir:    linear.Vec3{X: x, Y: y, Z: -1}.Norm(),
	}
}
