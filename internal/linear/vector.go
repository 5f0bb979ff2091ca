// Package linear implements the small amount of vector math the renderer needs.
package linear

import "math"

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Len returns the length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Norm returns v scaled to unit length. The zero vector is returned as is.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Euler is an XYZ-ordered rotation in radians.
// The matrix it represents is Rx * Ry * Rz; Z is unused by the scene but kept
// so the order is explicit.
type Euler struct {
	X, Y, Z float64
}

// Apply rotates v by e.
func (e Euler) Apply(v Vec3) Vec3 {
	return rotX(rotY(rotZ(v, e.Z), e.Y), e.X)
}

// Inverse rotates v by the inverse of e.
func (e Euler) Inverse(v Vec3) Vec3 {
	return rotZ(rotY(rotX(v, -e.X), -e.Y), -e.Z)
}

func rotX(v Vec3, a float64) Vec3 {
	if a == 0 {
		return v
	}
	s, c := math.Sincos(a)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

func rotY(v Vec3, a float64) Vec3 {
	if a == 0 {
		return v
	}
	s, c := math.Sincos(a)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

func rotZ(v Vec3, a float64) Vec3 {
	if a == 0 {
		return v
	}
	s, c := math.Sincos(a)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// Ray is a half-line starting at Origin with unit Dir.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance t along r.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// IntersectSphere returns the nearest positive hit distance of r with the
// sphere at center with radius. When the origin is inside the sphere the far
// hit is returned, which is what back-side materials need.
func IntersectSphere(r Ray, center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if t := -b - sq; t > 1e-9 {
		return t, true
	}
	if t := -b + sq; t > 1e-9 {
		return t, true
	}
	return 0, false
}
