package geometry

import (
	"math"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center        core.Vec3
	Radius        float64
	RadiusSquared float64

	material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:        center,
		Radius:        radius,
		RadiusSquared: radius * radius,
		material:      material,
	}
}

// Intersect tests the ray against the sphere using closest-point algebra:
// project the center-relative vector onto the ray direction to find the
// closest approach t, then resolve the near and far roots from the
// perpendicular distance. A ray starting inside the sphere still resolves to
// the forward exit root; if both roots are behind the origin there is no
// intersection.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	toCenter := s.Center.Subtract(ray.Origin)

	// Parametric distance to the closest approach of the ray to the center
	t := ray.Direction.Dot(toCenter)

	// Squared perpendicular distance from the center to the ray
	ySquared := ray.Direction.Multiply(t).Subtract(toCenter).LengthSquared()
	if ySquared > s.RadiusSquared {
		return 0, false
	}

	// Reject a sphere entirely behind the ray origin. The closest approach
	// may still be behind the origin while the far root lies ahead (origin
	// inside the sphere), so only t+x < 0 rules the sphere out.
	x := math.Sqrt(s.RadiusSquared - ySquared)
	t0 := t - x
	t1 := t + x
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// NormalAt returns the outward surface normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Material returns the material covering the sphere
func (s *Sphere) Material() core.Material {
	return s.material
}
