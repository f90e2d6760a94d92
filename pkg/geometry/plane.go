package geometry

import (
	"math"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

// Epsilon below which a ray is treated as parallel to a plane, and below
// which an intersection is treated as self-intersection at the ray origin.
const planeEpsilon = 1e-4

// Plane represents an infinite plane defined by a point and a normal
type Plane struct {
	Center core.Vec3
	normal core.Vec3 // normalized at construction

	material core.Material
}

// NewPlane creates a new plane. The normal is normalized at construction so
// NormalAt never recomputes it.
func NewPlane(center, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Center:   center,
		normal:   normal.Normalize(),
		material: material,
	}
}

// Intersect solves t = (center - origin)·normal / (direction·normal). A
// denominator near zero means the ray runs parallel to the plane; a t below
// a small positive epsilon would self-intersect at the origin. Both report
// no intersection.
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.normal.Dot(ray.Direction)
	if math.Abs(denominator) < planeEpsilon {
		return 0, false
	}

	t := p.Center.Subtract(ray.Origin).Dot(p.normal) / denominator
	if t < planeEpsilon {
		return 0, false
	}

	return t, true
}

// NormalAt returns the plane's fixed normal regardless of point
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.normal
}

// Material returns the material covering the plane
func (p *Plane) Material() core.Material {
	return p.material
}
