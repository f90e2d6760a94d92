package material

import (
	"math"
	"math/rand"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

// Refractor is a clear dielectric like glass. Rays bend according to
// Snell's law, entering or exiting by the sign of the incoming direction
// against the normal; total internal reflection falls back to mirror
// behavior. There is no color absorption.
type Refractor struct {
	RefractiveIndex float64 // e.g. 1.5 for glass
}

// NewRefractor creates a new dielectric material with the given index
func NewRefractor(refractiveIndex float64) *Refractor {
	return &Refractor{RefractiveIndex: refractiveIndex}
}

// ColorAt implements the core.Material interface for dielectric refraction
func (r *Refractor) ColorAt(point, normal core.Vec3, rayIn core.Ray, scene *core.Scene, depth int, random *rand.Rand) core.Color {
	if depth > MaxDepth {
		return core.Color{}
	}

	direction := rayIn.Direction.Normalize()

	// Entering: ray runs against the normal, ratio is air→material.
	// Exiting: flip the normal and use the material→air ratio.
	n := normal
	eta := 1.0 / r.RefractiveIndex
	cosI := -direction.Dot(n)
	if cosI < 0 {
		n = n.Negate()
		cosI = -cosI
		eta = r.RefractiveIndex
	}

	// Snell's law in vector form; a negative discriminant means the exit
	// angle would exceed the critical angle (total internal reflection).
	discriminant := 1.0 - eta*eta*(1.0-cosI*cosI)
	if discriminant < 0 {
		reflected := reflect(direction, n).Normalize()
		origin := point.Add(n.Multiply(Bias))
		return traceColor(scene, core.NewRay(origin, reflected), depth+1, random)
	}

	refracted := direction.Multiply(eta).
		Add(n.Multiply(eta*cosI - math.Sqrt(discriminant))).
		Normalize()

	// The continuing ray starts just past the surface on the far side
	origin := point.Subtract(n.Multiply(Bias))
	return traceColor(scene, core.NewRay(origin, refracted), depth+1, random)
}
