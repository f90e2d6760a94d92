package material

import (
	"math/rand"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

// DefaultReflectivity is the per-bounce energy retention of a mirror
const DefaultReflectivity = 0.8

// Mirror is a perfect specular reflector. Each bounce scales the recursively
// gathered color by the reflectivity coefficient, so repeated reflections
// lose energy.
type Mirror struct {
	Reflectivity float64
}

// NewMirror creates a new mirror material with the default reflectivity
func NewMirror() *Mirror {
	return &Mirror{Reflectivity: DefaultReflectivity}
}

// ColorAt implements the core.Material interface for specular reflection
func (m *Mirror) ColorAt(point, normal core.Vec3, rayIn core.Ray, scene *core.Scene, depth int, random *rand.Rand) core.Color {
	if depth > MaxDepth {
		return core.Color{}
	}

	// Renormalize after the reflection combination; vector drift would
	// otherwise accumulate across bounces.
	reflected := reflect(rayIn.Direction.Normalize(), normal).Normalize()
	origin := point.Add(normal.Multiply(Bias))

	bounce := core.NewRay(origin, reflected)
	return traceColor(scene, bounce, depth+1, random).Scale(m.Reflectivity)
}
