package core

import (
	"errors"
	"math/rand"
)

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Primitive is a renderable object that can report ray intersections, a
// surface normal at a point, and the material covering its surface.
type Primitive interface {
	// Intersect returns the nearest non-negative parametric distance along
	// the ray at which the primitive is hit, and whether a hit occurred.
	// Distances are parametric in the ray's own direction scale; callers
	// normally pass normalized directions so that t is a world distance.
	Intersect(ray Ray) (float64, bool)

	// NormalAt returns the surface normal at a point on the primitive
	NormalAt(point Vec3) Vec3

	// Material returns the material covering the primitive's surface
	Material() Material
}

// Material computes outgoing radiance at a surface point. Reflective and
// refractive materials recurse through Scene.Cast at depth+1; depth past the
// shading limit terminates to black inside ColorAt.
type Material interface {
	ColorAt(point, normal Vec3, rayIn Ray, scene *Scene, depth int, random *rand.Rand) Color
}

// Light is a point or spherical area light. Radius 0 is a point light;
// radius > 0 is a spherical area light sampled stochastically.
type Light struct {
	Center Vec3
	Color  Color // HDR, unclamped
	Radius float64
}

// Intersection identifies the nearest primitive hit by a cast ray
type Intersection struct {
	PrimitiveIndex int
	T              float64
	Depth          int
}

// Scene owns the primitives, lights, background color and camera for the
// lifetime of the rendering process. It is read-only during a frame and
// shared across render workers without locking; the animation driver may
// mutate the camera and lights strictly between frames.
type Scene struct {
	Camera     *Camera
	Primitives []Primitive
	Lights     []Light
	Background Color
}

// NewScene creates a scene. A scene without a camera cannot generate primary
// rays, so a nil camera is a configuration error.
func NewScene(camera *Camera, primitives []Primitive, lights []Light, background Color) (*Scene, error) {
	if camera == nil {
		return nil, errors.New("scene: camera is required")
	}
	return &Scene{
		Camera:     camera,
		Primitives: primitives,
		Lights:     lights,
		Background: background,
	}, nil
}

// Cast finds the nearest intersection of the ray with any primitive via a
// linear scan. Ties resolve to the first primitive encountered. The depth
// parameter is threaded through for the shading evaluator's recursion
// bookkeeping; casting itself is depth-agnostic.
func (s *Scene) Cast(ray Ray, depth int) (Intersection, bool) {
	closest := Intersection{Depth: depth}
	found := false

	for i, primitive := range s.Primitives {
		t, hit := primitive.Intersect(ray)
		if !hit {
			continue
		}
		if !found || t < closest.T {
			closest.PrimitiveIndex = i
			closest.T = t
			found = true
		}
	}

	return closest, found
}
