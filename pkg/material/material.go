// Package material implements the shading evaluators: Diffuse, Mirror,
// Refractor and DebugNormals. Reflective and refractive materials recurse
// through Scene.Cast with an incremented depth; recursion terminates to
// black past MaxDepth, modeling energy loss from unbounded bouncing.
package material

import (
	"math/rand"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

const (
	// MaxDepth bounds reflection/refraction recursion. Past this depth a
	// material returns black, which is the defined base case rather than an
	// error (two mirrors facing each other would otherwise never terminate).
	MaxDepth = 8

	// Bias offsets secondary-ray origins along the surface normal to avoid
	// shadow acne and mirror self-intersection.
	Bias = 1e-3
)

// reflect returns v mirrored about the normal n: v - 2(v·n)n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// traceColor casts a secondary ray into the scene and shades whatever it
// hits. Rays that escape the scene return the background color.
func traceColor(scene *core.Scene, ray core.Ray, depth int, random *rand.Rand) core.Color {
	hit, ok := scene.Cast(ray, depth)
	if !ok {
		return scene.Background
	}

	primitive := scene.Primitives[hit.PrimitiveIndex]
	point := ray.At(hit.T)
	normal := primitive.NormalAt(point)

	return primitive.Material().ColorAt(point, normal, ray, scene, hit.Depth, random)
}
