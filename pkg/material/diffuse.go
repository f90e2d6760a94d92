package material

import (
	"math"
	"math/rand"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

// samplesPerUnitRadius controls how many stochastic shadow rays an area
// light receives per unit of radius. Point lights always get one.
const samplesPerUnitRadius = 16

// Diffuse is a Lambertian material: illumination is accumulated from every
// light via shadow rays, weighted by the cosine of the incident angle and
// the inverse square of the distance, then multiplied by the albedo.
type Diffuse struct {
	Albedo core.Color
}

// NewDiffuse creates a new diffuse material with the given albedo
func NewDiffuse(albedo core.Color) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// ColorAt implements the core.Material interface for Lambertian shading
func (d *Diffuse) ColorAt(point, normal core.Vec3, rayIn core.Ray, scene *core.Scene, depth int, random *rand.Rand) core.Color {
	if depth > MaxDepth {
		return core.Color{}
	}

	// Shadow rays start slightly off the surface to avoid shadow acne
	origin := point.Add(normal.Multiply(Bias))

	var illumination core.Color
	for _, light := range scene.Lights {
		samples := lightSampleCount(light.Radius)

		var accum core.Color
		for i := 0; i < samples; i++ {
			target := light.Center
			if light.Radius > 0 {
				// Jitter the target across the light's spherical surface
				target = target.Add(core.RandomUnitVector(random).Multiply(light.Radius))
			}

			toLight := target.Subtract(origin)
			distSquared := toLight.LengthSquared()
			if distSquared == 0 {
				continue
			}
			dist := math.Sqrt(distSquared)
			direction := toLight.Multiply(1.0 / dist)

			cosTheta := direction.Dot(normal)
			if cosTheta <= 0 {
				continue // light is behind the surface
			}

			// Occluded if anything sits between the point and the light
			if hit, ok := scene.Cast(core.NewRay(origin, direction), depth); ok && hit.T < dist {
				continue
			}

			accum = accum.Add(light.Color.Scale(cosTheta / distSquared))
		}

		illumination = illumination.Add(accum.Scale(1.0 / float64(samples)))
	}

	return d.Albedo.Mul(illumination)
}

// lightSampleCount returns the shadow-ray count for a light of the given
// radius: one for point lights, more for larger area lights.
func lightSampleCount(radius float64) int {
	if radius <= 0 {
		return 1
	}
	samples := int(radius * samplesPerUnitRadius)
	if samples < 1 {
		samples = 1
	}
	return samples
}
