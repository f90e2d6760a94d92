package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect_DirectHit(t *testing.T) {
	// Floor at y = -1, ray angled down from the origin
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))

	dist, hit := plane.Intersect(ray)
	require.True(t, hit)
	assert.InDelta(t, 1.0, dist, 1e-9)
}

func TestPlane_Intersect_Parallel(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), nil)

	// A ray orthogonal to the normal never intersects regardless of origin.
	for _, origin := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, -1, 0), // origin on the plane itself
		core.NewVec3(5, 3, -2),
	} {
		_, hit := plane.Intersect(core.NewRay(origin, core.NewVec3(1, 0, 0)))
		assert.False(t, hit, "origin %v", origin)
	}
}

func TestPlane_Intersect_BehindOrigin(t *testing.T) {
	// Plane behind the ray: t would be negative
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	_, hit := plane.Intersect(ray)
	assert.False(t, hit)
}

func TestPlane_Intersect_SelfIntersectionEpsilon(t *testing.T) {
	// A ray starting on the plane and leaning into it would hit at t ~ 0;
	// the epsilon guard must suppress that.
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 1e-9, 0), core.NewVec3(1, -1e-6, 0).Normalize())

	_, hit := plane.Intersect(ray)
	assert.False(t, hit)
}

func TestPlane_Intersect_UnnormalizedConstructionNormal(t *testing.T) {
	// The constructor normalizes the normal, so distances stay metric.
	plane := NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 10, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))

	dist, hit := plane.Intersect(ray)
	require.True(t, hit)
	assert.InDelta(t, 2.0, dist, 1e-9)
}

func TestPlane_NormalAt(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 14), core.NewVec3(0, 0, -3), nil)

	// Fixed normal regardless of the queried point, normalized
	for _, point := range []core.Vec3{{}, core.NewVec3(100, -40, 14)} {
		normal := plane.NormalAt(point)
		assert.Equal(t, core.NewVec3(0, 0, -1), normal)
	}
}
