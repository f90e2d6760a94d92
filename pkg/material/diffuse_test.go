package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
	"github.com/glimt/go-whitted-raytracer/pkg/geometry"
)

func newTestScene(t *testing.T, primitives []core.Primitive, lights []core.Light) *core.Scene {
	t.Helper()
	camera, err := core.NewCamera(core.NewVec3(0, 0, 0), 45, 64, 64)
	require.NoError(t, err)
	scene, err := core.NewScene(camera, primitives, lights, core.Color{})
	require.NoError(t, err)
	return scene
}

func TestDiffuse_DirectLightBrighterThanGrazing(t *testing.T) {
	white := NewDiffuse(core.NewColor(1, 1, 1))
	floor := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white)

	light := core.Light{Center: core.NewVec3(0, 4, 0), Color: core.NewColor(4, 4, 4)}
	scene := newTestScene(t, []core.Primitive{floor}, []core.Light{light})
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// Directly under the light
	under := white.ColorAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray, scene, 0, random)

	// Off-axis the incident angle grazes and the distance grows
	offAxis := white.ColorAt(core.NewVec3(4, 0, 0), core.NewVec3(0, 1, 0), ray, scene, 0, random)

	assert.Greater(t, under.Luminance(), offAxis.Luminance())
	assert.GreaterOrEqual(t, offAxis.R, 0.0)
	assert.GreaterOrEqual(t, offAxis.G, 0.0)
	assert.GreaterOrEqual(t, offAxis.B, 0.0)
}

func TestDiffuse_InverseSquareFalloff(t *testing.T) {
	white := NewDiffuse(core.NewColor(1, 1, 1))
	scene := newTestScene(t, nil, []core.Light{
		{Center: core.NewVec3(0, 2, 0), Color: core.NewColor(1, 1, 1)},
	})
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	near := white.ColorAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray, scene, 0, random)

	scene.Lights[0].Center = core.NewVec3(0, 4, 0)
	far := white.ColorAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray, scene, 0, random)

	// Doubling the distance quarters the illumination. The shadow-ray origin
	// sits a bias above the surface, so the ratio is close to but not exactly
	// one quarter.
	assert.InDelta(t, near.R/4.0, far.R, 1e-3)
}

func TestDiffuse_OccludedByPrimitive(t *testing.T) {
	white := NewDiffuse(core.NewColor(1, 1, 1))
	blocker := geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5, white)

	light := core.Light{Center: core.NewVec3(0, 4, 0), Color: core.NewColor(4, 4, 4)}
	scene := newTestScene(t, []core.Primitive{blocker}, []core.Light{light})
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	shaded := white.ColorAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray, scene, 0, random)
	assert.Equal(t, core.Color{}, shaded)
}

func TestDiffuse_LightBehindSurface(t *testing.T) {
	white := NewDiffuse(core.NewColor(1, 1, 1))
	light := core.Light{Center: core.NewVec3(0, -4, 0), Color: core.NewColor(4, 4, 4)}
	scene := newTestScene(t, nil, []core.Light{light})
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	shaded := white.ColorAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray, scene, 0, random)
	assert.Equal(t, core.Color{}, shaded)
}

func TestDiffuse_AlbedoTintsIllumination(t *testing.T) {
	red := NewDiffuse(core.NewColor(1, 0, 0))
	light := core.Light{Center: core.NewVec3(0, 4, 0), Color: core.NewColor(4, 4, 4)}
	scene := newTestScene(t, nil, []core.Light{light})
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	shaded := red.ColorAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray, scene, 0, random)
	assert.Greater(t, shaded.R, 0.0)
	assert.Equal(t, 0.0, shaded.G)
	assert.Equal(t, 0.0, shaded.B)
}

func TestDiffuse_AreaLightSoftensButStaysNonNegative(t *testing.T) {
	white := NewDiffuse(core.NewColor(1, 1, 1))
	light := core.Light{Center: core.NewVec3(0, 4, 0), Color: core.NewColor(4, 4, 4), Radius: 1.0}
	scene := newTestScene(t, nil, []core.Light{light})
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	for i := 0; i < 100; i++ {
		shaded := white.ColorAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray, scene, 0, random)
		assert.GreaterOrEqual(t, shaded.R, 0.0)
		assert.GreaterOrEqual(t, shaded.G, 0.0)
		assert.GreaterOrEqual(t, shaded.B, 0.0)
	}
}

func TestDiffuse_DepthPastLimitIsBlack(t *testing.T) {
	white := NewDiffuse(core.NewColor(1, 1, 1))
	light := core.Light{Center: core.NewVec3(0, 4, 0), Color: core.NewColor(4, 4, 4)}
	scene := newTestScene(t, nil, []core.Light{light})
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	shaded := white.ColorAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray, scene, MaxDepth+1, random)
	assert.Equal(t, core.Color{}, shaded)
}

func TestLightSampleCount(t *testing.T) {
	assert.Equal(t, 1, lightSampleCount(0))
	assert.Equal(t, 1, lightSampleCount(0.01))
	assert.Equal(t, samplesPerUnitRadius, lightSampleCount(1.0))
	assert.Equal(t, 2*samplesPerUnitRadius, lightSampleCount(2.0))
}
