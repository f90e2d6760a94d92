package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrimitive reports a fixed intersection distance for any ray
type fakePrimitive struct {
	t   float64
	hit bool
}

func (f *fakePrimitive) Intersect(ray Ray) (float64, bool) { return f.t, f.hit }
func (f *fakePrimitive) NormalAt(point Vec3) Vec3          { return NewVec3(0, 1, 0) }
func (f *fakePrimitive) Material() Material                { return blackMaterial{} }

type blackMaterial struct{}

func (blackMaterial) ColorAt(point, normal Vec3, rayIn Ray, scene *Scene, depth int, random *rand.Rand) Color {
	return Color{}
}

func testCamera(t *testing.T) *Camera {
	t.Helper()
	camera, err := NewCamera(NewVec3(0, 0, 0), 45, 64, 64)
	require.NoError(t, err)
	return camera
}

func TestNewScene_RequiresCamera(t *testing.T) {
	_, err := NewScene(nil, nil, nil, Color{})
	assert.Error(t, err)
}

func TestScene_CastFindsNearest(t *testing.T) {
	far := &fakePrimitive{t: 9, hit: true}
	near := &fakePrimitive{t: 3, hit: true}
	miss := &fakePrimitive{hit: false}

	scene, err := NewScene(testCamera(t), []Primitive{far, miss, near}, nil, Color{})
	require.NoError(t, err)

	hit, ok := scene.Cast(NewRay(Vec3{}, NewVec3(0, 0, 1)), 2)
	require.True(t, ok)
	assert.Equal(t, 2, hit.PrimitiveIndex)
	assert.Equal(t, 3.0, hit.T)
	assert.Equal(t, 2, hit.Depth)
}

func TestScene_CastTieGoesToFirst(t *testing.T) {
	first := &fakePrimitive{t: 5, hit: true}
	second := &fakePrimitive{t: 5, hit: true}

	scene, err := NewScene(testCamera(t), []Primitive{first, second}, nil, Color{})
	require.NoError(t, err)

	hit, ok := scene.Cast(NewRay(Vec3{}, NewVec3(0, 0, 1)), 0)
	require.True(t, ok)
	assert.Equal(t, 0, hit.PrimitiveIndex)
}

func TestScene_CastEmptySceneMisses(t *testing.T) {
	scene, err := NewScene(testCamera(t), nil, nil, NewColor(0.1, 0.2, 0.3))
	require.NoError(t, err)

	_, ok := scene.Cast(NewRay(Vec3{}, NewVec3(0, 0, 1)), 0)
	assert.False(t, ok)
}
