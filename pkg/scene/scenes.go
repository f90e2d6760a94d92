// Package scene provides prebuilt scenes and the between-frame animation
// driver. Scenes are constructed once and reused across frames; the driver
// repositions lights and the camera strictly between render passes.
package scene

import (
	"fmt"
	"math"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
	"github.com/glimt/go-whitted-raytracer/pkg/geometry"
	"github.com/glimt/go-whitted-raytracer/pkg/material"
)

// Builder constructs a scene for the given screen dimensions
type Builder func(width, height int) (*core.Scene, error)

// Builders maps scene names to their constructors
var Builders = map[string]Builder{
	"mirror-room": NewMirrorRoomScene,
	"glass":       NewGlassScene,
	"normals":     NewNormalsDebugScene,
}

// ByName returns the named scene builder
func ByName(name string) (Builder, error) {
	builder, ok := Builders[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q", name)
	}
	return builder, nil
}

// NewMirrorRoomScene builds the demo room: three spheres (two diffuse, one
// mirror) enclosed by five walls with a mirrored back wall, lit by a single
// orbiting light. The camera sits at the origin yawed to face the room.
func NewMirrorRoomScene(width, height int) (*core.Scene, error) {
	camera, err := core.NewCamera(core.NewVec3(0, 0, 0), 45, width, height)
	if err != nil {
		return nil, err
	}
	camera.SetAngle(math.Pi)

	white := material.NewDiffuse(core.NewColor(1, 1, 1))
	red := material.NewDiffuse(core.NewColor(0.92, 0.2, 0.1))
	green := material.NewDiffuse(core.NewColor(0.2, 0.92, 0.1))
	mirror := material.NewMirror()

	primitives := []core.Primitive{
		geometry.NewSphere(core.NewVec3(-2, 1, 12), 1.0, white),
		geometry.NewSphere(core.NewVec3(0, 0, 8), 1.0, mirror),
		geometry.NewSphere(core.NewVec3(2, 1, 8), 1.0, white),
		// Floor
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white),
		// Back wall (mirrored)
		geometry.NewPlane(core.NewVec3(0, 0, 14), core.NewVec3(0, 0, -1), mirror),
		// Left and right walls
		geometry.NewPlane(core.NewVec3(4, 0, 0), core.NewVec3(-1, 0, 0), red),
		geometry.NewPlane(core.NewVec3(-4, 0, 0), core.NewVec3(1, 0, 0), green),
		// Front wall, behind the camera
		geometry.NewPlane(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 1), white),
		// Ceiling
		geometry.NewPlane(core.NewVec3(0, 8, 0), core.NewVec3(0, -1, 0), white),
	}

	lights := []core.Light{
		{Center: core.NewVec3(-3, 5, 8), Color: core.NewColor(3, 3, 3)},
	}

	return core.NewScene(camera, primitives, lights, core.NewColor(0, 0, 0))
}

// NewGlassScene builds a dielectric showcase: a glass sphere in front of a
// red diffuse sphere and a mirror sphere, over a white floor, under a soft
// area light.
func NewGlassScene(width, height int) (*core.Scene, error) {
	camera, err := core.NewCamera(core.NewVec3(0, 0, 0), 45, width, height)
	if err != nil {
		return nil, err
	}
	camera.SetAngle(math.Pi)

	white := material.NewDiffuse(core.NewColor(1, 1, 1))
	red := material.NewDiffuse(core.NewColor(0.92, 0.2, 0.1))
	glass := material.NewRefractor(1.5)
	mirror := material.NewMirror()

	primitives := []core.Primitive{
		geometry.NewSphere(core.NewVec3(0, 0, 6), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-2, 1, 12), 1.0, red),
		geometry.NewSphere(core.NewVec3(2, 1, 12), 1.0, mirror),
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white),
		geometry.NewPlane(core.NewVec3(0, 0, 16), core.NewVec3(0, 0, -1), white),
	}

	lights := []core.Light{
		{Center: core.NewVec3(-3, 5, 8), Color: core.NewColor(3, 3, 3), Radius: 0.5},
	}

	return core.NewScene(camera, primitives, lights, core.NewColor(0.05, 0.05, 0.08))
}

// NewNormalsDebugScene builds the mirror-room geometry with every surface
// shaded by normal visualization; no lights needed.
func NewNormalsDebugScene(width, height int) (*core.Scene, error) {
	camera, err := core.NewCamera(core.NewVec3(0, 0, 0), 45, width, height)
	if err != nil {
		return nil, err
	}
	camera.SetAngle(math.Pi)

	debug := material.NewDebugNormals()

	primitives := []core.Primitive{
		geometry.NewSphere(core.NewVec3(-2, 1, 12), 1.0, debug),
		geometry.NewSphere(core.NewVec3(0, 0, 8), 1.0, debug),
		geometry.NewSphere(core.NewVec3(2, 1, 8), 1.0, debug),
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), debug),
		geometry.NewPlane(core.NewVec3(0, 0, 14), core.NewVec3(0, 0, -1), debug),
	}

	return core.NewScene(camera, primitives, nil, core.NewColor(0, 0, 0))
}
