package core

import (
	"fmt"
	"math"
)

// Camera maps pixel coordinates to world-space rays using a pinhole
// projection model. The per-pixel stepping constants are computed once at
// construction so that GetRayFromUV is O(1) with no trigonometric calls.
//
// Rotation is yaw-only: SetAngle rotates the view and right basis vectors in
// the horizontal plane. Pitch and roll are deliberately unsupported.
type Camera struct {
	Eye          Vec3
	ScreenWidth  int
	ScreenHeight int

	angle float64
	look  Vec3 // view direction for the current angle
	perp  Vec3 // right basis vector for the current angle

	xstart, ystart float64
	xmult, ymult   float64
}

// NewCamera creates a camera at eye with the given vertical field of view in
// degrees. The horizontal field of view is derived from the aspect ratio.
// Zero screen dimensions or a non-positive field of view are configuration
// errors: they would produce NaNs in every downstream calculation.
func NewCamera(eye Vec3, fovY float64, screenWidth, screenHeight int) (*Camera, error) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return nil, fmt.Errorf("camera: invalid screen dimensions %dx%d", screenWidth, screenHeight)
	}
	if fovY <= 0 {
		return nil, fmt.Errorf("camera: invalid field of view %v", fovY)
	}

	fovX := (float64(screenWidth) / float64(screenHeight)) * fovY

	c := &Camera{
		Eye:          eye,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		xstart:       -0.5 * fovX / 45.0,
		ystart:       0.5 * fovY / 45.0,
		xmult:        (fovX / 45.0) / float64(screenWidth),
		ymult:        -(fovY / 45.0) / float64(screenHeight),
	}
	c.SetAngle(0)

	return c, nil
}

// SetAngle rotates the camera to the given yaw angle in radians. At angle 0
// the camera looks down -Z. Must not be called concurrently with an
// in-flight render; animation applies it strictly between frames.
func (c *Camera) SetAngle(angle float64) {
	c.angle = angle
	c.look = NewVec3(-math.Sin(angle), 0, -math.Cos(angle)).Normalize()
	c.perp = NewVec3(-math.Sin(angle+math.Pi/2), 0, -math.Cos(angle+math.Pi/2)).Normalize()
}

// Angle returns the current yaw angle in radians
func (c *Camera) Angle() float64 {
	return c.angle
}

// GetRayFromUV returns the world-space ray through pixel column u and row v.
// The direction is normalized. Pure function of the camera state; safe to
// call concurrently from render workers.
func (c *Camera) GetRayFromUV(u, v float64) Ray {
	p := c.look.Subtract(c.perp.Multiply(c.xstart + u*c.xmult))

	direction := Vec3{
		X: p.X,
		Y: c.ystart + v*c.ymult,
		Z: p.Z,
	}

	return Ray{Origin: c.Eye, Direction: direction.Normalize()}
}
