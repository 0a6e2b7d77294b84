package render

import "math"

// Camera orbits the arena centre and projects world positions onto the
// screen orthographically. It is the CPU-side stand-in for the GPU
// view/projection matrices of an instanced renderer.
type Camera struct {
	Yaw   float64 // rotation around the vertical axis, radians
	Pitch float64 // rotation around the horizontal axis, radians
	Scale float64 // pixels per world unit
	CX    float64 // screen centre x
	CY    float64 // screen centre y
}

// NewCamera returns a camera with a gentle oblique view onto the arena.
func NewCamera(cx, cy, scale float64) *Camera {
	return &Camera{Yaw: math.Pi / 5, Pitch: math.Pi / 7, Scale: scale, CX: cx, CY: cy}
}

// Rotate adjusts yaw and pitch, keeping pitch shy of the poles so the
// view never flips.
func (c *Camera) Rotate(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	limit := math.Pi/2 - 0.01
	if c.Pitch > limit {
		c.Pitch = limit
	}
	if c.Pitch < -limit {
		c.Pitch = -limit
	}
}

// Project maps a world position to screen coordinates plus a depth value.
// Larger depth means further from the viewer, so callers can sort
// back-to-front before drawing.
func (c *Camera) Project(v Vec3) (sx, sy, depth float64) {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)

	cosY, sinY := math.Cos(c.Yaw), math.Sin(c.Yaw)
	x, z = x*cosY+z*sinY, -x*sinY+z*cosY

	cosP, sinP := math.Cos(c.Pitch), math.Sin(c.Pitch)
	y, z = y*cosP-z*sinP, y*sinP+z*cosP

	return c.CX + x*c.Scale, c.CY - y*c.Scale, z
}
