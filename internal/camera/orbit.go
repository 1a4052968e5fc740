package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	minPitch    = -89
	maxPitch    = 89
	minDistance = 2
	maxDistance = 200
)

// OrbitCamera circles a target point. Yaw and Pitch are in degrees.
type OrbitCamera struct {
	Target    rl.Vector3
	Distance  float32
	Yaw       float32
	Pitch     float32
	LookSpeed float32
	ZoomSpeed float32
	PanSpeed  float32
}

func New(target rl.Vector3, distance float32) *OrbitCamera {
	c := &OrbitCamera{
		Target:    target,
		Distance:  distance,
		Yaw:       -135.0,
		Pitch:     25.0,
		LookSpeed: 0.3,
		ZoomSpeed: 1.5,
		PanSpeed:  0.02,
	}
	c.clamp()
	return c
}

// Update applies mouse input: middle drag orbits, shift + middle drag pans,
// the wheel zooms.
func (c *OrbitCamera) Update(deltaTime float32) {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
	}

	if !rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		return
	}
	delta := rl.GetMouseDelta()
	if rl.IsKeyDown(rl.KeyLeftShift) {
		c.Pan(delta.X, delta.Y)
		return
	}
	c.Rotate(delta.X*c.LookSpeed, -delta.Y*c.LookSpeed)
}

func (c *OrbitCamera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	c.clamp()
}

// Zoom moves toward the target for positive steps.
func (c *OrbitCamera) Zoom(steps float32) {
	c.Distance -= steps * c.ZoomSpeed
	c.clamp()
}

// Pan slides the target in the camera's screen plane by a mouse delta.
func (c *OrbitCamera) Pan(dx, dy float32) {
	forward := c.Forward()
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))
	up := rl.Vector3CrossProduct(right, forward)
	scale := c.PanSpeed * c.Distance * 0.1
	c.Target = rl.Vector3Add(c.Target, rl.Vector3Scale(right, -dx*scale))
	c.Target = rl.Vector3Add(c.Target, rl.Vector3Scale(up, dy*scale))
}

func (c *OrbitCamera) clamp() {
	c.Pitch = max(minPitch, min(maxPitch, c.Pitch))
	c.Distance = max(minDistance, min(maxDistance, c.Distance))
}

// Position is the eye point on the orbit sphere.
func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := c.Yaw * rl.Deg2rad
	pitchRad := c.Pitch * rl.Deg2rad
	offset := rl.Vector3{
		X: math32.Cos(yawRad) * math32.Cos(pitchRad),
		Y: math32.Sin(pitchRad),
		Z: math32.Sin(yawRad) * math32.Cos(pitchRad),
	}
	return rl.Vector3Add(c.Target, rl.Vector3Scale(offset, c.Distance))
}

// Forward is the unit view direction from the eye to the target.
func (c *OrbitCamera) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position()))
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
