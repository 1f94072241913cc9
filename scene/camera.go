package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 6.0
	DefaultSensitivity = 0.25
	DefaultZoom        = 60.0

	maxPitch = 89.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a first-person view. The basis vectors are recomputed from yaw
// and pitch after every orientation change.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3

	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	ZoomLevel   float32
}

func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		position:    position,
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		ZoomLevel:   DefaultZoom,
	}
	c.updateVectors()
	return c
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }

func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

func (c *Camera) MoveForward(dt float32) {
	c.position = c.position.Add(c.front.Mul(c.Speed * dt))
}

func (c *Camera) MoveBackward(dt float32) {
	c.position = c.position.Sub(c.front.Mul(c.Speed * dt))
}

func (c *Camera) MoveLeft(dt float32) {
	c.position = c.position.Sub(c.right.Mul(c.Speed * dt))
}

func (c *Camera) MoveRight(dt float32) {
	c.position = c.position.Add(c.right.Mul(c.Speed * dt))
}

// Rotate applies a mouse delta in screen pixels. dy is positive upward.
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	c.Pitch = clamp(c.Pitch, -maxPitch, maxPitch)
	c.updateVectors()
}

// Zoom adds a scroll delta to the zoom level.
func (c *Camera) Zoom(dy float32) {
	c.ZoomLevel += dy
}

// FOVDegrees is the vertical field of view, kept inside (0, 90).
func (c *Camera) FOVDegrees() float32 {
	return clamp(c.ZoomLevel+15, 1, 89)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
