package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0.5, 3})
	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("Front: expected (0,0,-1), got %v", c.Front())
	}
	if !c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Right: expected (1,0,0), got %v", c.Right())
	}
	if !c.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, eps) {
		t.Errorf("Up: expected (0,1,0), got %v", c.Up())
	}
	if got := c.FOVDegrees(); got != 75 {
		t.Errorf("FOVDegrees: expected 75, got %v", got)
	}
}

func TestCameraMoveForwardSpeed(t *testing.T) {
	start := mgl32.Vec3{0, 0.5, 3}
	c := NewCamera(start)
	c.Rotate(40, 12)
	front := c.Front()

	c.MoveForward(1.0)

	delta := c.Position().Sub(start)
	if !approx(delta.Len(), 6) {
		t.Errorf("MoveForward(1): expected distance 6, got %v", delta.Len())
	}
	if !delta.ApproxEqualThreshold(front.Mul(6), eps) {
		t.Errorf("MoveForward(1): expected displacement %v, got %v", front.Mul(6), delta)
	}
}

func TestCameraMovesCancel(t *testing.T) {
	start := mgl32.Vec3{1, 2, 3}
	c := NewCamera(start)
	c.MoveForward(0.5)
	c.MoveRight(0.25)
	c.MoveBackward(0.5)
	c.MoveLeft(0.25)
	if !c.Position().ApproxEqualThreshold(start, eps) {
		t.Errorf("expected to return to %v, got %v", start, c.Position())
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	moves := [][2]float32{{10, 5}, {-300, 80}, {45, -900}, {720, 3}, {0, 400}}
	for _, m := range moves {
		c.Rotate(m[0], m[1])
		f, r, u := c.Front(), c.Right(), c.Up()
		for name, v := range map[string]mgl32.Vec3{"front": f, "right": r, "up": u} {
			if !approx(v.Len(), 1) {
				t.Errorf("after Rotate%v: %s length %v", m, name, v.Len())
			}
		}
		if !approx(f.Dot(r), 0) || !approx(f.Dot(u), 0) || !approx(r.Dot(u), 0) {
			t.Errorf("after Rotate%v: basis not orthogonal (f·r=%v f·u=%v r·u=%v)", m, f.Dot(r), f.Dot(u), r.Dot(u))
		}
	}
}

func TestCameraPitchClamped(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.Rotate(0, 10000)
	if c.Pitch != 89 {
		t.Errorf("Pitch: expected 89, got %v", c.Pitch)
	}
	c.Rotate(0, -20000)
	if c.Pitch != -89 {
		t.Errorf("Pitch: expected -89, got %v", c.Pitch)
	}
}

func TestCameraFOVClamp(t *testing.T) {
	tests := []struct {
		zoom float32
		want float32
	}{
		{0, 75},
		{-100, 1},
		{100, 89},
		{-5, 70},
	}
	for _, tt := range tests {
		c := NewCamera(mgl32.Vec3{})
		c.Zoom(tt.zoom)
		if got := c.FOVDegrees(); got != tt.want {
			t.Errorf("Zoom(%v): expected fov %v, got %v", tt.zoom, tt.want, got)
		}
	}
}

func TestCameraViewMatrix(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0.5, 3})
	view := c.ViewMatrix()

	eye := mgl32.TransformCoordinate(c.Position(), view)
	if !eye.ApproxEqualThreshold(mgl32.Vec3{}, eps) {
		t.Errorf("camera position in view space: expected origin, got %v", eye)
	}
	ahead := mgl32.TransformCoordinate(c.Position().Add(c.Front()), view)
	if !ahead.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("point ahead in view space: expected (0,0,-1), got %v", ahead)
	}
}
