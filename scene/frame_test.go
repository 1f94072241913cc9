package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"ssao-renderer/core"
)

func newTestFrame() *FrameContext {
	return NewFrameContext(NewCamera(mgl32.Vec3{0, 0.5, 3}), 800, 600, 10)
}

func TestInputSet(t *testing.T) {
	var s InputSet
	s.Press(core.KeyW)
	s.Press(-1)
	s.Press(MaxKeys + 5)
	if !s.Held(core.KeyW) {
		t.Error("W should be held after Press")
	}
	if s.Held(-1) || s.Held(MaxKeys+5) {
		t.Error("out-of-range keys should never be held")
	}
	if !s.Any(core.KeyUp, core.KeyW) {
		t.Error("Any should see W")
	}
	s.Release(core.KeyW)
	if s.Held(core.KeyW) {
		t.Error("W should be released")
	}
}

func TestFrameTickMovesWhileHeld(t *testing.T) {
	f := newTestFrame()
	start := f.Camera.Position()

	f.HandleKey(core.KeyW, true)
	f.Tick(10.5)
	f.Tick(11.0)
	if got := f.DeltaTime(); got != 0.5 {
		t.Errorf("DeltaTime: expected 0.5, got %v", got)
	}
	moved := f.Camera.Position().Sub(start).Len()
	if !approx(moved, 6) {
		t.Errorf("holding W for 1s: expected distance 6, got %v", moved)
	}

	f.HandleKey(core.KeyW, false)
	before := f.Camera.Position()
	f.Tick(12.0)
	if f.Camera.Position() != before {
		t.Error("camera moved after the key was released")
	}
}

func TestFrameArrowKeysMatchWASD(t *testing.T) {
	a, b := newTestFrame(), newTestFrame()
	a.HandleKey(core.KeyA, true)
	b.HandleKey(core.KeyLeft, true)
	a.Tick(11)
	b.Tick(11)
	if !a.Camera.Position().ApproxEqualThreshold(b.Camera.Position(), eps) {
		t.Errorf("A and Left disagree: %v vs %v", a.Camera.Position(), b.Camera.Position())
	}
}

func TestFrameFirstMouseLatch(t *testing.T) {
	f := newTestFrame()
	yaw, pitch := f.Camera.Yaw, f.Camera.Pitch

	f.HandleCursor(500, 300)
	if f.Camera.Yaw != yaw || f.Camera.Pitch != pitch {
		t.Fatal("first cursor event should not rotate the camera")
	}

	f.HandleCursor(540, 280)
	if want := yaw + 40*DefaultSensitivity; f.Camera.Yaw != want {
		t.Errorf("Yaw: expected %v, got %v", want, f.Camera.Yaw)
	}
	if want := pitch + 20*DefaultSensitivity; f.Camera.Pitch != want {
		t.Errorf("Pitch: expected %v (cursor moved up), got %v", want, f.Camera.Pitch)
	}
}

func TestFrameResizeQueued(t *testing.T) {
	f := newTestFrame()
	if _, _, ok := f.TakeResize(); ok {
		t.Fatal("no resize should be pending initially")
	}

	f.HandleResize(800, 600)
	if _, _, ok := f.TakeResize(); ok {
		t.Error("same-size event should not queue a resize")
	}

	f.HandleResize(1024, 768)
	w, h, ok := f.TakeResize()
	if !ok || w != 1024 || h != 768 {
		t.Errorf("TakeResize: expected (1024, 768, true), got (%d, %d, %v)", w, h, ok)
	}
	if _, _, ok := f.TakeResize(); ok {
		t.Error("resize should be consumed by TakeResize")
	}

	f.HandleResize(0, 0)
	if !f.Minimized() {
		t.Error("zero-size framebuffer should report Minimized")
	}
	if f.Aspect() != 1 {
		t.Errorf("Aspect for zero size: expected 1, got %v", f.Aspect())
	}
}

func TestFrameStartsMinimized(t *testing.T) {
	f := NewFrameContext(NewCamera(mgl32.Vec3{}), 0, 0, 0)
	if !f.Minimized() {
		t.Fatal("0x0 startup size should report Minimized")
	}

	f.HandleResize(1280, 720)
	if f.Minimized() {
		t.Error("restored window should not report Minimized")
	}
	w, h, ok := f.TakeResize()
	if !ok || w != 1280 || h != 720 {
		t.Errorf("TakeResize after restore: expected (1280, 720, true), got (%d, %d, %v)", w, h, ok)
	}
}

func TestFrameEscapeAndCaptures(t *testing.T) {
	f := newTestFrame()
	f.HandleKey(core.KeyF12, true)
	f.HandleKey(core.KeyF12, false)
	f.HandleKey(core.KeyF11, true)

	got := f.TakeCaptures()
	if !got.Frame || !got.Occlusion {
		t.Errorf("TakeCaptures: expected both requests, got %+v", got)
	}
	if f.TakeCaptures().Any() {
		t.Error("captures should be cleared after TakeCaptures")
	}

	if f.CloseRequested() {
		t.Fatal("close requested before Escape")
	}
	f.HandleKey(core.KeyEscape, true)
	if !f.CloseRequested() {
		t.Error("Escape should request close")
	}
}

func TestFrameScrollZooms(t *testing.T) {
	f := newTestFrame()
	f.HandleScroll(-10)
	if got := f.Camera.FOVDegrees(); got != 65 {
		t.Errorf("FOVDegrees after scroll: expected 65, got %v", got)
	}
}
