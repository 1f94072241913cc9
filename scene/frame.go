package scene

import "ssao-renderer/core"

// CaptureRequest lists the captures asked for since the last TakeCaptures.
type CaptureRequest struct {
	Frame     bool
	Occlusion bool
}

func (r CaptureRequest) Any() bool { return r.Frame || r.Occlusion }

// FrameContext is the per-window frame state: the camera, held keys, timing,
// a pending resize and capture requests. Window callbacks mutate it through
// the core.InputHandler methods; the render loop reads it between frames.
type FrameContext struct {
	Camera *Camera
	Keys   InputSet

	lastTime  float64
	deltaTime float32

	firstMouse   bool
	lastX, lastY float64

	width, height int
	resizePending bool

	closeRequested bool
	captures       CaptureRequest
}

var _ core.InputHandler = (*FrameContext)(nil)

// NewFrameContext starts the frame clock at now (seconds).
func NewFrameContext(camera *Camera, width, height int, now float64) *FrameContext {
	return &FrameContext{
		Camera:     camera,
		lastTime:   now,
		firstMouse: true,
		width:      width,
		height:     height,
	}
}

func (f *FrameContext) HandleKey(key int, pressed bool) {
	if !pressed {
		f.Keys.Release(key)
		return
	}
	f.Keys.Press(key)
	switch key {
	case core.KeyEscape:
		f.closeRequested = true
	case core.KeyF12:
		f.captures.Frame = true
	case core.KeyF11:
		f.captures.Occlusion = true
	}
}

// HandleCursor turns absolute cursor positions into camera rotation. The
// first event only latches the position.
func (f *FrameContext) HandleCursor(x, y float64) {
	if f.firstMouse {
		f.lastX, f.lastY = x, y
		f.firstMouse = false
		return
	}
	dx := x - f.lastX
	dy := f.lastY - y // window y grows downward
	f.lastX, f.lastY = x, y
	f.Camera.Rotate(float32(dx), float32(dy))
}

func (f *FrameContext) HandleScroll(dy float64) {
	f.Camera.Zoom(float32(dy))
}

// HandleResize queues a resize; it is applied by the render loop before the
// next geometry pass.
func (f *FrameContext) HandleResize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width, f.height = width, height
	f.resizePending = true
}

// Tick advances the clock to now and applies movement for every held key.
func (f *FrameContext) Tick(now float64) {
	f.deltaTime = float32(now - f.lastTime)
	f.lastTime = now
	if f.deltaTime < 0 {
		f.deltaTime = 0
	}

	dt := f.deltaTime
	if f.Keys.Any(core.KeyW, core.KeyUp) {
		f.Camera.MoveForward(dt)
	}
	if f.Keys.Any(core.KeyS, core.KeyDown) {
		f.Camera.MoveBackward(dt)
	}
	if f.Keys.Any(core.KeyA, core.KeyLeft) {
		f.Camera.MoveLeft(dt)
	}
	if f.Keys.Any(core.KeyD, core.KeyRight) {
		f.Camera.MoveRight(dt)
	}
}

func (f *FrameContext) DeltaTime() float32 { return f.deltaTime }

func (f *FrameContext) Size() (int, int) { return f.width, f.height }

// Aspect is width/height, or 1 for a degenerate size.
func (f *FrameContext) Aspect() float32 {
	if f.width <= 0 || f.height <= 0 {
		return 1
	}
	return float32(f.width) / float32(f.height)
}

// Minimized reports a zero-area framebuffer; such frames are skipped.
func (f *FrameContext) Minimized() bool {
	return f.width <= 0 || f.height <= 0
}

// TakeResize returns the pending size, if any, and clears it.
func (f *FrameContext) TakeResize() (width, height int, ok bool) {
	if !f.resizePending {
		return 0, 0, false
	}
	f.resizePending = false
	return f.width, f.height, true
}

func (f *FrameContext) CloseRequested() bool { return f.closeRequested }

// TakeCaptures returns and clears the pending capture requests.
func (f *FrameContext) TakeCaptures() CaptureRequest {
	r := f.captures
	f.captures = CaptureRequest{}
	return r
}
