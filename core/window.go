package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// InputHandler receives translated window events. The window calls it
// synchronously from PollEvents, between frames.
type InputHandler interface {
	HandleKey(key int, pressed bool)
	HandleCursor(x, y float64)
	HandleScroll(dy float64)
	HandleResize(width, height int)
}

type Window struct {
	Handle *glfw.Window
}

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	VSync      bool
	Fullscreen bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      1280,
		Height:     720,
		Title:      "SSAO",
		Resizable:  true,
		VSync:      true,
		Fullscreen: false,
	}
}

// NewWindow opens a window with a current OpenGL 4.1 core context.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return &Window{Handle: handle}, nil
}

// SetInputHandler routes key, cursor, scroll and framebuffer-size events to h
// and captures the cursor for mouse look.
func (w *Window) SetInputHandler(h InputHandler) {
	w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	w.Handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			h.HandleKey(int(key), true)
		case glfw.Release:
			h.HandleKey(int(key), false)
		}
	})
	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.HandleCursor(x, y)
	})
	w.Handle.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		h.HandleScroll(yoff)
	})
	w.Handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.HandleResize(width, height)
	})
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// WaitEvents blocks until at least one event arrives. Used while the
// framebuffer is zero-sized so the loop does not spin.
func (w *Window) WaitEvents() {
	glfw.WaitEvents()
}

// SwapBuffers presents the default framebuffer. With vsync on this is the
// frame loop's only blocking point.
func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// Time returns seconds since GLFW was initialised.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
