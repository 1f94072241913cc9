package core

import "github.com/go-gl/glfw/v3.3/glfw"

// Key codes understood by the input handlers. Values match GLFW key codes.
const (
	KeyA      = int(glfw.KeyA)
	KeyD      = int(glfw.KeyD)
	KeyS      = int(glfw.KeyS)
	KeyW      = int(glfw.KeyW)
	KeyEscape = int(glfw.KeyEscape)
	KeyRight  = int(glfw.KeyRight)
	KeyLeft   = int(glfw.KeyLeft)
	KeyDown   = int(glfw.KeyDown)
	KeyUp     = int(glfw.KeyUp)
	KeyF11    = int(glfw.KeyF11)
	KeyF12    = int(glfw.KeyF12)
)
