//go:build glintegration

package opengl

import (
	"errors"
	"runtime"
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// withContext runs fn with a hidden 4.1 core context current on this thread.
func withContext(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		t.Skipf("no GLFW: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(16, 16, "test", nil, nil)
	if err != nil {
		t.Skipf("no OpenGL 4.1 context: %v", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		t.Skipf("gl.Init: %v", err)
	}
	fn(t)
}

func TestGLRenderTargets(t *testing.T) {
	withContext(t, func(t *testing.T) {
		rt, err := NewRenderTargetSet(64, 48)
		if err != nil {
			t.Fatalf("NewRenderTargetSet: %v", err)
		}
		defer rt.Destroy()

		sizes := [][2]int{{320, 200}, {1, 1}, {1920, 1080}, {333, 77}}
		for _, s := range sizes {
			if err := rt.Resize(s[0], s[1]); err != nil {
				t.Fatalf("Resize(%d, %d): %v", s[0], s[1], err)
			}
			if w, h := rt.Size(); w != s[0] || h != s[1] {
				t.Errorf("Size after Resize(%d, %d): got (%d, %d)", s[0], s[1], w, h)
			}
			for a := AttachPosition; a < attachmentCount; a++ {
				w, h := rt.AttachmentSize(a)
				if w != s[0] || h != s[1] {
					t.Errorf("%s after Resize(%d, %d): got (%d, %d)", a, s[0], s[1], w, h)
				}
			}
		}

		rt.Destroy()
		rt.Destroy()
	})
}

func TestGLCompileProgramErrors(t *testing.T) {
	withContext(t, func(t *testing.T) {
		_, err := CompileProgram("broken", fullscreenVertSrc, "#version 410 core\nvoid main() { nope; }\x00")
		var se *ShaderError
		if !errors.As(err, &se) {
			t.Fatalf("expected *ShaderError, got %v", err)
		}
		if se.Program != "broken" || se.Stage != "fragment" {
			t.Errorf("ShaderError: got program %q stage %q", se.Program, se.Stage)
		}

		p, err := CompileProgram("ssao", fullscreenVertSrc, ssaoFragSrc)
		if err != nil {
			t.Fatalf("ssao program: %v", err)
		}
		p.Delete()
	})
}
