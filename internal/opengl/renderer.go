package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"ssao-renderer/core"
	"ssao-renderer/internal/logger"
	"ssao-renderer/scene"
	"ssao-renderer/ssao"
)

// Options configures the pipeline at construction.
type Options struct {
	Width, Height   int
	SSAO            ssao.Params
	AmbientStrength float32
	Shininess       float32
	ClearColor      core.Color
}

// Frame is everything one frame needs, computed by the caller between
// frames. Positions are in view space.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Objects    []*scene.Object
	Light      scene.PointLight
	LightPos   mgl32.Vec3
	ViewPos    mgl32.Vec3
}

// Renderer is the deferred SSAO pipeline: geometry, SSAO, blur, lighting.
type Renderer struct {
	targets *RenderTargetSet
	quad    *fullscreenTriangle

	geometry *GeometryPass
	ssao     *SSAOPass
	blur     *BlurPass
	lighting *LightingPass
}

// NewRenderer initialises OpenGL and builds every pass.
// Must be called after the GLFW window context is made current.
func NewRenderer(opts Options, samples *ssao.SampleSet) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Log.Info("OpenGL initialised",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{}
	if err := r.build(opts, samples); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) build(opts Options, samples *ssao.SampleSet) error {
	var err error
	if r.targets, err = NewRenderTargetSet(opts.Width, opts.Height); err != nil {
		return err
	}
	r.quad = newFullscreenTriangle()

	if r.geometry, err = NewGeometryPass(r.targets, opts.ClearColor); err != nil {
		return err
	}
	if r.ssao, err = NewSSAOPass(r.targets, r.quad, samples, opts.SSAO); err != nil {
		return err
	}
	if r.blur, err = NewBlurPass(r.targets, r.quad); err != nil {
		return err
	}
	if r.lighting, err = NewLightingPass(r.targets, r.quad, opts.AmbientStrength, opts.Shininess); err != nil {
		return err
	}

	c := opts.ClearColor
	gl.ClearColor(c.R, c.G, c.B, c.A)
	return nil
}

// RenderFrame runs the four passes in order. The result is in the default
// framebuffer's back buffer.
func (r *Renderer) RenderFrame(f Frame) {
	r.geometry.Render(f.View, f.Projection, f.Objects)
	r.ssao.Render(f.Projection)
	r.blur.Render()
	r.lighting.Render(f.Light, f.LightPos, f.ViewPos)
}

// Resize recreates all render targets. Call between frames only.
func (r *Renderer) Resize(width, height int) error {
	return r.targets.Resize(width, height)
}

func (r *Renderer) Size() (int, int) {
	return r.targets.Size()
}

// Targets exposes the render target set for inspection.
func (r *Renderer) Targets() *RenderTargetSet {
	return r.targets
}

// Destroy frees every GPU resource. Safe after a partial NewRenderer.
func (r *Renderer) Destroy() {
	if r.lighting != nil {
		r.lighting.Destroy()
		r.lighting = nil
	}
	if r.blur != nil {
		r.blur.Destroy()
		r.blur = nil
	}
	if r.ssao != nil {
		r.ssao.Destroy()
		r.ssao = nil
	}
	if r.geometry != nil {
		r.geometry.Destroy()
		r.geometry = nil
	}
	if r.quad != nil {
		r.quad.Destroy()
		r.quad = nil
	}
	if r.targets != nil {
		r.targets.Destroy()
		r.targets = nil
	}
}
