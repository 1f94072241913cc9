package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"ssao-renderer/scene"
)

// LightingPass composites the G-buffer, blurred occlusion and one point
// light into the default framebuffer. It is the only pass that writes to the
// window.
type LightingPass struct {
	prog    *Program
	targets *RenderTargetSet
	quad    *fullscreenTriangle

	AmbientStrength float32
	Shininess       float32
}

func NewLightingPass(targets *RenderTargetSet, quad *fullscreenTriangle, ambient, shininess float32) (*LightingPass, error) {
	prog, err := CompileProgram("lighting", fullscreenVertSrc, lightingFragSrc)
	if err != nil {
		return nil, err
	}
	prog.Use()
	prog.SetInt("gPosition", 0)
	prog.SetInt("gNormal", 1)
	prog.SetInt("gAlbedo", 2)
	prog.SetInt("ssao", 3)
	return &LightingPass{
		prog:            prog,
		targets:         targets,
		quad:            quad,
		AmbientStrength: ambient,
		Shininess:       shininess,
	}, nil
}

// Render shades every pixel. lightPos and viewPos are in view space.
func (p *LightingPass) Render(light scene.PointLight, lightPos, viewPos mgl32.Vec3) {
	p.targets.BindForWrite(TargetDefault)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p.targets.BindForRead(
		Slot{Unit: 0, Attachment: AttachPosition},
		Slot{Unit: 1, Attachment: AttachNormal},
		Slot{Unit: 2, Attachment: AttachAlbedo},
		Slot{Unit: 3, Attachment: AttachBlur},
	)

	p.prog.Use()
	p.prog.SetVec3("light.Position", lightPos)
	p.prog.SetVec3("light.Color", light.Color)
	p.prog.SetFloat("light.Linear", light.Linear)
	p.prog.SetFloat("light.Quadratic", light.Quadratic)
	p.prog.SetVec3("viewPos", viewPos)
	p.prog.SetFloat("ambientStrength", p.AmbientStrength)
	p.prog.SetFloat("shininess", p.Shininess)

	p.quad.Draw()
}

func (p *LightingPass) Destroy() {
	p.prog.Delete()
}
