package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"ssao-renderer/ssao"
)

// SSAOPass computes raw per-pixel occlusion from the G-buffer into the SSAO
// target. The kernel and noise texture are uploaded once at construction.
type SSAOPass struct {
	prog     *Program
	targets  *RenderTargetSet
	quad     *fullscreenTriangle
	noiseTex uint32

	Params ssao.Params
}

func NewSSAOPass(targets *RenderTargetSet, quad *fullscreenTriangle, set *ssao.SampleSet, params ssao.Params) (*SSAOPass, error) {
	prog, err := CompileProgram("ssao", fullscreenVertSrc, ssaoFragSrc)
	if err != nil {
		return nil, err
	}
	p := &SSAOPass{
		prog:    prog,
		targets: targets,
		quad:    quad,
		Params:  params,
	}

	prog.Use()
	prog.SetInt("gPosition", 0)
	prog.SetInt("gNormal", 1)
	prog.SetInt("texNoise", 2)
	prog.SetVec3Array("samples", set.Kernel().Samples())

	p.noiseTex = newNoiseTexture(set.Noise())
	return p, nil
}

// newNoiseTexture uploads the rotation tile as RGB16F with REPEAT wrapping
// so it tiles across the screen.
func newNoiseTexture(tile ssao.NoiseTile) uint32 {
	data := tile.RGB()
	size := int32(tile.Size())

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB16F, size, size, 0, gl.RGB, gl.FLOAT, gl.Ptr(data))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Render reads position and normal from the G-buffer and writes occlusion.
func (p *SSAOPass) Render(projection mgl32.Mat4) {
	p.targets.BindForWrite(TargetSSAO)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	p.targets.BindForRead(
		Slot{Unit: 0, Attachment: AttachPosition},
		Slot{Unit: 1, Attachment: AttachNormal},
	)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, p.noiseTex)
	gl.ActiveTexture(gl.TEXTURE0)

	w, h := p.targets.Size()
	p.prog.Use()
	p.prog.SetMat4("projection", projection)
	p.prog.SetFloat("radius", p.Params.Radius)
	p.prog.SetFloat("bias", p.Params.Bias)
	p.prog.SetVec2("noiseScale", mgl32.Vec2{
		float32(w) / ssao.NoiseSize,
		float32(h) / ssao.NoiseSize,
	})

	p.quad.Draw()
}

func (p *SSAOPass) Destroy() {
	if p.noiseTex != 0 {
		gl.DeleteTextures(1, &p.noiseTex)
		p.noiseTex = 0
	}
	p.prog.Delete()
}
