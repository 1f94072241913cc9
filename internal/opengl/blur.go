package opengl

import gl "github.com/go-gl/gl/v4.1-core/gl"

// BlurPass box-filters the raw SSAO target into the blur target over one
// noise tile period.
type BlurPass struct {
	prog    *Program
	targets *RenderTargetSet
	quad    *fullscreenTriangle
}

func NewBlurPass(targets *RenderTargetSet, quad *fullscreenTriangle) (*BlurPass, error) {
	prog, err := CompileProgram("ssao-blur", fullscreenVertSrc, blurFragSrc)
	if err != nil {
		return nil, err
	}
	prog.Use()
	prog.SetInt("ssaoInput", 0)
	return &BlurPass{prog: prog, targets: targets, quad: quad}, nil
}

func (p *BlurPass) Render() {
	p.targets.BindForWrite(TargetBlur)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	p.targets.BindForRead(Slot{Unit: 0, Attachment: AttachSSAO})

	p.prog.Use()
	p.quad.Draw()
}

func (p *BlurPass) Destroy() {
	p.prog.Delete()
}
