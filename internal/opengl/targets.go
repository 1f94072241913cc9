package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"ssao-renderer/internal/logger"
)

// Target is a framebuffer that a pass renders into.
type Target int

const (
	TargetDefault Target = iota // the window's framebuffer
	TargetGBuffer
	TargetSSAO
	TargetBlur
)

func (t Target) String() string {
	switch t {
	case TargetDefault:
		return "default"
	case TargetGBuffer:
		return "gbuffer"
	case TargetSSAO:
		return "ssao"
	case TargetBlur:
		return "ssao-blur"
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// Attachment names one texture or renderbuffer owned by the set.
type Attachment int

const (
	AttachPosition Attachment = iota // RGBA16F, view-space xyz
	AttachNormal                     // RGBA16F, view-space normal
	AttachAlbedo                     // RGB8
	AttachSSAO                       // R16F, raw occlusion
	AttachBlur                       // R16F, blurred occlusion
	AttachDepth                      // DEPTH24_STENCIL8 renderbuffer

	attachmentCount
)

var attachmentNames = [attachmentCount]string{"position", "normal", "albedo", "ssao", "blur", "depth"}

func (a Attachment) String() string {
	if a >= 0 && a < attachmentCount {
		return attachmentNames[a]
	}
	return fmt.Sprintf("attachment(%d)", int(a))
}

// Slot binds an attachment to a texture unit for reading.
type Slot struct {
	Unit       uint32
	Attachment Attachment
}

// FramebufferError reports a framebuffer that is not complete.
type FramebufferError struct {
	Name   string
	Status uint32
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("%s framebuffer incomplete: status=0x%X", e.Name, e.Status)
}

type textureFormat struct {
	internal int32
	format   uint32
	xtype    uint32
}

var textureFormats = [...]textureFormat{
	AttachPosition: {gl.RGBA16F, gl.RGBA, gl.FLOAT},
	AttachNormal:   {gl.RGBA16F, gl.RGBA, gl.FLOAT},
	AttachAlbedo:   {gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE},
	AttachSSAO:     {gl.R16F, gl.RED, gl.FLOAT},
	AttachBlur:     {gl.R16F, gl.RED, gl.FLOAT},
}

// RenderTargetSet owns every off-screen texture, renderbuffer and
// framebuffer: the G-buffer, the raw SSAO target and the blur target. All
// share one size and are recreated together.
type RenderTargetSet struct {
	width, height int32

	textures [AttachDepth]uint32
	depthRBO uint32

	gbufferFBO uint32
	ssaoFBO    uint32
	blurFBO    uint32
}

// NewRenderTargetSet allocates all targets at width×height. On failure
// nothing remains allocated.
func NewRenderTargetSet(width, height int) (*RenderTargetSet, error) {
	rt := &RenderTargetSet{}
	if err := rt.create(width, height); err != nil {
		return nil, err
	}
	return rt, nil
}

func (rt *RenderTargetSet) create(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render targets: invalid size %dx%d", width, height)
	}
	rt.width = int32(width)
	rt.height = int32(height)

	for a := AttachPosition; a < AttachDepth; a++ {
		rt.textures[a] = newTargetTexture(textureFormats[a], rt.width, rt.height)
	}

	gl.GenRenderbuffers(1, &rt.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rt.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, rt.width, rt.height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	// G-buffer: position, normal, albedo + depth/stencil
	gl.GenFramebuffers(1, &rt.gbufferFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.gbufferFBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, rt.textures[AttachPosition], 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT1, gl.TEXTURE_2D, rt.textures[AttachNormal], 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT2, gl.TEXTURE_2D, rt.textures[AttachAlbedo], 0)
	drawBuffers := [3]uint32{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT1, gl.COLOR_ATTACHMENT2}
	gl.DrawBuffers(int32(len(drawBuffers)), &drawBuffers[0])
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, rt.depthRBO)
	if err := checkFramebuffer(TargetGBuffer); err != nil {
		rt.destroy()
		return err
	}

	for _, single := range []struct {
		fbo    *uint32
		tex    Attachment
		target Target
	}{
		{&rt.ssaoFBO, AttachSSAO, TargetSSAO},
		{&rt.blurFBO, AttachBlur, TargetBlur},
	} {
		gl.GenFramebuffers(1, single.fbo)
		gl.BindFramebuffer(gl.FRAMEBUFFER, *single.fbo)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, rt.textures[single.tex], 0)
		if err := checkFramebuffer(single.target); err != nil {
			rt.destroy()
			return err
		}
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	logger.Log.Debug("render targets allocated", zap.Int("width", width), zap.Int("height", height))
	return nil
}

func newTargetTexture(f textureFormat, width, height int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, f.internal, width, height, 0, f.format, f.xtype, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// checkFramebuffer inspects the bound framebuffer and unbinds it on failure.
func checkFramebuffer(t Target) error {
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return &FramebufferError{Name: t.String(), Status: status}
	}
	return nil
}

// Resize tears every attachment down and recreates all of them at the new
// size. It must only be called between frames.
func (rt *RenderTargetSet) Resize(width, height int) error {
	rt.destroy()
	if err := rt.create(width, height); err != nil {
		return fmt.Errorf("resize render targets to %dx%d: %w", width, height, err)
	}
	logger.Log.Info("render targets resized", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// BindForWrite makes t the draw framebuffer and sets a full-size viewport.
func (rt *RenderTargetSet) BindForWrite(t Target) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo(t))
	gl.Viewport(0, 0, rt.width, rt.height)
}

// BindForRead binds each slot's attachment texture to its unit.
func (rt *RenderTargetSet) BindForRead(slots ...Slot) {
	for _, s := range slots {
		gl.ActiveTexture(gl.TEXTURE0 + s.Unit)
		gl.BindTexture(gl.TEXTURE_2D, rt.texture(s.Attachment))
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

func (rt *RenderTargetSet) Size() (int, int) {
	return int(rt.width), int(rt.height)
}

// AttachmentSize queries the GPU for the allocated size of a.
func (rt *RenderTargetSet) AttachmentSize(a Attachment) (int, int) {
	var w, h int32
	if a == AttachDepth {
		gl.BindRenderbuffer(gl.RENDERBUFFER, rt.depthRBO)
		gl.GetRenderbufferParameteriv(gl.RENDERBUFFER, gl.RENDERBUFFER_WIDTH, &w)
		gl.GetRenderbufferParameteriv(gl.RENDERBUFFER, gl.RENDERBUFFER_HEIGHT, &h)
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
		return int(w), int(h)
	}
	gl.BindTexture(gl.TEXTURE_2D, rt.texture(a))
	gl.GetTexLevelParameteriv(gl.TEXTURE_2D, 0, gl.TEXTURE_WIDTH, &w)
	gl.GetTexLevelParameteriv(gl.TEXTURE_2D, 0, gl.TEXTURE_HEIGHT, &h)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return int(w), int(h)
}

func (rt *RenderTargetSet) fbo(t Target) uint32 {
	switch t {
	case TargetGBuffer:
		return rt.gbufferFBO
	case TargetSSAO:
		return rt.ssaoFBO
	case TargetBlur:
		return rt.blurFBO
	}
	return 0
}

func (rt *RenderTargetSet) texture(a Attachment) uint32 {
	if a >= 0 && a < AttachDepth {
		return rt.textures[a]
	}
	return 0
}

// Destroy frees all GPU resources. Safe to call more than once.
func (rt *RenderTargetSet) Destroy() {
	rt.destroy()
	rt.width, rt.height = 0, 0
}

func (rt *RenderTargetSet) destroy() {
	for _, fbo := range []*uint32{&rt.gbufferFBO, &rt.ssaoFBO, &rt.blurFBO} {
		if *fbo != 0 {
			gl.DeleteFramebuffers(1, fbo)
			*fbo = 0
		}
	}
	if rt.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &rt.depthRBO)
		rt.depthRBO = 0
	}
	for i := range rt.textures {
		if rt.textures[i] != 0 {
			gl.DeleteTextures(1, &rt.textures[i])
			rt.textures[i] = 0
		}
	}
}
