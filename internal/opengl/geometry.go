package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"ssao-renderer/core"
	"ssao-renderer/internal/logger"
	"ssao-renderer/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

// GeometryPass rasterizes scene objects into the G-buffer: view-space
// position, view-space normal and unlit albedo.
type GeometryPass struct {
	prog    *Program
	targets *RenderTargetSet
	meshes  map[*scene.Mesh]*GPUMesh

	// ClearColor fills the albedo attachment; background pixels show it.
	ClearColor core.Color
}

func NewGeometryPass(targets *RenderTargetSet, clear core.Color) (*GeometryPass, error) {
	prog, err := CompileProgram("geometry", geometryVertSrc, geometryFragSrc)
	if err != nil {
		return nil, err
	}
	return &GeometryPass{
		prog:       prog,
		targets:    targets,
		meshes:     make(map[*scene.Mesh]*GPUMesh),
		ClearColor: clear,
	}, nil
}

// Render clears every G-buffer attachment and depth, then draws objects.
func (p *GeometryPass) Render(view, projection mgl32.Mat4, objects []*scene.Object) {
	p.targets.BindForWrite(TargetGBuffer)

	zero := [4]float32{0, 0, 0, 0}
	albedo := p.ClearColor.RGBA()
	gl.ClearBufferfv(gl.COLOR, 0, &zero[0])
	gl.ClearBufferfv(gl.COLOR, 1, &zero[0])
	gl.ClearBufferfv(gl.COLOR, 2, &albedo[0])
	gl.ClearBufferfi(gl.DEPTH_STENCIL, 0, 1, 0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	p.prog.Use()
	p.prog.SetMat4("view", view)
	p.prog.SetMat4("projection", projection)

	for _, obj := range objects {
		gpu := p.upload(obj.Mesh)
		if gpu == nil {
			continue
		}
		p.prog.SetMat4("model", obj.Model)
		gl.BindVertexArray(gpu.VAO)
		gl.DrawArrays(gl.TRIANGLES, 0, gpu.VertexCount)
	}
	gl.BindVertexArray(0)
	gl.Disable(gl.DEPTH_TEST)
}

// upload creates the VAO/VBO for mesh on first use.
func (p *GeometryPass) upload(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := p.meshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	const floatSize = 4
	stride := int32(scene.FloatsPerVertex * floatSize)
	gpu := &GPUMesh{VertexCount: int32(mesh.VertexCount())}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*floatSize, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	// position 0, color 1, normal 2
	for loc := uint32(0); loc < 3; loc++ {
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(loc)*3*floatSize))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	p.meshes[mesh] = gpu
	logger.Log.Debug("mesh uploaded",
		zap.String("mesh", mesh.Name),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("resident", len(p.meshes)),
	)
	return gpu
}

// Release frees mesh's GPU buffers, if any.
func (p *GeometryPass) Release(mesh *scene.Mesh) {
	gpu, ok := p.meshes[mesh]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &gpu.VBO)
	gl.DeleteVertexArrays(1, &gpu.VAO)
	delete(p.meshes, mesh)
}

func (p *GeometryPass) Destroy() {
	for mesh := range p.meshes {
		p.Release(mesh)
	}
	p.prog.Delete()
}
