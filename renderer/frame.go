package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"ssao-renderer/internal/opengl"
	"ssao-renderer/scene"
)

const (
	NearPlane = 0.1
	FarPlane  = 100.0
)

// Projection is the camera projection for a framebuffer of the given aspect.
func Projection(cam *scene.Camera, aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(cam.FOVDegrees()), aspect, NearPlane, FarPlane)
}

// BuildFrame computes the per-frame matrices, the objects inside the view
// frustum and the view-space light. The camera sits at the view-space
// origin, so ViewPos is zero.
func BuildFrame(cam *scene.Camera, aspect float32, sc *scene.Scene) opengl.Frame {
	view := cam.ViewMatrix()
	proj := Projection(cam, aspect)
	return opengl.Frame{
		View:       view,
		Projection: proj,
		Objects:    sc.Visible(proj.Mul4(view)),
		Light:      sc.Light,
		LightPos:   sc.Light.ViewPosition(view),
		ViewPos:    mgl32.Vec3{},
	}
}

// ModelMatrix places a mesh: scale first, then translate.
func ModelMatrix(translate mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(translate[0], translate[1], translate[2]).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}

// BuildScene loads the configured mesh and adds the floor.
func BuildScene(cfg Config) (*scene.Scene, error) {
	sc := scene.NewScene(cfg.Light)
	if cfg.FloorHalfExtent > 0 {
		sc.Add(scene.NewObject("floor", scene.NewFloor(cfg.FloorHalfExtent, cfg.FloorY, cfg.FloorColor), mgl32.Ident4()))
	}

	mesh, err := scene.LoadMesh(cfg.MeshPath, cfg.MeshColor)
	if err != nil {
		return nil, err
	}
	sc.Add(scene.NewObject(mesh.Name, mesh, ModelMatrix(cfg.MeshTranslate, cfg.MeshScale)))
	return sc, nil
}
