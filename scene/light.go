package scene

import "github.com/go-gl/mathgl/mgl32"

// PointLight is a world-space point light. Zero Linear and Quadratic disable
// attenuation.
type PointLight struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Linear    float32
	Quadratic float32
}

// ViewPosition transforms the light into view space.
func (l PointLight) ViewPosition(view mgl32.Mat4) mgl32.Vec3 {
	return mgl32.TransformCoordinate(l.Position, view)
}
