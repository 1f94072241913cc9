package scene

import "github.com/go-gl/mathgl/mgl32"

// Object is a mesh placed in the world by its model matrix.
type Object struct {
	Name  string
	Mesh  *Mesh
	Model mgl32.Mat4
}

func NewObject(name string, mesh *Mesh, model mgl32.Mat4) *Object {
	return &Object{Name: name, Mesh: mesh, Model: model}
}

// WorldBounds is the mesh bounds moved by the model matrix.
func (o *Object) WorldBounds() AABB {
	mn, mx := o.Mesh.Bounds()
	return AABB{Min: mn, Max: mx}.Transform(o.Model)
}

// Scene is the set of objects drawn into the G-buffer and the single light
// used by the lighting pass.
type Scene struct {
	Objects []*Object
	Light   PointLight
}

func NewScene(light PointLight) *Scene {
	return &Scene{Light: light}
}

func (s *Scene) Add(obj *Object) {
	s.Objects = append(s.Objects, obj)
}

// Triangles counts triangles across all objects.
func (s *Scene) Triangles() int {
	n := 0
	for _, o := range s.Objects {
		n += o.Mesh.Triangles()
	}
	return n
}

// Visible returns the objects whose world bounds touch the frustum of
// viewProj. The floor and mesh stay in scene order.
func (s *Scene) Visible(viewProj mgl32.Mat4) []*Object {
	f := FrustumFromMatrix(viewProj)
	out := make([]*Object, 0, len(s.Objects))
	for _, o := range s.Objects {
		if o.WorldBounds().IntersectsFrustum(&f) {
			out = append(out, o)
		}
	}
	return out
}
