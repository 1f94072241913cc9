package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: position 3, color 3, normal 3.
const FloatsPerVertex = 9

// Mesh holds CPU-side vertex data as a flat triangle list.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []float32
}

// NewMesh wraps an interleaved vertex buffer. The length must describe whole
// triangles.
func NewMesh(name string, vertices []float32) (*Mesh, error) {
	if len(vertices)%(FloatsPerVertex*3) != 0 {
		return nil, fmt.Errorf("mesh %q: %d floats is not a whole number of triangles", name, len(vertices))
	}
	return &Mesh{Name: name, Vertices: vertices}, nil
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

func (m *Mesh) Triangles() int {
	return m.VertexCount() / 3
}

// Position returns vertex i's position.
func (m *Mesh) Position(i int) mgl32.Vec3 {
	o := i * FloatsPerVertex
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Normal returns vertex i's normal.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	o := i*FloatsPerVertex + 6
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Bounds returns the axis-aligned bounds of the mesh positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	n := m.VertexCount()
	if n == 0 {
		return
	}
	min, max = m.Position(0), m.Position(0)
	for i := 1; i < n; i++ {
		p := m.Position(i)
		for a := 0; a < 3; a++ {
			if p[a] < min[a] {
				min[a] = p[a]
			}
			if p[a] > max[a] {
				max[a] = p[a]
			}
		}
	}
	return min, max
}

func appendVertex(dst []float32, p, c, n mgl32.Vec3) []float32 {
	return append(dst, p[0], p[1], p[2], c[0], c[1], c[2], n[0], n[1], n[2])
}

// NewFloor builds a horizontal square of the given half extent at height y,
// facing +Y.
func NewFloor(halfExtent, y float32, color mgl32.Vec3) *Mesh {
	up := mgl32.Vec3{0, 1, 0}
	a := mgl32.Vec3{-halfExtent, y, -halfExtent}
	b := mgl32.Vec3{-halfExtent, y, halfExtent}
	c := mgl32.Vec3{halfExtent, y, halfExtent}
	d := mgl32.Vec3{halfExtent, y, -halfExtent}

	v := make([]float32, 0, 6*FloatsPerVertex)
	for _, p := range []mgl32.Vec3{a, b, c, a, c, d} {
		v = appendVertex(v, p, color, up)
	}
	return &Mesh{Name: "floor", Vertices: v}
}
