package opengl

import gl "github.com/go-gl/gl/v4.1-core/gl"

// fullscreenTriangle is an empty VAO; positions come from gl_VertexID in
// fullscreenVertSrc.
type fullscreenTriangle struct {
	vao uint32
}

func newFullscreenTriangle() *fullscreenTriangle {
	q := &fullscreenTriangle{}
	gl.GenVertexArrays(1, &q.vao)
	return q
}

func (q *fullscreenTriangle) Draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func (q *fullscreenTriangle) Destroy() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
}
