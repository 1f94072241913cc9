package ssao

import "github.com/go-gl/mathgl/mgl32"

// GBuffer is an in-memory copy of the geometry buffer: view-space position
// and normal per pixel, row 0 at the bottom like a GL texture. A zero normal
// marks a background pixel.
type GBuffer struct {
	Width, Height int
	Position      []mgl32.Vec3
	Normal        []mgl32.Vec3
}

// NewGBuffer allocates an empty (all background) buffer.
func NewGBuffer(width, height int) *GBuffer {
	return &GBuffer{
		Width:    width,
		Height:   height,
		Position: make([]mgl32.Vec3, width*height),
		Normal:   make([]mgl32.Vec3, width*height),
	}
}

// Set stores one texel.
func (g *GBuffer) Set(x, y int, position, normal mgl32.Vec3) {
	i := y*g.Width + x
	g.Position[i] = position
	g.Normal[i] = normal
}

// positionAt samples the position attachment at a UV with nearest filtering
// and clamp-to-edge addressing.
func (g *GBuffer) positionAt(u, v float32) mgl32.Vec3 {
	x := clampInt(int(floor32(u*float32(g.Width))), 0, g.Width-1)
	y := clampInt(int(floor32(v*float32(g.Height))), 0, g.Height-1)
	return g.Position[y*g.Width+x]
}

// Field is a single-channel float image, the CPU analogue of the SSAO and
// blur targets.
type Field struct {
	Width, Height int
	Values        []float32
}

// NewField allocates a zeroed field.
func NewField(width, height int) *Field {
	return &Field{Width: width, Height: height, Values: make([]float32, width*height)}
}

// UniformField returns a field filled with v.
func UniformField(width, height int, v float32) *Field {
	f := NewField(width, height)
	for i := range f.Values {
		f.Values[i] = v
	}
	return f
}

// At returns the value at (x, y) with clamp-to-edge addressing.
func (f *Field) At(x, y int) float32 {
	x = clampInt(x, 0, f.Width-1)
	y = clampInt(y, 0, f.Height-1)
	return f.Values[y*f.Width+x]
}

// Set stores the value at (x, y).
func (f *Field) Set(x, y int, v float32) {
	f.Values[y*f.Width+x] = v
}

// Mean returns the average over the rectangle [x0,x1)×[y0,y1).
func (f *Field) Mean(x0, y0, x1, y1 int) float32 {
	var sum float32
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sum += f.At(x, y)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float32(n)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
