package ssao

import "github.com/go-gl/mathgl/mgl32"

// NoiseTile is a square tile of random rotation vectors in the XY plane.
// It repeats across the screen; At wraps its coordinates.
type NoiseTile struct {
	size   int
	texels []mgl32.Vec2
}

// NoiseTile draws size×size vectors in [-1,1)², row-major.
func (g *Generator) NoiseTile(size int) NoiseTile {
	texels := make([]mgl32.Vec2, size*size)
	for i := range texels {
		for {
			v := mgl32.Vec2{g.rng.Float32()*2 - 1, g.rng.Float32()*2 - 1}
			if v.Len() > 1e-6 {
				texels[i] = v
				break
			}
		}
	}
	return NoiseTile{size: size, texels: texels}
}

// Size returns the tile edge length in texels.
func (n NoiseTile) Size() int { return n.size }

// At returns the rotation vector at (x, y) with repeat wrapping, z = 0.
func (n NoiseTile) At(x, y int) mgl32.Vec3 {
	x = wrap(x, n.size)
	y = wrap(y, n.size)
	v := n.texels[y*n.size+x]
	return mgl32.Vec3{v[0], v[1], 0}
}

// RGB returns the tile as packed RGB floats (z = 0) for a texture upload.
func (n NoiseTile) RGB() []float32 {
	out := make([]float32, 0, len(n.texels)*3)
	for _, v := range n.texels {
		out = append(out, v[0], v[1], 0)
	}
	return out
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
