package ssao

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// plane is a bounded infinite plane used to raycast synthetic G-buffers.
type plane struct {
	point, normal mgl32.Vec3
	contains      func(p mgl32.Vec3) bool
}

const testFovY = 60.0

// raycastGBuffer renders planes from a camera at the view-space origin
// looking down -Z, storing the nearest hit per pixel.
func raycastGBuffer(width, height int, planes []plane) (*GBuffer, mgl32.Mat4) {
	aspect := float32(width) / float32(height)
	proj := mgl32.Perspective(mgl32.DegToRad(testFovY), aspect, 0.1, 100)
	tanHalf := float32(math.Tan(float64(mgl32.DegToRad(testFovY)) / 2))

	gb := NewGBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ndcX := (float32(x)+0.5)/float32(width)*2 - 1
			ndcY := (float32(y)+0.5)/float32(height)*2 - 1
			dir := mgl32.Vec3{ndcX * aspect * tanHalf, ndcY * tanHalf, -1}

			best := float32(math.MaxFloat32)
			for _, pl := range planes {
				denom := dir.Dot(pl.normal)
				if denom >= 0 {
					continue
				}
				t := pl.point.Dot(pl.normal) / denom
				if t <= 0 || t >= best {
					continue
				}
				hit := dir.Mul(t)
				if pl.contains != nil && !pl.contains(hit) {
					continue
				}
				best = t
				gb.Set(x, y, hit, pl.normal)
			}
		}
	}
	return gb, proj
}

func TestOcclusionFlatPlaneUnoccluded(t *testing.T) {
	gb, proj := raycastGBuffer(64, 48, []plane{
		{point: mgl32.Vec3{0, 0, -3}, normal: mgl32.Vec3{0, 0, 1}},
	})
	set := NewSampleSet(1)

	ao := Occlusion(gb, set.Kernel(), set.Noise(), proj, DefaultParams())
	for y := 0; y < ao.Height; y++ {
		for x := 0; x < ao.Width; x++ {
			if v := ao.At(x, y); v < 0.999 {
				t.Fatalf("pixel (%d,%d): expected ~1.0 on an open plane, got %v", x, y, v)
			}
		}
	}
}

func TestOcclusionConcaveCorner(t *testing.T) {
	const w, h = 256, 256
	floor := plane{
		point:    mgl32.Vec3{0, -1, 0},
		normal:   mgl32.Vec3{0, 1, 0},
		contains: func(p mgl32.Vec3) bool { return p.Z() >= -5 },
	}
	wall := plane{
		point:    mgl32.Vec3{0, 0, -5},
		normal:   mgl32.Vec3{0, 0, 1},
		contains: func(p mgl32.Vec3) bool { return p.Y() >= -1 },
	}
	gb, proj := raycastGBuffer(w, h, []plane{floor, wall})
	set := NewSampleSet(2)

	ao := Occlusion(gb, set.Kernel(), set.Noise(), proj, DefaultParams())

	// The seam projects to ndcY = (-1/5)/tan(30°) ≈ -0.346, row ≈ 83.
	seam := ao.Mean(32, 78, 224, 83)
	mid := ao.Mean(32, 50, 224, 56)
	far := ao.Mean(32, 4, 224, 12)

	if seam >= 1 {
		t.Errorf("seam occlusion: expected < 1, got %v", seam)
	}
	if seam >= mid {
		t.Errorf("occlusion should deepen toward the corner: seam %v, mid %v", seam, mid)
	}
	if seam >= far {
		t.Errorf("occlusion should deepen toward the corner: seam %v, far %v", seam, far)
	}
}

func TestOcclusionRange(t *testing.T) {
	const w, h = 40, 30
	rng := rand.New(rand.NewSource(17))
	gb := NewGBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Intn(8) == 0 {
				continue // background
			}
			pos := mgl32.Vec3{rng.Float32()*4 - 2, rng.Float32()*4 - 2, -0.5 - rng.Float32()*10}
			n := mgl32.Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
			gb.Set(x, y, pos, n)
		}
	}
	proj := mgl32.Perspective(mgl32.DegToRad(75), float32(w)/float32(h), 0.1, 100)
	set := NewSampleSet(3)

	for _, p := range []Params{DefaultParams(), {Radius: 3, Bias: 0}, {Radius: 0.05, Bias: 0.5}} {
		ao := Occlusion(gb, set.Kernel(), set.Noise(), proj, p)
		for i, v := range ao.Values {
			if v < 0 || v > 1 || math.IsNaN(float64(v)) {
				t.Fatalf("params %+v: pixel %d occlusion %v outside [0,1]", p, i, v)
			}
		}
	}
}

func TestOcclusionBackgroundIsOne(t *testing.T) {
	gb := NewGBuffer(8, 8)
	set := NewSampleSet(4)
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)

	ao := Occlusion(gb, set.Kernel(), set.Noise(), proj, DefaultParams())
	for i, v := range ao.Values {
		if v != 1 {
			t.Errorf("background pixel %d: expected 1, got %v", i, v)
		}
	}
}

func TestTangentBasisOrthonormal(t *testing.T) {
	normals := []mgl32.Vec3{
		{0, 0, 1},
		{0, 1, 0},
		mgl32.Vec3{1, 1, 1}.Normalize(),
	}
	noises := []mgl32.Vec3{
		{0.3, -0.7, 0},
		{1, 0, 0},
		{0, 1, 0}, // parallel to the second normal
	}
	for _, n := range normals {
		for _, r := range noises {
			tbn := tangentBasis(n, r)
			cols := []mgl32.Vec3{tbn.Col(0), tbn.Col(1), tbn.Col(2)}
			for i, c := range cols {
				if d := math.Abs(float64(c.Len() - 1)); d > 1e-4 {
					t.Errorf("n=%v r=%v: column %d length %v", n, r, i, c.Len())
				}
			}
			if d := cols[0].Dot(cols[2]); math.Abs(float64(d)) > 1e-4 {
				t.Errorf("n=%v r=%v: tangent not perpendicular to normal (dot %v)", n, r, d)
			}
			if cols[2] != n {
				t.Errorf("n=%v r=%v: third column %v, expected the normal", n, r, cols[2])
			}
		}
	}
}
