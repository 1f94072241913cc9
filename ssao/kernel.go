package ssao

import (
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// KernelSize and NoiseSize are shared with the SSAO and blur shaders.
const (
	KernelSize = 64
	NoiseSize  = 4
)

// Kernel is an ordered set of hemisphere sample offsets around +Z.
// It is immutable once built; Samples returns a copy.
type Kernel struct {
	samples []mgl32.Vec3
}

// Len returns the number of samples.
func (k Kernel) Len() int { return len(k.samples) }

// At returns sample i.
func (k Kernel) At(i int) mgl32.Vec3 { return k.samples[i] }

// Samples returns a copy of the offsets, suitable for a uniform array upload.
func (k Kernel) Samples() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(k.samples))
	copy(out, k.samples)
	return out
}

// Generator draws kernels and noise tiles from a single random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator seeds a generator. The seed is consumed once; every draw after
// that advances the same stream.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Kernel builds count hemisphere samples.
//
// Each sample is a random direction with z in [0,1) scaled by a random radius
// in [0,1). Radii are sorted before the accelerating falloff
// lerp(0.1, 1.0, (i/count)²) is applied, so sample length never decreases with
// the index and more samples sit close to the surface.
func (g *Generator) Kernel(count int) Kernel {
	dirs := make([]mgl32.Vec3, count)
	radii := make([]float32, count)
	for i := range dirs {
		dirs[i] = g.hemisphereDir()
		radii[i] = g.rng.Float32()
	}
	sort.Slice(radii, func(a, b int) bool { return radii[a] < radii[b] })

	samples := make([]mgl32.Vec3, count)
	for i := range samples {
		t := float32(i) / float32(count)
		scale := lerp(0.1, 1.0, t*t)
		samples[i] = dirs[i].Mul(radii[i] * scale)
	}
	return Kernel{samples: samples}
}

func (g *Generator) hemisphereDir() mgl32.Vec3 {
	for {
		v := mgl32.Vec3{
			g.rng.Float32()*2 - 1,
			g.rng.Float32()*2 - 1,
			g.rng.Float32(),
		}
		if l := v.Len(); l > 1e-6 {
			return v.Mul(1 / l)
		}
	}
}

func lerp(a, b, f float32) float32 {
	return a + f*(b-a)
}
