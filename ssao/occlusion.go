package ssao

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Occlusion evaluates the SSAO pass on the CPU. It mirrors the fragment
// shader in internal/opengl: same kernel, noise addressing, TBN construction,
// projection to UV, bias and range check. The result holds one factor per
// pixel in [0,1], 1 meaning unoccluded.
func Occlusion(gb *GBuffer, kernel Kernel, noise NoiseTile, projection mgl32.Mat4, p Params) *Field {
	out := NewField(gb.Width, gb.Height)
	forEachRow(gb.Height, func(y int) {
		for x := 0; x < gb.Width; x++ {
			out.Set(x, y, occlusionAt(gb, x, y, kernel, noise, projection, p))
		}
	})
	return out
}

func occlusionAt(gb *GBuffer, x, y int, kernel Kernel, noise NoiseTile, projection mgl32.Mat4, p Params) float32 {
	i := y*gb.Width + x
	normal := gb.Normal[i]
	if normal.Len() == 0 {
		return 1
	}
	normal = normal.Normalize()
	fragPos := gb.Position[i]

	tbn := tangentBasis(normal, noise.At(x, y))

	var occlusion float32
	for s := 0; s < kernel.Len(); s++ {
		samplePos := fragPos.Add(tbn.Mul3x1(kernel.At(s)).Mul(p.Radius))

		clip := projection.Mul4x1(samplePos.Vec4(1))
		u := clip.X()/clip.W()*0.5 + 0.5
		v := clip.Y()/clip.W()*0.5 + 0.5
		sampleDepth := gb.positionAt(u, v).Z()

		dist := float32(math.Abs(float64(fragPos.Z() - sampleDepth)))
		rangeCheck := smoothstep(0, 1, p.Radius/max(dist, 0.0001))
		if sampleDepth >= samplePos.Z()+p.Bias {
			occlusion += rangeCheck
		}
	}
	return clamp01(1 - occlusion/float32(kernel.Len()))
}

// tangentBasis builds the TBN matrix that rotates a +Z hemisphere onto the
// surface normal, using the noise vector as the tangent seed.
func tangentBasis(normal, noise mgl32.Vec3) mgl32.Mat3 {
	tangent := noise.Sub(normal.Mul(noise.Dot(normal)))
	if tangent.Len() < 1e-3 {
		if math.Abs(float64(normal.X())) < 0.9 {
			tangent = normal.Cross(mgl32.Vec3{1, 0, 0})
		} else {
			tangent = normal.Cross(mgl32.Vec3{0, 1, 0})
		}
	}
	tangent = tangent.Normalize()
	bitangent := normal.Cross(tangent)
	return mgl32.Mat3FromCols(tangent, bitangent, normal)
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func floor32(v float32) float32 {
	return float32(math.Floor(float64(v)))
}
