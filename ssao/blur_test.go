package ssao

import (
	"math"
	"testing"
)

func TestBoxBlurPreservesConstant(t *testing.T) {
	for _, v := range []float32{0, 0.37, 0.75, 1} {
		src := UniformField(13, 9, v)
		out := BoxBlur(src)
		for i, got := range out.Values {
			if math.Abs(float64(got-v)) > 1e-6 {
				t.Fatalf("constant %v: texel %d blurred to %v", v, i, got)
			}
		}
	}
}

func TestBoxBlurRemovesNoisePeriod(t *testing.T) {
	const w, h = 24, 16
	noise := NewGenerator(21).NoiseTile(NoiseSize)

	// A field that repeats every NoiseSize texels, like raw SSAO over a flat
	// surface modulated by the rotation tile.
	src := NewField(w, h)
	var mean float32
	for y := 0; y < NoiseSize; y++ {
		for x := 0; x < NoiseSize; x++ {
			mean += 0.5 + 0.25*noise.At(x, y).X()
		}
	}
	mean /= NoiseSize * NoiseSize
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.Set(x, y, 0.5+0.25*noise.At(x, y).X())
		}
	}

	out := BoxBlur(src)
	for y := 2; y < h-2; y++ {
		for x := 2; x < w-2; x++ {
			if got := out.At(x, y); math.Abs(float64(got-mean)) > 1e-5 {
				t.Errorf("interior texel (%d,%d): expected period mean %v, got %v", x, y, mean, got)
			}
		}
	}
}

func TestBoxBlurStaysInRange(t *testing.T) {
	src := NewField(10, 10)
	for i := range src.Values {
		if i%3 == 0 {
			src.Values[i] = 1
		}
	}
	out := BoxBlur(src)
	for i, v := range out.Values {
		if v < 0 || v > 1 {
			t.Errorf("texel %d: %v outside [0,1]", i, v)
		}
	}
}
