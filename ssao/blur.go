package ssao

// BoxBlur averages a NoiseSize×NoiseSize footprint (offsets -2..1 on both
// axes) around every texel with clamp-to-edge addressing, matching the blur
// shader. The footprint equals the noise period, so the tiling pattern
// cancels out.
func BoxBlur(src *Field) *Field {
	out := NewField(src.Width, src.Height)
	const lo, hi = -NoiseSize / 2, NoiseSize / 2
	forEachRow(src.Height, func(y int) {
		for x := 0; x < src.Width; x++ {
			var sum float32
			for dy := lo; dy < hi; dy++ {
				for dx := lo; dx < hi; dx++ {
					sum += src.At(x+dx, y+dy)
				}
			}
			out.Set(x, y, sum/float32(NoiseSize*NoiseSize))
		}
	})
	return out
}
