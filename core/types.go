package core

type Color struct {
	R, G, B, A float32
}

// RGBA returns the color as a slice-able array for glClearBufferfv.
func (c Color) RGBA() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
