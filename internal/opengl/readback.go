package opengl

import (
	"image"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFrame copies the default framebuffer's back buffer into an image,
// top row first. Call after RenderFrame and before swapping.
func (r *Renderer) ReadFrame() *image.RGBA {
	w, h := r.targets.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	flipRows(img.Pix, img.Stride, h)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

// ReadOcclusion copies the blurred occlusion target into a grayscale image,
// top row first.
func (r *Renderer) ReadOcclusion() *image.Gray {
	w, h := r.targets.Size()
	values := make([]float32, w*h)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.targets.fbo(TargetBlur))
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RED, gl.FLOAT, gl.Ptr(values))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	return occlusionImage(values, w, h)
}

// occlusionImage converts bottom-up occlusion factors to an 8-bit image.
func occlusionImage(values []float32, w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i, v := range values {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		img.Pix[i] = uint8(v*255 + 0.5)
	}
	flipRows(img.Pix, img.Stride, h)
	return img
}

// flipRows reverses row order in place; GL reads bottom-up.
func flipRows(pix []uint8, stride, rows int) {
	tmp := make([]uint8, stride)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
