package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{".PNG", PNG, false},
		{"bmp", BMP, false},
		{"tif", TIFF, false},
		{"tiff", TIFF, false},
		{"WebP", WebP, false},
		{".tga", TGA, false},
		{"", "", true},
		{"jpeg", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeDecodable(t *testing.T) {
	src := testImage()
	decoders := map[Format]func(b []byte) (image.Image, error){
		PNG:  func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) },
		BMP:  func(b []byte) (image.Image, error) { return bmp.Decode(bytes.NewReader(b)) },
		TIFF: func(b []byte) (image.Image, error) { return tiff.Decode(bytes.NewReader(b)) },
		TGA:  func(b []byte) (image.Image, error) { return tga.Decode(bytes.NewReader(b)) },
	}
	for f, decode := range decoders {
		var buf bytes.Buffer
		if err := Encode(&buf, src, f); err != nil {
			t.Fatalf("%s: Encode: %v", f, err)
		}
		img, err := decode(buf.Bytes())
		if err != nil {
			t.Fatalf("%s: decode: %v", f, err)
		}
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
			t.Errorf("%s: decoded bounds %v, want 8x4", f, img.Bounds())
		}
		r, g, b, _ := img.At(3, 2).RGBA()
		if r>>8 != 90 || g>>8 != 120 || b>>8 != 128 {
			t.Errorf("%s: pixel (3,2) = (%d,%d,%d), want (90,120,128)", f, r>>8, g>>8, b>>8)
		}
	}
}

func TestEncodeWebPHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), WebP); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b := buf.Bytes()
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Errorf("output is not a RIFF/WEBP container: % x", b[:min(len(b), 12)])
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, testImage(), Format("gif")); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures", "nested")
	gray := image.NewGray(image.Rect(0, 0, 4, 4))

	path, err := Save(dir, "occlusion-0001", PNG, gray)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "occlusion-0001.png"); path != want {
		t.Errorf("Save path = %q, want %q", path, want)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("capture file is empty")
	}
}
