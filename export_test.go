package skinforge

import (
	"bytes"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func TestEncodePNGScale(t *testing.T) {
	b := NewBuffer()
	b.FillRegion(0, 0, 2, 2, red)

	var out bytes.Buffer
	if err := b.EncodePNG(&out, 4); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != SkinSize*4 || img.Bounds().Dy() != SkinSize*4 {
		t.Errorf("scaled output is %v, want %dx%d", img.Bounds(), SkinSize*4, SkinSize*4)
	}

	// Nearest-neighbor keeps the block edges hard.
	r, g, bl, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g != 0 || bl != 0 {
		t.Errorf("upscaled corner = %v, want red", img.At(0, 0))
	}
}

func TestEncodeBMP(t *testing.T) {
	b := NewBuffer()
	b.FillRegion(0, 0, SkinSize, SkinSize, blue)

	var out bytes.Buffer
	if err := b.EncodeBMP(&out, 1); err != nil {
		t.Fatalf("EncodeBMP() error = %v", err)
	}

	img, err := bmp.Decode(&out)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != SkinSize {
		t.Errorf("BMP output is %v, want %dx%d", img.Bounds(), SkinSize, SkinSize)
	}
}
