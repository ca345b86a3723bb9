package skinforge

import (
	"bytes"
	"image/color"
	"testing"
)

func TestShadeBlendsOnce(t *testing.T) {
	b := NewBuffer()
	b.FillRegion(0, 0, 4, 4, red)
	b.Shade(0, 0, 4, 4, 0.5)

	want := color.RGBA{R: 128, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := b.At(x, y); got != want {
				t.Fatalf("shaded pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestShadeExtremes(t *testing.T) {
	b := NewBuffer()
	b.FillRegion(0, 0, 2, 2, red)

	b.Shade(0, 0, 2, 2, 0)
	if b.At(0, 0) != red {
		t.Error("zero-intensity shade changed pixels")
	}

	b.Shade(0, 0, 2, 2, 1)
	if b.At(0, 0) != (color.RGBA{A: 255}) {
		t.Errorf("full shade = %v, want opaque black", b.At(0, 0))
	}
}

func TestHighlightExtremes(t *testing.T) {
	b := NewBuffer()
	b.FillRegion(0, 0, 2, 2, blue)

	b.Highlight(0, 0, 2, 2, 1)
	if b.At(1, 1) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("full highlight = %v, want opaque white", b.At(1, 1))
	}
}

func TestShadeSkipsTransparent(t *testing.T) {
	b := NewBuffer()
	b.SetPixel(1, 1, red)
	b.Shade(0, 0, 4, 4, 0.5)

	if b.At(0, 0) != (color.RGBA{}) {
		t.Error("shading made a transparent pixel opaque")
	}
	if b.At(1, 1).A != 255 {
		t.Error("shading dropped alpha on a painted pixel")
	}
}

func TestTextureDeterministic(t *testing.T) {
	for _, kind := range []string{TextureChainmail, TextureFur, TextureCircuits, TextureScales} {
		a := NewBuffer()
		a.FillRegion(4, 4, 10, 10, blue)
		a.Texture(4, 4, 10, 10, kind)

		b := NewBuffer()
		b.FillRegion(4, 4, 10, 10, blue)
		b.Texture(4, 4, 10, 10, kind)

		if !bytes.Equal(a.img.Pix, b.img.Pix) {
			t.Errorf("texture %q differs between identical runs", kind)
		}
	}
}

func TestTextureStaysInRect(t *testing.T) {
	for _, kind := range []string{TextureChainmail, TextureFur, TextureCircuits, TextureScales} {
		b := NewBuffer()
		b.FillRegion(0, 0, SkinSize, SkinSize, blue)
		b.Texture(10, 10, 6, 6, kind)

		for y := 0; y < SkinSize; y++ {
			for x := 0; x < SkinSize; x++ {
				inside := x >= 10 && x < 16 && y >= 10 && y < 16
				if !inside && b.At(x, y) != blue {
					t.Fatalf("texture %q wrote outside its rect at (%d,%d)", kind, x, y)
				}
			}
		}
	}
}

func TestTextureUnknownKindNoop(t *testing.T) {
	b := NewBuffer()
	b.FillRegion(0, 0, 8, 8, red)
	snap := make([]byte, len(b.img.Pix))
	copy(snap, b.img.Pix)

	b.Texture(0, 0, 8, 8, "paisley")
	if !bytes.Equal(snap, b.img.Pix) {
		t.Error("unknown texture kind modified the buffer")
	}
}
