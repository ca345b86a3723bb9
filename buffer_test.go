package skinforge

import (
	"image/color"
	"testing"
)

func TestNewBufferSize(t *testing.T) {
	b := NewBuffer()
	if b.Bounds().Dx() != SkinSize || b.Bounds().Dy() != SkinSize {
		t.Fatalf("buffer bounds = %v, want %dx%d", b.Bounds(), SkinSize, SkinSize)
	}
}

func TestClear(t *testing.T) {
	b := NewBuffer()
	b.FillRegion(0, 0, SkinSize, SkinSize, red)
	b.Clear()

	for _, c := range b.img.Pix {
		if c != 0 {
			t.Fatal("Clear left a non-transparent pixel")
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	b := NewBuffer()
	if got := b.At(-1, 0); got != (color.RGBA{}) {
		t.Errorf("At(-1, 0) = %v, want transparent", got)
	}
	if got := b.At(0, SkinSize); got != (color.RGBA{}) {
		t.Errorf("At(0, %d) = %v, want transparent", SkinSize, got)
	}
}

func TestDistinctColors(t *testing.T) {
	b := NewBuffer()
	b.FillRegion(0, 0, 4, 4, red)
	b.FillRegion(4, 0, 4, 4, green)
	b.FillRegion(0, 4, 4, 4, red)

	got := b.DistinctColors()
	if len(got) != 2 {
		t.Fatalf("DistinctColors returned %d colors, want 2", len(got))
	}
	if got[0] != red || got[1] != green {
		t.Errorf("DistinctColors = %v, want scan order [red green]", got)
	}
}
