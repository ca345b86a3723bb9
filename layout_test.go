package skinforge

import (
	"image"
	"testing"
)

func TestPartRectGeometry(t *testing.T) {
	tests := []struct {
		name string
		r    image.Rectangle
		x, y int
		w, h int
	}{
		{"head", HeadRect, 8, 0, 8, 8},
		{"torso", TorsoRect, 20, 20, 8, 12},
		{"left arm", LeftArmRect, 44, 20, 4, 12},
		{"right arm", RightArmRect, 36, 52, 4, 12},
		{"left leg", LeftLegRect, 4, 20, 4, 12},
		{"right leg", RightLegRect, 20, 52, 4, 12},
	}

	for _, tt := range tests {
		if tt.r.Min.X != tt.x || tt.r.Min.Y != tt.y || tt.r.Dx() != tt.w || tt.r.Dy() != tt.h {
			t.Errorf("%s = %v, want %dx%d at (%d,%d)", tt.name, tt.r, tt.w, tt.h, tt.x, tt.y)
		}
		if !tt.r.In(image.Rect(0, 0, SkinSize, SkinSize)) {
			t.Errorf("%s %v extends outside the skin surface", tt.name, tt.r)
		}
	}
}

func TestPartRectsDisjoint(t *testing.T) {
	parts := PartRects()
	for i := range parts {
		for j := i + 1; j < len(parts); j++ {
			if Overlapping(parts[i], parts[j]) {
				t.Errorf("part rects %v and %v overlap", parts[i], parts[j])
			}
		}
	}
}

func TestOverlapping(t *testing.T) {
	a := image.Rect(0, 0, 4, 4)

	if !Overlapping(a, image.Rect(2, 2, 6, 6)) {
		t.Error("intersecting rects reported as disjoint")
	}
	// Closed intervals: rects sharing only an edge still overlap.
	if !Overlapping(a, image.Rect(4, 0, 8, 4)) {
		t.Error("edge-sharing rects should overlap under closed intervals")
	}
	if Overlapping(a, image.Rect(5, 0, 9, 4)) {
		t.Error("separated rects reported as overlapping")
	}
	if Overlapping(a, image.Rectangle{}) {
		t.Error("empty rect never overlaps")
	}
}
