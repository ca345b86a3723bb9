package skinforge

import "image"

// Body-part regions of the 64x64 skin surface. The origins and sizes follow
// the external UV-mapping convention skins are displayed with; a theme that
// paints outside these rectangles produces pixels the display never samples.
var (
	HeadRect     = image.Rect(8, 0, 16, 8)    // 8x8 at (8,0)
	TorsoRect    = image.Rect(20, 20, 28, 32) // 8x12 at (20,20)
	LeftArmRect  = image.Rect(44, 20, 48, 32) // 4x12 at (44,20)
	RightArmRect = image.Rect(36, 52, 40, 64) // 4x12 at (36,52)
	LeftLegRect  = image.Rect(4, 20, 8, 32)   // 4x12 at (4,20)
	RightLegRect = image.Rect(20, 52, 24, 64) // 4x12 at (20,52)
)

// PartRects returns the six body-part regions in painting order.
func PartRects() []image.Rectangle {
	return []image.Rectangle{
		HeadRect, TorsoRect, LeftArmRect, RightArmRect, LeftLegRect, RightLegRect,
	}
}

// Overlapping reports whether two rectangles intersect when their edges are
// treated as closed intervals, so rectangles that merely share an edge count
// as overlapping. image.Rectangle.Overlaps is half-open and misses that case.
func Overlapping(a, b image.Rectangle) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}
