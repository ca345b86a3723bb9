package skinforge

import (
	"image"
	"image/color"
)

// SkinSize is the fixed edge length of a skin surface in pixels.
const SkinSize = 64

// Buffer is a fixed-size RGBA drawing surface. All drawing operations clip
// silently at the edges; out-of-range coordinates are never an error.
//
// A Buffer is not safe for concurrent mutation. Renders that must run in
// parallel each get their own Buffer (see RenderAll).
type Buffer struct {
	img *image.RGBA
}

// NewBuffer returns a transparent SkinSize x SkinSize surface.
func NewBuffer() *Buffer {
	return &Buffer{img: image.NewRGBA(image.Rect(0, 0, SkinSize, SkinSize))}
}

// Bounds returns the drawable area of the buffer.
func (b *Buffer) Bounds() image.Rectangle {
	return b.img.Bounds()
}

// Image exposes the underlying raster for encoding or display. The returned
// image shares the buffer's pixels; callers must not draw through it while a
// render is in progress.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// At returns the color at (x, y), or transparent black out of range.
func (b *Buffer) At(x, y int) color.RGBA {
	if !b.contains(x, y) {
		return color.RGBA{}
	}
	return b.img.RGBAAt(x, y)
}

// Clear resets every pixel to transparent.
func (b *Buffer) Clear() {
	pix := b.img.Pix
	for i := range pix {
		pix[i] = 0
	}
}

func (b *Buffer) contains(x, y int) bool {
	return image.Pt(x, y).In(b.img.Bounds())
}

// clip intersects r with the buffer bounds.
func (b *Buffer) clip(r image.Rectangle) image.Rectangle {
	return r.Intersect(b.img.Bounds())
}

// DistinctColors returns every color used by at least one non-transparent
// pixel, in first-appearance scan order.
func (b *Buffer) DistinctColors() []color.RGBA {
	seen := make(map[color.RGBA]bool)
	var out []color.RGBA

	bounds := b.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := b.img.RGBAAt(x, y)
			if c.A == 0 || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}

	return out
}
