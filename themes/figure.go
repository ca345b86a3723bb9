package themes

import (
	"image"

	"github.com/pixfab/skinforge"
)

var outline = skinforge.RGB{} // pure black, the one palette-independent color

// Rectangle-shaped wrappers over the buffer primitives, so variants can work
// in terms of the UV part rectangles directly.

func fill(b *skinforge.Buffer, r image.Rectangle, c skinforge.RGB) {
	b.FillRegion(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), c.RGBA8())
}

func gradient(b *skinforge.Buffer, r image.Rectangle, start, end skinforge.RGB, dir skinforge.GradientDirection) {
	b.GradientFill(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), start, end, dir)
}

func pattern(b *skinforge.Buffer, r image.Rectangle, grid [][]int, colors []skinforge.RGB) {
	b.PatternFill(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), grid, colors)
}

func shade(b *skinforge.Buffer, r image.Rectangle, intensity float64) {
	b.Shade(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), intensity)
}

func highlight(b *skinforge.Buffer, r image.Rectangle, intensity float64) {
	b.Highlight(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), intensity)
}

func texture(b *skinforge.Buffer, r image.Rectangle, kind string) {
	b.Texture(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), kind)
}

// inset shrinks a rectangle by n pixels on every side.
func inset(r image.Rectangle, n int) image.Rectangle {
	return image.Rect(r.Min.X+n, r.Min.Y+n, r.Max.X-n, r.Max.Y-n)
}

// rows returns the horizontal band of r spanning rows [from, to) relative to
// the rectangle's top edge.
func rows(r image.Rectangle, from, to int) image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y+from, r.Max.X, r.Min.Y+to).Intersect(r)
}

func limbRects() []image.Rectangle {
	return []image.Rectangle{
		skinforge.LeftArmRect, skinforge.RightArmRect,
		skinforge.LeftLegRect, skinforge.RightLegRect,
	}
}

// drawFigure paints the common base figure: skin and hair on the head, a
// simple face, primary-colored torso and arms with bare hands, secondary
// legs with darkened boots. Variants start from this and decorate.
func drawFigure(b *skinforge.Buffer, pal skinforge.Palette) {
	drawHead(b, pal.Skin, pal.Hair)
	drawFace(b, pal.Skin)

	fill(b, skinforge.TorsoRect, pal.Primary)
	for _, arm := range []image.Rectangle{skinforge.LeftArmRect, skinforge.RightArmRect} {
		fill(b, arm, pal.Primary)
		fill(b, rows(arm, 10, 12), pal.Skin) // hands
	}
	for _, leg := range []image.Rectangle{skinforge.LeftLegRect, skinforge.RightLegRect} {
		fill(b, leg, pal.Secondary)
		fill(b, rows(leg, 10, 12), pal.Secondary.Darken(40)) // boots
	}
}

func drawHead(b *skinforge.Buffer, skin, hair skinforge.RGB) {
	fill(b, skinforge.HeadRect, skin)
	fill(b, rows(skinforge.HeadRect, 0, 3), hair)
	// sideburns
	b.SetPixel(8, 3, hair.RGBA8())
	b.SetPixel(15, 3, hair.RGBA8())
}

func drawFace(b *skinforge.Buffer, skin skinforge.RGB) {
	whites := skin.Lighten(75)
	b.Batch([]skinforge.Pixel{
		{X: 9, Y: 5, Color: whites.RGBA8()},
		{X: 14, Y: 5, Color: whites.RGBA8()},
		{X: 10, Y: 5, Color: outline.RGBA8()},
		{X: 13, Y: 5, Color: outline.RGBA8()},
		{X: 11, Y: 7, Color: skin.Darken(30).RGBA8()},
		{X: 12, Y: 7, Color: skin.Darken(30).RGBA8()},
	})
}
