package themes

import (
	"image"

	"github.com/pixfab/skinforge"
)

// Default is the plain figure: base colors, light shading down the sides and
// a simple accent belt.
type Default struct{}

func (Default) Name() string { return "Default" }

func (Default) Description() string {
	return "A classic look with balanced colors and simple shading."
}

func (Default) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()
	drawFigure(b, pal)

	// Belt across the torso with an accent buckle.
	torso := skinforge.TorsoRect
	fill(b, rows(torso, 7, 8), pal.Secondary.Darken(20))
	b.SetPixel(torso.Min.X+3, torso.Min.Y+7, pal.Accent.RGBA8())
	b.SetPixel(torso.Min.X+4, torso.Min.Y+7, pal.Accent.RGBA8())

	// Soft depth: darker outer edge, lighter center line.
	for _, r := range []image.Rectangle{torso, skinforge.LeftArmRect, skinforge.RightArmRect} {
		shade(b, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), 0.2)
		highlight(b, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), 0.15)
	}
}
