package themes

import (
	"image"

	"github.com/pixfab/skinforge"
)

// Ninja wraps the whole figure in a dark shinobi suit, leaving only an eye
// slit open, with a sash at the waist.
type Ninja struct{}

func (Ninja) Name() string { return "Ninja" }

func (Ninja) Description() string {
	return "A hooded shinobi suit showing nothing but the eyes."
}

func (Ninja) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()

	suit := pal.Primary.Darken(45)
	hood := pal.Primary.Darken(55)

	head := skinforge.HeadRect
	fill(b, head, hood)
	// Eye slit.
	slit := image.Rect(head.Min.X+1, head.Min.Y+4, head.Max.X-1, head.Min.Y+5)
	fill(b, slit, pal.Skin)
	b.SetPixel(head.Min.X+2, head.Min.Y+4, outline.RGBA8())
	b.SetPixel(head.Max.X-3, head.Min.Y+4, outline.RGBA8())

	torso := skinforge.TorsoRect
	fill(b, torso, suit)
	// Sash with trailing knot.
	fill(b, rows(torso, 6, 7), pal.Accent.Darken(20))
	b.SetPixel(torso.Max.X-2, torso.Min.Y+7, pal.Accent.Darken(35).RGBA8())

	for _, limb := range limbRects() {
		fill(b, limb, suit)
		// Wrappings at the extremities.
		fill(b, rows(limb, 9, 10), pal.Secondary.Darken(40))
		fill(b, rows(limb, 11, 12), pal.Secondary.Darken(40))
	}
	shade(b, torso, 0.1)
}
