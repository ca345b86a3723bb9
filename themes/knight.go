package themes

import (
	"image"

	"github.com/pixfab/skinforge"
)

// Knight armors the figure in plate and chainmail with a slitted helm.
type Knight struct{}

func (Knight) Name() string { return "Knight" }

func (Knight) Description() string {
	return "Plate armor over chainmail, with a slitted great helm."
}

func (Knight) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()

	steel := pal.Secondary.Lighten(20)

	// Great helm with a single eye slit and a plume pixel.
	head := skinforge.HeadRect
	fill(b, head, steel)
	fill(b, image.Rect(head.Min.X+1, head.Min.Y+4, head.Max.X-1, head.Min.Y+5), outline)
	b.SetPixel(head.Min.X+4, head.Min.Y, pal.Accent.RGBA8())
	highlight(b, image.Rect(head.Min.X, head.Min.Y, head.Min.X+2, head.Max.Y), 0.2)

	// Chainmail under a plate chest piece with the wearer's colors quartered.
	torso := skinforge.TorsoRect
	fill(b, torso, steel.Darken(10))
	texture(b, torso, skinforge.TextureChainmail)
	fill(b, rows(torso, 1, 7), steel)
	fill(b, image.Rect(torso.Min.X+1, torso.Min.Y+2, torso.Min.X+4, torso.Min.Y+5), pal.Primary)
	fill(b, image.Rect(torso.Min.X+4, torso.Min.Y+2, torso.Min.X+7, torso.Min.Y+5), pal.Accent)

	for _, limb := range limbRects() {
		fill(b, limb, steel.Darken(5))
		texture(b, rows(limb, 3, 9), skinforge.TextureChainmail)
		// Pauldron/cuisse plate and sabaton.
		fill(b, rows(limb, 0, 3), steel.Lighten(10))
		fill(b, rows(limb, 10, 12), pal.Secondary.Darken(25))
	}
}
