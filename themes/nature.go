package themes

import "github.com/pixfab/skinforge"

// Nature paints a leaf-mottled tunic with vines climbing the limbs.
type Nature struct{}

func (Nature) Name() string { return "Nature" }

func (Nature) Description() string {
	return "A leafy tunic with climbing vines and a mossy hood."
}

var leafGrid = [][]int{
	{0, 1, 0, 2},
	{1, 0, 2, 0},
	{0, 2, 0, 1},
	{2, 0, 1, 0},
}

func (Nature) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()
	drawFigure(b, pal)

	// Mossy mottle across the torso.
	pattern(b, skinforge.TorsoRect, leafGrid, []skinforge.RGB{
		pal.Primary,
		pal.Primary.Darken(20),
		pal.Secondary.Lighten(15),
	})

	// Vines spiraling up the limbs.
	for i, limb := range limbRects() {
		vine := pal.Accent.Darken(10).RGBA8()
		x := limb.Min.X + i%2*(limb.Dx()-1)
		b.DrawLine(x, limb.Max.Y-1, x, limb.Min.Y+2, vine, 1)
		b.SetPixel(limb.Min.X+1, limb.Min.Y+3+i, pal.Accent.Lighten(20).RGBA8())
	}

	// Mossy hood over the hair.
	fill(b, rows(skinforge.HeadRect, 0, 2), pal.Secondary.Darken(10))
	texture(b, rows(skinforge.HeadRect, 0, 2), skinforge.TextureFur)
}
