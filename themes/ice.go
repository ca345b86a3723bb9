package themes

import "github.com/pixfab/skinforge"

// Ice paints pale crystalline highlights over a frost-gradient body.
type Ice struct{}

func (Ice) Name() string { return "Ice" }

func (Ice) Description() string {
	return "Frosted armor with crystalline glints and a cold diagonal sheen."
}

func (Ice) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()
	drawFigure(b, pal)

	torso := skinforge.TorsoRect
	gradient(b, torso, pal.Primary.Lighten(35), pal.Secondary, skinforge.Diagonal)

	// Crystal glints: single bright points with a paler halo pixel below.
	glint := pal.Accent.Lighten(60)
	halo := pal.Accent.Lighten(30)
	b.Batch([]skinforge.Pixel{
		{X: torso.Min.X + 2, Y: torso.Min.Y + 3, Color: glint.RGBA8()},
		{X: torso.Min.X + 2, Y: torso.Min.Y + 4, Color: halo.RGBA8()},
		{X: torso.Min.X + 5, Y: torso.Min.Y + 6, Color: glint.RGBA8()},
		{X: torso.Min.X + 5, Y: torso.Min.Y + 7, Color: halo.RGBA8()},
		{X: 11, Y: 1, Color: glint.RGBA8()},
		{X: 14, Y: 2, Color: halo.RGBA8()},
	})

	// Frost creeping up the limbs.
	for _, limb := range limbRects() {
		highlight(b, rows(limb, 0, 2), 0.35)
		fill(b, rows(limb, 9, 10), pal.Accent.Lighten(45))
	}
	highlight(b, rows(skinforge.HeadRect, 0, 1), 0.3)
}
