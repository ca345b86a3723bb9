package themes

import "github.com/pixfab/skinforge"

// Fire paints glowing ember accents: a bottom-up gradient on the torso,
// embers on the head and flame-tipped limbs.
type Fire struct{}

func (Fire) Name() string { return "Fire" }

func (Fire) Description() string {
	return "Smoldering armor with ember trims and a rising heat gradient."
}

func (Fire) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()
	drawFigure(b, pal)

	torso := skinforge.TorsoRect
	gradient(b, torso, pal.Secondary.Darken(25), pal.Primary.Lighten(15), skinforge.Vertical)

	// Embers scattered over the hair.
	ember := pal.Accent.Lighten(30)
	b.Batch([]skinforge.Pixel{
		{X: 9, Y: 0, Color: ember.RGBA8()},
		{X: 12, Y: 1, Color: ember.RGBA8()},
		{X: 14, Y: 0, Color: ember.RGBA8()},
		{X: 10, Y: 2, Color: pal.Accent.RGBA8()},
	})

	// Flame tips licking up from cuffs and boots.
	for _, limb := range limbRects() {
		fill(b, rows(limb, 9, 10), pal.Accent)
		fill(b, rows(limb, 8, 9), pal.Accent.Darken(25))
	}
	shade(b, rows(torso, 10, 12), 0.25)
}
