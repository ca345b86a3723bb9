package themes

import "github.com/pixfab/skinforge"

// Wizard drapes the figure in a star-flecked robe with a long pale beard.
type Wizard struct{}

func (Wizard) Name() string { return "Wizard" }

func (Wizard) Description() string {
	return "A flowing star-flecked robe and a long pale beard."
}

func (Wizard) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()
	drawFigure(b, pal)

	// Long beard drawn in lightened hair color.
	head := skinforge.HeadRect
	beard := pal.Hair.Lighten(55)
	fill(b, rows(head, 6, 8), beard)
	b.SetPixel(head.Min.X+3, head.Min.Y+5, beard.RGBA8())
	b.SetPixel(head.Min.X+4, head.Min.Y+5, beard.RGBA8())

	// Robe falls over torso and legs in a single vertical sweep.
	torso := skinforge.TorsoRect
	gradient(b, torso, pal.Primary, pal.Primary.Darken(35), skinforge.Vertical)
	for _, limb := range limbRects() {
		gradient(b, limb, pal.Primary.Darken(10), pal.Primary.Darken(40), skinforge.Vertical)
	}

	// Stars on the robe.
	star := pal.Accent.Lighten(50).RGBA8()
	b.Batch([]skinforge.Pixel{
		{X: torso.Min.X + 1, Y: torso.Min.Y + 2, Color: star},
		{X: torso.Min.X + 5, Y: torso.Min.Y + 4, Color: star},
		{X: torso.Min.X + 3, Y: torso.Min.Y + 7, Color: star},
		{X: torso.Min.X + 6, Y: torso.Min.Y + 9, Color: star},
		{X: torso.Min.X + 2, Y: torso.Min.Y + 10, Color: star},
	})
}
