package themes

import (
	"image"

	"github.com/pixfab/skinforge"
)

// Pirate ties on a bandana and eye patch over a striped shirt.
type Pirate struct{}

func (Pirate) Name() string { return "Pirate" }

func (Pirate) Description() string {
	return "Bandana, eye patch and a striped deckhand shirt."
}

var stripeGrid = [][]int{
	{0},
	{0},
	{1},
	{1},
}

func (Pirate) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()
	drawFigure(b, pal)

	// Bandana with a knotted tail on the right.
	head := skinforge.HeadRect
	fill(b, rows(head, 0, 3), pal.Accent)
	b.SetPixel(head.Max.X-1, head.Min.Y+3, pal.Accent.Darken(20).RGBA8())

	// Eye patch over the right eye and its strap.
	fill(b, image.Rect(13, 4, 15, 6), outline)
	b.DrawLine(head.Min.X, head.Min.Y+4, 12, head.Min.Y+4, outline.RGBA8(), 1)

	// Striped shirt.
	pattern(b, skinforge.TorsoRect, stripeGrid, []skinforge.RGB{
		pal.Primary.Lighten(40),
		pal.Primary,
	})

	// Rolled sleeves: bare forearms, cuffed boots on the legs.
	for _, arm := range []image.Rectangle{skinforge.LeftArmRect, skinforge.RightArmRect} {
		fill(b, rows(arm, 6, 12), pal.Skin)
		fill(b, rows(arm, 5, 6), pal.Primary.Lighten(40))
	}
	for _, leg := range []image.Rectangle{skinforge.LeftLegRect, skinforge.RightLegRect} {
		fill(b, rows(leg, 8, 9), pal.Secondary.Darken(55))
	}
}
