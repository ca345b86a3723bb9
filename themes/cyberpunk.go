package themes

import "github.com/pixfab/skinforge"

// Cyberpunk paints neon trace-lines over dark clothing and a dyed gradient
// haircut.
type Cyberpunk struct{}

func (Cyberpunk) Name() string { return "Cyberpunk" }

func (Cyberpunk) Description() string {
	return "Neon circuit traces and a dyed undercut over dark streetwear."
}

func (Cyberpunk) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()
	drawFigure(b, pal)

	// Dyed hair fading into the accent color.
	head := skinforge.HeadRect
	b.GradientFill(head.Min.X, head.Min.Y, head.Dx(), 3, pal.Hair, pal.Accent, skinforge.Horizontal)

	torso := skinforge.TorsoRect
	fill(b, torso, pal.Primary.Darken(35))
	texture(b, torso, skinforge.TextureCircuits)

	// Neon seams down the outer side of each limb.
	neon := pal.Accent.Lighten(25).RGBA8()
	for _, limb := range limbRects() {
		fill(b, limb, pal.Secondary.Darken(30))
		b.DrawLine(limb.Max.X-1, limb.Min.Y, limb.Max.X-1, limb.Max.Y-1, neon, 1)
	}

	// Optic implant over the left eye.
	b.SetPixel(9, 5, pal.Accent.RGBA8())
	b.SetPixel(9, 4, pal.Accent.Darken(30).RGBA8())
}
