package themes

import (
	"image"

	"github.com/pixfab/skinforge"
)

// Robot paints a mechanical figure: visor eyes, a riveted chest panel and
// plates at the limb joints.
type Robot struct{}

func (Robot) Name() string { return "Robot" }

func (Robot) Description() string {
	return "A mechanical chassis with a chest panel, visor and joint plates."
}

func (Robot) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()

	head := skinforge.HeadRect
	fill(b, head, pal.Primary)
	// Visor instead of a face.
	fill(b, image.Rect(head.Min.X+1, head.Min.Y+4, head.Max.X-1, head.Min.Y+6), outline)
	fill(b, image.Rect(head.Min.X+2, head.Min.Y+4, head.Max.X-2, head.Min.Y+5), pal.Accent.Lighten(20))
	// Antenna stub.
	b.SetPixel(head.Min.X+4, head.Min.Y, pal.Secondary.Darken(20).RGBA8())

	torso := skinforge.TorsoRect
	fill(b, torso, pal.Primary)
	// Chest panel with rivets at the corners.
	panel := image.Rect(torso.Min.X+1, torso.Min.Y+2, torso.Max.X-1, torso.Min.Y+8)
	fill(b, panel, pal.Secondary)
	rivet := pal.Accent.Darken(10).RGBA8()
	b.Batch([]skinforge.Pixel{
		{X: panel.Min.X, Y: panel.Min.Y, Color: rivet},
		{X: panel.Max.X - 1, Y: panel.Min.Y, Color: rivet},
		{X: panel.Min.X, Y: panel.Max.Y - 1, Color: rivet},
		{X: panel.Max.X - 1, Y: panel.Max.Y - 1, Color: rivet},
	})
	texture(b, inset(panel, 1), skinforge.TextureCircuits)

	for _, limb := range limbRects() {
		fill(b, limb, pal.Primary)
		// Joint plates at shoulder/hip, elbow/knee and wrist/ankle.
		for _, row := range []int{0, 5, 10} {
			fill(b, rows(limb, row, row+1), pal.Secondary.Darken(15))
		}
		shade(b, image.Rect(limb.Max.X-1, limb.Min.Y, limb.Max.X, limb.Max.Y), 0.25)
	}
}
