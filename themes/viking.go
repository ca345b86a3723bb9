package themes

import (
	"image"

	"github.com/pixfab/skinforge"
)

// Viking layers a fur-trimmed chainmail hauberk under a braided beard.
type Viking struct{}

func (Viking) Name() string { return "Viking" }

func (Viking) Description() string {
	return "Chainmail and fur trim with a full braided beard."
}

func (Viking) Process(b *skinforge.Buffer, pal skinforge.Palette) {
	b.Clear()
	drawFigure(b, pal)

	// Beard over the lower face, leaving the mouth row to the braid shading.
	head := skinforge.HeadRect
	beard := rows(head, 6, 8)
	fill(b, beard, pal.Hair)
	texture(b, beard, skinforge.TextureFur)

	// Chainmail hauberk with a fur collar and hem.
	torso := skinforge.TorsoRect
	fill(b, torso, pal.Secondary)
	texture(b, torso, skinforge.TextureChainmail)
	for _, trim := range []image.Rectangle{rows(torso, 0, 1), rows(torso, 11, 12)} {
		fill(b, trim, pal.Hair.Lighten(20))
		texture(b, trim, skinforge.TextureFur)
	}

	// Arm bracers, bare legs with fur boots.
	for _, arm := range []image.Rectangle{skinforge.LeftArmRect, skinforge.RightArmRect} {
		fill(b, rows(arm, 7, 10), pal.Accent.Darken(25))
	}
	for _, leg := range []image.Rectangle{skinforge.LeftLegRect, skinforge.RightLegRect} {
		boot := rows(leg, 9, 12)
		fill(b, boot, pal.Hair.Darken(15))
		texture(b, boot, skinforge.TextureFur)
	}
}
