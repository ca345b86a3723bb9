package skinforge

import "image"

// Texture kinds understood by Texture. Unknown kinds are a no-op.
const (
	TextureChainmail = "chainmail"
	TextureFur       = "fur"
	TextureCircuits  = "circuits"
	TextureScales    = "scales"
)

// Shade darkens the rectangle by blending every painted pixel toward black.
// intensity runs from 0 (no change) to 1 (solid black). Each pixel is read
// once before it is written, so one call never compounds on itself.
func (b *Buffer) Shade(x, y, w, h int, intensity float64) {
	b.overlay(x, y, w, h, black, intensity)
}

// Highlight lightens the rectangle by blending toward white; see Shade.
func (b *Buffer) Highlight(x, y, w, h int, intensity float64) {
	b.overlay(x, y, w, h, white, intensity)
}

func (b *Buffer) overlay(x, y, w, h int, toward RGB, intensity float64) {
	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}
	r := b.clip(image.Rect(x, y, x+w, y+h))

	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c := b.img.RGBAAt(px, py)
			if c.A == 0 {
				// Decoration never turns background pixels opaque.
				continue
			}
			blended := RGB{c.R, c.G, c.B}.Blend(toward, intensity)
			b.img.SetRGBA(px, py, blended.RGBA8())
		}
	}
}

// Texture stamps a small repeating motif over the painted pixels of the
// rectangle. Motifs are derived from the colors already present, so the same
// rectangle always produces the same result.
func (b *Buffer) Texture(x, y, w, h int, kind string) {
	switch kind {
	case TextureChainmail:
		b.textureChainmail(x, y, w, h)
	case TextureFur:
		b.textureFur(x, y, w, h)
	case TextureCircuits:
		b.textureCircuits(x, y, w, h)
	case TextureScales:
		b.textureScales(x, y, w, h)
	}
}

// Alternating darkened pixels, checkerboard phase locked to the rectangle.
func (b *Buffer) textureChainmail(x, y, w, h int) {
	r := b.clip(image.Rect(x, y, x+w, y+h))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			if (px-x+py-y)%2 != 0 {
				continue
			}
			c := b.img.RGBAAt(px, py)
			if c.A == 0 {
				continue
			}
			b.SetPixel(px, py, RGB{c.R, c.G, c.B}.Darken(25).RGBA8())
		}
	}
}

// Short staggered vertical strokes, like clumps of hair.
func (b *Buffer) textureFur(x, y, w, h int) {
	r := b.clip(image.Rect(x, y, x+w, y+h))
	for px := r.Min.X; px < r.Max.X; px += 2 {
		start := r.Min.Y + (px-x)/2%3
		for py := start; py < r.Max.Y; py += 3 {
			c := b.img.RGBAAt(px, py)
			if c.A == 0 {
				continue
			}
			stroke := RGB{c.R, c.G, c.B}.Darken(30).RGBA8()
			b.SetPixel(px, py, stroke)
			if py+1 < r.Max.Y && b.img.RGBAAt(px, py+1).A != 0 {
				b.SetPixel(px, py+1, stroke)
			}
		}
	}
}

// Cross-hatched traces with brightened nodes at the crossings.
func (b *Buffer) textureCircuits(x, y, w, h int) {
	r := b.clip(image.Rect(x, y, x+w, y+h))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			onRow := (py-y)%3 == 1
			onCol := (px-x)%4 == 2
			if !onRow && !onCol {
				continue
			}
			c := b.img.RGBAAt(px, py)
			if c.A == 0 {
				continue
			}
			base := RGB{c.R, c.G, c.B}
			if onRow && onCol {
				b.SetPixel(px, py, base.Lighten(45).RGBA8())
			} else {
				b.SetPixel(px, py, base.Lighten(20).RGBA8())
			}
		}
	}
}

// Offset rows of darkened pixels suggesting overlapping scales.
func (b *Buffer) textureScales(x, y, w, h int) {
	r := b.clip(image.Rect(x, y, x+w, y+h))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		phase := ((py - y) / 2 % 2) * 2
		if (py-y)%2 != 0 {
			continue
		}
		for px := r.Min.X + phase; px < r.Max.X; px += 4 {
			c := b.img.RGBAAt(px, py)
			if c.A == 0 {
				continue
			}
			b.SetPixel(px, py, RGB{c.R, c.G, c.B}.Darken(20).RGBA8())
		}
	}
}
