package skinforge

import (
	"errors"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var errShortHex = errors.New("skinforge: color must be 6 hex digits")

// RGB is a color as an 8-bit-per-channel triple. The zero value is black.
type RGB struct {
	R, G, B uint8
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// HexToRGB parses a 6-hex-digit color, with or without a leading '#'.
// Malformed input yields black; palette colors are validated before they
// reach any drawing code, so this is only hit by hand-written detail colors.
func HexToRGB(s string) RGB {
	c, err := parseHex(s)
	if err != nil {
		return RGB{}
	}
	return c
}

func parseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, errShortHex
	}
	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// Hex formats the color as "#rrggbb". Inverse of HexToRGB for all triples.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// Darken moves every channel toward 0 by pct percent, clamped and rounded.
// Darken(c, 0) == c; Darken(c, 100) is black.
func (c RGB) Darken(pct float64) RGB {
	return c.blend(black, pct/100)
}

// Lighten moves every channel toward 255 by pct percent, clamped and rounded.
// Lighten(c, 100) is white.
func (c RGB) Lighten(pct float64) RGB {
	return c.blend(white, pct/100)
}

// Blend interpolates linearly from c to other; t is clamped to [0, 1].
func (c RGB) Blend(other RGB, t float64) RGB {
	return c.blend(other, t)
}

func (c RGB) blend(other RGB, t float64) RGB {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	r, g, b := c.colorful().BlendRgb(other.colorful(), t).Clamped().RGB255()
	return RGB{r, g, b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// RGBA8 returns the color as a fully opaque color.RGBA.
func (c RGB) RGBA8() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
