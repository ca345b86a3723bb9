package skinforge

import (
	"errors"
	"fmt"
)

// ErrInvalidColor marks a palette entry that is not a 6-hex-digit color.
var ErrInvalidColor = errors.New("skinforge: invalid color")

// Palette is the named color set a theme paints from. Themes only ever read
// it; derived shades come from Darken/Lighten, never from mutating the
// palette.
type Palette struct {
	Primary   RGB
	Secondary RGB
	Accent    RGB
	Skin      RGB
	Hair      RGB
}

// HexPalette is the wire form of a palette: five 6-hex-digit colors, with or
// without a leading '#'.
type HexPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Skin      string `json:"skin"`
	Hair      string `json:"hair"`
}

// Parse validates every entry and returns the decoded palette. The error
// wraps ErrInvalidColor and names the first offending entry; themes are
// never run against an unvalidated palette.
func (h HexPalette) Parse() (Palette, error) {
	var pal Palette

	for _, entry := range []struct {
		name string
		hex  string
		dst  *RGB
	}{
		{"primary", h.Primary, &pal.Primary},
		{"secondary", h.Secondary, &pal.Secondary},
		{"accent", h.Accent, &pal.Accent},
		{"skin", h.Skin, &pal.Skin},
		{"hair", h.Hair, &pal.Hair},
	} {
		c, err := parseHex(entry.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: %s color %q", ErrInvalidColor, entry.name, entry.hex)
		}
		*entry.dst = c
	}

	return pal, nil
}
