// Package suggest resolves palette suggestions for a free-form prompt. It is
// the palette-provider side of the skin pipeline: the compositor consumes
// whatever palette the caller picked from here (or built by hand).
//
// Matching is deliberately best-effort: case-insensitive substring checks
// against a fixed suggestion table. The results are canned and deterministic.
package suggest

import (
	"strings"

	"github.com/pixfab/skinforge"
)

// Suggestion pairs a palette with the variant it was designed for.
type Suggestion struct {
	Variant string               `json:"variant"`
	Label   string               `json:"label"`
	Palette skinforge.HexPalette `json:"palette"`
}

var table = []Suggestion{
	{
		Variant: "default",
		Label:   "adventurer",
		Palette: skinforge.HexPalette{Primary: "#3B82F6", Secondary: "#1E40AF", Accent: "#FBBF24", Skin: "#F5C6A0", Hair: "#6B3F1D"},
	},
	{
		Variant: "fire",
		Label:   "ember warden",
		Palette: skinforge.HexPalette{Primary: "#B91C1C", Secondary: "#7F1D1D", Accent: "#FF6B00", Skin: "#E8B080", Hair: "#1C1917"},
	},
	{
		Variant: "ice",
		Label:   "frost caller",
		Palette: skinforge.HexPalette{Primary: "#93C5FD", Secondary: "#1D4ED8", Accent: "#E0F2FE", Skin: "#F1D3B9", Hair: "#E5E7EB"},
	},
	{
		Variant: "robot",
		Label:   "service unit",
		Palette: skinforge.HexPalette{Primary: "#9CA3AF", Secondary: "#4B5563", Accent: "#22D3EE", Skin: "#D1D5DB", Hair: "#374151"},
	},
	{
		Variant: "cyberpunk",
		Label:   "night runner",
		Palette: skinforge.HexPalette{Primary: "#312E81", Secondary: "#111827", Accent: "#F0ABFC", Skin: "#E8B080", Hair: "#EC4899"},
	},
	{
		Variant: "nature",
		Label:   "grove keeper",
		Palette: skinforge.HexPalette{Primary: "#15803D", Secondary: "#3F6212", Accent: "#84CC16", Skin: "#D9A878", Hair: "#78350F"},
	},
	{
		Variant: "ninja",
		Label:   "shadow blade",
		Palette: skinforge.HexPalette{Primary: "#27272A", Secondary: "#3F3F46", Accent: "#B91C1C", Skin: "#E8B080", Hair: "#0A0A0A"},
	},
	{
		Variant: "viking",
		Label:   "north raider",
		Palette: skinforge.HexPalette{Primary: "#7C2D12", Secondary: "#78716C", Accent: "#A16207", Skin: "#EFC49C", Hair: "#D97706"},
	},
	{
		Variant: "pirate",
		Label:   "deckhand",
		Palette: skinforge.HexPalette{Primary: "#F8FAFC", Secondary: "#1E3A8A", Accent: "#DC2626", Skin: "#D9A878", Hair: "#111827"},
	},
	{
		Variant: "wizard",
		Label:   "star sage",
		Palette: skinforge.HexPalette{Primary: "#4C1D95", Secondary: "#312E81", Accent: "#FDE047", Skin: "#F1D3B9", Hair: "#E5E7EB"},
	},
	{
		Variant: "knight",
		Label:   "bannerman",
		Palette: skinforge.HexPalette{Primary: "#B91C1C", Secondary: "#6B7280", Accent: "#FBBF24", Skin: "#E8B080", Hair: "#44403C"},
	},
}

// All returns every canned suggestion.
func All() []Suggestion {
	return append([]Suggestion(nil), table...)
}

// For returns the suggestions whose variant or label contains the prompt,
// case-insensitively. An empty prompt returns everything.
func For(prompt string) []Suggestion {
	prompt = strings.ToLower(strings.TrimSpace(prompt))
	if prompt == "" {
		return All()
	}

	var out []Suggestion
	for _, s := range table {
		if strings.Contains(s.Variant, prompt) || strings.Contains(strings.ToLower(s.Label), prompt) {
			out = append(out, s)
		}
	}
	return out
}
