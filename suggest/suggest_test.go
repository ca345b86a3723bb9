package suggest

import (
	"testing"

	"github.com/pixfab/skinforge/themes"
)

func TestAllPalettesParse(t *testing.T) {
	for _, s := range All() {
		if _, err := s.Palette.Parse(); err != nil {
			t.Errorf("suggestion %q has an invalid palette: %v", s.Label, err)
		}
	}
}

func TestAllVariantsRegistered(t *testing.T) {
	reg := themes.DefaultRegistry()
	for _, s := range All() {
		if _, err := reg.Lookup(s.Variant); err != nil {
			t.Errorf("suggestion %q names unregistered variant %q", s.Label, s.Variant)
		}
	}
}

func TestForMatching(t *testing.T) {
	got := For("fire")
	if len(got) == 0 {
		t.Fatal(`For("fire") returned nothing`)
	}
	for _, s := range got {
		if s.Variant != "fire" {
			t.Errorf(`For("fire") returned variant %q`, s.Variant)
		}
	}

	if len(For("FROST")) == 0 {
		t.Error("matching should be case-insensitive against labels")
	}
	if len(For("xyzzy")) != 0 {
		t.Error("unmatched prompt should return nothing")
	}
	if len(For("  ")) != len(All()) {
		t.Error("blank prompt should return every suggestion")
	}
}
