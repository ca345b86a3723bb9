package skinforge

import "testing"

func TestRenderAll(t *testing.T) {
	reg := NewRegistry(
		solid{c: RGB{255, 0, 0}},
		namedSolid{id: "Alpha", c: RGB{0, 255, 0}},
		namedSolid{id: "Beta", c: RGB{0, 0, 255}},
	)

	skins, err := RenderAll(reg, Palette{})
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}

	if len(skins) != 3 {
		t.Fatalf("RenderAll returned %d skins, want 3", len(skins))
	}

	seen := make(map[*Buffer]bool)
	for _, id := range reg.IDs() {
		buf, ok := skins[id]
		if !ok {
			t.Fatalf("RenderAll missing variant %q", id)
		}
		if seen[buf] {
			t.Fatal("RenderAll reused a buffer across variants")
		}
		seen[buf] = true
	}

	if skins["alpha"].At(HeadRect.Min.X, HeadRect.Min.Y) != green {
		t.Error("variant rendered with the wrong strategy")
	}
}

type namedSolid struct {
	id string
	c  RGB
}

func (n namedSolid) Name() string      { return n.id }
func (namedSolid) Description() string { return "fills the head" }

func (n namedSolid) Process(b *Buffer, pal Palette) {
	b.Clear()
	b.FillRegion(HeadRect.Min.X, HeadRect.Min.Y, HeadRect.Dx(), HeadRect.Dy(), n.c.RGBA8())
}
