package skinforge

import (
	"errors"
	"testing"
)

type solid struct{ c RGB }

func (solid) Name() string        { return "Solid" }
func (solid) Description() string { return "fills the head" }

func (s solid) Process(b *Buffer, pal Palette) {
	b.Clear()
	b.FillRegion(HeadRect.Min.X, HeadRect.Min.Y, HeadRect.Dx(), HeadRect.Dy(), s.c.RGBA8())
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(solid{c: RGB{255, 0, 0}})

	if _, err := reg.Lookup("solid"); err != nil {
		t.Errorf("Lookup(solid) error = %v", err)
	}
	if _, err := reg.Lookup("SOLID"); err != nil {
		t.Errorf("Lookup should be case-insensitive: %v", err)
	}

	_, err := reg.Lookup("quantum")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Lookup(quantum) error = %v, want ErrUnknownVariant", err)
	}
}

func TestRegistryGenerate(t *testing.T) {
	reg := NewRegistry(solid{c: RGB{255, 0, 0}})

	buf, err := reg.Generate("solid", Palette{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if buf.At(HeadRect.Min.X, HeadRect.Min.Y) != red {
		t.Error("Generate did not run the variant")
	}

	if _, err := reg.Generate("quantum", Palette{}); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Generate(quantum) error = %v, want ErrUnknownVariant", err)
	}
}

func TestRegistryIDsOrdered(t *testing.T) {
	reg := NewRegistry(solid{c: RGB{1, 0, 0}})
	ids := reg.IDs()
	if len(ids) != 1 || ids[0] != "solid" {
		t.Errorf("IDs() = %v, want [solid]", ids)
	}
}

func TestNewRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	NewRegistry(solid{}, solid{})
}
