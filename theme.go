package skinforge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant marks a theme identifier with no registered variant.
// Lookups never fall back to a default theme; silently swapping the visual
// output would hide caller bugs.
var ErrUnknownVariant = errors.New("skinforge: unknown theme variant")

// Theme is one named painting strategy. Implementations are stateless:
// Process must be a pure function of the palette writing only into buf, so a
// single Theme value can serve concurrent renders on separate buffers.
//
// Process must clear the buffer and paint only inside the six body-part
// rectangles of the UV layout.
type Theme interface {
	Name() string
	Description() string
	Process(buf *Buffer, pal Palette)
}

// Registry maps theme identifiers to variants. It is built once at startup
// and passed by reference to whatever resolves themes; there is no package
// global.
type Registry struct {
	themes map[string]Theme
	order  []string
}

// NewRegistry builds a registry from the given variants. Identifiers are the
// lowercased variant names. Registering two variants with the same name is a
// programming error and panics.
func NewRegistry(themes ...Theme) *Registry {
	r := &Registry{themes: make(map[string]Theme, len(themes))}
	for _, t := range themes {
		id := strings.ToLower(t.Name())
		if _, ok := r.themes[id]; ok {
			panic("skinforge: duplicate theme variant " + id)
		}
		r.themes[id] = t
		r.order = append(r.order, id)
	}
	return r
}

// Lookup resolves a theme identifier, case-insensitively.
func (r *Registry) Lookup(id string) (Theme, error) {
	t, ok := r.themes[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
	}
	return t, nil
}

// IDs returns the registered identifiers in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Generate renders the identified variant with the given palette onto a
// fresh buffer.
func (r *Registry) Generate(id string, pal Palette) (*Buffer, error) {
	t, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}

	buf := NewBuffer()
	t.Process(buf, pal)
	return buf, nil
}
