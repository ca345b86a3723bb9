// Package themes provides the built-in skin theme variants. Every variant is
// a stateless value implementing skinforge.Theme; the shared figure helpers
// keep the six body-part regions identical across variants so they differ
// only in decoration.
package themes

import "github.com/pixfab/skinforge"

// DefaultRegistry builds a registry holding every built-in variant. Callers
// keep the returned registry and pass it to whatever resolves themes.
func DefaultRegistry() *skinforge.Registry {
	return skinforge.NewRegistry(
		Default{},
		Fire{},
		Ice{},
		Robot{},
		Cyberpunk{},
		Nature{},
		Ninja{},
		Viking{},
		Pirate{},
		Wizard{},
		Knight{},
	)
}
