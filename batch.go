package skinforge

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// RenderAll renders every registered variant with the same palette, one
// goroutine and one fresh buffer per variant. Buffers are single-writer, so
// the fan-out shares nothing but the read-only palette and registry.
func RenderAll(reg *Registry, pal Palette) (map[string]*Buffer, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]*Buffer)
		g   errgroup.Group
	)

	for _, id := range reg.IDs() {
		id := id
		g.Go(func() error {
			buf, err := reg.Generate(id, pal)
			if err != nil {
				return err
			}

			mu.Lock()
			out[id] = buf
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
