// Package preview pushes live skin renders to websocket clients. A client
// sends a control message naming a variant and palette and receives either a
// binary PNG frame or a JSON error frame in reply.
package preview

import (
	"bytes"
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pixfab/skinforge"
)

const maxScale = 16

// Request is a client control message.
type Request struct {
	Variant string               `json:"variant"`
	Palette skinforge.HexPalette `json:"palette"`
	Scale   int                  `json:"scale"`
}

type errorFrame struct {
	Error string `json:"error"`
}

// Manager renders previews on demand for connected clients. Each connection
// is handled on its own goroutine with its own buffers; the manager only
// shares the read-only registry.
type Manager struct {
	reg *skinforge.Registry

	clientsMutex sync.Mutex
	clients      map[*websocket.Conn]bool
}

// NewManager returns a manager rendering from the given registry.
func NewManager(reg *skinforge.Registry) *Manager {
	return &Manager{
		reg:     reg,
		clients: make(map[*websocket.Conn]bool),
	}
}

// Clients returns the number of connected clients.
func (m *Manager) Clients() int {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()
	return len(m.clients)
}

// HandleConn serves one client until it disconnects or a write fails.
func (m *Manager) HandleConn(conn *websocket.Conn) {
	m.clientsMutex.Lock()
	m.clients[conn] = true
	m.clientsMutex.Unlock()

	defer func() {
		m.clientsMutex.Lock()
		delete(m.clients, conn)
		m.clientsMutex.Unlock()
		conn.Close()
	}()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		frame, err := m.Render(req)
		if err != nil {
			log.Println("skinforge preview: render failed:", err)
			if err := conn.WriteJSON(errorFrame{Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			return
		}
	}
}

// Render produces the PNG reply for one control message.
func (m *Manager) Render(req Request) ([]byte, error) {
	pal, err := req.Palette.Parse()
	if err != nil {
		return nil, err
	}

	buf, err := m.reg.Generate(req.Variant, pal)
	if err != nil {
		return nil, err
	}

	scale := req.Scale
	if scale > maxScale {
		scale = maxScale
	}

	var out bytes.Buffer
	if err := buf.EncodePNG(&out, scale); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
