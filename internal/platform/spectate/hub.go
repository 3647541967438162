package spectate

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubesnake/internal/games/cubesnake"
	"github.com/vovakirdan/cubesnake/internal/registry"
)

// clientBuffer is how many frames a viewer may fall behind before frames
// are dropped for it.
const clientBuffer = 16

// Hub fans frames out to connected viewers. Publishing never blocks on a
// slow viewer.
type Hub struct {
	logger *log.Logger

	mu      sync.Mutex
	clients map[string]chan []byte
	last    []byte
	dropped uint64
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[string]chan []byte),
	}
}

// Publish encodes f and queues it for every viewer.
func (h *Hub) Publish(f Frame) {
	b, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("encode frame", "tick", f.Tick, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = b
	for id, ch := range h.clients {
		select {
		case ch <- b:
		default:
			h.dropped++
			h.logger.Debug("dropped frame for slow viewer", "client", id, "tick", f.Tick)
		}
	}
}

// Observe publishes the state of a Cube Snake game. Other games are ignored.
// It matches the signature of the terminal loop's per-tick observer.
func (h *Hub) Observe(game registry.Game) {
	g, ok := game.(*cubesnake.Game)
	if !ok || g.Model() == nil {
		return
	}
	h.Publish(NewFrame(g.Tick(), g.Model()))
}

// subscribe registers a viewer. The latest frame, if any, is queued first.
func (h *Hub) subscribe(id string) <-chan []byte {
	ch := make(chan []byte, clientBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last != nil {
		ch <- h.last
	}
	h.clients[id] = ch
	return ch
}

func (h *Hub) unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, id)
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many frames were skipped for slow viewers.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}
