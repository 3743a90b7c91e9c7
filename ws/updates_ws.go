package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/debounce"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// UpdatesHub pushes invalidation events to browsing clients so sibling
// views re-fetch instead of sharing state. Bursts (a bulk link fires one
// event per pair batch) are coalesced behind a short debounce before
// broadcasting.
type UpdatesHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	pending []services.Invalidation
	deb     *debounce.Debouncer
	tokens  debounce.TokenGuard

	upgrader websocket.Upgrader
}

func NewUpdatesHub(bus *services.InvalidationBus) *UpdatesHub {
	h := &UpdatesHub{
		clients: make(map[*websocket.Conn]bool),
		deb:     debounce.New(300 * time.Millisecond),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	bus.Subscribe(h.enqueue)
	return h
}

func (h *UpdatesHub) enqueue(ev services.Invalidation) {
	h.mu.Lock()
	h.pending = append(h.pending, ev)
	h.mu.Unlock()

	token := h.tokens.Next()
	h.deb.Trigger(func() { h.flush(token) })
}

// flush broadcasts the pending batch, unless a newer enqueue superseded
// this run. Trigger cancels a pending timer but cannot cancel a callback
// that already fired; the token check keeps such a racing flush from
// broadcasting a burst before its quiet period.
func (h *UpdatesHub) flush(token uint64) {
	h.mu.Lock()
	if !h.tokens.Current(token) {
		h.mu.Unlock()
		return
	}
	batch := h.pending
	h.pending = nil
	if len(batch) == 0 {
		h.mu.Unlock()
		return
	}
	msg, _ := json.Marshal(gin.H{"kind": "invalidate", "events": batch})
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
	h.mu.Unlock()
}

// GET /ws/updates
func (h *UpdatesHub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// read loop only to notice the close; clients never send data
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				_ = conn.Close()
				return
			}
		}
	}()
}
