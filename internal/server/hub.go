package server

import (
	"context"
	"log"
	"sync"

	"github.com/khelpoint/khelpoint/internal/store"
)

// client is one websocket viewer subscribed to a single match.
type client struct {
	id      string
	matchID string

	// send carries marshalled live score updates to the write pump. Closed
	// by the hub on unregister.
	send chan store.LiveScore
}

// hub fans live score updates out to the websocket clients watching each
// match.
type hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]bool

	register   chan *client
	unregister chan *client
	broadcast  chan matchUpdate
}

type matchUpdate struct {
	matchID string
	score   store.LiveScore
}

func newHub() *hub {
	return &hub{
		clients:    make(map[string]map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan matchUpdate, 256),
	}
}

// run is the hub's main loop; it owns the clients map mutations.
func (h *hub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.add(c)
		case c := <-h.unregister:
			h.remove(c)
		case u := <-h.broadcast:
			h.fanOut(u)
		}
	}
}

// Broadcast queues an update for every client watching the match. A full
// queue drops the update; clients catch up on the next write.
func (h *hub) Broadcast(matchID string, ls store.LiveScore) {
	select {
	case h.broadcast <- matchUpdate{matchID: matchID, score: ls}:
	default:
		log.Printf("hub: broadcast buffer full, dropping update for match %s", matchID)
	}
}

func (h *hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.matchID] == nil {
		h.clients[c.matchID] = make(map[*client]bool)
	}
	h.clients[c.matchID][c] = true
	log.Printf("hub: client %s watching match %s (%d watching)", c.id, c.matchID, len(h.clients[c.matchID]))
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cs, ok := h.clients[c.matchID]; ok && cs[c] {
		delete(cs, c)
		close(c.send)
		if len(cs) == 0 {
			delete(h.clients, c.matchID)
		}
		log.Printf("hub: client %s disconnected from match %s", c.id, c.matchID)
	}
}

func (h *hub) fanOut(u matchUpdate) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[u.matchID] {
		select {
		case c.send <- u.score:
		default:
			// Slow client; skip rather than block the hub.
		}
	}
}

// watcherCount reports how many clients watch a match.
func (h *hub) watcherCount(matchID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[matchID])
}

func (h *hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, cs := range h.clients {
		for c := range cs {
			close(c.send)
		}
	}
	h.clients = make(map[string]map[*client]bool)
}
