package site

import (
	"sort"
	"sync"

	"github.com/ziadkadry99/docview/internal/route"
)

// Hub tracks the live navigation sessions.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*session)}
}

func (h *Hub) add(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.id] = s
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// IDs returns the live session ids, sorted.
func (h *Hub) IDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reload re-fetches path in every session currently showing it and returns
// how many sessions were reloaded.
func (h *Hub) Reload(path route.DocumentPath) int {
	var targets []*session
	for _, s := range h.snapshot() {
		if cur, ok := s.current(); ok && cur == path {
			targets = append(targets, s)
		}
	}

	for _, s := range targets {
		s.reload()
	}
	return len(targets)
}

// snapshot copies the live sessions so callers can touch them without
// holding h.mu.
func (h *Hub) snapshot() []*session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		out = append(out, s)
	}
	return out
}

func (h *Hub) closeAll() {
	for _, s := range h.snapshot() {
		s.cancel()
		s.conn.Close()
	}
}
