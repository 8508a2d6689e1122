package server

import (
	"sync"

	uuid "github.com/satori/go.uuid"
)

// watcher is one connected websocket client. Frames that do not fit in its
// buffer are dropped.
type watcher struct {
	id      string
	frames  chan []byte
	dropped int
}

type hub struct {
	mu       sync.RWMutex
	watchers map[string]*watcher
	buf      int
}

func newHub(buf int) *hub {
	return &hub{watchers: make(map[string]*watcher), buf: buf}
}

func (h *hub) add() *watcher {
	w := &watcher{id: uuid.NewV4().String(), frames: make(chan []byte, h.buf)}
	h.mu.Lock()
	h.watchers[w.id] = w
	h.mu.Unlock()
	return w
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	if w, ok := h.watchers[id]; ok {
		delete(h.watchers, id)
		close(w.frames)
	}
	h.mu.Unlock()
}

func (h *hub) size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers)
}

func (h *hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, w := range h.watchers {
		select {
		case w.frames <- msg:
		default:
			w.dropped++
		}
	}
}
