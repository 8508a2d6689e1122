// Package server streams arena frames to websocket watchers.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"ranks/internal/arena"
	"ranks/internal/telemetry"
)

const watcherBuffer = 16

type Server struct {
	addr string
	log  *log.Logger
	hub  *hub

	mu   sync.RWMutex
	last *arena.Frame

	upgrader websocket.Upgrader
}

func New(addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = telemetry.Discard()
	}
	return &Server{
		addr: addr,
		log:  logger,
		hub:  newHub(watcherBuffer),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Publish records f as the latest frame and hands it to every watcher.
func (s *Server) Publish(f arena.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &f
	s.hub.broadcast(f.JSON())
}

// join registers a watcher together with the frame it starts from. Every
// frame buffered for it afterwards is newer than last.
func (s *Server) join() (*watcher, *arena.Frame) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hub.add(), s.last
}

func (s *Server) Watchers() int { return s.hub.size() }

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.stream).Methods(http.MethodGet)
	r.HandleFunc("/state", s.state).Methods(http.MethodGet)
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	return r
}

// Serve listens on the configured address until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return errors.Wrap(err, "server: listen")
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return errors.Wrap(err, "server: shutdown")
	}
	return nil
}

func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("upgrade failed", "err", err)
		return
	}
	wt, last := s.join()
	s.log.Info("watcher joined", "id", wt.id, "watchers", s.hub.size())
	defer func() {
		s.hub.remove(wt.id)
		c.Close()
		s.log.Info("watcher left", "id", wt.id, "dropped", wt.dropped)
	}()

	// reading is the only way to notice the client went away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if last != nil {
		if err := c.WriteMessage(websocket.TextMessage, last.JSON()); err != nil {
			return
		}
	}

	for {
		select {
		case <-closed:
			return
		case msg := <-wt.frames:
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				s.log.Debug("write failed", "id", wt.id, "err", err)
				return
			}
		}
	}
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()
	if last == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(last.JSON())
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	tick := 0
	s.mu.RLock()
	if s.last != nil {
		tick = s.last.Tick
	}
	s.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"tick":     tick,
		"watchers": s.hub.size(),
	})
}
