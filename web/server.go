// Package web serves a local status dashboard for the daemon: recent
// triggers, per-zone statistics, and a websocket feed of arrivals as they
// fire.
package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"hotedge/command"
	"hotedge/storage"
)

//go:embed static/*
var staticFiles embed.FS

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// Server represents the web server
type Server struct {
	db       *storage.DB
	bindings *command.Bindings
	status   func() string
	port     int
	hub      *Hub
}

// NewServer creates a new web server. db may be nil when history recording
// is disabled; status reports the agent state for /api/status.
func NewServer(db *storage.DB, bindings *command.Bindings, status func() string, port int) *Server {
	hub := NewHub()
	go hub.Run()

	return &Server{
		db:       db,
		bindings: bindings,
		status:   status,
		port:     port,
		hub:      hub,
	}
}

func (s *Server) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/zones", s.handleZones)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/history/", s.handleHistory)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/ws", s.handleWebSocket)

	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(staticFS)))

	return mux, nil
}

// Start runs the web server until ctx is done. The listener binds to
// localhost only.
func (s *Server) Start(ctx context.Context) error {
	mux, err := s.routes()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler: mux,
	}

	slog.Info("starting web server", "url", fmt.Sprintf("http://localhost:%d", s.port))

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// BroadcastTrigger broadcasts a fired trigger to all connected clients
func (s *Server) BroadcastTrigger(t *storage.Trigger) {
	s.hub.BroadcastMessage(Message{
		Type: MessageTypeTrigger,
		Data: TriggerMessage{
			Zone:      t.Zone,
			X:         t.X,
			Y:         t.Y,
			Command:   t.Command,
			Success:   t.Success,
			Timestamp: t.Timestamp.UTC().Format(time.RFC3339),
		},
	})
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade WebSocket connection", "error", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
