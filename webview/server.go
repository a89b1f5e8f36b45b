package webview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/katalvlaran/bspgen/bsp"
)

// Generator builds the tree for seed.
type Generator func(seed int64) (*bsp.Tree, error)

// Server serves the viewer page and the snapshot stream.
type Server struct {
	// Title is shown on the page.
	Title string
	// OriginPatterns lists extra origins allowed to open /stream; same-origin
	// requests are always allowed.
	OriginPatterns []string

	gen    Generator
	seed   int64
	hub    *Hub
	logger *log.Logger
	mux    *http.ServeMux
}

// NewServer returns a server showing gen(seed) unless a request names
// another seed. A nil logger discards log output.
func NewServer(gen Generator, seed int64, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Server{
		Title:  "bspgen",
		gen:    gen,
		seed:   seed,
		hub:    NewHub(),
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handlePage)
	s.mux.HandleFunc("/stream", s.handleStream)
	return s
}

// Hub returns the server's connection hub.
func (s *Server) Hub() *Hub { return s.hub }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// seedFrom reads ?seed=, falling back to the server default.
func (s *Server) seedFrom(r *http.Request) (int64, error) {
	q := r.URL.Query().Get("seed")
	if q == "" {
		return s.seed, nil
	}
	seed, err := strconv.ParseInt(q, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seed %q: %w", q, err)
	}
	return seed, nil
}

func (s *Server) snapshot(seed int64) (Snapshot, error) {
	t, err := s.gen(seed)
	if err != nil {
		return Snapshot{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	return NewSnapshot(t, seed), nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	seed, err := s.seedFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snap, err := s.snapshot(seed)
	if err != nil {
		s.logger.Printf("page: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Page(s.Title, snap).Render(r.Context(), w); err != nil {
		s.logger.Printf("page: render: %v", err)
	}
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	seed, err := s.seedFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: s.OriginPatterns})
	if err != nil {
		s.logger.Printf("stream: accept: %v", err)
		return
	}
	s.hub.Add(conn)
	defer s.hub.Remove(conn)
	defer conn.CloseNow()

	if err := s.serveConn(context.Background(), conn, seed); err != nil {
		s.logger.Printf("stream: %v", err)
		_ = conn.Close(websocket.StatusInternalError, "generation failed")
		return
	}
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

// serveConn sends the first snapshot and answers requests until the client
// goes away. Malformed and unknown requests are ignored. Only generation
// failures are returned.
func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn, seed int64) error {
	snap, err := s.snapshot(seed)
	if err != nil {
		return err
	}
	if err := s.send(ctx, conn, snap); err != nil {
		return nil
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return nil
		}
		var req request
		if err := json.Unmarshal(data, &req); err != nil {
			continue
		}
		switch req.Type {
		case "regenerate":
			next := snap.Seed + 1
			if req.Seed != nil {
				next = *req.Seed
			}
			if snap, err = s.snapshot(next); err != nil {
				return err
			}
			if err := s.send(ctx, conn, snap); err != nil {
				return nil
			}
		case "share":
			msg, err := json.Marshal(snap)
			if err != nil {
				return err
			}
			s.logger.Printf("stream: sharing seed %d with %d clients", snap.Seed, s.hub.Broadcast(msg))
		}
	}
}

func (s *Server) send(ctx context.Context, conn *websocket.Conn, snap Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, snap)
}
