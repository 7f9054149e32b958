// Package server exposes the site over HTTP: the static page bundle with a
// single-page fallback, the legacy polling API bridged onto the document
// store, and a websocket channel pushing live score updates to browsers.
package server

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/khelpoint/khelpoint/internal/livesync"
	"github.com/khelpoint/khelpoint/internal/store"
)

// Config configures the HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// StaticDir is the directory holding the page bundle. Empty disables
	// static serving.
	StaticDir string

	// PollInterval overrides the live feed fallback cadence; zero means the
	// livesync default.
	PollInterval time.Duration
}

// Server wires the store, the websocket hub, and the HTTP routes together.
type Server struct {
	store  store.Store
	cfg    Config
	hub    *hub
	router chi.Router

	// baseCtx scopes match feeds to the server lifetime rather than to the
	// websocket request that started them.
	baseCtx context.Context

	mu    sync.Mutex
	feeds map[string]context.CancelFunc
}

// New builds a Server. Call Run to serve.
func New(s store.Store, cfg Config) *Server {
	srv := &Server{
		store:   s,
		cfg:     cfg,
		hub:     newHub(),
		baseCtx: context.Background(),
		feeds:   make(map[string]context.CancelFunc),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/matches", srv.handleListMatches)
		r.Get("/matches/{id}", srv.handleGetMatch)
		r.Post("/matches/{id}/score", srv.handleScoreDelivery)
		r.Get("/achievements", srv.handleListAchievements)
		r.Post("/teams/register", srv.handleRegister)
	})
	r.Get("/ws/matches/{id}", srv.handleWebSocket)
	r.Get("/health", srv.handleHealth)

	if cfg.StaticDir != "" {
		r.NotFound(spaHandler(cfg.StaticDir))
	}

	srv.router = r
	go srv.hub.run(context.Background())
	return srv
}

// Handler returns the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.baseCtx = ctx

	httpServer := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.router,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", s.cfg.Addr)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// ensureFeed starts one live score feed per match, lazily on the first
// websocket viewer. The feed is a synchronizer whose view broadcasts into
// the hub, so browser clients get the same push-then-poll behavior as any
// other page view.
func (s *Server) ensureFeed(ctx context.Context, matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.feeds[matchID]; ok {
		return
	}
	feedCtx, cancel := context.WithCancel(ctx)
	s.feeds[matchID] = cancel

	sync := livesync.New(s.store, livesync.ViewFunc(func(m store.Match, ls store.LiveScore) {
		s.hub.Broadcast(m.ID, ls)
	}), s.cfg.PollInterval)
	go func() {
		if err := sync.Run(feedCtx, matchID); err != nil {
			log.Printf("server: live feed for match %s ended: %v", matchID, err)
		}
	}()
}

// dropFeedIfIdle tears the feed down once the last viewer disconnects.
func (s *Server) dropFeedIfIdle(matchID string) {
	if s.hub.watcherCount(matchID) > 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.feeds[matchID]; ok {
		cancel()
		delete(s.feeds, matchID)
	}
}
