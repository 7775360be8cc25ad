// Package site serves the documentation viewer over HTTP: the shell page,
// a websocket navigation session per page, and a small JSON API over the
// same navigation core.
package site

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/docview/internal/content"
	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

// Options holds server configuration.
type Options struct {
	Title    string
	Port     int
	AllowAll bool     // allow all CORS origins (dev mode)
	Expanded []string // sections expanded when a page opens
}

// Server is the documentation viewer.
type Server struct {
	opts     Options
	table    *route.Table
	loader   content.Loader
	renderer *render.Renderer
	log      *slog.Logger
	hub      *Hub
	search   *searchCache
	shell    *template.Template
	router   chi.Router

	mu         sync.Mutex
	ctx        context.Context
	httpServer *http.Server
}

// New creates a viewer server over the given navigation core.
func New(opts Options, table *route.Table, loader content.Loader, renderer *render.Renderer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		opts:     opts,
		table:    table,
		loader:   loader,
		renderer: renderer,
		log:      log,
		hub:      NewHub(),
		search:   &searchCache{table: table, loader: loader},
		shell:    template.Must(template.New("shell").Parse(shellTemplate)),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.opts.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", s.handleShell)
	r.Get("/highlight.css", s.handleHighlightCSS)
	r.Get("/search-index.json", s.handleSearchIndex)
	r.Get("/raw/*", s.handleRaw)

	// Websocket sessions outlive any request timeout.
	r.Get("/ws", s.handleWebSocket)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/routes", s.handleRoutes)
		r.Get("/view", s.handleView)
		r.Get("/resolve", s.handleResolve)
		r.Get("/sessions", s.handleSessions)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live session hub.
func (s *Server) Hub() *Hub { return s.hub }

// DocumentChanged refreshes what depends on path: the search index and
// every session showing it.
func (s *Server) DocumentChanged(path route.DocumentPath) {
	s.search.invalidate()
	if n := s.hub.Reload(path); n > 0 {
		s.log.Info("reloaded document", "path", path, "sessions", n)
	}
}

func (s *Server) baseContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

// Start begins listening on the configured port. Sessions and their loads
// are bound to ctx.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.opts.Port)
	s.mu.Lock()
	s.ctx = ctx
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.log.Info("docview listening", "addr", addr, "routes", len(s.table.Entries()))
	return srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	// Hijacked websocket connections are not tracked by http.Server.
	s.hub.closeAll()
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}
