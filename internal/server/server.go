package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/homepage/internal/controller"
	"github.com/ziadkadry99/homepage/internal/page"
	"github.com/ziadkadry99/homepage/internal/render"
	"github.com/ziadkadry99/homepage/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port      int
	StaticDir string // directory served for every path other than the API
	AllowAll  bool   // allow all CORS origins (dev mode)
}

// Site is everything a request needs to load the page.
type Site struct {
	Fetcher  controller.Fetcher
	Renderer *render.Renderer
	Store    *store.Store
	Widgets  []controller.Widget

	// NewDocument builds the host page for one request. Nil means
	// page.NewDefault.
	NewDocument func() *page.Document
}

// Server serves the homepage, loading the content document afresh for
// every page request.
type Server struct {
	cfg        Config
	site       Site
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. A nil logger discards everything.
func New(cfg Config, site Site, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if site.Store == nil {
		site.Store = store.New()
	}
	if site.NewDocument == nil {
		site.NewDocument = page.NewDefault
	}
	s := &Server{
		cfg:    cfg,
		site:   site,
		logger: logger,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
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
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handlePage)
	r.Get("/content.json", s.handleContent)

	if s.cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.cfg.StaticDir)))
	}

	return r
}

// handlePage runs one full page load for the request. A failed load still
// renders a page, the error view, with 502 Bad Gateway.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc := s.site.NewDocument()
	controller.InstallBehaviors(doc)

	c := controller.New(s.site.Fetcher, s.site.Store, s.site.Renderer,
		controller.WithWidgets(s.site.Widgets...),
		controller.WithLogger(s.logger.With("request_id", middleware.GetReqID(r.Context()))),
	)

	status := http.StatusOK
	if err := c.Load(r.Context(), doc); err != nil {
		status = http.StatusBadGateway
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		s.logger.Error("rendering page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// handleContent returns the most recently loaded content document.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	sc := s.site.Store.Get()
	if sc == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no content loaded yet"})
		return
	}
	w.Header().Set("Last-Modified", s.site.Store.LoadedAt().UTC().Format(http.TimeFormat))
	writeJSON(w, http.StatusOK, sc)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ServeHTTP dispatches to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start begins listening on the configured port. It returns nil after a
// graceful Shutdown.
func (s *Server) Start() error {
	s.logger.Info("homepage server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
