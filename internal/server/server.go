package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gridguard/landing/internal/apperror"
	"github.com/gridguard/landing/internal/assets"
	"github.com/gridguard/landing/internal/components"
	"github.com/gridguard/landing/internal/config"
	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/logger"
	"github.com/gridguard/landing/internal/metrics"
	"github.com/gridguard/landing/internal/session"
	"github.com/gridguard/landing/internal/signup"
)

// NotifyPath receives the notify form when no script is running.
const NotifyPath = "/notify"

// Config holds server configuration.
type Config struct {
	Port       int
	AllowAll   bool // allow all CORS origins (dev mode)
	CacheRules []config.CacheRule
}

// Server serves the landing page, its assets and the interaction sessions.
type Server struct {
	cfg        Config
	store      *content.Store
	sessions   *session.Handler
	log        *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. sessions may be nil, in which case the page is
// served without a session endpoint and never hides content.
func New(cfg Config, store *content.Store, sessions *session.Handler, log *slog.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		cfg:      cfg,
		store:    store,
		sessions: sessions,
		log:      log.With(logger.Scope("server")),
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
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteJSON(w, apperror.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteJSON(w, apperror.ErrMethodNotAllowed)
	})

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Page and assets
	r.Get("/", s.handlePage)
	r.Post(NotifyPath, s.handleNotify)
	r.With(CacheControl(s.cfg.CacheRules)).
		Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets.FS()))))
	r.Get("/api/content", s.handleContent)

	if s.sessions != nil {
		s.sessions.RegisterRoutes(r)
	}

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) pageConfig() components.PageConfig {
	cfg := components.PageConfig{NotifyAction: NotifyPath + "#" + components.SectionCTA}
	if s.sessions != nil {
		cfg.SessionPath = session.Path
	}
	return cfg
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, components.State{})
}

// handleNotify is the no-script notify form. The address is checked and
// dropped; nothing is stored or logged.
func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		apperror.WriteJSON(w, apperror.NewBadRequest("invalid form body").WithInternal(err))
		return
	}

	snap := signup.Resolve(r.PostFormValue("email"))
	metrics.SignupTransitions.WithLabelValues(snap.State.String()).Inc()

	status := http.StatusOK
	if snap.State == signup.Failed {
		status = http.StatusUnprocessableEntity
	}
	s.renderPage(w, status, components.State{Form: snap})
}

func (s *Server) renderPage(w http.ResponseWriter, status int, state components.State) {
	page := components.Page(s.store.Current(), s.pageConfig(), state)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		s.log.Error("rendering page", logger.Error(err))
	}
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.store.Current()); err != nil {
		s.log.Error("encoding content", logger.Error(err))
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("gridguard listening", slog.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes open sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.sessions != nil {
		s.sessions.CloseAll()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
