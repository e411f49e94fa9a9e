// Package api exposes the application operations over a local HTTP API.
// Requests are turned into dispatched intents through the app facade;
// synchronous operations return their result, fire-and-forget operations
// return 202 Accepted once the dispatch is admitted.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lerenn/workdeck/pkg/app"
	"github.com/lerenn/workdeck/pkg/logger"
)

// Params contains parameters for creating the API server.
type Params struct {
	// Addr is the listen address.
	Addr string
	// App is the application facade requests are executed against.
	App app.App
	// Logger is optional, defaults to a noop logger.
	Logger logger.Logger
}

// Server serves the local HTTP API.
type Server struct {
	addr   string
	app    app.App
	logger logger.Logger
	server *http.Server
}

// NewServer creates a new API server instance.
func NewServer(params Params) (*Server, error) {
	if params.App == nil {
		return nil, ErrAppMissing
	}
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	addr := params.Addr
	if addr == "" {
		addr = "127.0.0.1:7433"
	}
	return &Server{
		addr:   addr,
		app:    params.App,
		logger: log,
	}, nil
}

// Serve runs the HTTP server until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Logf("listening on %s", s.addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Logf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}

// Routes builds the HTTP router.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)

	r.Route("/app", func(r chi.Router) {
		r.Post("/start", s.handleAppStart)
		r.Post("/stop", s.handleAppStop)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Post("/open", s.handleProjectOpen)
		r.Post("/close", s.handleProjectClose)
		r.Post("/clone", s.handleProjectClone)
	})

	r.Route("/workspaces", func(r chi.Router) {
		r.Post("/create", s.handleWorkspaceCreate)
		r.Post("/open", s.handleWorkspaceOpen)
		r.Post("/switch", s.handleWorkspaceSwitch)
		r.Post("/remove", s.handleWorkspaceRemove)
	})

	return r
}
