// Package httpapi exposes the account operations over HTTP+JSON, replacing
// nothing at the service layer: handlers decode requests, call the user
// service, and map domain errors to status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/borbinha27/prova-3bim/internal/logging"
	"github.com/borbinha27/prova-3bim/internal/server/config"
	"github.com/borbinha27/prova-3bim/internal/server/services"
)

type Server struct {
	address   string
	users     *services.UserService
	logger    logging.Logger
	jwtSecret []byte
	publicDir string
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService) *Server {
	return &Server{
		address:   cfg.EndpointAddr,
		logger:    l.With("module", "http_server"),
		users:     us,
		jwtSecret: []byte(cfg.SecretKey),
		publicDir: cfg.PublicDir,
	}
}

// Router assembles the chi router: public routes, the token-gated mutation
// routes, and the optional static file server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/dados", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGetByID)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Put("/{id}", s.handleUpdate)
			r.Delete("/{id}", s.handleDelete)
		})
	})

	if fi, err := os.Stat(s.publicDir); err == nil && fi.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(s.publicDir)))
	}

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// it down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server...", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
