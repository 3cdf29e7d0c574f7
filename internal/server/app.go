// Package server initializes and runs the account service: it opens the
// file-backed user store, wires the business services, and starts the
// HTTP server, shutting everything down on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/borbinha27/prova-3bim/internal/logging"
	"github.com/borbinha27/prova-3bim/internal/server/config"
	"github.com/borbinha27/prova-3bim/internal/server/httpapi"
	"github.com/borbinha27/prova-3bim/internal/server/repositories/users"
	"github.com/borbinha27/prova-3bim/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	repo, err := users.NewFileRepository(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	us := services.NewUserService(repo, cfg)

	return &App{config: cfg, logger: logger, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config, app.logger, app.userService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddr, "store", app.config.DatabaseFile)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
