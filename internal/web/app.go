package web

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plantkeeper/plantkeeper/internal/client/api"
	"github.com/plantkeeper/plantkeeper/internal/client/config"
	"github.com/plantkeeper/plantkeeper/internal/logging"
)

// App ties configuration, the backend client, and the web server together
// for the cmd/web entrypoint.
type App struct {
	config *config.Config
	logger logging.Logger
	server *Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)

	server, err := New(cfg, client, logger)
	if err != nil {
		return nil, err
	}

	return &App{config: cfg, logger: logger, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until the context is cancelled or the listener fails, then
// drains in-flight requests.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.server.Start(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
		cancelFunc()
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown failed", "error", err)
	}
}
