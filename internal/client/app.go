package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/internal/tui"
)

// App runs the client: the gallery refresh job in the background and the
// UI in the foreground.
type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers

	logger *logger.Logger
}

// NewApp wires the client services to ui.
func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run implements [Client]. Quitting the UI is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.services.GalleryJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.GalleryJob.Stop()

	a.logger.Info().Str("contract", a.services.Contract.Hex()).Dur("refresh_interval", a.workers.RefreshInterval).Msg("client started")

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client closed by user")
		return nil
	}
	return err
}
