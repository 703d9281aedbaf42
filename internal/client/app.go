package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/service"
	"github.com/MKhiriev/go-enquete/internal/tui"
)

// UI runs the terminal interface starting at a page.
type UI interface {
	Run(ctx context.Context, startPage string) error
}

type App struct {
	session service.Session
	ui      UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("ui is not initialized")
	}

	return &App{session: services.Session, ui: ui, logger: logger}, nil
}

// Run opens the home page when a usable session is stored and the login page
// otherwise. Quitting from the UI is a normal exit.
func (a *App) Run(ctx context.Context) error {
	startPage := a.startPage(ctx)
	a.logger.Info().Str("page", startPage).Msg("starting ui")

	err := a.ui.Run(ctx, startPage)
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui run: %w", err)
	}

	return nil
}

func (a *App) startPage(ctx context.Context) string {
	_, err := a.session.CurrentAccessToken(ctx)
	switch {
	case err == nil:
		return tui.PageHome
	case !errors.Is(err, service.ErrNoSession):
		a.logger.Warn().Err(err).Msg("could not restore session")
	}

	return tui.PageLogin
}
