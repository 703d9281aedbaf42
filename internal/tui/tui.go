package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/service"
	"github.com/MKhiriev/go-enquete/internal/validators"
	"github.com/MKhiriev/go-enquete/models"
)

var ErrUserQuit = errors.New("saiu do programa")

type TUI struct {
	services   *service.ClientServices
	validation validators.Validation
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, validation validators.Validation, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:   services,
		validation: validation,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

// Pages builds every routable page bound to ctx.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		PageLogin:  NewLoginModel(ctx, t.services.Authentication, t.services.Session, t.validation, t.logger),
		PageSignup: NewSignupModel(),
		PageHome:   NewHomeModel(ctx, t.services.Session, t.logger),
	}
}

// Run shows startPage and blocks until the user quits. Quitting with ctrl+c
// is reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context, startPage string) error {
	root := NewRootModel(t.Pages(ctx), startPage, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
