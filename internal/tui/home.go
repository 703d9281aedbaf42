package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/service"
	"github.com/MKhiriev/go-enquete/models"
)

// HomeModel is the page shown to an authenticated account.
type HomeModel struct {
	ctx     context.Context
	session service.Session

	account models.AccountModel
	loaded  bool
	errMsg  string

	logger *logger.Logger
}

func NewHomeModel(ctx context.Context, session service.Session, logger *logger.Logger) *HomeModel {
	return &HomeModel{ctx: ctx, session: session, logger: logger}
}

// Init implements [tea.Model]. It loads the stored account.
func (m *HomeModel) Init() tea.Cmd {
	m.account = models.AccountModel{}
	m.loaded = false
	m.errMsg = ""

	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		account, err := session.CurrentAccount(ctx)
		return accountLoadedMsg{account: account, err: err}
	}
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountLoadedMsg:
		if errors.Is(msg.err, service.ErrNoSession) {
			return m, navigate(PageLogin)
		}
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "HomeModel.Update").Msg("failed to load account")
			m.errMsg = service.ErrUnexpected.Error()
			return m, nil
		}
		m.account = msg.account
		m.loaded = true
		return m, nil
	case loggedOutMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "HomeModel.Update").Msg("failed to logout")
			m.errMsg = service.ErrUnexpected.Error()
			return m, nil
		}
		return m, navigate(PageLogin)
	case tea.KeyMsg:
		if key.Matches(msg, keys.logout) {
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}

func (m *HomeModel) View() string {
	var b strings.Builder

	switch {
	case m.account.Name != "":
		b.WriteString("Olá, ")
		b.WriteString(m.account.Name)
		b.WriteString("!\n")
	default:
		b.WriteString("Olá!\n")
	}

	if m.loaded {
		b.WriteString("Você está autenticado.")
	} else if m.errMsg == "" {
		b.WriteString("Carregando...")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("INÍCIO", b.String(), "l: sair da conta │ v: versão")
}
