package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SignupModel is a placeholder page: accounts are created elsewhere.
type SignupModel struct{}

func NewSignupModel() *SignupModel {
	return &SignupModel{}
}

func (m *SignupModel) Init() tea.Cmd {
	return nil
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter, keys.esc) {
		return m, navigate(PageLogin)
	}
	return m, nil
}

func (m *SignupModel) View() string {
	body := "O cadastro ainda não está disponível neste cliente.\n\n" +
		focusMarker(true) + linkStyle.Render("Voltar para o login")

	return renderPage("CRIAR CONTA", body, "enter/esc: voltar │ v: versão")
}
