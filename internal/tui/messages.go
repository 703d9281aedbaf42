package tui

import (
	"github.com/MKhiriev/go-enquete/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names the router understands.
const (
	PageHome   = "/"
	PageLogin  = "/login"
	PageSignup = "/signup"
)

// NavigateTo asks [RootModel] to switch to Page.
type NavigateTo struct {
	Page string
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

// authResultMsg carries the outcome of a login request. generation is the
// mount the request was issued from.
type authResultMsg struct {
	generation int
	account    models.AccountModel
	err        error
}

type accountSavedMsg struct {
	generation int
	err        error
}

type accountLoadedMsg struct {
	account models.AccountModel
	err     error
}

type loggedOutMsg struct {
	err error
}
