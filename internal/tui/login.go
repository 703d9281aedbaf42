// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-enquete/internal/app"
	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/service"
	"github.com/MKhiriev/go-enquete/internal/validators"
	"github.com/MKhiriev/go-enquete/models"
)

// FormState is the lifecycle state of the login form.
//
// A failed submission is not a resting state: it sets the main error and
// the form is back in StateEditing, so Failed shows as Editing with
// MainError set.
type FormState int

const (
	StateIdle FormState = iota
	StateEditing
	StateSubmitting
	StateSucceeded
)

func (s FormState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

const (
	statusInvalid = "🔴"
	statusValid   = "🟢"
	statusOK      = app.MsgFieldOK
)

var fieldLabels = map[string]string{
	models.FieldEmail:    "E-mail",
	models.FieldPassword: "Senha",
}

type fieldState struct {
	value string
	err   string
}

// LoginModel is the Bubble Tea model for the login page. Every keystroke
// re-validates the whole form; submission is possible only when no field has
// an error and no request is in flight. On success the account is stored
// through [service.Session] and the router is sent to the home page.
type LoginModel struct {
	parent     context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	generation int

	auth       service.Authentication
	session    service.Session
	validation validators.Validation

	fieldNames []string
	inputs     []textinput.Model
	focus      int

	fields    map[string]fieldState
	state     FormState
	isLoading bool
	mainError string
	spinner   spinner.Model

	logger *logger.Logger
}

// NewLoginModel creates a mounted [LoginModel] with e-mail and password
// inputs. Requests are bound to a child of ctx that is cancelled on Unmount.
func NewLoginModel(
	ctx context.Context,
	auth service.Authentication,
	session service.Session,
	validation validators.Validation,
	logger *logger.Logger,
) *LoginModel {
	m := &LoginModel{
		parent:     ctx,
		auth:       auth,
		session:    session,
		validation: validation,
		fieldNames: []string{models.FieldEmail, models.FieldPassword},
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		logger:     logger,
	}
	m.mount()

	return m
}

// Init implements [tea.Model]. The router calls it every time the page is
// shown, so the form starts empty with every field validated.
func (m *LoginModel) Init() tea.Cmd {
	m.mount()
	return nil
}

// Unmount cancels the in-flight request, if any. Its result, should it still
// arrive, belongs to an old generation and is dropped.
func (m *LoginModel) Unmount() {
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	m.isLoading = false
}

func (m *LoginModel) mount() {
	if m.cancel != nil {
		m.cancel()
	}
	m.ctx, m.cancel = context.WithCancel(m.parent)
	m.generation++

	m.inputs = []textinput.Model{
		newFormInput("seu@email.com", 254, false),
		newFormInput("sua senha", 256, true),
	}
	m.focus = 0
	m.inputs[m.focus].Focus()

	m.fields = make(map[string]fieldState, len(m.fieldNames))
	m.state = StateIdle
	m.isLoading = false
	m.mainError = ""
	m.validateAll()
}

func newFormInput(placeholder string, limit int, secret bool) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = 40
	input.Cursor.SetMode(cursor.CursorStatic)
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	return input
}

// Update implements [tea.Model]. Handled messages:
//   - authResultMsg, accountSavedMsg: results of the submit pipeline;
//   - spinner.TickMsg: animates the spinner while loading;
//   - tab / shift+tab / up / down: move focus;
//   - enter: next field, submit, or open signup;
//
// All other key events are forwarded to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		return m, m.handleAuthResult(msg)
	case accountSavedMsg:
		return m, m.handleAccountSaved(msg)
	case spinner.TickMsg:
		if !m.isLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *LoginModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.tab, keys.down):
		m.moveFocus(1)
		return nil
	case key.Matches(msg, keys.backtab, keys.up):
		m.moveFocus(-1)
		return nil
	case key.Matches(msg, keys.enter):
		return m.activate()
	}

	if m.focus >= len(m.inputs) {
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.validateAll()
	if !m.isLoading {
		m.state = StateEditing
	}

	return cmd
}

func (m *LoginModel) activate() tea.Cmd {
	switch m.focus {
	case m.submitSlot(), len(m.inputs) - 1:
		return m.submit()
	case m.signupSlot():
		return navigate(PageSignup)
	default:
		m.moveFocus(1)
		return nil
	}
}

func (m *LoginModel) submit() tea.Cmd {
	if !m.CanSubmit() {
		return nil
	}

	params := models.AuthenticationParams{
		Email:    m.fields[models.FieldEmail].value,
		Password: m.fields[models.FieldPassword].value,
	}

	m.isLoading = true
	m.mainError = ""
	m.state = StateSubmitting

	return tea.Batch(m.spinner.Tick, m.cmdAuth(params))
}

func (m *LoginModel) cmdAuth(params models.AuthenticationParams) tea.Cmd {
	ctx, generation, auth := m.ctx, m.generation, m.auth

	return func() tea.Msg {
		account, err := auth.Auth(ctx, params)
		return authResultMsg{generation: generation, account: account, err: err}
	}
}

func (m *LoginModel) cmdSaveAccount(account models.AccountModel) tea.Cmd {
	ctx, generation, session := m.ctx, m.generation, m.session

	return func() tea.Msg {
		return accountSavedMsg{generation: generation, err: session.SetCurrentAccount(ctx, account)}
	}
}

func (m *LoginModel) handleAuthResult(msg authResultMsg) tea.Cmd {
	if msg.generation != m.generation {
		m.logger.Debug().Int("generation", msg.generation).Msg("dropping stale login result")
		return nil
	}
	if msg.err != nil {
		m.fail(msg.err)
		return nil
	}

	return m.cmdSaveAccount(msg.account)
}

func (m *LoginModel) handleAccountSaved(msg accountSavedMsg) tea.Cmd {
	if msg.generation != m.generation {
		return nil
	}
	if msg.err != nil {
		m.fail(msg.err)
		return nil
	}

	m.isLoading = false
	m.state = StateSucceeded
	return navigate(PageHome)
}

func (m *LoginModel) fail(err error) {
	m.logger.Err(err).Str("func", "LoginModel.fail").Msg("login failed")

	m.isLoading = false
	m.mainError = humanizeAuthError(err)
	m.state = StateEditing
}

func (m *LoginModel) validateAll() {
	params := make(models.ValidationParams, len(m.fieldNames))
	for i, name := range m.fieldNames {
		params[name] = m.inputs[i].Value()
	}

	for _, name := range m.fieldNames {
		m.fields[name] = fieldState{
			value: params[name],
			err:   m.validation.Validate(name, params),
		}
	}
}

func (m *LoginModel) hasErrors() bool {
	for _, fs := range m.fields {
		if fs.err != "" {
			return true
		}
	}
	return false
}

// CanSubmit reports whether the submit button is enabled.
func (m *LoginModel) CanSubmit() bool {
	return !m.isLoading && !m.hasErrors()
}

// FieldStatus returns the indicator shown next to field.
func (m *LoginModel) FieldStatus(field string) string {
	if fs := m.fields[field]; fs.err != "" {
		return statusInvalid + " " + fs.err
	}
	return statusValid + " " + statusOK
}

// State returns the current form state.
func (m *LoginModel) State() FormState {
	return m.state
}

// MainError returns the form-level error message, or "".
func (m *LoginModel) MainError() string {
	return m.mainError
}

// IsLoading reports whether a login request is in flight.
func (m *LoginModel) IsLoading() bool {
	return m.isLoading
}

func (m *LoginModel) submitSlot() int { return len(m.inputs) }
func (m *LoginModel) signupSlot() int { return len(m.inputs) + 1 }

func (m *LoginModel) moveFocus(delta int) {
	slots := len(m.inputs) + 2
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + slots) % slots
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

// formStatus renders the spinner and the main error, and is empty otherwise.
func (m *LoginModel) formStatus() string {
	parts := make([]string, 0, 2)
	if m.isLoading {
		parts = append(parts, m.spinner.View()+" "+app.MsgSigningIn)
	}
	if m.mainError != "" {
		parts = append(parts, errorStyle.Render(m.mainError))
	}
	return strings.Join(parts, "\n")
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	for i, name := range m.fieldNames {
		b.WriteString(focusMarker(m.focus == i))
		b.WriteString(fmt.Sprintf("%-7s│ ", fieldLabels[name]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("  ")
		b.WriteString(m.FieldStatus(name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(focusMarker(m.focus == m.submitSlot()))
	if m.CanSubmit() {
		b.WriteString(buttonStyle.Render("[ Entrar ]"))
	} else {
		b.WriteString(disabledButtonStyle.Render("[ Entrar ]"))
	}
	b.WriteString("\n")

	if status := m.formStatus(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(focusMarker(m.focus == m.signupSlot()))
	b.WriteString(linkStyle.Render("Criar conta"))

	return renderPage("LOGIN", b.String(), "tab: próximo │ enter: confirmar")
}
