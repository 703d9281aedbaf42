package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// harness drives a model synchronously: commands run inline and their
// messages are fed back until nothing is left. Spinner ticks are dropped so
// no test ever sleeps.
type harness struct {
	t     *testing.T
	model tea.Model
	navs  []string
	quit  bool
}

func newHarness(t *testing.T, model tea.Model) *harness {
	t.Helper()
	return &harness{t: t, model: model}
}

// update delivers msg without running the returned command.
func (h *harness) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateTo:
		h.navs = append(h.navs, msg.Page)
	case tea.QuitMsg:
		h.quit = true
	}

	next, cmd := h.model.Update(msg)
	h.model = next
	return cmd
}

// start runs the model's Init command.
func (h *harness) start() {
	h.t.Helper()
	h.drain(h.model.Init())
}

// send delivers msg and everything it causes.
func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	h.drain(h.update(msg))
}

func (h *harness) drain(cmds ...tea.Cmd) {
	h.t.Helper()
	queue := expand(cmds...)
	for i := 0; len(queue) > 0; i++ {
		require.Less(h.t, i, 100, "message loop does not settle")
		msg := queue[0]
		queue = append(queue[1:], expand(h.update(msg))...)
	}
}

func (h *harness) typeText(s string) {
	h.t.Helper()
	for _, r := range s {
		h.send(runeKey(r))
	}
}

func expand(cmds ...tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case nil:
		case tea.BatchMsg:
			out = append(out, expand(msg...)...)
		case spinner.TickMsg:
		default:
			out = append(out, msg)
		}
	}
	return out
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyBack  = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)
