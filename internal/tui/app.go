package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-enquete/models"
)

// unmounter is implemented by pages that hold work bound to their lifetime.
type unmounter interface {
	Unmount()
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentPage string
	navigations int

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentPage: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			r.unmountCurrent()
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && r.allowsHotkeys():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.unmountCurrent()
		r.showBuildInfo = false
		r.current = next
		r.currentPage = nav.Page
		r.navigations++

		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("ENQUETE", "", "")
	}
	return r.current.View()
}

// CurrentPage returns the name of the active page.
func (r RootModel) CurrentPage() string {
	return r.currentPage
}

// Navigations returns how many times the active page was switched.
func (r RootModel) Navigations() int {
	return r.navigations
}

func (r RootModel) unmountCurrent() {
	if u, ok := r.current.(unmounter); ok {
		u.Unmount()
	}
}

// allowsHotkeys reports whether single-letter keys are free on the active
// page; the login page needs them for typing.
func (r RootModel) allowsHotkeys() bool {
	_, typing := r.current.(*LoginModel)
	return r.current != nil && !typing
}
