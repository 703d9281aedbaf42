package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
