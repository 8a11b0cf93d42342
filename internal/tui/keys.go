package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	submit  key.Binding
	quit    key.Binding
	newRun  key.Binding
	delete  key.Binding
	copy    key.Binding
	refresh key.Binding
	replay  key.Binding
	search  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	submit:  key.NewBinding(key.WithKeys("ctrl+s")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newRun:  key.NewBinding(key.WithKeys("n")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	refresh: key.NewBinding(key.WithKeys("r")),
	replay:  key.NewBinding(key.WithKeys("p")),
	search:  key.NewBinding(key.WithKeys("/")),
}
