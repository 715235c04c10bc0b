package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	filter    key.Binding
	quit      key.Binding
	newItem   key.Binding
	refresh   key.Binding
	copy      key.Binding
	interpret key.Binding
	send      key.Binding
	version   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	filter:    key.NewBinding(key.WithKeys("tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	interpret: key.NewBinding(key.WithKeys("i")),
	send:      key.NewBinding(key.WithKeys("ctrl+s")),
	version:   key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
