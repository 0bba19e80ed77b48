package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	next     key.Binding
	prev     key.Binding
	quit     key.Binding
	lock     key.Binding
	mood     key.Binding
	journal  key.Binding
	settings key.Binding
	version  key.Binding
	save     key.Binding
	erase    key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	next:     key.NewBinding(key.WithKeys("tab", "down")),
	prev:     key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q")),
	lock:     key.NewBinding(key.WithKeys("l")),
	mood:     key.NewBinding(key.WithKeys("m")),
	journal:  key.NewBinding(key.WithKeys("j")),
	settings: key.NewBinding(key.WithKeys("s")),
	version:  key.NewBinding(key.WithKeys("v")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	erase:    key.NewBinding(key.WithKeys("ctrl+r")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
