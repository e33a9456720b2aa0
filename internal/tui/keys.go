package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Spawn       key.Binding
	Next        key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Redraw      key.Binding
	Remove      key.Binding
	Clear       key.Binding
	Snapshot    key.Binding
	Inspect     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Spawn:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "spawn")),
		Next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "select next")),
		Grow:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "pinch")),
		Shrink:      key.NewBinding(key.WithKeys("-", "_")),
		RotateLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "rotate")),
		RotateRight: key.NewBinding(key.WithKeys("]")),
		Redraw:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redraw")),
		Remove:      key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Clear:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Snapshot:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "png")),
		Inspect:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspect")),
		Help:        key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grow, k.RotateLeft, k.Redraw, k.Remove, k.Clear, k.Snapshot, k.Inspect, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Spawn, k.Next, k.Grow, k.Shrink, k.RotateLeft, k.RotateRight},
		{k.Redraw, k.Remove, k.Clear, k.Snapshot, k.Inspect, k.Help, k.Quit},
	}
}
