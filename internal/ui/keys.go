package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Focus  key.Binding
	Up     key.Binding
	Down   key.Binding
	Cycle  key.Binding
	Toggle key.Binding
	Submit key.Binding
	Sort   key.Binding
	Retry  key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Submit, k.Sort, k.Retry, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Up, k.Down},
		{k.Cycle, k.Toggle, k.Submit},
		{k.Sort, k.Retry, k.Quit},
	}
}

var keys = keyMap{
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "form/table"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "field/row"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
	),
	Cycle: key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "choice"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "consent"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Sort: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "sort column"),
	),
	Retry: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "retry connection"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc/ctrl+c", "quit"),
	),
}
