package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Left       key.Binding
	Right      key.Binding
	Activate   key.Binding
	Send       key.Binding
	Submit     key.Binding
	SwitchPage key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "change option")),
	Right:      key.NewBinding(key.WithKeys("right", "l")),
	Activate:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press button")),
	Send:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send message")),
	Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit form")),
	SwitchPage: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "switch page")),
	Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.SwitchPage, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left},
		{k.Activate, k.Send, k.Submit},
		{k.SwitchPage, k.Help, k.Quit},
	}
}
