package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

// page is one form screen. Each page owns its state; switching pages never
// shares or resets it.
type page interface {
	title() string
	init() tea.Cmd
	header() string
	focusLabel() string
	moveFocus(delta int) tea.Cmd
	update(msg tea.Msg) tea.Cmd
	submit()
	resize(l pageLayout)
	view(l pageLayout) string
}

func isKey(msg tea.Msg, binding key.Binding) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	return ok && key.Matches(keyMsg, binding)
}

// pairRow places two field blocks side by side when there is room.
func pairRow(l pageLayout, left, right string) string {
	if l.stacked {
		return joinNonEmpty([]string{left, right})
	}
	half := l.inputWidth / 2
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(left),
		lipgloss.NewStyle().Width(l.inputWidth-half).Render(right),
	)
}

// fieldWidth is the editor width for one field given the layout.
func fieldWidth(l pageLayout) int {
	if l.stacked {
		return l.inputWidth
	}
	return l.inputWidth/2 - 2
}

func renderIntroButtons() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		inertButtonStyle.Render("Start Free Trial"),
		" ",
		inertButtonStyle.Render("View Demo"),
	)
}
