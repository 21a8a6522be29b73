package tui

import (
	"fmt"
)

func (m *model) View() string {
	p := m.page()
	parts := []string{p.header(), p.view(m.layout)}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	parts = append(parts, m.toasts.view(m.layout.windowWidth-viewportHorizontalPadding), m.footerView())
	return joinNonEmpty(parts)
}

func (m *model) footerView() string {
	p := m.page()
	status := statusBarStyle.Render(fmt.Sprintf("%s · %s", p.title(), p.focusLabel()))
	return status + "  " + m.help.View(keys)
}
