package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// pageLayout splits the window into the form column and the sidebar. Below
// sidebarBreakpoint the sidebar is stacked under the form, and below
// introMinHeight rows the marketing copy is hidden so the form stays on screen.
type pageLayout struct {
	windowWidth      int
	windowHeight     int
	mainWidth        int
	sidebarWidth     int
	stacked          bool
	inputWidth       int
	transcriptHeight int
	showIntro        bool
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(120, 40)
	return l
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	const gutter = 2
	if innerWidth < sidebarBreakpoint {
		l.stacked = true
		l.mainWidth = innerWidth
		l.sidebarWidth = innerWidth
	} else {
		l.stacked = false
		l.sidebarWidth = innerWidth / 3
		if l.sidebarWidth < 30 {
			l.sidebarWidth = 30
		}
		l.mainWidth = innerWidth - l.sidebarWidth - gutter
	}
	// card border and padding take 6 columns
	l.inputWidth = l.mainWidth - 6
	if l.inputWidth < 20 {
		l.inputWidth = 20
	}
	const chrome = 16
	usable := height - chrome
	if usable < 12 {
		usable = 12
	}
	l.transcriptHeight = usable / 2
	if l.transcriptHeight < 6 {
		l.transcriptHeight = 6
	}
	l.showIntro = height >= introMinHeight
}

// sidebarInner is the content width inside a sidebar card.
func (l pageLayout) sidebarInner() int {
	inner := l.sidebarWidth - 6
	if inner < 16 {
		inner = 16
	}
	return inner
}

// columns joins the form and sidebar side by side, or stacks them.
func (l pageLayout) columns(main, sidebar string) string {
	if l.stacked {
		return joinNonEmpty([]string{main, sidebar})
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", sidebar)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
