package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/leaddesk/internal/seed"
)

// renderMarkdown renders page copy for the terminal. The raw text is returned
// when glamour cannot render it.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func renderStats(stats []seed.Stat) string {
	if len(stats) == 0 {
		return ""
	}
	cells := make([]string, 0, len(stats))
	for _, stat := range stats {
		body := statValueStyle.Render(stat.Value) + "\n" + helperStyle.Render(stat.Label)
		cells = append(cells, statBoxStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderHeader(product string, nav []string, active int) string {
	items := make([]string, 0, len(nav))
	for i, label := range nav {
		if i == active {
			items = append(items, navActiveStyle.Render(label))
			continue
		}
		items = append(items, navStyle.Render(label))
	}
	return productStyle.Render(product) + "  " + strings.Join(items, navStyle.Render("  ·  "))
}
