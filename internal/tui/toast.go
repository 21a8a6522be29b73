package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/leaddesk/internal/notify"
)

type toast struct {
	id   string
	note notify.Notification
}

// toastTray is the on-screen notification sink. New toasts are tracked until
// their expiry timers are scheduled.
type toastTray struct {
	items []toast
	fresh []string
	limit int
}

func newToastTray(limit int) *toastTray {
	if limit <= 0 {
		limit = 1
	}
	return &toastTray{limit: limit}
}

func (t *toastTray) Notify(n notify.Notification) {
	id := uuid.NewString()
	t.items = append(t.items, toast{id: id, note: n})
	if len(t.items) > t.limit {
		t.items = t.items[len(t.items)-t.limit:]
	}
	t.fresh = append(t.fresh, id)
}

// expireCmds schedules removal of every toast added since the last call.
func (t *toastTray) expireCmds(after time.Duration) []tea.Cmd {
	if len(t.fresh) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(t.fresh))
	for _, id := range t.fresh {
		id := id
		cmds = append(cmds, tea.Tick(after, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	t.fresh = nil
	return cmds
}

func (t *toastTray) dismiss(id string) bool {
	for i, item := range t.items {
		if item.id == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return true
		}
	}
	return false
}

func (t *toastTray) visible() []notify.Notification {
	out := make([]notify.Notification, 0, len(t.items))
	for _, item := range t.items {
		out = append(out, item.note)
	}
	return out
}

func (t *toastTray) view(width int) string {
	if len(t.items) == 0 {
		return ""
	}
	boxWidth := width
	if boxWidth > 60 {
		boxWidth = 60
	}
	if boxWidth < 24 {
		boxWidth = 24
	}
	rendered := make([]string, 0, len(t.items))
	for i := len(t.items) - 1; i >= 0; i-- {
		n := t.items[i].note
		style, titleStyle := toastStyle, toastTitleStyle
		if n.Destructive() {
			style, titleStyle = toastDestructiveStyle, toastTitleStyle.Inherit(errorStyle)
		}
		body := titleStyle.Render(n.Title)
		if n.Description != "" {
			body += "\n" + wordwrap.String(n.Description, boxWidth-4)
		}
		rendered = append(rendered, style.Width(boxWidth).Render(body))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, strings.Join(rendered, "\n"))
}
