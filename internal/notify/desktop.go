package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

var notifier = beeep.Notify

// SetNotifier swaps the desktop backend. Tests use it to avoid real popups.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Desktop mirrors n as an OS notification. It blocks until the platform
// backend returns, so callers run it off the UI loop.
func Desktop(n Notification) error {
	title := n.Title
	if n.Destructive() {
		title = "⚠ " + title
	}
	if err := notifier(title, n.Description, ""); err != nil {
		return fmt.Errorf("desktop notification %q: %w", n.Title, err)
	}
	return nil
}

// Queue buffers notifications until they are drained. The terminal UI uses
// it to hand desktop mirroring to a background command.
type Queue struct {
	pending []Notification
}

func (q *Queue) Notify(n Notification) {
	q.pending = append(q.pending, n)
}

// Drain returns and clears the buffered notifications.
func (q *Queue) Drain() []Notification {
	out := q.pending
	q.pending = nil
	return out
}
