// Package notify carries the transient messages produced by stub submissions.
// Producers only write notifications; sinks decide how to display them.
package notify

import "go.uber.org/zap"

// Severity marks how a notification should be styled.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is a single toast.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Destructive reports whether the notification signals a failed action.
func (n Notification) Destructive() bool {
	return n.Severity == SeverityDestructive
}

// Sink receives notifications.
type Sink interface {
	Notify(Notification)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Notification)

func (f SinkFunc) Notify(n Notification) { f(n) }

// Multi fans a notification out to every sink in order.
type Multi []Sink

func (m Multi) Notify(n Notification) {
	for _, s := range m {
		if s != nil {
			s.Notify(n)
		}
	}
}

// Recorder keeps every notification it receives.
type Recorder struct {
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.items = append(r.items, n)
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	return append([]Notification(nil), r.items...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Len returns the number of recorded notifications.
func (r *Recorder) Len() int { return len(r.items) }

// Reset drops everything recorded.
func (r *Recorder) Reset() { r.items = nil }

// LogSink writes notifications to a zap logger. Destructive ones are logged
// at warn level.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink returns a sink bound to logger. A nil logger discards.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger.Named("notify")}
}

func (s *LogSink) Notify(n Notification) {
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("severity", string(n.Severity)),
	}
	if n.Destructive() {
		s.logger.Warn("notification", fields...)
		return
	}
	s.logger.Info("notification", fields...)
}
