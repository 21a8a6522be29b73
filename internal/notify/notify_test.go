package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestDesktop(t *testing.T) {
	tests := []struct {
		name        string
		n           Notification
		mockErr     error
		wantTitle   string
		expectError bool
	}{
		{
			name:      "default severity",
			n:         Notification{Title: "Message Sent", Description: "Our team will respond shortly.", Severity: SeverityDefault},
			wantTitle: "Message Sent",
		},
		{
			name:      "destructive gets a marker",
			n:         Notification{Title: "Topic Required", Description: "Please provide a topic for your article.", Severity: SeverityDestructive},
			wantTitle: "⚠ Topic Required",
		},
		{
			name:        "backend failure",
			n:           Notification{Title: "Call Request Submitted"},
			mockErr:     errors.New("dbus unavailable"),
			wantTitle:   "Call Request Submitted",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Desktop(tt.n)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.mockErr)
			} else {
				require.NoError(t, err)
			}
			require.Len(t, mock.calls, 1)
			assert.Equal(t, tt.wantTitle, mock.calls[0].title)
			assert.Equal(t, tt.n.Description, mock.calls[0].message)
		})
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Notification{Title: "one"})
	r.Notify(Notification{Title: "two", Severity: SeverityDestructive})

	assert.Equal(t, 2, r.Len())
	last, ok := r.Last()
	require.True(t, ok)
	assert.True(t, last.Destructive())

	got := r.Notifications()
	got[0].Title = "mutated"
	assert.Equal(t, "one", r.Notifications()[0].Title)

	r.Reset()
	assert.Zero(t, r.Len())
}

func TestMultiFansOutInOrder(t *testing.T) {
	var order []string
	first := SinkFunc(func(n Notification) { order = append(order, "first:"+n.Title) })
	second := SinkFunc(func(n Notification) { order = append(order, "second:"+n.Title) })

	Multi{first, nil, second}.Notify(Notification{Title: "x"})

	assert.Equal(t, []string{"first:x", "second:x"}, order)
}

func TestQueueDrain(t *testing.T) {
	var q Queue
	q.Notify(Notification{Title: "a"})
	q.Notify(Notification{Title: "b"})

	drained := q.Drain()
	assert.Len(t, drained, 2)
	assert.Empty(t, q.Drain())
}

func TestLogSinkLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewLogSink(zap.New(core))

	sink.Notify(Notification{Title: "Call Request Submitted", Severity: SeverityDefault})
	sink.Notify(Notification{Title: "Required Fields Missing", Severity: SeverityDestructive})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Required Fields Missing", entries[1].ContextMap()["title"])
}

func TestNilLoggerDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLogSink(nil).Notify(Notification{Title: "x"})
	})
}
