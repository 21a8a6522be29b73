package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/leaddesk/internal/notify"
	"github.com/csheth/leaddesk/internal/seed"
)

const defaultToastDuration = 4 * time.Second

// Config wires runtime options into the TUI program.
type Config struct {
	Page          PageKind
	Fixture       seed.Fixture
	Logger        *zap.Logger
	ToastDuration time.Duration
	DesktopNotify bool
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	return newModel(config)
}

type model struct {
	config Config
	layout pageLayout
	pages  map[PageKind]page
	active PageKind

	toasts  *toastTray
	desktop *notify.Queue
	jobs    *jobBus
	help    help.Model
	logger  *zap.Logger

	errorMessage string
}

func newModel(config Config) *model {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.ToastDuration <= 0 {
		config.ToastDuration = defaultToastDuration
	}

	m := &model{
		config:  config,
		layout:  newPageLayout(),
		active:  config.Page,
		toasts:  newToastTray(maxToasts),
		desktop: &notify.Queue{},
		jobs:    newJobBus(logger),
		help:    help.New(),
		logger:  logger.Named("tui"),
	}
	sink := notify.Multi{m.toasts, notify.NewLogSink(logger)}
	if config.DesktopNotify {
		sink = append(sink, m.desktop)
	}
	m.pages = map[PageKind]page{
		PageCall:    newCallPage(config.Fixture.Call, sink, logger),
		PageArticle: newArticlePage(config.Fixture.Article, sink, logger),
	}
	if _, ok := m.pages[m.active]; !ok {
		m.active = PageCall
	}
	return m
}

func (m *model) page() page { return m.pages[m.active] }

func (m *model) Init() tea.Cmd {
	m.logger.Info("page opened", zap.String("page", m.active.String()))
	return tea.Batch(textinput.Blink, m.page().init())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.help.Width = msg.Width
		for _, p := range m.pages {
			p.resize(m.layout)
		}
		return m, nil
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case toastExpiredMsg:
		m.toasts.dismiss(msg.id)
		return m, nil
	case jobSignalMsg:
		return m, nil
	case jobResultEnvelope:
		if msg.Snapshot.Status == jobStatusFailed {
			m.errorMessage = fmt.Sprintf("Desktop notification failed: %s", msg.Snapshot.Err)
			m.logger.Warn("desktop notification failed",
				zap.String("job", msg.Snapshot.ID),
				zap.String("error", msg.Snapshot.Err))
		}
		return m, nil
	default:
		cmd = m.page().update(msg)
	}
	return m, tea.Batch(cmd, m.flushNotifications())
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		m.logger.Info("quit", zap.String("page", m.active.String()))
		return tea.Quit
	case key.Matches(msg, keys.SwitchPage):
		return m.switchPage()
	case key.Matches(msg, keys.Next):
		return m.page().moveFocus(1)
	case key.Matches(msg, keys.Prev):
		return m.page().moveFocus(-1)
	case key.Matches(msg, keys.Submit):
		m.page().submit()
		return nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	m.errorMessage = ""
	return m.page().update(msg)
}

func (m *model) switchPage() tea.Cmd {
	if m.active == PageCall {
		m.active = PageArticle
	} else {
		m.active = PageCall
	}
	m.logger.Info("page opened", zap.String("page", m.active.String()))
	return m.page().init()
}

// flushNotifications schedules expiry for new toasts and mirrors queued
// notifications to the desktop.
func (m *model) flushNotifications() tea.Cmd {
	cmds := m.toasts.expireCmds(m.config.ToastDuration)
	for _, n := range m.desktop.Drain() {
		cmds = append(cmds, m.jobs.Start(jobKindDesktop, desktopJob(n)))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
