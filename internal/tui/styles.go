package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor    = lipgloss.Color("#7f5af0")
	mutedColor     = lipgloss.Color("#56526e")
	surfaceColor   = lipgloss.Color("236")
	brightColor    = lipgloss.Color("255")
	warningColor   = lipgloss.Color("9")
	successColor   = lipgloss.Color("#a3be8c")
	highlightColor = lipgloss.Color("#8ecae6")
)

var (
	productStyle       = lipgloss.NewStyle().Bold(true).Foreground(brightColor).Background(accentColor).Padding(0, 1)
	navStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	navActiveStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	cardTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(brightColor)
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle         = lipgloss.NewStyle().Foreground(warningColor)
	cardStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(1, 2)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(highlightColor).Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	requiredMarkStyle = lipgloss.NewStyle().Foreground(warningColor)
	selectStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusedSelect     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	buttonStyle        = lipgloss.NewStyle().Foreground(brightColor).Background(surfaceColor).Padding(0, 2)
	focusedButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(brightColor).Background(accentColor).Padding(0, 2)
	inertButtonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Border(lipgloss.NormalBorder()).BorderForeground(mutedColor).Padding(0, 2)

	statValueStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	statBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(0, 2).Align(lipgloss.Center)

	toastStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(successColor).Padding(0, 1)
	toastDestructiveStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(warningColor).Padding(0, 1)
	toastTitleStyle       = lipgloss.NewStyle().Bold(true)

	botAvatarStyle  = lipgloss.NewStyle().Bold(true).Foreground(brightColor).Background(accentColor).Padding(0, 1)
	userAvatarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(highlightColor).Padding(0, 1)
	botBubbleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(surfaceColor).Padding(0, 1)
	userBubbleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(highlightColor).Padding(0, 1)

	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(brightColor)
	historyItemStyle  = lipgloss.NewStyle().PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(mutedColor)
)
