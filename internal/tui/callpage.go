package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"github.com/csheth/leaddesk/internal/callrequest"
	"github.com/csheth/leaddesk/internal/form"
	"github.com/csheth/leaddesk/internal/notify"
	"github.com/csheth/leaddesk/internal/seed"
)

const (
	submitCallLabel = "Request Call Now"
	sendChatLabel   = "Send"
)

// callPage is the automated call request form with the chat sidebar.
type callPage struct {
	content    seed.CallPage
	intro      string
	stats      string
	state      *form.State[callrequest.Field]
	form       *formView[callrequest.Field]
	draft      callrequest.Draft
	chatInput  textinput.Model
	transcript viewport.Model
	entries    []seed.ChatEntry
	ring       focusRing
	sink       notify.Sink
	logger     *zap.Logger
}

func newCallPage(content seed.CallPage, sink notify.Sink, logger *zap.Logger) *callPage {
	fields := callrequest.Fields()
	state := form.NewState(fields)
	p := &callPage{
		content: content,
		state:   state,
		form:    newFormView(fields, state),
		entries: content.Transcript(),
		sink:    sink,
		logger:  logger.Named("call"),
	}

	chat := textinput.New()
	chat.Prompt = "› "
	chat.Placeholder = "Type your message..."
	chat.CharLimit = 500
	p.chatInput = chat
	p.transcript = viewport.New(30, 8)

	for i, def := range fields {
		p.ring.targets = append(p.ring.targets, focusTarget{kind: targetField, field: i, label: def.Label})
	}
	p.ring.targets = append(p.ring.targets,
		focusTarget{kind: targetButton, action: actionSubmit, label: submitCallLabel},
		focusTarget{kind: targetChatInput, label: "Chat message"},
		focusTarget{kind: targetButton, action: actionSendChat, label: sendChatLabel},
	)
	p.resize(newPageLayout())
	return p
}

func (p *callPage) title() string { return "Call request" }

func (p *callPage) init() tea.Cmd { return p.focus(p.ring.current()) }

func (p *callPage) header() string { return renderHeader(p.content.Product, p.content.Nav, 0) }

func (p *callPage) focusLabel() string { return p.ring.current().label }

func (p *callPage) moveFocus(delta int) tea.Cmd {
	prev, next := p.ring.move(delta)
	p.blur(prev)
	return p.focus(next)
}

func (p *callPage) focus(t focusTarget) tea.Cmd {
	switch t.kind {
	case targetField:
		return p.form.focus(t.field)
	case targetChatInput:
		return p.chatInput.Focus()
	}
	return nil
}

func (p *callPage) blur(t focusTarget) {
	switch t.kind {
	case targetField:
		p.form.blur(t.field)
	case targetChatInput:
		p.chatInput.Blur()
	}
}

func (p *callPage) update(msg tea.Msg) tea.Cmd {
	t := p.ring.current()
	switch t.kind {
	case targetField:
		return p.form.update(t.field, msg)
	case targetChatInput:
		if isKey(msg, keys.Send) {
			p.sendChat()
			return nil
		}
		var cmd tea.Cmd
		p.chatInput, cmd = p.chatInput.Update(msg)
		p.draft.Set(p.chatInput.Value())
		return cmd
	case targetButton:
		if !isKey(msg, keys.Activate) {
			return nil
		}
		switch t.action {
		case actionSubmit:
			p.submit()
		case actionSendChat:
			p.sendChat()
		}
	}
	return nil
}

func (p *callPage) submit() {
	if err := callrequest.Submit(p.state, p.sink); err != nil {
		p.logger.Info("call request rejected", zap.Error(err))
		return
	}
	// contact details stay out of the log
	p.logger.Info("call request accepted",
		zap.String("countryCode", p.state.Get(callrequest.CountryCode)),
		zap.String("voiceTone", p.state.Get(callrequest.VoiceTone)),
		zap.String("industry", p.state.Get(callrequest.Industry)))
}

// sendChat is shared by Enter in the chat input and the Send button.
func (p *callPage) sendChat() {
	length := len(p.draft.Value())
	if !p.draft.Send(p.sink) {
		return
	}
	p.chatInput.SetValue("")
	p.logger.Debug("chat message sent", zap.Int("length", length))
}

func (p *callPage) resize(l pageLayout) {
	p.form.setWidth(fieldWidth(l))
	inner := l.sidebarInner()
	p.chatInput.Width = inner - lipgloss.Width(p.chatInput.Prompt) - lipgloss.Width(renderButton(sendChatLabel, false)) - 2
	if p.chatInput.Width < 8 {
		p.chatInput.Width = 8
	}
	p.transcript.Width = inner
	p.transcript.Height = l.transcriptHeight
	p.transcript.SetContent(p.renderTranscript(inner))
	p.transcript.GotoBottom()
	p.intro = renderMarkdown(p.content.Intro, l.windowWidth-viewportHorizontalPadding)
	p.stats = renderStats(p.content.Stats)
}

func (p *callPage) renderTranscript(width int) string {
	if len(p.entries) == 0 {
		return helperStyle.Render("No messages yet.")
	}
	blocks := make([]string, 0, len(p.entries))
	for _, entry := range p.entries {
		avatar := userAvatarStyle.Render("U")
		bubble := userBubbleStyle
		if entry.FromBot {
			avatar = botAvatarStyle.Render("AI")
			bubble = botBubbleStyle
		}
		gap := lipgloss.Width(avatar) + 1
		textWidth := width - gap - 2
		if textWidth < 8 {
			textWidth = 8
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", bubble.Render(wordwrap.String(entry.Text, textWidth)))
		if entry.Time != "" {
			row += "\n" + indentMultiline(helperStyle.Render(entry.Time), strings.Repeat(" ", gap))
		}
		blocks = append(blocks, row)
	}
	return strings.Join(blocks, "\n\n")
}

func (p *callPage) formCard(l pageLayout) string {
	block := func(i int) string { return p.form.block(i, p.ring.isField(i)) }
	parts := []string{cardTitleStyle.Render(p.content.Title)}
	if p.content.Subtitle != "" {
		parts = append(parts, helperStyle.Render(wordwrap.String(p.content.Subtitle, l.inputWidth)))
	}
	parts = append(parts,
		pairRow(l, block(0), block(1)),
		pairRow(l, block(2), block(3)),
		pairRow(l, block(4), block(5)),
		block(6),
		renderButton(submitCallLabel, p.ring.isButton(actionSubmit)),
	)
	return cardStyle.Width(l.mainWidth - 2).Render(joinNonEmpty(parts))
}

func (p *callPage) chatCard(l pageLayout) string {
	input := lipgloss.JoinHorizontal(lipgloss.Center,
		p.chatInput.View(), " ",
		renderButton(sendChatLabel, p.ring.isButton(actionSendChat)))
	parts := []string{sectionHeaderStyle.Render("Chat History"), p.transcript.View(), input}
	return cardStyle.Width(l.sidebarWidth - 2).Render(joinNonEmpty(parts))
}

func (p *callPage) view(l pageLayout) string {
	var top []string
	if l.showIntro {
		top = append(top, p.intro, renderIntroButtons(), p.stats)
	}
	return joinNonEmpty(append(top, l.columns(p.formCard(l), p.chatCard(l))))
}
