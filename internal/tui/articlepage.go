package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"github.com/csheth/leaddesk/internal/articlegen"
	"github.com/csheth/leaddesk/internal/form"
	"github.com/csheth/leaddesk/internal/notify"
	"github.com/csheth/leaddesk/internal/seed"
)

const generateLabel = "Generate Article"

// articlePage is the SEO article generator form with the history sidebar.
type articlePage struct {
	content seed.ArticlePage
	intro   string
	history []seed.HistoryEntry
	state   *form.State[articlegen.Field]
	form    *formView[articlegen.Field]
	ring    focusRing
	sink    notify.Sink
	logger  *zap.Logger
}

// articleOrder lists the field indices in the order they are laid out; the
// WordPress credentials come after the generate button.
var articleOrder = []int{0, 1, 2, 3, 4, 5, 6}

var wordpressOrder = []int{7, 8, 9}

func newArticlePage(content seed.ArticlePage, sink notify.Sink, logger *zap.Logger) *articlePage {
	fields := articlegen.Fields()
	state := form.NewState(fields)
	p := &articlePage{
		content: content,
		history: content.Entries(),
		state:   state,
		form:    newFormView(fields, state),
		sink:    sink,
		logger:  logger.Named("article"),
	}
	for _, idx := range articleOrder {
		p.ring.targets = append(p.ring.targets, focusTarget{kind: targetField, field: idx, label: fields[idx].Label})
	}
	p.ring.targets = append(p.ring.targets, focusTarget{kind: targetButton, action: actionSubmit, label: generateLabel})
	for _, idx := range wordpressOrder {
		p.ring.targets = append(p.ring.targets, focusTarget{kind: targetField, field: idx, label: fields[idx].Label})
	}
	p.resize(newPageLayout())
	return p
}

func (p *articlePage) title() string { return "Article generator" }

func (p *articlePage) init() tea.Cmd { return p.focus(p.ring.current()) }

func (p *articlePage) header() string {
	return renderHeader(p.content.Product, p.content.Nav, 0)
}

func (p *articlePage) focusLabel() string { return p.ring.current().label }

func (p *articlePage) moveFocus(delta int) tea.Cmd {
	prev, next := p.ring.move(delta)
	if prev.kind == targetField {
		p.form.blur(prev.field)
	}
	return p.focus(next)
}

func (p *articlePage) focus(t focusTarget) tea.Cmd {
	if t.kind == targetField {
		return p.form.focus(t.field)
	}
	return nil
}

func (p *articlePage) update(msg tea.Msg) tea.Cmd {
	t := p.ring.current()
	switch t.kind {
	case targetField:
		return p.form.update(t.field, msg)
	case targetButton:
		if isKey(msg, keys.Activate) {
			p.submit()
		}
	}
	return nil
}

func (p *articlePage) submit() {
	if err := articlegen.Submit(p.state, p.sink); err != nil {
		p.logger.Info("article generation rejected", zap.Error(err))
		return
	}
	// credentials are never logged; only whether they were given
	p.logger.Info("article generation accepted",
		zap.String("language", p.state.Get(articlegen.Language)),
		zap.String("writingStyle", p.state.Get(articlegen.WritingStyle)),
		zap.String("articleLength", p.state.Get(articlegen.ArticleLength)),
		zap.String("variants", p.state.Get(articlegen.Variants)),
		zap.Bool("wordpress", !form.Blank(p.state.Get(articlegen.WordPressURL))))
}

func (p *articlePage) resize(l pageLayout) {
	p.form.setWidth(fieldWidth(l))
	p.intro = renderMarkdown(p.content.Intro, l.windowWidth-viewportHorizontalPadding)
}

func (p *articlePage) formCard(l pageLayout) string {
	block := func(i int) string { return p.form.block(i, p.ring.isField(i)) }
	parts := []string{
		cardTitleStyle.Render(p.content.Title),
		block(0),
		block(1),
		pairRow(l, block(2), block(3)),
		pairRow(l, block(4), block(5)),
		block(6),
		renderButton(generateLabel, p.ring.isButton(actionSubmit)),
		sectionHeaderStyle.Render("WordPress Integration") + "\n" +
			helperStyle.Render(wordwrap.String(articlegen.WordPressHint, l.inputWidth)),
		block(7),
		pairRow(l, block(8), block(9)),
	}
	return cardStyle.Width(l.mainWidth - 2).Render(joinNonEmpty(parts))
}

func (p *articlePage) historyCard(l pageLayout) string {
	inner := l.sidebarInner()
	parts := []string{sectionHeaderStyle.Render("Article History")}
	if len(p.history) == 0 {
		parts = append(parts, helperStyle.Render("No articles generated yet."))
	}
	for _, entry := range p.history {
		body := historyTitleStyle.Render(wordwrap.String(entry.Title, inner-2))
		if entry.Date != "" {
			body += "\n" + helperStyle.Render("Generated on "+entry.Date)
		}
		parts = append(parts, historyItemStyle.Render(body))
	}
	return cardStyle.Width(l.sidebarWidth - 2).Render(joinNonEmpty(parts))
}

func (p *articlePage) view(l pageLayout) string {
	var top []string
	if l.showIntro {
		top = append(top, p.intro)
	}
	return joinNonEmpty(append(top, l.columns(p.formCard(l), p.historyCard(l))))
}
