package tui

import (
	"fmt"
	"strings"
)

// PageKind selects which form is shown.
type PageKind int

const (
	PageCall PageKind = iota
	PageArticle
)

func (p PageKind) String() string {
	switch p {
	case PageArticle:
		return "article"
	default:
		return "call"
	}
}

// ParsePage maps a page name to its kind.
func ParsePage(name string) (PageKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "call":
		return PageCall, nil
	case "article", "seo":
		return PageArticle, nil
	default:
		return PageCall, fmt.Errorf("unknown page %q (want call or article)", name)
	}
}

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	sidebarBreakpoint         = 90
	maxToasts                 = 3
	introMinHeight            = 50
)

type targetKind int

const (
	targetField targetKind = iota
	targetButton
	targetChatInput
)

type action int

const (
	actionSubmit action = iota
	actionSendChat
)

type focusTarget struct {
	kind   targetKind
	field  int
	action action
	label  string
}

type focusRing struct {
	targets []focusTarget
	index   int
}

func (r *focusRing) current() focusTarget {
	if len(r.targets) == 0 {
		return focusTarget{kind: -1}
	}
	return r.targets[r.index]
}

// move advances the ring and returns the targets that lost and gained focus.
func (r *focusRing) move(delta int) (focusTarget, focusTarget) {
	prev := r.current()
	n := len(r.targets)
	if n == 0 {
		return prev, prev
	}
	r.index = ((r.index+delta)%n + n) % n
	return prev, r.current()
}

func (r *focusRing) isField(idx int) bool {
	t := r.current()
	return t.kind == targetField && t.field == idx
}

func (r *focusRing) isButton(a action) bool {
	t := r.current()
	return t.kind == targetButton && t.action == a
}

type toastExpiredMsg struct {
	id string
}
