package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/leaddesk/internal/form"
)

const defaultInputWidth = 40

// fieldWidget is the editor bound to one form field. Select fields have no
// editor of their own and read their value straight from the state.
type fieldWidget[K form.Key] struct {
	def   form.Field[K]
	input textinput.Model
	area  textarea.Model
}

func newFieldWidget[K form.Key](def form.Field[K], value string) fieldWidget[K] {
	w := fieldWidget[K]{def: def}
	switch def.Kind {
	case form.KindText, form.KindSecret:
		in := textinput.New()
		in.Prompt = "› "
		in.Placeholder = def.Placeholder
		in.CharLimit = def.CharLimit
		in.Width = defaultInputWidth
		if def.Kind == form.KindSecret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		in.SetValue(value)
		w.input = in
	case form.KindMultiline:
		area := textarea.New()
		area.Placeholder = def.Placeholder
		area.CharLimit = def.CharLimit
		area.ShowLineNumbers = false
		area.SetWidth(defaultInputWidth)
		area.SetHeight(3)
		area.SetValue(value)
		w.area = area
	}
	return w
}

// formView renders a form state and routes edits into it. Every edit goes
// through form.State.Set.
type formView[K form.Key] struct {
	state   *form.State[K]
	widgets []fieldWidget[K]
}

func newFormView[K form.Key](fields []form.Field[K], state *form.State[K]) *formView[K] {
	widgets := make([]fieldWidget[K], 0, len(fields))
	for _, def := range fields {
		widgets = append(widgets, newFieldWidget(def, state.Get(def.Key)))
	}
	return &formView[K]{state: state, widgets: widgets}
}

func (f *formView[K]) len() int { return len(f.widgets) }

func (f *formView[K]) focus(idx int) tea.Cmd {
	if idx < 0 || idx >= len(f.widgets) {
		return nil
	}
	w := &f.widgets[idx]
	switch w.def.Kind {
	case form.KindText, form.KindSecret:
		w.input.CursorEnd()
		return w.input.Focus()
	case form.KindMultiline:
		return w.area.Focus()
	}
	return nil
}

func (f *formView[K]) blur(idx int) {
	if idx < 0 || idx >= len(f.widgets) {
		return
	}
	w := &f.widgets[idx]
	switch w.def.Kind {
	case form.KindText, form.KindSecret:
		w.input.Blur()
	case form.KindMultiline:
		w.area.Blur()
	}
}

// update feeds msg to the widget at idx and stores any resulting value.
func (f *formView[K]) update(idx int, msg tea.Msg) tea.Cmd {
	if idx < 0 || idx >= len(f.widgets) {
		return nil
	}
	w := &f.widgets[idx]
	var cmd tea.Cmd
	switch w.def.Kind {
	case form.KindSelect:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, keys.Left):
				f.cycle(idx, -1)
			case key.Matches(keyMsg, keys.Right):
				f.cycle(idx, 1)
			}
		}
		return nil
	case form.KindMultiline:
		w.area, cmd = w.area.Update(msg)
		f.store(w.def.Key, w.area.Value())
	default:
		w.input, cmd = w.input.Update(msg)
		f.store(w.def.Key, w.input.Value())
	}
	return cmd
}

func (f *formView[K]) store(k K, value string) {
	if f.state.Get(k) == value {
		return
	}
	f.state.Set(k, value)
}

// cycle moves a select field to the neighbouring option, wrapping around.
func (f *formView[K]) cycle(idx, delta int) {
	def := f.widgets[idx].def
	n := len(def.Options)
	if n == 0 {
		return
	}
	pos := def.OptionIndex(f.state.Get(def.Key))
	if pos < 0 {
		pos = 0
	} else {
		pos = ((pos+delta)%n + n) % n
	}
	f.state.Set(def.Key, def.Options[pos].Value)
}

func (f *formView[K]) setWidth(width int) {
	if width < 10 {
		width = 10
	}
	for i := range f.widgets {
		w := &f.widgets[i]
		switch w.def.Kind {
		case form.KindText, form.KindSecret:
			w.input.Width = width - lipgloss.Width(w.input.Prompt) - 1
		case form.KindMultiline:
			w.area.SetWidth(width)
		}
	}
}

// block renders label, editor and help line for the field at idx.
func (f *formView[K]) block(idx int, focused bool) string {
	w := &f.widgets[idx]
	label := labelStyle.Render(w.def.Label)
	if focused {
		label = focusedLabelStyle.Render(w.def.Label)
	}
	if w.def.Required {
		label += requiredMarkStyle.Render(" *")
	}

	var editor string
	switch w.def.Kind {
	case form.KindSelect:
		editor = f.selectView(w.def, focused)
	case form.KindMultiline:
		editor = w.area.View()
	default:
		editor = w.input.View()
	}

	parts := []string{label, editor}
	if w.def.Help != "" {
		parts = append(parts, helperStyle.Render(w.def.Help))
	}
	return strings.Join(parts, "\n")
}

func (f *formView[K]) selectView(def form.Field[K], focused bool) string {
	value := f.state.Get(def.Key)
	pos := def.OptionIndex(value)
	text := fmt.Sprintf("‹ %s ›", def.OptionLabel(value))
	counter := helperStyle.Render(fmt.Sprintf(" %d/%d", pos+1, len(def.Options)))
	if focused {
		return focusedSelect.Render(text) + counter
	}
	return selectStyle.Render(text) + counter
}

func renderButton(label string, focused bool) string {
	if focused {
		return focusedButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
