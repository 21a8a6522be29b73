// Package form holds the per-page form state shared by the call request and
// article generator pages. Keys are an enumerated type owned by each page, so
// a field can only be addressed by one of its declared constants.
package form

import (
	"fmt"
	"slices"
)

// Key is the constraint satisfied by a page's field enumeration.
type Key interface {
	comparable
	fmt.Stringer
}

// Kind selects the widget used to edit a field.
type Kind int

const (
	KindText Kind = iota
	KindMultiline
	KindSecret
	KindSelect
)

// Option is one entry of a select field. Value is stored in the form state,
// Label is what the user sees.
type Option struct {
	Value string
	Label string
}

// Field describes a single input on a page.
type Field[K Key] struct {
	Key         K
	Label       string
	Placeholder string
	Help        string
	Kind        Kind
	Default     string
	Options     []Option
	Required    bool
	CharLimit   int
}

// OptionIndex returns the position of value among the field options, or -1.
func (f Field[K]) OptionIndex(value string) int {
	for i, opt := range f.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// OptionLabel returns the display label for value. Unknown values are
// returned unchanged.
func (f Field[K]) OptionLabel(value string) string {
	if idx := f.OptionIndex(value); idx >= 0 {
		return f.Options[idx].Label
	}
	return value
}

// State maps every declared key to its current string value. Keys are fixed
// at construction and never removed.
type State[K Key] struct {
	keys   []K
	values map[K]string
}

// NewState seeds a state from field definitions, in declaration order.
func NewState[K Key](fields []Field[K]) *State[K] {
	s := &State[K]{
		keys:   make([]K, 0, len(fields)),
		values: make(map[K]string, len(fields)),
	}
	for _, f := range fields {
		if _, dup := s.values[f.Key]; dup {
			continue
		}
		s.keys = append(s.keys, f.Key)
		s.values[f.Key] = f.Default
	}
	return s
}

// Set replaces the value stored at key. It reports false and leaves the state
// untouched when key was not declared for this form.
func (s *State[K]) Set(key K, value string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	s.values[key] = value
	return true
}

// Get returns the value stored at key, or "" for an undeclared key.
func (s *State[K]) Get(key K) string {
	return s.values[key]
}

// Has reports whether key belongs to this form.
func (s *State[K]) Has(key K) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the declared keys in order.
func (s *State[K]) Keys() []K {
	return slices.Clone(s.keys)
}

// Len returns the number of declared keys.
func (s *State[K]) Len() int {
	return len(s.keys)
}

// Snapshot copies the current values.
func (s *State[K]) Snapshot() map[K]string {
	out := make(map[K]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// CheckFields reports definition mistakes: duplicate keys, select fields
// without options and select defaults that are not one of the options.
func CheckFields[K Key](fields []Field[K]) error {
	seen := make(map[K]bool, len(fields))
	for _, f := range fields {
		if seen[f.Key] {
			return fmt.Errorf("form: duplicate field %s", f.Key)
		}
		seen[f.Key] = true
		if f.Kind != KindSelect {
			continue
		}
		if len(f.Options) == 0 {
			return fmt.Errorf("form: select field %s has no options", f.Key)
		}
		if f.OptionIndex(f.Default) < 0 {
			return fmt.Errorf("form: select field %s default %q is not an option", f.Key, f.Default)
		}
	}
	return nil
}
