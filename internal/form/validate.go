package form

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRequiredFieldMissing is the only failure a stub submission can produce.
var ErrRequiredFieldMissing = errors.New("required field missing")

// RequiredFieldError names the blank required fields.
type RequiredFieldError struct {
	Fields []string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequiredFieldMissing, strings.Join(e.Fields, ", "))
}

func (e *RequiredFieldError) Unwrap() error {
	return ErrRequiredFieldMissing
}

// Blank reports whether value is empty once surrounding whitespace is trimmed.
func Blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// RequireNonBlank checks that every listed key holds a non-blank value. The
// state is only read.
func RequireNonBlank[K Key](s *State[K], keys ...K) error {
	var missing []string
	for _, key := range keys {
		if Blank(s.Get(key)) {
			missing = append(missing, key.String())
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &RequiredFieldError{Fields: missing}
}
