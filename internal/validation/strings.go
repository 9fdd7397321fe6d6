package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error is a field-rule violation. Message carries the exact wording the API
// returns to clients, so callers pass display names ("Game title", not "title").
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds an Error whose message starts with the field's display name.
func Errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: field + " " + fmt.Sprintf(format, args...)}
}

// String checks a string-valued payload field. The minimum length counts
// characters of the trimmed value, not bytes; the original value is returned
// untouched. A nil value passes only when allowNone is set, in which case the
// result is nil.
func String(field string, value any, minLen int, allowNone bool) (*string, error) {
	if value == nil {
		if allowNone {
			return nil, nil
		}
		return nil, Errorf(field, "cannot be empty")
	}
	s, ok := value.(string)
	if !ok {
		return nil, Errorf(field, "must be a string")
	}
	if utf8.RuneCountInString(strings.TrimSpace(s)) < minLen {
		return nil, Errorf(field, "must be at least %d characters", minLen)
	}
	return &s, nil
}
