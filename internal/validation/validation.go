// Package validation defines the field-level error values produced by the
// request validators. A validator collects every violated rule in one pass,
// so a rejected write always carries the full list of problems.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// FieldError points at one violated rule on one input field.
type FieldError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Errors is the result of validating one request body. A nil or empty
// Errors means the input was accepted.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation: ok"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, strings.Join(fe.Path, ".")+": "+fe.Message)
	}
	return "validation: " + strings.Join(parts, "; ")
}

// Add appends a violation for the given field.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Path: []string{field}, Message: message})
}

// Empty reports whether the input passed every check.
func (e Errors) Empty() bool { return len(e) == 0 }

// DateLayout is the only calendar-date format the API accepts.
const DateLayout = "2006-01-02"

var dateRx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate accepts exactly YYYY-MM-DD and rejects calendar-impossible
// values (the pattern alone would let 2024-13-40 through).
func ParseDate(s string) (time.Time, bool) {
	if !dateRx.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
