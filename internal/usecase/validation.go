package usecase

import "strings"

// ValidationError is a 400-class failure. Fields itemizes missing required
// fields ("Missing required fields" style responses); Details itemizes
// values that were present but invalid.
type ValidationError struct {
	Message string
	Fields  []string
	Details []string
}

func (e *ValidationError) Error() string {
	items := append(append([]string{}, e.Fields...), e.Details...)
	if len(items) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(items, ", ")
}
