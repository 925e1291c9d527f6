package http

import "strings"

// containsFieldMsg reports whether the field error list carries a message
// for field containing substr. Used by handler and validator tests.
func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
