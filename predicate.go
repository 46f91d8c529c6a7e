package sqldraft

import "fmt"

// renderPredicate produces one filter condition in the form
// field op 'value'. The value is single-quoted literally; no further
// escaping is applied.
func renderPredicate(field, operator, value string) string {
	return fmt.Sprintf("%s %s '%s'", field, operator, value)
}
