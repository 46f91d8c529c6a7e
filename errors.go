package sqldraft

import "fmt"

// ConfigurationError occurs when an entry operation is given structurally
// invalid arguments, such as an empty table name or an empty field list.
type ConfigurationError struct {
	Detail string
}

func (e ConfigurationError) Error() string {
	return "invalid query configuration: " + e.Detail
}

// InvalidOperationError occurs when an operation is applied to a draft
// whose kind or construction state forbids it.
type InvalidOperationError struct {
	Op     string
	Detail string
}

func (e InvalidOperationError) Error() string {
	return fmt.Sprintf("%s is not valid here: %s", e.Op, e.Detail)
}
