package sqldraft

import "fmt"

// Dialect renders the limit clause for one SQL flavor. Implementations
// only format text; validation lives in the Builder, so a new dialect is
// one type with one method.
type Dialect interface {
	// LimitClause returns the limit clause text, including its leading
	// space.
	LimitClause(start, offset uint64) string
}

// MySQLDialect renders limits in the comma form, "LIMIT start, offset".
type MySQLDialect struct{}

func (MySQLDialect) LimitClause(start, offset uint64) string {
	return fmt.Sprintf(" LIMIT %d, %d", start, offset)
}

// PostgresDialect renders limits in the keyword form,
// "LIMIT start OFFSET offset".
type PostgresDialect struct{}

func (PostgresDialect) LimitClause(start, offset uint64) string {
	return fmt.Sprintf(" LIMIT %d OFFSET %d", start, offset)
}

// DefaultDialect is used when New is given a nil dialect.
var DefaultDialect Dialect = MySQLDialect{}
