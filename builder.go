package sqldraft

import (
	"fmt"
	"strings"
)

// Builder assembles one SQL statement at a time through chained calls.
// Every operation returns the same Builder. The first error in a chain
// is recorded at the offending call and surfaced by Render (or earlier
// via Err); the draft is left in its last valid state.
// Example:
//
//	query, err := New(PostgresDialect{}).
//		Select("users", "email").
//		Where("age", "18", ">").
//		Limit(10, 20).
//		Render()
//	if err != nil {
//		return err
//	}
type Builder struct {
	dialect Dialect

	// draft is nil until an entry operation such as Select runs.
	draft *draft

	err error
}

// New returns a Builder that renders limit clauses with the given
// dialect. A nil dialect falls back to DefaultDialect.
func New(d Dialect) *Builder {
	if d == nil {
		d = DefaultDialect
	}
	return &Builder{dialect: d}
}

// Select starts a fresh SELECT draft, discarding any prior draft and any
// recorded error. The base clause selects fields, in the given order,
// from table.
func (b *Builder) Select(table string, fields ...string) *Builder {
	b.draft = nil
	b.err = nil

	if table == "" {
		b.err = ConfigurationError{Detail: "table name is empty"}
		return b
	}
	if len(fields) == 0 {
		b.err = ConfigurationError{Detail: "no fields to select"}
		return b
	}

	b.draft = &draft{
		kind:       KindSelect,
		baseClause: fmt.Sprintf("SELECT %s FROM %s", strings.Join(fields, ", "), table),
	}

	return b
}

// Where appends one filter condition to the draft. Conditions accumulate
// in call order and render joined by AND. The operator defaults to "="
// when omitted.
func (b *Builder) Where(field, value string, operator ...string) *Builder {
	if b.err != nil {
		return b
	}
	if b.draft == nil {
		b.err = InvalidOperationError{Op: "where", Detail: "no query started"}
		return b
	}
	if !b.draft.kind.permitsFilter() {
		b.err = InvalidOperationError{Op: "where", Detail: b.draft.kind.String() + " does not permit filtering"}
		return b
	}

	op := "="
	if len(operator) > 0 {
		op = operator[0]
	}

	b.draft.predicates = append(b.draft.predicates, renderPredicate(field, op, value))

	return b
}

// Limit sets the row-limiting clause using the builder's dialect.
// Calling it again simply overwrites the previous value.
func (b *Builder) Limit(start, offset uint64) *Builder {
	if b.err != nil {
		return b
	}
	if b.draft == nil {
		b.err = InvalidOperationError{Op: "limit", Detail: "no query started"}
		return b
	}
	if !b.draft.kind.permitsLimit() {
		b.err = InvalidOperationError{Op: "limit", Detail: b.draft.kind.String() + " does not permit limiting"}
		return b
	}

	b.draft.limitClause = b.dialect.LimitClause(start, offset)

	return b
}

// Render produces the statement the chain has built so far. It does not
// mutate the draft, so it can be called repeatedly with identical
// results. If the chain recorded an error, that error is returned
// instead.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.draft == nil || b.draft.baseClause == "" {
		return "", InvalidOperationError{Op: "render", Detail: "no query started"}
	}

	return b.draft.render(), nil
}

// Err reports the error recorded by the chain so far, or nil while the
// chain is clean. It lets callers observe a failure at the call that
// caused it without giving up method chaining.
func (b *Builder) Err() error {
	return b.err
}
