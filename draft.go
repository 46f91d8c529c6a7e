package sqldraft

import "strings"

// draft is the mutable state of one query under construction. It is
// created and owned by a Builder and never handed to callers.
type draft struct {
	// kind is set once, when the draft is created, and never changes.
	kind QueryKind

	baseClause string

	// predicates are already-rendered filter conditions, kept in
	// insertion order and joined by AND at render time.
	predicates []string

	// limitClause is empty until Limit is applied. Last write wins.
	limitClause string
}

// render assembles the final statement text. It does not mutate the
// draft, so repeated calls return identical strings.
func (d *draft) render() string {
	sb := strings.Builder{}

	sb.WriteString(d.baseClause)

	if len(d.predicates) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(d.predicates, " AND "))
	}

	sb.WriteString(d.limitClause)
	sb.WriteString(";")

	return sb.String()
}
