// Package sqldraft builds SQL SELECT statements through a fluent,
// chainable API.
//
// A Builder owns one draft at a time. Select starts a fresh draft, Where
// and Limit refine it, and Render produces the final statement text:
//
//	query, err := sqldraft.New(sqldraft.MySQLDialect{}).
//		Select("users", "email").
//		Where("age", "18", ">").
//		Limit(10, 20).
//		Render()
//
// Row limiting is the one clause relational engines disagree on, so its
// rendering is delegated to a Dialect chosen at construction time. All
// other validation, chaining, and assembly is shared across dialects.
//
// Values passed to Where are wrapped in single quotes and nothing more.
// Callers supplying untrusted input must sanitize it upstream.
//
// A Builder is not safe for concurrent use: one query is built by one
// goroutine to completion before rendering.
package sqldraft
