package sqldraft

import (
	"database/sql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

// SetupTestDatabase creates a throwaway sqlite database and runs the
// provided statements as a setup step. Tests execute rendered queries
// against it to prove the output is valid SQL.
func SetupTestDatabase(t *testing.T, setupQueries ...string) *sql.DB {
	// Create a temp file so that the sqlite file is not populating random directories.
	f, err := os.CreateTemp("", "sqldraft-test-data")
	assert.NoError(t, err, "could not create database temp file")
	db, err := sql.Open("sqlite3", f.Name())
	assert.NoError(t, err, "could not connect to sqlite3")

	for _, query := range setupQueries {
		_, err = db.Exec(query)
		assert.NoError(t, err, "failed to run setup queries")
	}

	return db
}

// queryStrings runs a single-column query and returns the column values.
func queryStrings(t *testing.T, db *sql.DB, query string) []string {
	rows, err := db.Query(query)
	assert.NoError(t, err, "could not execute rendered query")
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		assert.NoError(t, rows.Scan(&v))
		values = append(values, v)
	}
	assert.NoError(t, rows.Err())

	return values
}
