package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver with
// the object distance functions registered.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:". An in-memory database lives per connection,
// so callers sharing one should limit the pool to a single connection.
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterObjectFunctions(); err != nil {
		return nil, err
	}
	return sql.Open("sqlite", dsn)
}
