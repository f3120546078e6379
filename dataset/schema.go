package dataset

import (
	"context"
	"database/sql"
)

const objectsSchema = `
CREATE TABLE IF NOT EXISTS dataset_objects (
    dataset   TEXT    NOT NULL,
    id        INTEGER NOT NULL,
    label     INTEGER NOT NULL,
    extern_id TEXT    NOT NULL DEFAULT '',
    elem_type INTEGER NOT NULL,
    payload   BLOB    NOT NULL,
    PRIMARY KEY (dataset, id)
);
`

const indexSchema = `
CREATE TABLE IF NOT EXISTS index_storage (
    name    TEXT PRIMARY KEY,
    method  TEXT NOT NULL,
    "index" BLOB NOT NULL
);
`

// EnsureSchema creates the dataset and index tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range []string{objectsSchema, indexSchema} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
