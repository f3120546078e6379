package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/viant/simspace/object"
)

// ErrNotFound is returned when a dataset or index is not stored.
var ErrNotFound = errors.New("dataset: not found")

// Store persists datasets and serialized indices in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over db and ensures its schema exists.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("dataset: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// SaveObjects replaces the named dataset with data. externIDs may be nil;
// otherwise it must be parallel to data.
func (s *Store) SaveObjects(ctx context.Context, name string, elem object.ElementType, data object.Vector, externIDs []string) error {
	if name == "" {
		return fmt.Errorf("dataset: SaveObjects called with empty name")
	}
	if externIDs != nil && len(externIDs) != len(data) {
		return fmt.Errorf("dataset: %d extern ids for %d objects", len(externIDs), len(data))
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dataset_objects WHERE dataset = ?`, name); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dataset_objects(dataset, id, label, extern_id, elem_type, payload) VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, o := range data {
		var externID string
		if externIDs != nil {
			externID = externIDs[i]
		}
		if _, err := stmt.ExecContext(ctx, name, o.ID(), o.Label(), externID, int(elem), o.Payload()); err != nil {
			return fmt.Errorf("dataset: insert object %d: %w", o.ID(), err)
		}
	}
	return tx.Commit()
}

// LoadObjects returns the named dataset ordered by id together with its
// extern ids. Every stored object must carry elem.
func (s *Store) LoadObjects(ctx context.Context, name string, elem object.ElementType) (object.Vector, []string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, label, extern_id, elem_type, payload FROM dataset_objects WHERE dataset = ? ORDER BY id`, name)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var out object.Vector
	var externIDs []string
	for rows.Next() {
		var (
			id, label, stored int
			externID          string
			payload           []byte
		)
		if err := rows.Scan(&id, &label, &externID, &stored, &payload); err != nil {
			return nil, nil, err
		}
		if object.ElementType(stored) != elem {
			return nil, nil, fmt.Errorf("dataset: %s object %d stored as %s, want %s", name, id, object.ElementType(stored), elem)
		}
		out = append(out, object.New(id, label, payload))
		externIDs = append(externIDs, externID)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if len(out) == 0 {
		return nil, nil, fmt.Errorf("%w: dataset %s", ErrNotFound, name)
	}
	return out, externIDs, nil
}

// Datasets lists stored dataset names.
func (s *Store) Datasets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT dataset FROM dataset_objects ORDER BY dataset`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// RemoveDataset deletes the named dataset.
func (s *Store) RemoveDataset(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM dataset_objects WHERE dataset = ?`, name)
	return err
}

// SaveIndex stores a serialized index under name, replacing any previous one.
func (s *Store) SaveIndex(ctx context.Context, name, method string, blob []byte) error {
	if name == "" {
		return fmt.Errorf("dataset: SaveIndex called with empty name")
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO index_storage(name, method, "index") VALUES(?, ?, ?)
ON CONFLICT(name) DO UPDATE SET method = excluded.method, "index" = excluded."index"`, name, method, blob)
	return err
}

// LoadIndex returns the method name and serialized index stored under name.
func (s *Store) LoadIndex(ctx context.Context, name string) (string, []byte, error) {
	var method string
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT method, "index" FROM index_storage WHERE name = ?`, name).Scan(&method, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, fmt.Errorf("%w: index %s", ErrNotFound, name)
	}
	if err != nil {
		return "", nil, err
	}
	return method, blob, nil
}
