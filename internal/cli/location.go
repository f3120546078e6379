package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/simspace/dataset"
	"github.com/viant/simspace/engine"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/space"
)

const sqliteScheme = "sqlite://"

// location is either a text file or a dataset inside a SQLite database,
// written as sqlite://<file>#<dataset>.
type location struct {
	path    string
	db      string
	dataset string
}

func parseLocation(raw string) (location, error) {
	if !strings.HasPrefix(raw, sqliteScheme) {
		if raw == "" {
			return location{}, fmt.Errorf("empty location")
		}
		return location{path: raw}, nil
	}
	db, name, ok := strings.Cut(strings.TrimPrefix(raw, sqliteScheme), "#")
	if !ok || db == "" || name == "" {
		return location{}, fmt.Errorf("invalid location %q: want sqlite://<file>#<dataset>", raw)
	}
	return location{db: db, dataset: name}, nil
}

func (l location) String() string {
	if l.db != "" {
		return sqliteScheme + l.db + "#" + l.dataset
	}
	return l.path
}

func withStore(ctx context.Context, dbPath string, fn func(*dataset.Store) error) error {
	db, err := engine.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	store, err := dataset.NewStore(ctx, db)
	if err != nil {
		return err
	}
	return fn(store)
}

func load[T object.Numeric](ctx context.Context, sp space.Space[T], loc location, opts ...dataset.Option) (data object.Vector, externIDs []string, err error) {
	if loc.db == "" {
		return dataset.Read(ctx, sp, loc.path, opts...)
	}
	err = withStore(ctx, loc.db, func(store *dataset.Store) error {
		data, externIDs, err = store.LoadObjects(ctx, loc.dataset, sp.ElementType())
		return err
	})
	return data, externIDs, err
}

func save[T object.Numeric](ctx context.Context, sp space.Space[T], loc location, data object.Vector, externIDs []string, opts ...dataset.Option) error {
	if loc.db == "" {
		return dataset.Write(sp, loc.path, data, externIDs, opts...)
	}
	return withStore(ctx, loc.db, func(store *dataset.Store) error {
		return store.SaveObjects(ctx, loc.dataset, sp.ElementType(), data, externIDs)
	})
}

// newSpace resolves the space flags for element type T.
func newSpace[T object.Numeric](name, labels string) (*space.VectorSpace[T], error) {
	convention, err := space.ParseLabelConvention(labels)
	if err != nil {
		return nil, err
	}
	return space.New[T](name, space.WithLabelConvention(convention))
}
