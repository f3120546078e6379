// Package simadmin exposes index maintenance through a SQLite virtual
// table. A MATCH against the op column rebuilds the index of a stored
// dataset with a registered method and persists it in index_storage:
//
//	CREATE VIRTUAL TABLE simspace_admin USING simspace_admin(op);
//	SELECT op FROM simspace_admin WHERE op MATCH 'l2:float32:seqsearch:train';
//
// The op text is space:type:method:dataset with an optional trailing
// :name=value,... parameter list. The query returns one row,
// 'reindexed:<count>', on success.
package simadmin

import (
	"context"
	"database/sql"
	"encoding"
	"fmt"
	"strings"

	"github.com/viant/simspace/dataset"
	"github.com/viant/simspace/method"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/params"
	"github.com/viant/simspace/space"
	"modernc.org/sqlite/vtab"

	_ "github.com/viant/simspace/method/cover"
	_ "github.com/viant/simspace/method/dummy"
	_ "github.com/viant/simspace/method/seqsearch"
)

// ModuleName is the virtual table module name.
const ModuleName = "simspace_admin"

// Module provides administrative operations via a virtual table.
type Module struct{ db *sql.DB }

type Table struct{ db *sql.DB }

type Cursor struct {
	table *Table
	rows  []string
	pos   int
}

// Register makes the module available on connections opened afterwards.
func Register(db *sql.DB) error {
	if err := vtab.RegisterModule(db, ModuleName, &Module{db: db}); err != nil {
		if !strings.Contains(err.Error(), "already registered") {
			return err
		}
	}
	return nil
}

func (m *Module) Create(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.Connect(ctx, args)
}

func (m *Module) Connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%s: need at least 3 args", ModuleName)
	}
	if err := ctx.Declare(fmt.Sprintf("CREATE TABLE %s(op)", args[2])); err != nil {
		return nil, err
	}
	return &Table{db: m.db}, nil
}

func (t *Table) BestIndex(info *vtab.IndexInfo) error {
	for i := range info.Constraints {
		c := &info.Constraints[i]
		if !c.Usable {
			continue
		}
		if c.Column == 0 && c.Op == vtab.OpMATCH {
			c.ArgIndex = 1
			info.IdxNum = 1
			break
		}
	}
	return nil
}

func (t *Table) Open() (vtab.Cursor, error) { return &Cursor{table: t}, nil }
func (t *Table) Disconnect() error { return nil }
func (t *Table) Destroy() error { return nil }

func (c *Cursor) Filter(idxNum int, idxStr string, vals []vtab.Value) error {
	c.rows = nil
	c.pos = 0
	if idxNum != 1 || len(vals) == 0 || vals[0] == nil {
		return nil
	}
	op, ok := vals[0].(string)
	if !ok {
		return fmt.Errorf("%s: MATCH expects an op as TEXT", ModuleName)
	}
	req, err := ParseOp(op)
	if err != nil {
		return err
	}
	n, err := Reindex(context.Background(), c.table.db, req)
	if err != nil {
		return err
	}
	c.rows = []string{fmt.Sprintf("reindexed:%d", n)}
	return nil
}

func (c *Cursor) Next() error {
	if c.pos < len(c.rows) {
		c.pos++
	}
	return nil
}

func (c *Cursor) Eof() bool { return c.pos >= len(c.rows) }

func (c *Cursor) Column(col int) (vtab.Value, error) {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return nil, fmt.Errorf("%s: Column out of range", ModuleName)
	}
	if col == 0 {
		return c.rows[c.pos], nil
	}
	return nil, nil
}

func (c *Cursor) Rowid() (int64, error) { return int64(c.pos + 1), nil }

func (c *Cursor) Close() error {
	c.rows = nil
	c.pos = 0
	return nil
}

// Op is a parsed reindex request.
type Op struct {
	Space   string
	Type    object.ElementType
	Method  string
	Dataset string
	Params  *params.Set
}

// ParseOp reads space:type:method:dataset[:params].
func ParseOp(text string) (*Op, error) {
	parts := strings.SplitN(text, ":", 5)
	if len(parts) < 4 {
		return nil, fmt.Errorf("%s: op %q: want space:type:method:dataset[:params]", ModuleName, text)
	}
	for _, p := range parts[:4] {
		if p == "" {
			return nil, fmt.Errorf("%s: op %q has an empty field", ModuleName, text)
		}
	}
	elem, err := object.ParseElementType(parts[1])
	if err != nil {
		return nil, err
	}
	op := &Op{Space: parts[0], Type: elem, Method: parts[2], Dataset: parts[3]}
	desc := ""
	if len(parts) == 5 {
		desc = parts[4]
	}
	if op.Params, err = params.Parse(desc); err != nil {
		return nil, err
	}
	return op, nil
}

// Reindex builds the index described by op over its stored dataset and
// persists it under the dataset name. It returns the number of indexed
// objects.
func Reindex(ctx context.Context, db *sql.DB, op *Op) (int, error) {
	store, err := dataset.NewStore(ctx, db)
	if err != nil {
		return 0, err
	}
	if op.Type == object.Float64 {
		return reindex[float64](ctx, store, op)
	}
	return reindex[float32](ctx, store, op)
}

func reindex[T object.Numeric](ctx context.Context, store *dataset.Store, op *Op) (int, error) {
	sp, err := space.New[T](op.Space)
	if err != nil {
		return 0, err
	}
	data, _, err := store.LoadObjects(ctx, op.Dataset, sp.ElementType())
	if err != nil {
		return 0, err
	}
	idx, err := method.Create[T](method.Default, op.Method, false, sp.String(), sp, data, op.Params)
	if err != nil {
		return 0, err
	}
	m, ok := idx.(encoding.BinaryMarshaler)
	if !ok {
		return 0, fmt.Errorf("%s: method %s does not serialize", ModuleName, op.Method)
	}
	blob, err := m.MarshalBinary()
	if err != nil {
		return 0, err
	}
	if err := store.SaveIndex(ctx, op.Dataset, op.Method, blob); err != nil {
		return 0, err
	}
	return idx.Len(), nil
}
