package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/simspace/engine"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/space"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	store, err := NewStore(context.Background(), db)
	require.NoError(t, err)
	return store
}

func TestStore_Objects(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	sp, err := space.New[float32](space.L2)
	require.NoError(t, err)
	data := object.Vector{
		sp.CreateObjFromVect(0, 1, []float32{1, 2}),
		sp.CreateObjFromVect(1, object.EmptyLabel, []float32{3, 4}),
	}
	require.NoError(t, store.SaveObjects(ctx, "train", object.Float32, data, []string{"a", "b"}))

	loaded, externIDs, err := store.LoadObjects(ctx, "train", object.Float32)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, []string{"a", "b"}, externIDs)
	for i := range data {
		assert.Equal(t, data[i].ID(), loaded[i].ID())
		assert.Equal(t, data[i].Label(), loaded[i].Label())
		assert.Equal(t, data[i].Payload(), loaded[i].Payload())
	}

	_, _, err = store.LoadObjects(ctx, "train", object.Float64)
	assert.Error(t, err)

	// saving again replaces the dataset
	require.NoError(t, store.SaveObjects(ctx, "train", object.Float32, data[:1], nil))
	loaded, externIDs, err = store.LoadObjects(ctx, "train", object.Float32)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, []string{""}, externIDs)

	names, err := store.Datasets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"train"}, names)

	require.NoError(t, store.RemoveDataset(ctx, "train"))
	_, _, err = store.LoadObjects(ctx, "train", object.Float32)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Index(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	_, _, err := store.LoadIndex(ctx, "idx")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.SaveIndex(ctx, "idx", "seqsearch", []byte{1, 2, 3}))
	require.NoError(t, store.SaveIndex(ctx, "idx", "cover", []byte{4, 5}))
	m, blob, err := store.LoadIndex(ctx, "idx")
	require.NoError(t, err)
	assert.Equal(t, "cover", m)
	assert.Equal(t, []byte{4, 5}, blob)

	assert.Error(t, store.SaveIndex(ctx, "", "cover", nil))
	assert.Error(t, store.SaveObjects(ctx, "", object.Float32, nil, nil))
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(context.Background(), nil)
	assert.Error(t, err)
}
