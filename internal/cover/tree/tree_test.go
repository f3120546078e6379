package tree

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/space"
)

func l2Tree(t *testing.T, base float64) (*Tree[float32], space.Space[float32]) {
	t.Helper()
	sp, err := space.New[float32](space.L2)
	require.NoError(t, err)
	return NewTree[float32](base, sp.Distance), sp
}

func TestTree_KNN_MatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr, sp := l2Tree(t, 0)
	assert.Equal(t, DefaultBase, tr.Base())

	var data object.Vector
	for i := 0; i < 200; i++ {
		obj := sp.CreateObjFromVect(i, object.EmptyLabel, []float32{rng.Float32() * 10, rng.Float32() * 10, rng.Float32() * 10})
		idx, err := tr.Insert(obj)
		require.NoError(t, err)
		assert.EqualValues(t, i, idx)
		data = append(data, obj)
	}
	require.Equal(t, 200, tr.Len())

	query := sp.CreateObjFromVect(-1, object.EmptyLabel, []float32{5, 5, 5})
	type scored struct {
		id   int
		dist float32
	}
	var expected []scored
	for _, o := range data {
		d, err := sp.Distance(query, o)
		require.NoError(t, err)
		expected = append(expected, scored{o.ID(), d})
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i].dist < expected[j].dist })

	for _, bestFirst := range []bool{false, true} {
		var got []Neighbor[float32]
		var err error
		if bestFirst {
			got, err = tr.KNearestNeighborsBestFirst(query, 10)
		} else {
			got, err = tr.KNearestNeighbors(query, 10)
		}
		require.NoError(t, err)
		require.Len(t, got, 10)
		for i, n := range got {
			assert.Equal(t, expected[i].id, n.Point.Object.ID(), "bestFirst=%v rank %d", bestFirst, i)
			assert.InDelta(t, expected[i].dist, n.Distance, 1e-5)
		}
	}
}

func TestTree_LevelBound(t *testing.T) {
	for _, base := range []float64{1.3, 2} {
		rng := rand.New(rand.NewSource(11))
		tr, sp := l2Tree(t, base)
		tr.SetBoundStrategy(BoundLevel)
		var data object.Vector
		for i := 0; i < 300; i++ {
			// spread across scales so the root is promoted repeatedly
			scale := float32(math.Pow(10, float64(rng.Intn(4))))
			obj := sp.CreateObjFromVect(i, 0, []float32{rng.Float32() * scale, rng.Float32() * scale, rng.Float32() * scale})
			_, err := tr.Insert(obj)
			require.NoError(t, err)
			data = append(data, obj)
		}
		for _, q := range [][]float32{{3, 3, 3}, {0.5, 0.1, 0.2}, {400, 20, 900}} {
			query := sp.CreateObjFromVect(-1, 0, q)
			expected := make([]float32, len(data))
			for i, o := range data {
				d, err := sp.Distance(query, o)
				require.NoError(t, err)
				expected[i] = d
			}
			sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })
			for _, bestFirst := range []bool{false, true} {
				var got []Neighbor[float32]
				var err error
				if bestFirst {
					got, err = tr.KNearestNeighborsBestFirst(query, 5)
				} else {
					got, err = tr.KNearestNeighbors(query, 5)
				}
				require.NoError(t, err)
				require.Len(t, got, 5)
				for i, n := range got {
					assert.Equal(t, expected[i], n.Distance, "base %v query %v bestFirst=%v rank %d", base, q, bestFirst, i)
				}
			}
		}
	}
}

func TestTree_InsertNonFiniteDistance(t *testing.T) {
	tr := NewTree[float64](2, func(a, b *object.Object) (float64, error) {
		return math.Inf(1), nil
	})
	_, err := tr.Insert(object.FromSlice(0, 0, []float64{1}))
	require.NoError(t, err)
	_, err = tr.Insert(object.FromSlice(1, 0, []float64{2}))
	assert.Error(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestTree_Empty(t *testing.T) {
	tr, sp := l2Tree(t, 1.5)
	got, err := tr.KNearestNeighbors(sp.CreateObjFromVect(0, 0, []float32{1}), 3)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Nil(t, tr.FindPointByIndex(0))
	assert.EqualValues(t, -1, (*Point)(nil).Index())
}

func TestTree_DistanceError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	tr := NewTree[float64](1.3, func(a, b *object.Object) (float64, error) {
		calls++
		return 0, boom
	})
	_, err := tr.Insert(object.FromSlice(0, 0, []float64{1}))
	require.NoError(t, err)
	_, err = tr.Insert(object.FromSlice(1, 0, []float64{2}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, tr.Len())
	assert.Len(t, tr.Objects(), 1)
}

func TestParseBoundStrategy(t *testing.T) {
	s, err := ParseBoundStrategy("level")
	require.NoError(t, err)
	assert.Equal(t, BoundLevel, s)
	assert.Equal(t, "level", s.String())
	s, err = ParseBoundStrategy("")
	require.NoError(t, err)
	assert.Equal(t, "per_node", s.String())
	_, err = ParseBoundStrategy("loose")
	assert.Error(t, err)
}
