package dummy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/simspace/method"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/params"
	"github.com/viant/simspace/space"
)

func dataset(t *testing.T) (*space.VectorSpace[float64], object.Vector) {
	t.Helper()
	sp, err := space.New[float64](space.L2)
	require.NoError(t, err)
	return sp, object.Vector{
		sp.CreateObjFromVect(0, 0, []float64{0, 0}),
		sp.CreateObjFromVect(1, 0, []float64{5, 5}),
	}
}

func TestDummy_Registered(t *testing.T) {
	assert.True(t, method.Default.Has(object.Float32, Name))
	assert.True(t, method.Default.Has(object.Float64, Name))

	sp, data := dataset(t)
	idx, err := method.Create[float64](method.Default, Name, false, sp.String(), sp, data, nil)
	require.NoError(t, err)
	require.NotNil(t, idx)
	assert.Equal(t, "dummy", idx.String())
	assert.Equal(t, 2, idx.Len())

	d := idx.(*Index[float64])
	assert.Same(t, data[0], d.Data()[0])
	assert.Equal(t, space.Space[float64](sp), d.Space())

	res, err := d.KNN(data[1], 1)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestDummy_SeqSearch(t *testing.T) {
	sp, data := dataset(t)
	p, err := params.Parse("doSeqSearch=true")
	require.NoError(t, err)
	idx, err := method.Create[float64](method.Default, Name, false, sp.String(), sp, data, p)
	require.NoError(t, err)

	res, err := idx.(method.Searcher[float64]).KNN(sp.CreateObjFromVect(-1, 0, []float64{4, 4}), 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 1, res[0].ID)
}

func TestDummy_UnusedParams(t *testing.T) {
	sp, data := dataset(t)
	p, err := params.Parse("efSearch=10")
	require.NoError(t, err)
	_, err = method.Create[float64](method.Default, Name, false, sp.String(), sp, data, p)
	var ue *params.UnusedParamsError
	assert.ErrorAs(t, err, &ue)
}
