// Package dummy provides the baseline method: it keeps a reference to the
// space and the dataset and performs no indexing work. With doSeqSearch
// enabled, queries fall back to a sequential scan.
package dummy

import (
	"github.com/viant/simspace/method"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/params"
	"github.com/viant/simspace/space"
)

// Name is the registry name of the method.
const Name = "dummy"

// Index is the no-op index.
type Index[T object.Numeric] struct {
	space       space.Space[T]
	data        object.Vector
	doSeqSearch bool
}

func init() {
	method.MustRegister[float32](method.Default, Name, New[float32])
	method.MustRegister[float64](method.Default, Name, New[float64])
}

// New is the creation function registered for the method.
func New[T object.Numeric](_ bool, _ string, sp space.Space[T], data object.Vector, p *params.Set) (method.Index[T], error) {
	pm := params.NewManager(p)
	seq, err := params.Optional(pm, "doSeqSearch", false)
	if err != nil {
		return nil, err
	}
	if err := pm.CheckUnused(); err != nil {
		return nil, err
	}
	return &Index[T]{space: sp, data: data, doSeqSearch: seq}, nil
}

func (i *Index[T]) String() string { return Name }

// Len returns the dataset size.
func (i *Index[T]) Len() int { return len(i.data) }

// Space returns the space the index was created for.
func (i *Index[T]) Space() space.Space[T] { return i.space }

// Data returns the retained dataset.
func (i *Index[T]) Data() object.Vector { return i.data }

// KNN scans the dataset when doSeqSearch is set and returns nothing
// otherwise.
func (i *Index[T]) KNN(query *object.Object, k int) ([]method.Neighbor[T], error) {
	if !i.doSeqSearch {
		return nil, nil
	}
	return method.SeqKNN(i.space, i.data, query, k)
}

var _ method.Searcher[float32] = (*Index[float32])(nil)
