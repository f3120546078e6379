package method

import (
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/params"
	"github.com/viant/simspace/space"
)

// Index is a search structure built over a dataset of a space.
type Index[T object.Numeric] interface {
	// String returns the method name.
	String() string
	// Len returns the number of indexed objects.
	Len() int
}

// Neighbor is one kNN result.
type Neighbor[T object.Numeric] struct {
	ID       int
	Distance T
}

// Searcher is implemented by indexes that answer kNN queries, returning
// up to k neighbors ordered by increasing distance.
type Searcher[T object.Numeric] interface {
	Index[T]
	KNN(query *object.Object, k int) ([]Neighbor[T], error)
}

// CreateFunc constructs an index. It consumes the parameters it
// recognizes and rejects the rest.
type CreateFunc[T object.Numeric] func(
	printProgress bool,
	spaceType string,
	sp space.Space[T],
	data object.Vector,
	p *params.Set,
) (Index[T], error)
