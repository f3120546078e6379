package seqsearch

import (
	"fmt"
	"sort"

	"github.com/viant/simspace/method"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/params"
	"github.com/viant/simspace/space"
	"golang.org/x/sync/errgroup"
)

// Name is the registry name of the method.
const Name = "seqsearch"

// Index answers kNN queries by scanning all objects.
type Index[T object.Numeric] struct {
	space     space.Space[T]
	data      object.Vector
	threadQty int
}

func init() {
	method.MustRegister[float32](method.Default, Name, New[float32])
	method.MustRegister[float64](method.Default, Name, New[float64])
}

// New is the creation function registered for the method. It accepts
// threadQty, the number of goroutines a query is split across.
func New[T object.Numeric](_ bool, _ string, sp space.Space[T], data object.Vector, p *params.Set) (method.Index[T], error) {
	pm := params.NewManager(p)
	threads, err := params.Optional(pm, "threadQty", 1)
	if err != nil {
		return nil, err
	}
	if threads < 1 {
		return nil, fmt.Errorf("seqsearch: threadQty must be positive, got %d", threads)
	}
	if err := pm.CheckUnused(); err != nil {
		return nil, err
	}
	return &Index[T]{space: sp, data: append(object.Vector(nil), data...), threadQty: threads}, nil
}

func (i *Index[T]) String() string { return Name }

// Len returns the number of indexed objects.
func (i *Index[T]) Len() int { return len(i.data) }

// KNN returns the k nearest objects, closest first.
func (i *Index[T]) KNN(query *object.Object, k int) ([]method.Neighbor[T], error) {
	if len(i.data) == 0 {
		return nil, nil
	}
	if i.threadQty == 1 || len(i.data) < 2*i.threadQty {
		return method.SeqKNN(i.space, i.data, query, k)
	}
	chunk := (len(i.data) + i.threadQty - 1) / i.threadQty
	parts := make([][]method.Neighbor[T], i.threadQty)
	var g errgroup.Group
	for t := 0; t < i.threadQty; t++ {
		lo := t * chunk
		if lo >= len(i.data) {
			break
		}
		hi := min(lo+chunk, len(i.data))
		g.Go(func() error {
			res, err := method.SeqKNN(i.space, i.data[lo:hi], query, k)
			parts[t] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []method.Neighbor[T]
	for _, p := range parts {
		out = append(out, p...)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Distance < out[b].Distance })
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out, nil
}

// MarshalBinary stores the dataset in the shared method format.
func (i *Index[T]) MarshalBinary() ([]byte, error) {
	return method.EncodeData[T](i.data), nil
}

// UnmarshalBinary restores the dataset from bytes. The space and thread
// settings are kept.
func (i *Index[T]) UnmarshalBinary(data []byte) error {
	objs, err := method.DecodeData[T](data)
	if err != nil {
		return err
	}
	i.data = objs
	return nil
}

// Load restores an index for sp from bytes produced by MarshalBinary.
func Load[T object.Numeric](sp space.Space[T], data []byte) (*Index[T], error) {
	idx := &Index[T]{space: sp, threadQty: 1}
	if err := idx.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return idx, nil
}

var _ method.Searcher[float32] = (*Index[float32])(nil)
