package method

import (
	"sort"

	"github.com/viant/simspace/object"
	"github.com/viant/simspace/space"
)

// SeqKNN scans data and returns the k objects closest to query. k <= 0
// returns every object, ordered by distance.
func SeqKNN[T object.Numeric](sp space.Space[T], data object.Vector, query *object.Object, k int) ([]Neighbor[T], error) {
	out := make([]Neighbor[T], 0, len(data))
	for _, o := range data {
		d, err := sp.Distance(query, o)
		if err != nil {
			return nil, err
		}
		out = append(out, Neighbor[T]{ID: o.ID(), Distance: d})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Distance < out[b].Distance })
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out, nil
}
