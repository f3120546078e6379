package tree

import "github.com/viant/simspace/object"

// Neighbor describes a candidate returned by a kNN search.
type Neighbor[T object.Numeric] struct {
	Point    *Point
	Distance T
}

// Neighbors implements heap.Interface sorted by descending distance (max-heap).
type Neighbors[T object.Numeric] []Neighbor[T]

func (h Neighbors[T]) Len() int           { return len(h) }
func (h Neighbors[T]) Less(i, j int) bool { return h[i].Distance > h[j].Distance }
func (h Neighbors[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *Neighbors[T]) Push(x interface{}) {
	*h = append(*h, x.(Neighbor[T]))
}

func (h *Neighbors[T]) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// drain pops every neighbor, closest first.
func (h *Neighbors[T]) drain() []Neighbor[T] {
	result := make([]Neighbor[T], h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heapPop(h)
	}
	return result
}
