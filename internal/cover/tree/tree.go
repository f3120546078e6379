package tree

// This implementation is adapted from github.com/viant/gds/tree/cover.

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/viant/simspace/object"
)

// DefaultBase is used when a base <= 1 is requested.
const DefaultBase = 1.3

// Tree is a cover tree. Its kNN answers are exact only when the distance
// satisfies the triangle inequality.
type Tree[T object.Numeric] struct {
	root          *Node[T]
	base          float64
	distanceFunc  DistanceFunc[T]
	points        []*Point
	version       uint64
	boundStrategy BoundStrategy
	mu            sync.RWMutex
}

// BoundStrategy selects which lower-bound radius to use when pruning.
type BoundStrategy int

const (
	// BoundPerNode uses cached per-node subtree radius (tighter pruning).
	BoundPerNode BoundStrategy = iota
	// BoundLevel uses a geometric bound derived from the node level.
	BoundLevel
)

// ParseBoundStrategy maps "per_node" and "level" to a strategy.
func ParseBoundStrategy(name string) (BoundStrategy, error) {
	switch name {
	case "", "per_node":
		return BoundPerNode, nil
	case "level":
		return BoundLevel, nil
	}
	return BoundPerNode, errors.New("tree: unknown bound strategy " + name)
}

func (s BoundStrategy) String() string {
	if s == BoundLevel {
		return "level"
	}
	return "per_node"
}

// NewTree constructs a cover tree with the provided base and distance.
func NewTree[T object.Numeric](base float64, distanceFn DistanceFunc[T]) *Tree[T] {
	if base <= 1 {
		base = DefaultBase
	}
	return &Tree[T]{
		base:          base,
		distanceFunc:  distanceFn,
		boundStrategy: BoundPerNode,
	}
}

// Base returns the level base of the tree.
func (t *Tree[T]) Base() float64 { return t.base }

// SetBoundStrategy switches the pruning strategy at runtime.
func (t *Tree[T]) SetBoundStrategy(s BoundStrategy) { t.boundStrategy = s }

// BoundStrategy returns the active pruning strategy.
func (t *Tree[T]) BoundStrategy() BoundStrategy { return t.boundStrategy }

// Len returns the number of inserted points.
func (t *Tree[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.points)
}

// Insert adds obj to the tree and returns its index.
func (t *Tree[T]) Insert(obj *object.Object) (int32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	point := NewPoint(obj)
	if t.root == nil {
		node := NewNode[T](point, 0, t.base)
		t.root = &node
	} else if err := t.insert(point); err != nil {
		return -1, err
	}
	point.index = int32(len(t.points))
	t.points = append(t.points, point)
	t.version++
	return point.index, nil
}

// FindPointByIndex returns the point for a stored index.
func (t *Tree[T]) FindPointByIndex(index int32) *Point {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if index < 0 || int(index) >= len(t.points) {
		return nil
	}
	return t.points[index]
}

// Objects returns inserted objects in insertion order.
func (t *Tree[T]) Objects() object.Vector {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make(object.Vector, len(t.points))
	for i, p := range t.points {
		result[i] = p.Object
	}
	return result
}

// insert keeps every child c of a node n at a lower level than n with
// d(n, c) < base^level(n), so base^level(n) * base/(base-1) bounds the
// distance from n to any descendant. The root is promoted until it
// covers the point.
func (t *Tree[T]) insert(point *Point) error {
	root := t.root
	distance, err := t.distanceFunc(point.Object, root.point.Object)
	if err != nil {
		return err
	}
	if math.IsInf(float64(distance), 0) || math.IsNaN(float64(distance)) {
		return fmt.Errorf("tree: non-finite distance %v to root", distance)
	}
	for distance >= root.baseLevel {
		root.level++
		root.baseLevel = T(math.Pow(t.base, float64(root.level)))
	}
	node := root
	for {
		next := -1
		for i := range node.children {
			child := &node.children[i]
			d, err := t.distanceFunc(point.Object, child.point.Object)
			if err != nil {
				return err
			}
			if d < child.baseLevel {
				next = i
				break
			}
		}
		if next < 0 {
			node.children = append(node.children, NewNode[T](point, node.level-1, t.base))
			return nil
		}
		node = &node.children[next]
	}
}

// lock takes the write lock for per-node bounds since radii are cached
// lazily during search.
func (t *Tree[T]) lock() func() {
	if t.boundStrategy == BoundPerNode {
		t.mu.Lock()
		return t.mu.Unlock
	}
	t.mu.RLock()
	return t.mu.RUnlock
}

// KNearestNeighbors runs a depth-first kNN search.
func (t *Tree[T]) KNearestNeighbors(query *object.Object, k int) ([]Neighbor[T], error) {
	defer t.lock()()
	if t.root == nil || k <= 0 {
		return nil, nil
	}
	h := &Neighbors[T]{}
	heap.Init(h)
	if err := t.kNearestNeighbors(t.root, query, k, h); err != nil {
		return nil, err
	}
	return h.drain(), nil
}

func (t *Tree[T]) kNearestNeighbors(node *Node[T], query *object.Object, k int, h *Neighbors[T]) error {
	dc, err := t.distanceFunc(query, node.point.Object)
	if err != nil {
		return err
	}
	if h.Len() < k {
		heap.Push(h, Neighbor[T]{Point: node.point, Distance: dc})
	} else if dc < (*h)[0].Distance {
		heap.Pop(h)
		heap.Push(h, Neighbor[T]{Point: node.point, Distance: dc})
	}
	if len(node.children) == 0 {
		return nil
	}
	type childDist struct {
		child *Node[T]
		dist  T
	}
	cds := make([]childDist, 0, len(node.children))
	for i := range node.children {
		child := &node.children[i]
		d, err := t.distanceFunc(query, child.point.Object)
		if err != nil {
			return err
		}
		cds = append(cds, childDist{child: child, dist: d})
	}
	sort.Slice(cds, func(i, j int) bool { return cds[i].dist < cds[j].dist })
	for _, cd := range cds {
		if h.Len() == k {
			r, err := t.boundRadius(cd.child)
			if err != nil {
				return err
			}
			if cd.dist-r >= (*h)[0].Distance {
				continue
			}
		}
		if err := t.kNearestNeighbors(cd.child, query, k, h); err != nil {
			return err
		}
	}
	return nil
}

// KNearestNeighborsBestFirst performs a best-first search with a node priority queue.
func (t *Tree[T]) KNearestNeighborsBestFirst(query *object.Object, k int) ([]Neighbor[T], error) {
	defer t.lock()()
	if t.root == nil || k <= 0 {
		return nil, nil
	}
	nh := &Neighbors[T]{}
	heap.Init(nh)
	pq := &nodeQueue[T]{}
	heap.Init(pq)
	rootDist, err := t.distanceFunc(query, t.root.point.Object)
	if err != nil {
		return nil, err
	}
	rootR, err := t.boundRadius(t.root)
	if err != nil {
		return nil, err
	}
	heap.Push(pq, nodeItem[T]{node: t.root, lb: rootDist - rootR, centerDist: rootDist})

	for pq.Len() > 0 {
		top := heap.Pop(pq).(nodeItem[T])
		if nh.Len() == k && top.lb >= (*nh)[0].Distance {
			break
		}
		dc := top.centerDist
		if nh.Len() < k {
			heap.Push(nh, Neighbor[T]{Point: top.node.point, Distance: dc})
		} else if dc < (*nh)[0].Distance {
			heap.Pop(nh)
			heap.Push(nh, Neighbor[T]{Point: top.node.point, Distance: dc})
		}
		for i := range top.node.children {
			child := &top.node.children[i]
			cd, err := t.distanceFunc(query, child.point.Object)
			if err != nil {
				return nil, err
			}
			r, err := t.boundRadius(child)
			if err != nil {
				return nil, err
			}
			lb := cd - r
			if nh.Len() == k && lb >= (*nh)[0].Distance {
				continue
			}
			heap.Push(pq, nodeItem[T]{node: child, lb: lb, centerDist: cd})
		}
	}
	return nh.drain(), nil
}

func (t *Tree[T]) ensureRadius(n *Node[T]) (T, error) {
	if n == nil {
		return 0, nil
	}
	if n.radiusComputed == t.version {
		return n.radius, nil
	}
	var maxR T
	for i := range n.children {
		child := &n.children[i]
		cr, err := t.ensureRadius(child)
		if err != nil {
			return 0, err
		}
		d, err := t.distanceFunc(n.point.Object, child.point.Object)
		if err != nil {
			return 0, err
		}
		if d+cr > maxR {
			maxR = d + cr
		}
	}
	n.radius = maxR
	n.radiusComputed = t.version
	return maxR, nil
}

func (t *Tree[T]) levelCoverRadius(n *Node[T]) T {
	if n == nil {
		return T(math.Inf(1))
	}
	return n.baseLevel * T(t.base/(t.base-1))
}

func (t *Tree[T]) boundRadius(n *Node[T]) (T, error) {
	if t.boundStrategy == BoundLevel {
		return t.levelCoverRadius(n), nil
	}
	return t.ensureRadius(n)
}

func heapPop[T object.Numeric](h *Neighbors[T]) Neighbor[T] {
	return heap.Pop(h).(Neighbor[T])
}

type nodeItem[T object.Numeric] struct {
	node       *Node[T]
	lb         T
	centerDist T
}

type nodeQueue[T object.Numeric] []nodeItem[T]

func (q nodeQueue[T]) Len() int            { return len(q) }
func (q nodeQueue[T]) Less(i, j int) bool  { return q[i].lb < q[j].lb }
func (q nodeQueue[T]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue[T]) Push(x interface{}) { *q = append(*q, x.(nodeItem[T])) }
func (q *nodeQueue[T]) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
