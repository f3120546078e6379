package tree

import (
	"math"

	"github.com/viant/simspace/object"
)

// Node represents a cover-tree node.
type Node[T object.Numeric] struct {
	level          int32
	baseLevel      T
	point          *Point
	children       []Node[T]
	radius         T
	radiusComputed uint64
}

// NewNode constructs a node for the provided point and level.
func NewNode[T object.Numeric](point *Point, level int32, base float64) Node[T] {
	return Node[T]{
		level:     level,
		baseLevel: T(math.Pow(base, float64(level))),
		point:     point,
	}
}
