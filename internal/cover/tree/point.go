package tree

import "github.com/viant/simspace/object"

// Point is an object placed in the tree.
type Point struct {
	index  int32
	Object *object.Object
}

// Index returns the insertion position of the point, or -1 if it was never
// inserted.
func (p *Point) Index() int32 {
	if p == nil {
		return -1
	}
	return p.index
}

// NewPoint wraps obj for insertion.
func NewPoint(obj *object.Object) *Point {
	return &Point{index: -1, Object: obj}
}
