package tree

import "github.com/viant/simspace/object"

// DistanceFunc computes the distance between two objects. Errors abort the
// operation in progress.
type DistanceFunc[T object.Numeric] func(a, b *object.Object) (T, error)
