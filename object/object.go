package object

import "bytes"

// EmptyLabel marks an object without a class label.
const EmptyLabel = -1

// Object is an immutable dataset record. The payload is a contiguous
// sequence of one numeric element type; which one is known only to the
// space that created the object.
type Object struct {
	id    int
	label int
	data  []byte
}

// New creates an object holding a copy of payload.
func New(id, label int, payload []byte) *Object {
	return &Object{id: id, label: label, data: bytes.Clone(payload)}
}

// FromSlice creates an object whose payload is the byte image of values.
func FromSlice[T Numeric](id, label int, values []T) *Object {
	return &Object{id: id, label: label, data: Encode(values)}
}

// ID returns the object identity.
func (o *Object) ID() int { return o.id }

// Label returns the class label, or EmptyLabel.
func (o *Object) Label() int { return o.label }

// Len returns the payload size in bytes.
func (o *Object) Len() int { return len(o.data) }

// Payload returns a copy of the payload bytes.
func (o *Object) Payload() []byte { return bytes.Clone(o.data) }

// Values decodes the payload as a sequence of T.
func Values[T Numeric](o *Object) ([]T, error) {
	return Decode[T](o.data)
}

// ValuesN decodes exactly n elements of T; the payload must be n*sizeof(T)
// bytes long.
func ValuesN[T Numeric](o *Object, n int) ([]T, error) {
	if want := n * sizeOf[T](); want != len(o.data) {
		return nil, &SizeError{Type: TypeOf[T](), Bytes: len(o.data), Expected: want}
	}
	return Decode[T](o.data)
}

// ElemCount returns the number of T elements stored in the payload.
func ElemCount[T Numeric](o *Object) (int, error) {
	size := sizeOf[T]()
	if len(o.data)%size != 0 {
		return 0, &SizeError{Type: TypeOf[T](), Bytes: len(o.data)}
	}
	return len(o.data) / size, nil
}

// Vector is an insertion-ordered dataset. It owns its objects.
type Vector []*Object

// IDs returns object ids in dataset order.
func (v Vector) IDs() []int {
	ids := make([]int, len(v))
	for i, o := range v {
		ids[i] = o.id
	}
	return ids
}
