package space

import (
	"io"

	"github.com/viant/simspace/object"
)

// Phase is the position of a read state in its lifecycle.
type Phase uint8

const (
	// PhaseOpen is a freshly opened stream with no record parsed yet.
	PhaseOpen Phase = iota
	// PhaseAtRecord follows each successfully parsed record.
	PhaseAtRecord
	// PhaseEndOfStream is terminal: the stream is exhausted.
	PhaseEndOfStream
	// PhaseFailed is terminal: a record was rejected.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseAtRecord:
		return "at-record"
	case PhaseEndOfStream:
		return "end-of-stream"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (p Phase) Terminal() bool { return p == PhaseEndOfStream || p == PhaseFailed }

// ReadState is the per-stream context a space carries across successive
// read calls. Only the space that created a state can drive it.
type ReadState interface {
	io.Closer
	// Path is the file the state reads.
	Path() string
	// Line is the 1-based number of the last line read, 0 before the first.
	Line() int
	// Dim is the established dimensionality, 0 while unconstrained.
	Dim() int
	// Phase is the current lifecycle phase.
	Phase() Phase
}

// WriteState is the per-stream context for writing objects.
type WriteState interface {
	io.Closer
	// Path is the file the state writes.
	Path() string
	// Written is the number of records written so far.
	Written() int
}

// Record is one raw record read from a stream.
type Record struct {
	Text     string
	Label    int
	ExternID string
}

// Space is the contract between a distance domain and the generic
// loading, saving and method-construction machinery. T is the element
// type fixed for the space instance.
type Space[T object.Numeric] interface {
	// String returns the space name, e.g. "l2".
	String() string
	// ElementType returns the payload element tag of objects this space creates.
	ElementType() object.ElementType

	// OpenReadFileHeader opens path and returns a fresh read state bound to
	// this space.
	OpenReadFileHeader(path string) (ReadState, error)
	// OpenWriteFileHeader creates path and returns a write state bound to
	// this space.
	OpenWriteFileHeader(data object.Vector, path string) (WriteState, error)
	// ReadNextObjStr returns the next raw record; ok is false at end of stream.
	ReadNextObjStr(state ReadState) (rec Record, ok bool, err error)
	// CreateObjFromStr parses text into an object, enforcing the stream's
	// dimensionality when state is non-nil.
	CreateObjFromStr(id, label int, text string, state ReadState) (*object.Object, error)
	// CreateStrFromObj serializes obj into its text record.
	CreateStrFromObj(obj *object.Object, externID string) (string, error)
	// WriteNextObj appends obj as one record to the stream.
	WriteNextObj(obj *object.Object, externID string, state WriteState) error
	// ApproxEqual compares two objects elementwise within a tolerance.
	ApproxEqual(a, b *object.Object) (bool, error)
	// CreateObjFromVect builds an object directly from typed values.
	CreateObjFromVect(id, label int, values []T) *object.Object
	// Distance computes the space distance between two objects.
	Distance(a, b *object.Object) (T, error)
}
