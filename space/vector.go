package space

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/simspace/internal/stream"
	"github.com/viant/simspace/object"
)

// Names of the dense vector spaces.
const (
	L2     = "l2"
	Cosine = "cosinesimil"
	L1     = "l1"
	LInf   = "linf"
)

// Names lists the supported space names.
func Names() []string { return []string{L2, Cosine, L1, LInf} }

// IsMetric reports whether the named space distance satisfies the triangle
// inequality. Cosine distance does not.
func IsMetric(name string) bool {
	switch name {
	case L2, L1, LInf:
		return true
	}
	return false
}

// VectorSpace is a dense vector space whose text records are lines of
// whitespace-separated numbers.
type VectorSpace[T object.Numeric] struct {
	name    string
	dist    DistanceFunc[T]
	labels  LabelConvention
	maxULPs uint64
}

// New creates a dense vector space by name.
func New[T object.Numeric](name string, opts ...Option) (*VectorSpace[T], error) {
	dist := distanceFor[T](name)
	if dist == nil {
		return nil, &UnknownSpaceError{Name: name}
	}
	o := options{labels: LabelLeading, maxULPs: DefaultMaxULPs}
	for _, opt := range opts {
		opt(&o)
	}
	return &VectorSpace[T]{name: name, dist: dist, labels: o.labels, maxULPs: o.maxULPs}, nil
}

func (s *VectorSpace[T]) String() string { return s.name }

// ElementType returns the payload tag for T.
func (s *VectorSpace[T]) ElementType() object.ElementType { return object.TypeOf[T]() }

// Labels returns the label convention of text records.
func (s *VectorSpace[T]) Labels() LabelConvention { return s.labels }

// OpenReadFileHeader opens path for reading records.
func (s *VectorSpace[T]) OpenReadFileHeader(path string) (ReadState, error) {
	in, err := stream.Open(path)
	if err != nil {
		return nil, fmt.Errorf("space: open %s: %w", path, err)
	}
	return &readState{owner: s, path: path, in: in, phase: PhaseOpen}, nil
}

// OpenWriteFileHeader creates path for writing records. Dense vector files
// have no header, so data is not consulted.
func (s *VectorSpace[T]) OpenWriteFileHeader(_ object.Vector, path string) (WriteState, error) {
	out, err := stream.Create(path)
	if err != nil {
		return nil, fmt.Errorf("space: create %s: %w", path, err)
	}
	return &writeState{owner: s, path: path, out: out}, nil
}

func (s *VectorSpace[T]) readState(state ReadState) (*readState, error) {
	st, ok := state.(*readState)
	if !ok || st.owner != any(s) {
		return nil, &StateMismatchError{Space: s.name, State: fmt.Sprintf("%T", state)}
	}
	return st, nil
}

// ReadNextObjStr returns the next line of the stream. Dense vector files
// carry no external ids, and labels are extracted later by
// CreateObjFromStr.
func (s *VectorSpace[T]) ReadNextObjStr(state ReadState) (Record, bool, error) {
	st, err := s.readState(state)
	if err != nil {
		return Record{}, false, err
	}
	switch st.phase {
	case PhaseFailed:
		return Record{}, false, fmt.Errorf("%w: %s", ErrTerminalState, st.phase)
	case PhaseEndOfStream:
		return Record{}, false, nil
	}
	if st.in == nil {
		st.phase = PhaseEndOfStream
		return Record{}, false, nil
	}
	if !st.in.Scan() {
		if err := st.in.Err(); err != nil {
			st.fail()
			return Record{}, false, fmt.Errorf("space: read %s after line %d: %w", st.path, st.line, err)
		}
		st.phase = PhaseEndOfStream
		return Record{}, false, nil
	}
	st.line++
	return Record{Text: st.in.Text(), Label: object.EmptyLabel}, true, nil
}

// CreateObjFromStr parses a record. A label embedded in text overrides
// label. With a non-nil state the first record fixes the dimensionality
// and every later record must match it.
func (s *VectorSpace[T]) CreateObjFromStr(id, label int, text string, state ReadState) (*object.Object, error) {
	var st *readState
	if state != nil {
		var err error
		if st, err = s.readState(state); err != nil {
			return nil, err
		}
		if st.phase.Terminal() {
			return nil, fmt.Errorf("%w: %s", ErrTerminalState, st.phase)
		}
	}
	label, values, err := s.parse(text, label)
	if err != nil {
		perr := &ParseError{Text: text, Err: err}
		if st != nil {
			perr.Line = st.line
			st.fail()
		}
		return nil, perr
	}
	if st != nil {
		if st.dim == 0 {
			st.dim = len(values)
		} else if len(values) != st.dim {
			st.fail()
			return nil, &DimensionMismatchError{Expected: st.dim, Actual: len(values), Line: st.line, Path: st.path}
		}
		st.phase = PhaseAtRecord
	}
	return s.CreateObjFromVect(id, label, values), nil
}

func (s *VectorSpace[T]) parse(text string, label int) (int, []T, error) {
	tokens := strings.Fields(text)
	label, tokens, err := s.labels.extract(tokens, label)
	if err != nil {
		return 0, nil, err
	}
	if len(tokens) == 0 {
		return 0, nil, errEmptyRecord
	}
	bits := s.ElementType().Bits()
	values := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, bits)
		if err != nil {
			return 0, nil, err
		}
		values[i] = T(v)
	}
	return label, values, nil
}

// CreateStrFromObj formats obj with the shortest representation that
// parses back to the identical value for T. externID is not part of dense
// vector records.
func (s *VectorSpace[T]) CreateStrFromObj(obj *object.Object, _ string) (string, error) {
	values, err := object.Values[T](obj)
	if err != nil {
		return "", err
	}
	bits := s.ElementType().Bits()
	var b strings.Builder
	s.labels.write(&b, obj.Label())
	for _, v := range values {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, bits))
	}
	return b.String(), nil
}

// WriteNextObj writes obj as one line.
func (s *VectorSpace[T]) WriteNextObj(obj *object.Object, externID string, state WriteState) error {
	st, ok := state.(*writeState)
	if !ok || st.owner != any(s) {
		return &StateMismatchError{Space: s.name, State: fmt.Sprintf("%T", state)}
	}
	if st.out == nil {
		return fmt.Errorf("space: write %s: state closed", st.path)
	}
	line, err := s.CreateStrFromObj(obj, externID)
	if err != nil {
		return err
	}
	if _, err := st.out.WriteString(line); err != nil {
		return err
	}
	if err := st.out.WriteByte('\n'); err != nil {
		return err
	}
	st.written++
	return nil
}

// ApproxEqual compares a and b elementwise within the space ULP tolerance.
// Objects of different lengths yield a LengthMismatchError.
func (s *VectorSpace[T]) ApproxEqual(a, b *object.Object) (bool, error) {
	va, vb, err := s.pair(a, b)
	if err != nil {
		return false, err
	}
	for i := range va {
		if !approxEqual(va[i], vb[i], s.maxULPs) {
			return false, nil
		}
	}
	return true, nil
}

// CreateObjFromVect builds an object from values without text parsing.
func (s *VectorSpace[T]) CreateObjFromVect(id, label int, values []T) *object.Object {
	return object.FromSlice(id, label, values)
}

// Distance computes the space distance between a and b.
func (s *VectorSpace[T]) Distance(a, b *object.Object) (T, error) {
	va, vb, err := s.pair(a, b)
	if err != nil {
		return 0, err
	}
	return s.dist(va, vb), nil
}

func (s *VectorSpace[T]) pair(a, b *object.Object) ([]T, []T, error) {
	va, err := object.Values[T](a)
	if err != nil {
		return nil, nil, err
	}
	vb, err := object.Values[T](b)
	if err != nil {
		return nil, nil, err
	}
	if len(va) != len(vb) {
		return nil, nil, &LengthMismatchError{Left: len(va), Right: len(vb)}
	}
	return va, vb, nil
}

var (
	_ Space[float32] = (*VectorSpace[float32])(nil)
	_ Space[float64] = (*VectorSpace[float64])(nil)
)
