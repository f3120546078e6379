package object

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// SizeError reports a payload whose byte length does not fit the
// requested element type or count.
type SizeError struct {
	Type     ElementType
	Bytes    int
	Expected int // expected byte length; 0 when only divisibility was checked
}

func (e *SizeError) Error() string {
	if e.Expected > 0 {
		return fmt.Sprintf("object: payload of %d bytes, want %d for %s", e.Bytes, e.Expected, e.Type)
	}
	return fmt.Sprintf("object: payload of %d bytes is not a multiple of %d (%s)", e.Bytes, e.Type.Size(), e.Type)
}

func sizeOf[T Numeric]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Encode converts values into a little-endian sequence of IEEE 754 values
// without a length prefix; the length is derived from the byte size on
// decode.
func Encode[T Numeric](values []T) []byte {
	if len(values) == 0 {
		return nil
	}
	size := sizeOf[T]()
	b := make([]byte, len(values)*size)
	for i, v := range values {
		if size == 4 {
			binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(float32(v)))
		} else {
			binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(float64(v)))
		}
	}
	return b
}

// Decode converts a payload produced by Encode back into values.
func Decode[T Numeric](b []byte) ([]T, error) {
	if len(b) == 0 {
		return nil, nil
	}
	size := sizeOf[T]()
	if len(b)%size != 0 {
		return nil, &SizeError{Type: TypeOf[T](), Bytes: len(b)}
	}
	n := len(b) / size
	out := make([]T, n)
	for i := 0; i < n; i++ {
		if size == 4 {
			out[i] = T(math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:])))
		} else {
			out[i] = T(math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:])))
		}
	}
	return out, nil
}
