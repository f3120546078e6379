package object

import "fmt"

// Numeric enumerates element types an Object payload can hold.
type Numeric interface {
	~float32 | ~float64
}

// ElementType tags the numeric type stored in a payload. The tag is owned
// by the space that produced an object; it is never derived from the
// object itself.
type ElementType uint8

const (
	// Invalid marks an unset element type.
	Invalid ElementType = iota
	// Float32 is IEEE 754 single precision.
	Float32
	// Float64 is IEEE 754 double precision.
	Float64
)

// Size returns the element width in bytes.
func (e ElementType) Size() int {
	switch e {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// Bits returns the element width in bits, as expected by strconv.
func (e ElementType) Bits() int { return e.Size() * 8 }

func (e ElementType) String() string {
	switch e {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("ElementType(%d)", uint8(e))
	}
}

// ParseElementType resolves names such as "float32", "float" or "double".
func ParseElementType(name string) (ElementType, error) {
	switch name {
	case "float32", "float", "f32":
		return Float32, nil
	case "float64", "double", "f64":
		return Float64, nil
	}
	return Invalid, fmt.Errorf("object: unknown element type %q", name)
}

// TypeOf returns the tag for T.
func TypeOf[T Numeric]() ElementType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	}
	// Named types built on float32/float64 fall back to their width.
	if sizeOf[T]() == 4 {
		return Float32
	}
	return Float64
}
