package space

import (
	"math"

	"github.com/viant/simspace/object"
)

// DefaultMaxULPs is the tolerance of ApproxEqual in units in the last place.
const DefaultMaxULPs = 4

// approxEqual reports whether x and y are at most maxULPs representable
// values apart. Identical bit patterns, NaN included, are equal.
func approxEqual[T object.Numeric](x, y T, maxULPs uint64) bool {
	if object.TypeOf[T]() == object.Float32 {
		a, b := math.Float32bits(float32(x)), math.Float32bits(float32(y))
		if a == b {
			return true
		}
		return ulpDistance(ordered32(a), ordered32(b)) <= maxULPs
	}
	a, b := math.Float64bits(float64(x)), math.Float64bits(float64(y))
	if a == b {
		return true
	}
	return ulpDistance(ordered64(a), ordered64(b)) <= maxULPs
}

// ordered32 maps float bits onto a line where adjacent floats differ by
// one and both zeros coincide.
func ordered32(bits uint32) int64 {
	v := int64(int32(bits))
	if v < 0 {
		v = math.MinInt32 - v
	}
	return v
}

func ordered64(bits uint64) int64 {
	v := int64(bits)
	if v < 0 {
		v = math.MinInt64 - v
	}
	return v
}

func ulpDistance(a, b int64) uint64 {
	if a > b {
		a, b = b, a
	}
	if a >= 0 || b < 0 {
		return uint64(b - a)
	}
	// opposite signs: b-a may overflow int64
	return uint64(b) + uint64(-a)
}
