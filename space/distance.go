package space

import (
	"math"

	"github.com/viant/simspace/object"
	"github.com/viant/vec/search"
)

// DistanceFunc computes the distance between two equal-length vectors.
type DistanceFunc[T object.Numeric] func(a, b []T) T

// distanceFor resolves the kernel for a space name. float32 L2 and
// cosine use the viant/vec implementations.
func distanceFor[T object.Numeric](name string) DistanceFunc[T] {
	switch name {
	case L2:
		if fn, ok := any(DistanceFunc[float32](euclidean32)).(DistanceFunc[T]); ok {
			return fn
		}
		return euclidean[T]
	case Cosine:
		if fn, ok := any(DistanceFunc[float32](cosine32)).(DistanceFunc[T]); ok {
			return fn
		}
		return cosine[T]
	case L1:
		return manhattan[T]
	case LInf:
		return chebyshev[T]
	}
	return nil
}

func euclidean32(a, b []float32) float32 {
	return search.Float32s(a).EuclideanDistance(b)
}

// cosine32 returns 1 - cosine similarity. Zero vectors are treated as
// orthogonal to everything.
func cosine32(a, b []float32) float32 {
	if search.Float32s(a).Magnitude() == 0 || search.Float32s(b).Magnitude() == 0 {
		return 1
	}
	return search.Float32s(a).CosineDistance(b)
}

func euclidean[T object.Numeric](a, b []T) T {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return T(math.Sqrt(sum))
}

func cosine[T object.Numeric](a, b []T) T {
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 1
	}
	sim := dot / (math.Sqrt(na2) * math.Sqrt(nb2))
	return T(math.Max(0, 1-sim))
}

func manhattan[T object.Numeric](a, b []T) T {
	var sum float64
	for i := range a {
		sum += math.Abs(float64(a[i]) - float64(b[i]))
	}
	return T(sum)
}

func chebyshev[T object.Numeric](a, b []T) T {
	var m float64
	for i := range a {
		m = math.Max(m, math.Abs(float64(a[i])-float64(b[i])))
	}
	return T(m)
}
