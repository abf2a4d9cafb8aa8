// Package tensor implements the strided N-dimensional array engine.
//
// A Matrix is a handle onto a reference-counted Buffer: a base offset, a
// per-axis size and stride, and CONTINUOUS/VIEW flags. Views share the
// Buffer; Clone and CopyFrom are the only deep copies. Element-wise results
// are always freshly allocated continuous matrices.
//
// The rank of a Matrix is fixed when it is created. Operations that need a
// particular rank check it at run time and fail with ErrInvalidArgument.
package tensor

import (
	"math"
	"math/cmplx"
	"reflect"

	"github.com/born-ml/ndarray/internal/backend/cpu"
)

// Element type constraints, shared with the CPU kernels.
type (
	Integer = cpu.Integer
	Float   = cpu.Float
	Complex = cpu.Complex
	Real    = cpu.Real
	Number  = cpu.Number
	Addable = cpu.Addable
)

// equalFunc returns the element equality used by Equal. Floating-point and
// complex kinds compare within eps; every other type compares exactly.
func equalFunc[T comparable](eps float64) func(a, b T) bool {
	var zero T
	switch any(zero).(type) {
	case float64:
		return func(a, b T) bool {
			return math.Abs(any(a).(float64)-any(b).(float64)) <= eps
		}
	case float32:
		return func(a, b T) bool {
			return math.Abs(float64(any(a).(float32))-float64(any(b).(float32))) <= eps
		}
	case complex128:
		return func(a, b T) bool {
			return cmplx.Abs(any(a).(complex128)-any(b).(complex128)) <= eps
		}
	case complex64:
		return func(a, b T) bool {
			return cmplx.Abs(complex128(any(a).(complex64)-any(b).(complex64))) <= eps
		}
	}

	// Named types over float or complex kinds.
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return func(a, b T) bool {
			return math.Abs(reflect.ValueOf(a).Float()-reflect.ValueOf(b).Float()) <= eps
		}
	case reflect.Complex64, reflect.Complex128:
		return func(a, b T) bool {
			return cmplx.Abs(reflect.ValueOf(a).Complex()-reflect.ValueOf(b).Complex()) <= eps
		}
	}
	return func(a, b T) bool { return a == b }
}

// isZero reports whether v is the zero value of its type.
func isZero[T comparable](v T) bool {
	var zero T
	return v == zero
}
