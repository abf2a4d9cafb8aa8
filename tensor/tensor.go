// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// Matrix is a strided N-dimensional array handle.
//
// Example:
//
//	m, _ := tensor.New[int](2, 3, 4)
//	fmt.Println(m.Size(), m.Step(0)) // 24 12
type Matrix[T any] = tensor.Matrix[T]

// Shape represents the per-axis sizes of a matrix.
type Shape = tensor.Shape

// Flag describes the memory layout of a Matrix.
type Flag = tensor.Flag

// Layout flags.
const (
	FlagContinuous = tensor.FlagContinuous
	FlagView       = tensor.FlagView
)

// Range selects the inclusive interval [L, R] of one axis.
type Range = tensor.Range

// Iterator is a random-access cursor over a Matrix in row-major order.
type Iterator[T any] = tensor.Iterator[T]

// Formatter controls how a Matrix is printed.
type Formatter[T any] = tensor.Formatter[T]

// IndexError describes an index outside an axis. It matches ErrOutOfRange.
type IndexError = tensor.IndexError

// Element type constraints.
type (
	Integer = tensor.Integer
	Float   = tensor.Float
	Complex = tensor.Complex
	Real    = tensor.Real
	Number  = tensor.Number
	Addable = tensor.Addable
)

// Error kinds.
var (
	ErrInvalidArgument = tensor.ErrInvalidArgument
	ErrOutOfRange      = tensor.ErrOutOfRange
	ErrLogic           = tensor.ErrLogic
)

// DefaultEpsilon is the initial equality tolerance.
const DefaultEpsilon = tensor.DefaultEpsilon

// Epsilon returns the tolerance used by Equal for floating-point and complex
// elements.
func Epsilon() float64 { return tensor.Epsilon() }

// SetEpsilon replaces the tolerance and returns the previous value.
func SetEpsilon(eps float64) float64 { return tensor.SetEpsilon(eps) }

// Must returns v or panics with err.
func Must[V any](v V, err error) V { return tensor.Must(v, err) }

// Range constructors

// All selects a whole axis.
func All() Range { return tensor.All() }

// From selects from l to the end of the axis.
func From(l int) Range { return tensor.From(l) }

// Span selects [l, r]. Negative endpoints count from the end.
func Span(l, r int) Range { return tensor.Span(l, r) }

// Single selects one position, keeping the axis with size 1.
func Single(i int) Range { return tensor.Single(i) }

// Creation functions

// New creates a continuous zero-valued matrix.
//
// Example:
//
//	m, _ := tensor.New[float32](2, 3)
func New[T any](sizes ...int) (*Matrix[T], error) {
	return tensor.New[T](sizes...)
}

// Full creates a matrix with every element set to value.
func Full[T any](value T, sizes ...int) (*Matrix[T], error) {
	return tensor.Full(value, sizes...)
}

// Zeros creates a matrix filled with zeros.
func Zeros[T Number](sizes ...int) (*Matrix[T], error) {
	return tensor.Zeros[T](sizes...)
}

// Ones creates a matrix filled with ones.
func Ones[T Number](sizes ...int) (*Matrix[T], error) {
	return tensor.Ones[T](sizes...)
}

// Eye creates an n×n identity matrix.
func Eye[T Number](n int) (*Matrix[T], error) {
	return tensor.Eye[T](n)
}

// Arange creates the rank-1 sequence start, start+step, ... below stop.
//
// Example:
//
//	m, _ := tensor.Arange(0, 10, 2) // [0, 2, 4, 6, 8]
func Arange[T Real](start, stop, step T) (*Matrix[T], error) {
	return tensor.Arange(start, stop, step)
}

// Random creates a matrix whose elements are drawn from dist.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	m, _ := tensor.Random(rng, tensor.Normal(0.0, 1.0), 3, 3)
func Random[T any](rng *rand.Rand, dist func(*rand.Rand) T, sizes ...int) (*Matrix[T], error) {
	return tensor.Random(rng, dist, sizes...)
}

// Uniform returns a distribution over [lo, hi).
func Uniform[T Float](lo, hi T) func(*rand.Rand) T { return tensor.Uniform(lo, hi) }

// Normal returns a normal distribution.
func Normal[T Float](mean, stddev T) func(*rand.Rand) T { return tensor.Normal(mean, stddev) }

// UniformInt returns a distribution over the integers in [lo, hi].
func UniformInt[T Integer](lo, hi T) func(*rand.Rand) T { return tensor.UniformInt(lo, hi) }

// FromSlice creates a matrix holding a copy of data.
func FromSlice[T any](data []T, sizes ...int) (*Matrix[T], error) {
	return tensor.FromSlice(data, sizes...)
}

// FromNested creates a matrix from nested slices or arrays of T.
//
// Example:
//
//	m, _ := tensor.FromNested[int]([][]int{{1, 2}, {3, 4}})
func FromNested[T any](v any) (*Matrix[T], error) {
	return tensor.FromNested[T](v)
}

// DefaultFormatter returns the formatter used when none is set.
func DefaultFormatter[T any]() *Formatter[T] {
	return tensor.DefaultFormatter[T]()
}
