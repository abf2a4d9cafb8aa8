// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"cmp"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Element-wise operations. Results are freshly allocated continuous
// matrices; operand shapes must match exactly.

// Zip applies f to corresponding elements of a and b.
func Zip[A, B, R any](a *Matrix[A], b *Matrix[B], f func(A, B) R) (*Matrix[R], error) {
	return tensor.Zip(a, b, f)
}

// Map applies f to every element of m.
func Map[T, R any](m *Matrix[T], f func(T) R) (*Matrix[R], error) {
	return tensor.Map(m, f)
}

// Apply replaces every element of m with f(element), in place.
func Apply[T any](m *Matrix[T], f func(T) T) error {
	return tensor.Apply(m, f)
}

// Cast converts every element of m to R.
func Cast[R, T Real](m *Matrix[T]) (*Matrix[R], error) {
	return tensor.Cast[R](m)
}

// Add returns a + b. Strings concatenate.
func Add[T Addable](a, b *Matrix[T]) (*Matrix[T], error) { return tensor.Add(a, b) }

// Sub returns a - b.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return tensor.Sub(a, b) }

// Mul returns the element-wise product. See MatMul for the matrix product.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return tensor.Mul(a, b) }

// Div returns a / b.
func Div[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return tensor.Div(a, b) }

// Neg returns -a.
func Neg[T Number](a *Matrix[T]) (*Matrix[T], error) { return tensor.Neg(a) }

// AddScalar returns a + s.
func AddScalar[T Addable](a *Matrix[T], s T) (*Matrix[T], error) { return tensor.AddScalar(a, s) }

// ScalarAdd returns s + a.
func ScalarAdd[T Addable](s T, a *Matrix[T]) (*Matrix[T], error) { return tensor.ScalarAdd(s, a) }

// SubScalar returns a - s.
func SubScalar[T Number](a *Matrix[T], s T) (*Matrix[T], error) { return tensor.SubScalar(a, s) }

// ScalarSub returns s - a.
func ScalarSub[T Number](s T, a *Matrix[T]) (*Matrix[T], error) { return tensor.ScalarSub(s, a) }

// MulScalar returns a * s.
func MulScalar[T Number](a *Matrix[T], s T) (*Matrix[T], error) { return tensor.MulScalar(a, s) }

// DivScalar returns a / s.
func DivScalar[T Number](a *Matrix[T], s T) (*Matrix[T], error) { return tensor.DivScalar(a, s) }

// ScalarDiv returns s / a.
func ScalarDiv[T Number](s T, a *Matrix[T]) (*Matrix[T], error) { return tensor.ScalarDiv(s, a) }

// In-place operations. a may be a view; the update is visible through every
// handle on its Buffer.

// AddAssign computes a += b.
func AddAssign[T Addable](a, b *Matrix[T]) error { return tensor.AddAssign(a, b) }

// SubAssign computes a -= b.
func SubAssign[T Number](a, b *Matrix[T]) error { return tensor.SubAssign(a, b) }

// MulAssign computes the element-wise a *= b.
func MulAssign[T Number](a, b *Matrix[T]) error { return tensor.MulAssign(a, b) }

// DivAssign computes a /= b.
func DivAssign[T Number](a, b *Matrix[T]) error { return tensor.DivAssign(a, b) }

// AddScalarAssign computes a += s.
func AddScalarAssign[T Addable](a *Matrix[T], s T) error { return tensor.AddScalarAssign(a, s) }

// SubScalarAssign computes a -= s.
func SubScalarAssign[T Number](a *Matrix[T], s T) error { return tensor.SubScalarAssign(a, s) }

// MulScalarAssign computes a *= s.
func MulScalarAssign[T Number](a *Matrix[T], s T) error { return tensor.MulScalarAssign(a, s) }

// DivScalarAssign computes a /= s.
func DivScalarAssign[T Number](a *Matrix[T], s T) error { return tensor.DivScalarAssign(a, s) }

// Comparison

// Equal reports whether a and b have the same shape and equal elements,
// comparing floating-point and complex elements within Epsilon().
func Equal[T comparable](a, b *Matrix[T]) (bool, error) { return tensor.Equal(a, b) }

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Matrix[T]) (bool, error) { return tensor.NotEqual(a, b) }

// Less returns a < b element-wise.
func Less[T cmp.Ordered](a, b *Matrix[T]) (*Matrix[bool], error) { return tensor.Less(a, b) }

// LessEqual returns a <= b element-wise.
func LessEqual[T cmp.Ordered](a, b *Matrix[T]) (*Matrix[bool], error) {
	return tensor.LessEqual(a, b)
}

// Greater returns a > b element-wise.
func Greater[T cmp.Ordered](a, b *Matrix[T]) (*Matrix[bool], error) { return tensor.Greater(a, b) }

// GreaterEqual returns a >= b element-wise.
func GreaterEqual[T cmp.Ordered](a, b *Matrix[T]) (*Matrix[bool], error) {
	return tensor.GreaterEqual(a, b)
}

// Reductions

// Fold combines every element into an accumulator in row-major order.
func Fold[T, R any](m *Matrix[T], seed R, f func(acc R, v T) R) (R, error) {
	return tensor.Fold(m, seed, f)
}

// Reduce folds the elements after the first into the first.
func Reduce[T any](m *Matrix[T], f func(acc, v T) T) (T, error) { return tensor.Reduce(m, f) }

// Sum returns the sum of the elements.
func Sum[T Addable](m *Matrix[T]) (T, error) { return tensor.Sum(m) }

// Max returns the largest element.
func Max[T cmp.Ordered](m *Matrix[T]) (T, error) { return tensor.Max(m) }

// Min returns the smallest element.
func Min[T cmp.Ordered](m *Matrix[T]) (T, error) { return tensor.Min(m) }

// Mean returns the arithmetic mean as float64.
func Mean[T Real](m *Matrix[T]) (float64, error) { return tensor.Mean(m) }

// CountIf returns the number of elements satisfying cond.
func CountIf[T any](m *Matrix[T], cond func(T) bool) (int, error) { return tensor.CountIf(m, cond) }

// Count returns the number of elements equal to v.
func Count[T comparable](m *Matrix[T], v T) (int, error) { return tensor.Count(m, v) }

// CountNonzero returns the number of elements different from the zero value.
func CountNonzero[T comparable](m *Matrix[T]) (int, error) { return tensor.CountNonzero(m) }

// Sort sorts the elements covered by m in row-major order, in place.
func Sort[T cmp.Ordered](m *Matrix[T]) error { return tensor.Sort(m) }

// SortFunc is Sort with a caller supplied ordering.
func SortFunc[T any](m *Matrix[T], compare func(a, b T) int) error {
	return tensor.SortFunc(m, compare)
}

// Products

// MatMul returns the matrix product of an M×K and a K×N matrix.
//
// Example:
//
//	a, _ := tensor.FromNested[int]([][]int{{1, 1, 4}, {5, 1, 4}})
//	b, _ := tensor.FromNested[int]([][]int{{1, 2}, {3, 4}, {5, 6}})
//	c, _ := tensor.MatMul(a, b) // [[24, 30], [28, 38]]
func MatMul[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return tensor.MatMul(a, b) }

// MatMulFunc is MatMul with caller supplied multiply and accumulate.
func MatMulFunc[T any](a, b *Matrix[T], mul func(x, y T) T, add func(acc, v T) T) (*Matrix[T], error) {
	return tensor.MatMulFunc(a, b, mul, add)
}

// MatVec returns a·v as an M×1 matrix.
func MatVec[T Number](a, v *Matrix[T]) (*Matrix[T], error) { return tensor.MatVec(a, v) }

// VecMat returns v·b as a length-N vector.
func VecMat[T Number](v, b *Matrix[T]) (*Matrix[T], error) { return tensor.VecMat(v, b) }

// Dot returns the inner product of two equal-length vectors.
func Dot[T Number](a, b *Matrix[T]) (T, error) { return tensor.Dot(a, b) }

// Product dispatches to MatMul, MatVec or VecMat by operand rank.
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return tensor.Product(a, b) }

// MatMulAssign rebinds a to the product a·b.
func MatMulAssign[T Number](a, b *Matrix[T]) error { return tensor.MatMulAssign(a, b) }
