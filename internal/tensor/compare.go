package tensor

import (
	"cmp"
	"slices"

	"github.com/born-ml/ndarray/internal/backend/cpu"
)

// Equal reports whether a and b have the same shape and equal elements.
// Floating-point and complex elements compare within Epsilon(); all other
// types compare exactly. Shape mismatches yield false.
func Equal[T comparable](a, b *Matrix[T]) (bool, error) {
	if !a.IsValid() || !b.IsValid() {
		return false, errInvalidUse("equal")
	}
	if !slices.Equal(a.sizes, b.sizes) {
		return false, nil
	}

	eq := equalFunc[T](Epsilon())
	if a.IsContinuous() && b.IsContinuous() {
		y := b.raw()
		for i, x := range a.raw() {
			if !eq(x, y[i]) {
				return false, nil
			}
		}
		return true, nil
	}

	ia, ib := a.Begin(), b.Begin()
	for range a.Size() {
		if !eq(ia.data[ia.ptr], ib.data[ib.ptr]) {
			return false, nil
		}
		ia.move(1)
		ib.move(1)
	}
	return true, nil
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Matrix[T]) (bool, error) {
	eq, err := Equal(a, b)
	return !eq, err
}

// compareKernel runs a contiguous comparison kernel when both operands are
// continuous and falls back to zip otherwise.
func compareKernel[T any](op string, a, b *Matrix[T], kernel func(dst []bool, x, y []T), f func(x, y T) bool) (*Matrix[bool], error) {
	if err := checkPair(op, a, b); err != nil {
		return nil, err
	}
	if a.IsContinuous() && b.IsContinuous() {
		res := newContinuous[bool](a.sizes)
		kernel(res.data, a.raw(), b.raw())
		return res, nil
	}
	return zip(op, a, b, f)
}

// Less returns a < b element-wise.
func Less[T cmp.Ordered](a, b *Matrix[T]) (*Matrix[bool], error) {
	return compareKernel("less", a, b, cpu.Less[T], func(x, y T) bool { return x < y })
}

// LessEqual returns a <= b element-wise.
func LessEqual[T cmp.Ordered](a, b *Matrix[T]) (*Matrix[bool], error) {
	return compareKernel("less equal", a, b, cpu.LessEqual[T], func(x, y T) bool { return x <= y })
}

// Greater returns a > b element-wise.
func Greater[T cmp.Ordered](a, b *Matrix[T]) (*Matrix[bool], error) {
	return compareKernel("greater", a, b, cpu.Greater[T], func(x, y T) bool { return x > y })
}

// GreaterEqual returns a >= b element-wise.
func GreaterEqual[T cmp.Ordered](a, b *Matrix[T]) (*Matrix[bool], error) {
	return compareKernel("greater equal", a, b, cpu.GreaterEqual[T], func(x, y T) bool { return x >= y })
}
