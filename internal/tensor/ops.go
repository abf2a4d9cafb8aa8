package tensor

import (
	"fmt"
	"slices"

	"github.com/born-ml/ndarray/internal/backend/cpu"
)

// checkPair validates two operands of an element-wise operation.
func checkPair[A, B any](op string, a *Matrix[A], b *Matrix[B]) error {
	if !a.IsValid() || !b.IsValid() {
		return errInvalidUse(op)
	}
	if !slices.Equal(a.sizes, b.sizes) {
		return errShapeMismatch(op, a.sizes, b.sizes)
	}
	return nil
}

// zip writes f(a, b) for every element pair into a fresh continuous matrix
// shaped like a. Continuous operands are scanned linearly, strided ones
// through an Iterator.
func zip[A, B, R any](op string, a *Matrix[A], b *Matrix[B], f func(A, B) R) (*Matrix[R], error) {
	if err := checkPair(op, a, b); err != nil {
		return nil, err
	}
	res := newContinuous[R](a.sizes)
	out := res.data

	switch ac, bc := a.IsContinuous(), b.IsContinuous(); {
	case ac && bc:
		x, y := a.raw(), b.raw()
		for i := range out {
			out[i] = f(x[i], y[i])
		}
	case ac:
		x, it := a.raw(), b.Begin()
		for i := range out {
			out[i] = f(x[i], it.data[it.ptr])
			it.move(1)
		}
	case bc:
		it, y := a.Begin(), b.raw()
		for i := range out {
			out[i] = f(it.data[it.ptr], y[i])
			it.move(1)
		}
	default:
		ia, ib := a.Begin(), b.Begin()
		for i := range out {
			out[i] = f(ia.data[ia.ptr], ib.data[ib.ptr])
			ia.move(1)
			ib.move(1)
		}
	}
	return res, nil
}

// mapInto writes f(a) for every element into a fresh continuous matrix.
func mapInto[A, R any](op string, a *Matrix[A], f func(A) R) (*Matrix[R], error) {
	if !a.IsValid() {
		return nil, errInvalidUse(op)
	}
	res := newContinuous[R](a.sizes)
	out := res.data
	if a.IsContinuous() {
		for i, v := range a.raw() {
			out[i] = f(v)
		}
		return res, nil
	}
	it := a.Begin()
	for i := range out {
		out[i] = f(it.data[it.ptr])
		it.move(1)
	}
	return res, nil
}

// binaryKernel runs a contiguous kernel when both operands are continuous
// and falls back to zip otherwise.
func binaryKernel[T any](op string, a, b *Matrix[T], kernel func(dst, x, y []T), f func(x, y T) T) (*Matrix[T], error) {
	if err := checkPair(op, a, b); err != nil {
		return nil, err
	}
	if a.IsContinuous() && b.IsContinuous() {
		res := newContinuous[T](a.sizes)
		kernel(res.data, a.raw(), b.raw())
		return res, nil
	}
	return zip(op, a, b, f)
}

// scalarKernel is binaryKernel for an array and a scalar.
func scalarKernel[T any](op string, a *Matrix[T], kernel func(dst, x []T), f func(x T) T) (*Matrix[T], error) {
	if !a.IsValid() {
		return nil, errInvalidUse(op)
	}
	if a.IsContinuous() {
		res := newContinuous[T](a.sizes)
		kernel(res.data, a.raw())
		return res, nil
	}
	return mapInto(op, a, f)
}

// Zip applies f to corresponding elements of a and b.
func Zip[A, B, R any](a *Matrix[A], b *Matrix[B], f func(A, B) R) (*Matrix[R], error) {
	return zip("zip", a, b, f)
}

// Map applies f to every element of m.
func Map[T, R any](m *Matrix[T], f func(T) R) (*Matrix[R], error) {
	return mapInto("map", m, f)
}

// Apply replaces every element of m with f(element), in place.
func Apply[T any](m *Matrix[T], f func(T) T) error {
	if !m.IsValid() {
		return errInvalidUse("apply")
	}
	if m.IsContinuous() {
		raw := m.raw()
		for i, v := range raw {
			raw[i] = f(v)
		}
		return nil
	}
	it := m.Begin()
	for range m.Size() {
		it.data[it.ptr] = f(it.data[it.ptr])
		it.move(1)
	}
	return nil
}

// Cast converts every element of m to R.
func Cast[R, T Real](m *Matrix[T]) (*Matrix[R], error) {
	if m.IsContinuous() {
		res := newContinuous[R](m.sizes)
		cpu.Convert(res.data, m.raw())
		return res, nil
	}
	return mapInto("cast", m, func(v T) R { return R(v) })
}

// Add returns a + b element-wise. Strings concatenate.
func Add[T Addable](a, b *Matrix[T]) (*Matrix[T], error) {
	return binaryKernel("add", a, b, cpu.Add[T], func(x, y T) T { return x + y })
}

// Sub returns a - b element-wise.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return binaryKernel("sub", a, b, cpu.Sub[T], func(x, y T) T { return x - y })
}

// Mul returns the element-wise product a ⊙ b. See MatMul for the matrix
// product.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return binaryKernel("mul", a, b, cpu.Mul[T], func(x, y T) T { return x * y })
}

// Div returns a / b element-wise.
func Div[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return binaryKernel("div", a, b, cpu.Div[T], func(x, y T) T { return x / y })
}

// AddScalar returns a + s.
func AddScalar[T Addable](a *Matrix[T], s T) (*Matrix[T], error) {
	return scalarKernel("add", a,
		func(dst, x []T) { cpu.AddScalar(dst, x, s) },
		func(x T) T { return x + s })
}

// ScalarAdd returns s + a. It differs from AddScalar for strings.
func ScalarAdd[T Addable](s T, a *Matrix[T]) (*Matrix[T], error) {
	return scalarKernel("add", a,
		func(dst, x []T) { cpu.ScalarAdd(dst, s, x) },
		func(x T) T { return s + x })
}

// SubScalar returns a - s.
func SubScalar[T Number](a *Matrix[T], s T) (*Matrix[T], error) {
	return scalarKernel("sub", a,
		func(dst, x []T) { cpu.SubScalar(dst, x, s) },
		func(x T) T { return x - s })
}

// ScalarSub returns s - a.
func ScalarSub[T Number](s T, a *Matrix[T]) (*Matrix[T], error) {
	return scalarKernel("sub", a,
		func(dst, x []T) { cpu.ScalarSub(dst, s, x) },
		func(x T) T { return s - x })
}

// MulScalar returns a * s.
func MulScalar[T Number](a *Matrix[T], s T) (*Matrix[T], error) {
	return scalarKernel("mul", a,
		func(dst, x []T) { cpu.MulScalar(dst, x, s) },
		func(x T) T { return x * s })
}

// DivScalar returns a / s.
func DivScalar[T Number](a *Matrix[T], s T) (*Matrix[T], error) {
	return scalarKernel("div", a,
		func(dst, x []T) { cpu.DivScalar(dst, x, s) },
		func(x T) T { return x / s })
}

// ScalarDiv returns s / a.
func ScalarDiv[T Number](s T, a *Matrix[T]) (*Matrix[T], error) {
	return scalarKernel("div", a,
		func(dst, x []T) { cpu.ScalarDiv(dst, s, x) },
		func(x T) T { return s / x })
}

// Neg returns -a.
func Neg[T Number](a *Matrix[T]) (*Matrix[T], error) {
	return mapInto("neg", a, func(x T) T { return -x })
}

// assignResult copies a freshly computed result back into dst.
func assignResult[T any](op string, dst, res *Matrix[T], err error) error {
	if err != nil {
		return err
	}
	if err := dst.CopyFrom(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	res.Release()
	return nil
}

// AddAssign computes a += b in place. a may be a view; its parent sees the
// update.
func AddAssign[T Addable](a, b *Matrix[T]) error {
	res, err := Add(a, b)
	return assignResult("add assign", a, res, err)
}

// SubAssign computes a -= b in place.
func SubAssign[T Number](a, b *Matrix[T]) error {
	res, err := Sub(a, b)
	return assignResult("sub assign", a, res, err)
}

// MulAssign computes a ⊙= b in place.
func MulAssign[T Number](a, b *Matrix[T]) error {
	res, err := Mul(a, b)
	return assignResult("mul assign", a, res, err)
}

// DivAssign computes a /= b in place.
func DivAssign[T Number](a, b *Matrix[T]) error {
	res, err := Div(a, b)
	return assignResult("div assign", a, res, err)
}

// AddScalarAssign computes a += s in place.
func AddScalarAssign[T Addable](a *Matrix[T], s T) error {
	res, err := AddScalar(a, s)
	return assignResult("add assign", a, res, err)
}

// SubScalarAssign computes a -= s in place.
func SubScalarAssign[T Number](a *Matrix[T], s T) error {
	res, err := SubScalar(a, s)
	return assignResult("sub assign", a, res, err)
}

// MulScalarAssign computes a *= s in place.
func MulScalarAssign[T Number](a *Matrix[T], s T) error {
	res, err := MulScalar(a, s)
	return assignResult("mul assign", a, res, err)
}

// DivScalarAssign computes a /= s in place.
func DivScalarAssign[T Number](a *Matrix[T], s T) error {
	res, err := DivScalar(a, s)
	return assignResult("div assign", a, res, err)
}
