package tensor

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/backend/cpu"
)

// checkProduct validates the operands of a rank-2 product and returns
// M, K and N.
func checkProduct[A, B any](op string, a *Matrix[A], b *Matrix[B]) (m, k, n int, err error) {
	if err := a.requireRank(op, 2); err != nil {
		return 0, 0, 0, err
	}
	if err := b.requireRank(op, 2); err != nil {
		return 0, 0, 0, err
	}
	if a.sizes[1] != b.sizes[0] {
		return 0, 0, 0, fmt.Errorf("%s: %w: inner dimensions differ: %v x %v", op, ErrInvalidArgument, a.sizes, b.sizes)
	}
	return a.sizes[0], a.sizes[1], b.sizes[1], nil
}

// gemmOperand returns x itself when its column stride is 1 and a
// continuous copy otherwise. The caller releases the result when it is not x.
func gemmOperand[T any](x *Matrix[T]) (*Matrix[T], error) {
	if x.strides[1] == 1 {
		return x, nil
	}
	return x.Clone()
}

// gemmOperands prepares both product operands and returns a function that
// releases any copies made.
func gemmOperands[T any](a, b *Matrix[T]) (x, y *Matrix[T], done func(), err error) {
	if x, err = gemmOperand(a); err != nil {
		return nil, nil, nil, err
	}
	if y, err = gemmOperand(b); err != nil {
		if x != a {
			x.Release()
		}
		return nil, nil, nil, err
	}
	done = func() {
		if x != a {
			x.Release()
		}
		if y != b {
			y.Release()
		}
	}
	return x, y, done, nil
}

// MatMul returns the matrix product a·b of an M×K and a K×N matrix using
// the cache-blocked kernel.
//
// Example:
//
//	a, _ := tensor.FromNested[int]([][]int{{1, 1, 4}, {5, 1, 4}})
//	b, _ := tensor.FromNested[int]([][]int{{1, 2}, {3, 4}, {5, 6}})
//	c, _ := tensor.MatMul(a, b) // [[24 30] [28 38]]
func MatMul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	m, k, n, err := checkProduct("matmul", a, b)
	if err != nil {
		return nil, err
	}
	x, y, done, err := gemmOperands(a, b)
	if err != nil {
		return nil, err
	}
	defer done()

	res := newContinuous[T]([]int{m, n})
	cpu.Gemm(x.data[x.offset:], y.data[y.offset:], res.data, m, k, n, x.strides[0], y.strides[0], n)
	return res, nil
}

// MatMulFunc is MatMul for element types without arithmetic operators.
// Each output element starts at the zero value and accumulates
// add(acc, mul(a[i][k], b[k][j])).
func MatMulFunc[T any](a, b *Matrix[T], mul func(x, y T) T, add func(acc, v T) T) (*Matrix[T], error) {
	m, k, n, err := checkProduct("matmul", a, b)
	if err != nil {
		return nil, err
	}
	x, y, done, err := gemmOperands(a, b)
	if err != nil {
		return nil, err
	}
	defer done()

	res := newContinuous[T]([]int{m, n})
	cpu.GemmFunc(x.data[x.offset:], y.data[y.offset:], res.data, m, k, n, x.strides[0], y.strides[0], n, mul, add)
	return res, nil
}

// continuous returns m itself when it is continuous and a clone otherwise.
func continuous[T any](m *Matrix[T]) (*Matrix[T], error) {
	if m.IsContinuous() {
		return m, nil
	}
	return m.Clone()
}

// MatVec returns a·v for an M×K matrix and a length-K vector as an M×1
// matrix.
func MatVec[T Number](a, v *Matrix[T]) (*Matrix[T], error) {
	if err := v.requireRank("matvec", 1); err != nil {
		return nil, err
	}
	src, err := continuous(v)
	if err != nil {
		return nil, err
	}
	if src != v {
		defer src.Release()
	}
	col, err := Reinterpret[T](src, src.sizes[0], 1)
	if err != nil {
		return nil, err
	}
	defer col.Release()
	return MatMul(a, col)
}

// VecMat returns v·b for a length-K vector and a K×N matrix as a length-N
// vector.
func VecMat[T Number](v, b *Matrix[T]) (*Matrix[T], error) {
	if err := v.requireRank("vecmat", 1); err != nil {
		return nil, err
	}
	src, err := continuous(v)
	if err != nil {
		return nil, err
	}
	if src != v {
		defer src.Release()
	}
	row, err := Reinterpret[T](src, 1, src.sizes[0])
	if err != nil {
		return nil, err
	}
	defer row.Release()

	prod, err := MatMul(row, b)
	if err != nil {
		return nil, err
	}
	defer prod.Release()
	return Reinterpret[T](prod, prod.sizes[1])
}

// Dot returns the inner product of two vectors of equal length.
func Dot[T Number](a, b *Matrix[T]) (T, error) {
	var zero T
	if err := a.requireRank("dot", 1); err != nil {
		return zero, err
	}
	if err := b.requireRank("dot", 1); err != nil {
		return zero, err
	}
	if a.sizes[0] != b.sizes[0] {
		return zero, errShapeMismatch("dot", a.sizes, b.sizes)
	}
	if a.IsContinuous() && b.IsContinuous() {
		return cpu.Dot(a.raw(), b.raw()), nil
	}
	sum := zero
	for i := range a.sizes[0] {
		sum += a.data[a.offset+i*a.strides[0]] * b.data[b.offset+i*b.strides[0]]
	}
	return sum, nil
}

// Product dispatches on the operand ranks: matrix·matrix, matrix·vector
// and vector·matrix. Two vectors are rejected; use Dot for their scalar
// product.
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if !a.IsValid() || !b.IsValid() {
		return nil, errInvalidUse("product")
	}
	switch {
	case a.Dims() == 2 && b.Dims() == 2:
		return MatMul(a, b)
	case a.Dims() == 2 && b.Dims() == 1:
		return MatVec(a, b)
	case a.Dims() == 1 && b.Dims() == 2:
		return VecMat(a, b)
	case a.Dims() == 1 && b.Dims() == 1:
		return nil, fmt.Errorf("product: %w: vector·vector is a scalar, use Dot", ErrInvalidArgument)
	}
	return nil, fmt.Errorf("product: %w: ranks %d and %d", ErrInvalidArgument, a.Dims(), b.Dims())
}

// MatMulAssign rebinds a to the product a·b. The product is computed into
// a new Buffer; a view passed as a is detached from its parent.
func MatMulAssign[T Number](a, b *Matrix[T]) error {
	res, err := MatMul(a, b)
	if err != nil {
		return err
	}
	a.take(res)
	return nil
}
