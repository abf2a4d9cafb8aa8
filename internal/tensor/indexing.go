package tensor

import (
	"fmt"
	"slices"
)

// normIndex applies negative wraparound and checks idx against size.
func normIndex(op string, idx, size int) (int, error) {
	if idx < 0 {
		idx += size
	}
	if idx < 0 || idx >= size {
		return 0, errOutOfRange(op, idx, size)
	}
	return idx, nil
}

// locate resolves leading indices to an element offset.
func (m *Matrix[T]) locate(op string, indices []int) (int, error) {
	off := m.offset
	for i, idx := range indices {
		n, err := normIndex(op, idx, m.sizes[i])
		if err != nil {
			return 0, err
		}
		off += n * m.strides[i]
	}
	return off, nil
}

// Index returns the rank N-1 view at position i of axis 0. Negative i
// counts from the end. On a rank-1 matrix use At or Ref instead.
func (m *Matrix[T]) Index(i int) (*Matrix[T], error) {
	return m.Sub(i)
}

// Sub returns the view selected by fixing the leading len(indices) axes.
// Fewer than Dims() indices are required; use At or Ref for a scalar.
func (m *Matrix[T]) Sub(indices ...int) (*Matrix[T], error) {
	if !m.IsValid() {
		return nil, errInvalidUse("sub")
	}
	if len(indices) >= len(m.sizes) {
		return nil, fmt.Errorf("sub: %w: %d indices on a rank %d matrix selects a scalar, use At",
			ErrInvalidArgument, len(indices), len(m.sizes))
	}
	off, err := m.locate("sub", indices)
	if err != nil {
		return nil, err
	}
	k := len(indices)
	return m.derive(off, slices.Clone(m.sizes[k:]), slices.Clone(m.strides[k:])), nil
}

// Ref returns a pointer to the element at the given full index.
func (m *Matrix[T]) Ref(indices ...int) (*T, error) {
	if !m.IsValid() {
		return nil, errInvalidUse("ref")
	}
	if len(indices) != len(m.sizes) {
		return nil, errRank("ref", len(m.sizes), len(indices))
	}
	off, err := m.locate("ref", indices)
	if err != nil {
		return nil, err
	}
	return &m.data[off], nil
}

// At returns the element at the given full index.
func (m *Matrix[T]) At(indices ...int) (T, error) {
	p, err := m.Ref(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set stores v at the given full index.
func (m *Matrix[T]) Set(v T, indices ...int) error {
	p, err := m.Ref(indices...)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Front returns the first element in row-major order.
func (m *Matrix[T]) Front() (T, error) {
	if !m.IsValid() {
		var zero T
		return zero, errInvalidUse("front")
	}
	return m.data[m.offset], nil
}

// Back returns the last element in row-major order.
func (m *Matrix[T]) Back() (T, error) {
	if !m.IsValid() {
		var zero T
		return zero, errInvalidUse("back")
	}
	off := m.offset
	for i, n := range m.sizes {
		off += (n - 1) * m.strides[i]
	}
	return m.data[off], nil
}

// Raw returns the elements of a continuous matrix as a slice aliasing the
// Buffer.
func (m *Matrix[T]) Raw() ([]T, error) {
	if !m.IsValid() {
		return nil, errInvalidUse("raw")
	}
	if !m.IsContinuous() {
		return nil, errNotContinuous("raw")
	}
	return m.raw(), nil
}

// raw is Raw without checks.
func (m *Matrix[T]) raw() []T {
	n := m.Size()
	return m.data[m.offset : m.offset+n : m.offset+n]
}

// ToSlice returns a copy of the elements in row-major order.
func (m *Matrix[T]) ToSlice() ([]T, error) {
	if !m.IsValid() {
		return nil, errInvalidUse("to slice")
	}
	out := make([]T, m.Size())
	m.copyOut(out)
	return out, nil
}
