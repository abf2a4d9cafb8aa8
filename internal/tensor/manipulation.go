package tensor

import (
	"fmt"
	"slices"
	"unsafe"
)

// Range selects the inclusive interval [L, R] of one axis. Negative
// endpoints count from the end of the axis.
type Range struct {
	L, R int
}

// All selects a whole axis.
func All() Range { return Range{0, -1} }

// From selects from l to the end of the axis.
func From(l int) Range { return Range{l, -1} }

// Span selects [l, r].
func Span(l, r int) Range { return Range{l, r} }

// Single selects one position, keeping the axis with size 1.
func Single(i int) Range { return Range{i, i} }

// View returns a view restricted to the given ranges, one per leading axis.
// Axes without a range are kept whole. The view shares m's Buffer and keeps
// its strides.
//
// Example:
//
//	m, _ := tensor.New[int](2, 3, 4)
//	v, _ := m.View(tensor.All(), tensor.Single(1), tensor.Span(0, -1)) // shape [2 1 4]
func (m *Matrix[T]) View(ranges ...Range) (*Matrix[T], error) {
	if !m.IsValid() {
		return nil, errInvalidUse("view")
	}
	if len(ranges) > len(m.sizes) {
		return nil, fmt.Errorf("view: %w: %d ranges on a rank %d matrix", ErrInvalidArgument, len(ranges), len(m.sizes))
	}

	sizes := slices.Clone(m.sizes)
	off := m.offset
	for i, rg := range ranges {
		l, r := rg.L, rg.R
		if l < 0 {
			l += sizes[i]
		}
		if r < 0 {
			r += sizes[i]
		}
		if l > r {
			return nil, fmt.Errorf("view: %w: left bound %d exceeds the right bound %d", ErrInvalidArgument, l, r)
		}
		if l < 0 {
			return nil, errOutOfRange("view", l, sizes[i])
		}
		if r >= sizes[i] {
			return nil, errOutOfRange("view", r, sizes[i])
		}
		sizes[i] = r - l + 1
		off += l * m.strides[i]
	}

	return m.derive(off, sizes, slices.Clone(m.strides)), nil
}

// RowView returns row i of a rank-2 matrix as a 1×cols view.
func (m *Matrix[T]) RowView(i int) (*Matrix[T], error) {
	if err := m.requireRank("row view", 2); err != nil {
		return nil, err
	}
	return m.View(Single(i))
}

// ColView returns column j of a rank-2 matrix as a rows×1 view.
func (m *Matrix[T]) ColView(j int) (*Matrix[T], error) {
	if err := m.requireRank("col view", 2); err != nil {
		return nil, err
	}
	return m.View(All(), Single(j))
}

func (m *Matrix[T]) requireRank(op string, rank int) error {
	if !m.IsValid() {
		return errInvalidUse(op)
	}
	if len(m.sizes) != rank {
		return errRank(op, rank, len(m.sizes))
	}
	return nil
}

// Transpose transposes a rank-2 matrix in place. A view is transposed by
// swapping elements and must be square; any other matrix is rebound to a
// freshly allocated transposed copy.
func (m *Matrix[T]) Transpose() error {
	if err := m.requireRank("transpose", 2); err != nil {
		return err
	}
	if m.IsView() {
		n := m.sizes[0]
		if m.sizes[1] != n {
			return fmt.Errorf("transpose: %w: cannot change the layout when transposing a matrix view", ErrLogic)
		}
		s0, s1 := m.strides[0], m.strides[1]
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				a := m.offset + i*s0 + j*s1
				b := m.offset + j*s0 + i*s1
				m.data[a], m.data[b] = m.data[b], m.data[a]
			}
		}
		return nil
	}

	t, err := m.Transposed()
	if err != nil {
		return err
	}
	m.take(t)
	return nil
}

// Transposed returns a transposed copy. A rank-1 vector of length n becomes
// an n×1 column.
func (m *Matrix[T]) Transposed() (*Matrix[T], error) {
	if !m.IsValid() {
		return nil, errInvalidUse("transposed")
	}
	switch len(m.sizes) {
	case 1:
		c, _ := m.Clone()
		c.sizes = []int{m.sizes[0], 1}
		c.strides = []int{1, 1}
		return c, nil
	case 2:
		rows, cols := m.sizes[0], m.sizes[1]
		res := newContinuous[T]([]int{cols, rows})
		res.format = m.format
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = m.data[m.offset+i*m.strides[0]+j*m.strides[1]]
			}
		}
		return res, nil
	}
	return nil, fmt.Errorf("transposed: %w: rank %d, want 1 or 2", ErrInvalidArgument, len(m.sizes))
}

// Reshape changes the sizes of a continuous matrix in place. The rank and
// the element count are preserved; the Buffer is untouched.
func (m *Matrix[T]) Reshape(sizes ...int) error {
	if !m.IsValid() {
		return errInvalidUse("reshape")
	}
	if !m.IsContinuous() {
		return errNotContinuous("reshape")
	}
	if len(sizes) != len(m.sizes) {
		return errRank("reshape", len(m.sizes), len(sizes))
	}
	shape := Shape(sizes)
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != m.Size() {
		return fmt.Errorf("reshape: %w: cannot reshape %d elements into %v", ErrInvalidArgument, m.Size(), sizes)
	}

	m.sizes = shape.Clone()
	m.strides = shape.ComputeStrides()
	m.recalcContinuous()
	return nil
}

// Reinterpret returns a view of a continuous matrix's memory as elements of
// type U with the given sizes. The byte size must match exactly and the base
// address must be aligned for U.
//
// This is unchecked type punning: U must be valid for every bit pattern the
// memory may hold, and must not contain pointers unless T does at the same
// positions.
//
// Example:
//
//	pairs, _ := tensor.FromSlice([]Pair{{1, 2}, {3, 4}}, 2)
//	ints, _ := tensor.Reinterpret[int](pairs, 2, 2) // [[1 2] [3 4]]
func Reinterpret[U, T any](m *Matrix[T], sizes ...int) (*Matrix[U], error) {
	if !m.IsValid() {
		return nil, errInvalidUse("reinterpret")
	}
	if !m.IsContinuous() {
		return nil, errNotContinuous("reinterpret")
	}
	shape := Shape(sizes)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("reinterpret: %w", err)
	}

	var t T
	var u U
	tSize, uSize := unsafe.Sizeof(t), unsafe.Sizeof(u)
	if uSize == 0 || tSize == 0 {
		return nil, fmt.Errorf("reinterpret: %w: zero-size element type", ErrInvalidArgument)
	}
	total := shape.NumElements()
	if uintptr(total)*uSize != uintptr(m.Size())*tSize {
		return nil, fmt.Errorf("reinterpret: %w: %d bytes cannot hold %v elements of %d bytes",
			ErrInvalidArgument, uintptr(m.Size())*tSize, sizes, uSize)
	}

	base := unsafe.Pointer(&m.data[m.offset])
	if uintptr(base)%unsafe.Alignof(u) != 0 {
		return nil, fmt.Errorf("reinterpret: %w: base address is not aligned for the target type", ErrInvalidArgument)
	}

	m.buf.Retain()
	v := &Matrix[U]{
		buf:     m.buf,
		data:    unsafe.Slice((*U)(base), total),
		sizes:   shape.Clone(),
		strides: shape.ComputeStrides(),
		flags:   FlagView,
	}
	v.recalcContinuous()
	return v, nil
}
