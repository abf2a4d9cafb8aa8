package tensor

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"
)

// Iterator is a random-access cursor over the elements of a Matrix in
// row-major order.
//
// Moving by k elements costs O(rank) regardless of k: the logical index of
// the last axis absorbs k modulo its size and the quotient, plus a ±1 carry
// on wraparound, moves on to the next axis.
//
// Iterators are values: a copy made by plain assignment is an independent
// cursor, since every move writes a fresh set of index counters.
type Iterator[T any] struct {
	data    []T
	base    int // offset of the first element
	ptr     int // offset of the current element
	sizes   []int
	strides []int
	idx     []int
	valid   bool
}

// Begin returns an iterator at the first element. For an invalid matrix the
// iterator is uninitialized and every access fails with ErrLogic.
func (m *Matrix[T]) Begin() Iterator[T] {
	if !m.IsValid() {
		return Iterator[T]{}
	}
	return Iterator[T]{
		data:    m.data,
		base:    m.offset,
		ptr:     m.offset,
		sizes:   m.sizes,
		strides: m.strides,
		idx:     make([]int, len(m.sizes)),
		valid:   true,
	}
}

// End returns the past-the-end iterator: index (size(0), 0, ..., 0).
func (m *Matrix[T]) End() Iterator[T] {
	it := m.Begin()
	if it.valid {
		it.idx[0] = m.sizes[0]
		it.ptr += m.sizes[0] * m.strides[0]
	}
	return it
}

// Values returns a range adapter over the elements in row-major order.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns a range adapter over (linear position, element) pairs in
// row-major order.
func (m *Matrix[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if !m.IsValid() {
			return
		}
		n := m.Size()
		if m.IsContinuous() {
			for i, v := range m.data[m.offset : m.offset+n] {
				if !yield(i, v) {
					return
				}
			}
			return
		}
		it := m.Begin()
		for i := range n {
			if !yield(i, it.data[it.ptr]) {
				return
			}
			it.move(1)
		}
	}
}

// move shifts the cursor by diff elements with carry propagation. It
// updates idx in place; callers that may share idx with a copy go through
// Advance.
func (it *Iterator[T]) move(diff int) {
	rank := len(it.sizes)
	if rank == 1 {
		it.ptr += diff * it.strides[0]
		it.idx[0] += diff
		return
	}

	for i := rank - 1; i > 0; i-- {
		size, step := it.sizes[i], it.strides[i]
		cur := diff % size
		carry := 0

		it.ptr -= step * it.idx[i]
		it.idx[i] += cur
		if it.idx[i] < 0 {
			it.idx[i] += size
			carry = -1
		}
		if it.idx[i] >= size {
			it.idx[i] -= size
			carry = 1
		}
		it.ptr += step * it.idx[i]

		diff = diff/size + carry
		if diff == 0 {
			return
		}
	}

	it.ptr += diff * it.strides[0]
	it.idx[0] += diff
}

// Valid reports whether the iterator was obtained from a valid matrix.
func (it Iterator[T]) Valid() bool {
	return it.valid
}

// Clone returns an independent copy of the iterator.
func (it Iterator[T]) Clone() Iterator[T] {
	it.idx = slices.Clone(it.idx)
	return it
}

// Advance moves the iterator by k elements (negative k moves backwards).
func (it *Iterator[T]) Advance(k int) error {
	if !it.valid {
		return fmt.Errorf("iterator advance: %w: uninitialized iterator", ErrLogic)
	}
	if k != 0 {
		it.idx = slices.Clone(it.idx)
		it.move(k)
	}
	return nil
}

// Next moves to the following element.
func (it *Iterator[T]) Next() error {
	return it.Advance(1)
}

// Prev moves to the preceding element.
func (it *Iterator[T]) Prev() error {
	return it.Advance(-1)
}

// Add returns a new iterator k elements ahead of it.
func (it Iterator[T]) Add(k int) (Iterator[T], error) {
	if !it.valid {
		return Iterator[T]{}, fmt.Errorf("iterator add: %w: uninitialized iterator", ErrLogic)
	}
	res := it.Clone()
	res.move(k)
	return res, nil
}

// Sub returns a new iterator k elements behind it.
func (it Iterator[T]) Sub(k int) (Iterator[T], error) {
	return it.Add(-k)
}

// compatible reports whether both iterators walk the same elements.
func (it Iterator[T]) compatible(other Iterator[T]) bool {
	return it.valid && other.valid &&
		it.base == other.base &&
		unsafe.SliceData(it.data) == unsafe.SliceData(other.data) &&
		slices.Equal(it.sizes, other.sizes) &&
		slices.Equal(it.strides, other.strides)
}

// Distance returns the linear number of elements from other to it.
func (it Iterator[T]) Distance(other Iterator[T]) (int, error) {
	if !it.compatible(other) {
		return 0, fmt.Errorf("iterator distance: %w: iterators are not compatible", ErrInvalidArgument)
	}
	dist, span := 0, 1
	for i := len(it.sizes) - 1; i >= 0; i-- {
		dist += (it.idx[i] - other.idx[i]) * span
		span *= it.sizes[i]
	}
	return dist, nil
}

// Compare returns -1, 0 or +1 as it is before, at or after other.
func (it Iterator[T]) Compare(other Iterator[T]) (int, error) {
	d, err := it.Distance(other)
	if err != nil {
		return 0, fmt.Errorf("iterator compare: %w", err)
	}
	switch {
	case d < 0:
		return -1, nil
	case d > 0:
		return 1, nil
	}
	return 0, nil
}

// Less reports whether it is before other.
func (it Iterator[T]) Less(other Iterator[T]) (bool, error) {
	c, err := it.Compare(other)
	return c < 0, err
}

// Equal reports whether it and other point at the same position.
func (it Iterator[T]) Equal(other Iterator[T]) (bool, error) {
	c, err := it.Compare(other)
	return c == 0, err
}

// check validates the cursor before dereference. Only axis 0 is bounds
// checked.
func (it Iterator[T]) check(op string) error {
	if !it.valid {
		return fmt.Errorf("%s: %w: uninitialized iterator", op, ErrLogic)
	}
	if it.idx[0] < 0 || it.idx[0] >= it.sizes[0] {
		return errOutOfRange(op, it.idx[0], it.sizes[0])
	}
	return nil
}

// Value returns the current element.
func (it Iterator[T]) Value() (T, error) {
	if err := it.check("iterator value"); err != nil {
		var zero T
		return zero, err
	}
	return it.data[it.ptr], nil
}

// Ptr returns a pointer to the current element.
func (it Iterator[T]) Ptr() (*T, error) {
	if err := it.check("iterator pointer"); err != nil {
		return nil, err
	}
	return &it.data[it.ptr], nil
}

// Set stores v at the current element.
func (it Iterator[T]) Set(v T) error {
	if err := it.check("iterator set"); err != nil {
		return err
	}
	it.data[it.ptr] = v
	return nil
}

// At returns the element k positions from it without moving it.
func (it Iterator[T]) At(k int) (T, error) {
	if !it.valid {
		var zero T
		return zero, fmt.Errorf("iterator at: %w: uninitialized iterator", ErrLogic)
	}
	tmp := it.Clone()
	tmp.move(k)
	return tmp.Value()
}

// Index returns a copy of the per-axis logical index.
func (it Iterator[T]) Index() []int {
	return slices.Clone(it.idx)
}

// Offset returns the element offset of the cursor within the Buffer window.
func (it Iterator[T]) Offset() int {
	return it.ptr
}
