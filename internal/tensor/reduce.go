package tensor

import (
	"cmp"
	"slices"
	"sort"

	"github.com/born-ml/ndarray/internal/backend/cpu"
)

// Fold combines every element into acc, starting from seed, in row-major
// order.
func Fold[T, R any](m *Matrix[T], seed R, f func(acc R, v T) R) (R, error) {
	if !m.IsValid() {
		return seed, errInvalidUse("fold")
	}
	acc := seed
	for _, v := range m.All() {
		acc = f(acc, v)
	}
	return acc, nil
}

// Reduce folds the elements after the first into the first.
func Reduce[T any](m *Matrix[T], f func(acc, v T) T) (T, error) {
	if !m.IsValid() {
		var zero T
		return zero, errInvalidUse("reduce")
	}
	var acc T
	for i, v := range m.All() {
		if i == 0 {
			acc = v
			continue
		}
		acc = f(acc, v)
	}
	return acc, nil
}

// Sum returns the sum of the elements. Strings concatenate.
func Sum[T Addable](m *Matrix[T]) (T, error) {
	if m.IsContinuous() {
		return cpu.Sum(m.raw()), nil
	}
	var zero T
	return Fold(m, zero, func(acc, v T) T { return acc + v })
}

// Max returns the largest element.
func Max[T cmp.Ordered](m *Matrix[T]) (T, error) {
	if m.IsContinuous() {
		return cpu.Max(m.raw()), nil
	}
	return Reduce(m, func(acc, v T) T {
		if acc < v {
			return v
		}
		return acc
	})
}

// Min returns the smallest element.
func Min[T cmp.Ordered](m *Matrix[T]) (T, error) {
	if m.IsContinuous() {
		return cpu.Min(m.raw()), nil
	}
	return Reduce(m, func(acc, v T) T {
		if v < acc {
			return v
		}
		return acc
	})
}

// Mean returns the arithmetic mean as float64.
func Mean[T Real](m *Matrix[T]) (float64, error) {
	sum, err := Fold(m, 0.0, func(acc float64, v T) float64 { return acc + float64(v) })
	if err != nil {
		return 0, err
	}
	return sum / float64(m.Size()), nil
}

// CountIf returns the number of elements satisfying cond.
func CountIf[T any](m *Matrix[T], cond func(T) bool) (int, error) {
	if m.IsContinuous() {
		return cpu.CountIf(m.raw(), cond), nil
	}
	return Fold(m, 0, func(n int, v T) int {
		if cond(v) {
			return n + 1
		}
		return n
	})
}

// Count returns the number of elements equal to v.
func Count[T comparable](m *Matrix[T], v T) (int, error) {
	return CountIf(m, func(x T) bool { return x == v })
}

// CountNonzero returns the number of elements different from the zero value.
func CountNonzero[T comparable](m *Matrix[T]) (int, error) {
	return CountIf(m, func(x T) bool { return !isZero(x) })
}

// Sort sorts the elements of m in place in row-major order. Strided
// matrices are sorted through their logical positions, so a view sorts
// only the elements it covers.
func Sort[T cmp.Ordered](m *Matrix[T]) error {
	return SortFunc(m, cmp.Compare[T])
}

// SortFunc is Sort with a caller supplied ordering.
func SortFunc[T any](m *Matrix[T], compare func(a, b T) int) error {
	if !m.IsValid() {
		return errInvalidUse("sort")
	}
	if m.IsContinuous() {
		slices.SortFunc(m.raw(), compare)
		return nil
	}
	sort.Sort(&stridedSorter[T]{m: m, compare: compare})
	return nil
}

// stridedSorter adapts a strided matrix to sort.Interface by linear
// position.
type stridedSorter[T any] struct {
	m       *Matrix[T]
	compare func(a, b T) int
}

func (s *stridedSorter[T]) Len() int { return s.m.Size() }

func (s *stridedSorter[T]) Less(i, j int) bool {
	return s.compare(s.m.data[s.m.linearOffset(i)], s.m.data[s.m.linearOffset(j)]) < 0
}

func (s *stridedSorter[T]) Swap(i, j int) {
	a, b := s.m.linearOffset(i), s.m.linearOffset(j)
	s.m.data[a], s.m.data[b] = s.m.data[b], s.m.data[a]
}

// linearOffset maps a row-major position to its element offset.
func (m *Matrix[T]) linearOffset(pos int) int {
	off := m.offset
	for i := len(m.sizes) - 1; i >= 0; i-- {
		off += (pos % m.sizes[i]) * m.strides[i]
		pos /= m.sizes[i]
	}
	return off
}
