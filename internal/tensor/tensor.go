package tensor

import (
	"fmt"
	"slices"
	"strings"
)

// Flag describes the memory layout of a Matrix.
type Flag uint32

// Layout flags.
const (
	// FlagContinuous marks a gap-free row-major packing of the shape.
	FlagContinuous Flag = 1 << iota
	// FlagView marks a handle derived from another matrix's Buffer.
	FlagView
)

// String returns the set flags joined by '|'.
func (f Flag) String() string {
	var parts []string
	if f&FlagContinuous != 0 {
		parts = append(parts, "CONTINUOUS")
	}
	if f&FlagView != 0 {
		parts = append(parts, "VIEW")
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

// Matrix is a strided N-dimensional array handle.
//
// The zero value is an invalid matrix: it has no Buffer and every operation
// except the queries, Assign, Create, Reset and Release fails with ErrLogic.
//
// Handles are not safe for concurrent mutation. Several handles may read
// the same Buffer concurrently; writers must be serialised by the caller.
type Matrix[T any] struct {
	buf     Buffer
	data    []T // typed window onto buf
	offset  int // base element within data
	sizes   []int
	strides []int
	flags   Flag
	format  *Formatter[T]
}

// newContinuous allocates a zeroed continuous matrix. sizes must be valid.
func newContinuous[T any](sizes []int) *Matrix[T] {
	shape := Shape(sizes).Clone()
	s := newStorage[T](shape.NumElements())
	return &Matrix[T]{
		buf:     s,
		data:    s.data,
		sizes:   shape,
		strides: shape.ComputeStrides(),
		flags:   FlagContinuous,
	}
}

// wrap builds an owning continuous matrix over s. sizes must be valid.
func wrap[T any](s *storage[T], sizes []int) *Matrix[T] {
	shape := Shape(sizes).Clone()
	return &Matrix[T]{
		buf:     s,
		data:    s.data,
		sizes:   shape,
		strides: shape.ComputeStrides(),
		flags:   FlagContinuous,
	}
}

// derive returns a view onto m's Buffer with its own shape and strides.
// The slices are taken over by the view.
func (m *Matrix[T]) derive(offset int, sizes, strides []int) *Matrix[T] {
	m.buf.Retain()
	v := &Matrix[T]{
		buf:     m.buf,
		data:    m.data,
		offset:  offset,
		sizes:   sizes,
		strides: strides,
		flags:   FlagView,
		format:  m.format,
	}
	v.recalcContinuous()
	return v
}

func (m *Matrix[T]) recalcContinuous() {
	if isContinuous(m.sizes, m.strides) {
		m.flags |= FlagContinuous
	} else {
		m.flags &^= FlagContinuous
	}
}

// IsValid reports whether m refers to a Buffer.
func (m *Matrix[T]) IsValid() bool {
	return m != nil && m.buf != nil
}

// IsContinuous reports whether m is packed row-major without gaps.
func (m *Matrix[T]) IsContinuous() bool {
	return m.IsValid() && m.flags&FlagContinuous != 0
}

// IsView reports whether m was derived from another matrix.
func (m *Matrix[T]) IsView() bool {
	return m.IsValid() && m.flags&FlagView != 0
}

// Flags returns the layout flags.
func (m *Matrix[T]) Flags() Flag {
	if !m.IsValid() {
		return 0
	}
	return m.flags
}

// Dims returns the rank, or 0 for an invalid matrix.
func (m *Matrix[T]) Dims() int {
	if !m.IsValid() {
		return 0
	}
	return len(m.sizes)
}

// Size returns the total number of elements, or 0 for an invalid matrix.
func (m *Matrix[T]) Size() int {
	if !m.IsValid() {
		return 0
	}
	if m.flags&FlagContinuous != 0 {
		return m.strides[0] * m.sizes[0]
	}
	return Shape(m.sizes).NumElements()
}

// Dim returns the size of axis, or 0 when axis is outside [0, Dims()).
func (m *Matrix[T]) Dim(axis int) int {
	if axis < 0 || axis >= m.Dims() {
		return 0
	}
	return m.sizes[axis]
}

// Step returns the stride of axis, or 0 when axis is outside [0, Dims()).
func (m *Matrix[T]) Step(axis int) int {
	if axis < 0 || axis >= m.Dims() {
		return 0
	}
	return m.strides[axis]
}

// Shape returns a copy of the sizes.
func (m *Matrix[T]) Shape() Shape {
	if !m.IsValid() {
		return nil
	}
	return Shape(m.sizes).Clone()
}

// Strides returns a copy of the strides.
func (m *Matrix[T]) Strides() []int {
	if !m.IsValid() {
		return nil
	}
	return slices.Clone(m.strides)
}

// Rows returns the size of axis 0 of a rank-2 matrix, 0 otherwise.
func (m *Matrix[T]) Rows() int {
	if m.Dims() != 2 {
		return 0
	}
	return m.sizes[0]
}

// Cols returns the size of axis 1 of a rank-2 matrix, 0 otherwise.
func (m *Matrix[T]) Cols() int {
	if m.Dims() != 2 {
		return 0
	}
	return m.sizes[1]
}

// Buffer returns the shared Buffer, or nil for an invalid matrix.
func (m *Matrix[T]) Buffer() Buffer {
	if !m.IsValid() {
		return nil
	}
	return m.buf
}

// Offset returns the element offset of the first element within the Buffer's
// typed window.
func (m *Matrix[T]) Offset() int {
	return m.offset
}

// Create discards the current contents and allocates a new zeroed Buffer of
// the given sizes. A valid matrix keeps its rank.
func (m *Matrix[T]) Create(sizes ...int) error {
	if m.IsValid() && len(sizes) != len(m.sizes) {
		return errRank("create", len(m.sizes), len(sizes))
	}
	if err := Shape(sizes).Validate(); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	m.take(newContinuous[T](sizes))
	return nil
}

// Assign makes m alias src's Buffer. The result is marked as a view.
// Assigning an invalid matrix resets m.
func (m *Matrix[T]) Assign(src *Matrix[T]) {
	if m == src {
		return
	}
	if !src.IsValid() {
		m.Reset()
		return
	}
	src.buf.Retain()
	m.Reset()
	m.buf = src.buf
	m.data = src.data
	m.offset = src.offset
	m.sizes = slices.Clone(src.sizes)
	m.strides = slices.Clone(src.strides)
	m.flags = src.flags | FlagView
	m.format = src.format
}

// Share returns a new handle aliasing m's Buffer, marked as a view.
func (m *Matrix[T]) Share() (*Matrix[T], error) {
	if !m.IsValid() {
		return nil, errInvalidUse("share")
	}
	v := m.derive(m.offset, slices.Clone(m.sizes), slices.Clone(m.strides))
	return v, nil
}

// take moves src into m, leaving src invalid. m's old reference is dropped.
func (m *Matrix[T]) take(src *Matrix[T]) {
	if m == src {
		return
	}
	format := m.format
	m.Reset()
	*m = *src
	if m.format == nil {
		m.format = format
	}
	*src = Matrix[T]{}
}

// Reset drops m's Buffer reference and makes m invalid.
func (m *Matrix[T]) Reset() {
	if m == nil {
		return
	}
	if m.buf != nil {
		m.buf.Release()
	}
	*m = Matrix[T]{format: m.format}
}

// Release is Reset.
func (m *Matrix[T]) Release() {
	m.Reset()
}

// Clone returns a deep, continuous copy of m that shares nothing with it.
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	if !m.IsValid() {
		return nil, errInvalidUse("clone")
	}
	res := newContinuous[T](m.sizes)
	m.copyOut(res.data)
	res.format = m.format
	return res, nil
}

// copyOut writes m's elements in row-major order into dst.
func (m *Matrix[T]) copyOut(dst []T) {
	if m.IsContinuous() {
		copy(dst, m.data[m.offset:m.offset+len(dst)])
		return
	}
	it := m.Begin()
	for i := range dst {
		dst[i] = it.data[it.ptr]
		it.move(1)
	}
}

// copyIn writes src, in row-major order, into m's elements.
func (m *Matrix[T]) copyIn(src []T) {
	if m.IsContinuous() {
		copy(m.data[m.offset:m.offset+len(src)], src)
		return
	}
	it := m.Begin()
	for _, v := range src {
		it.data[it.ptr] = v
		it.move(1)
	}
}

// sharesBuffer reports whether a and b reference the same Buffer.
func sharesBuffer[A, B any](a *Matrix[A], b *Matrix[B]) bool {
	return a.buf != nil && a.buf == b.buf
}

// sameRegion reports whether a and b describe exactly the same elements.
func sameRegion[T any](a, b *Matrix[T]) bool {
	return sharesBuffer(a, b) &&
		a.offset == b.offset &&
		slices.Equal(a.sizes, b.sizes) &&
		slices.Equal(a.strides, b.strides)
}

// CopyFrom copies src's elements into m in place. Shapes must match.
// Overlapping regions of the same Buffer are handled by staging src first.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if !m.IsValid() || !src.IsValid() {
		return errInvalidUse("copy")
	}
	if !slices.Equal(m.sizes, src.sizes) {
		return errShapeMismatch("copy", m.sizes, src.sizes)
	}
	if sameRegion(m, src) {
		return nil
	}
	if !sharesBuffer(m, src) {
		switch {
		case m.IsContinuous():
			src.copyOut(m.data[m.offset : m.offset+m.Size()])
			return nil
		case src.IsContinuous():
			m.copyIn(src.data[src.offset : src.offset+src.Size()])
			return nil
		}
	}
	staged := make([]T, src.Size())
	src.copyOut(staged)
	m.copyIn(staged)
	return nil
}

// Fill sets every element of m to v.
func (m *Matrix[T]) Fill(v T) error {
	if !m.IsValid() {
		return errInvalidUse("fill")
	}
	if m.IsContinuous() {
		raw := m.data[m.offset : m.offset+m.Size()]
		for i := range raw {
			raw[i] = v
		}
		return nil
	}
	it := m.Begin()
	for range m.Size() {
		it.data[it.ptr] = v
		it.move(1)
	}
	return nil
}

// SetFormatter sets the formatter used by String. Nil restores the default.
func (m *Matrix[T]) SetFormatter(f *Formatter[T]) {
	m.format = f
}
