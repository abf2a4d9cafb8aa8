package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Buffer is a reference-counted, type-erased owner of one contiguous run of
// elements. Every Matrix derived from the same allocation holds the same
// Buffer; the element slice is dropped when the last holder releases it.
//
// The element count never changes after construction.
type Buffer interface {
	// Clone deep copies the elements into a new Buffer with one reference.
	Clone() Buffer
	// Pointer returns the address of the first element, or nil once released.
	Pointer() unsafe.Pointer
	// Len returns the number of elements.
	Len() int
	// ElemSize returns the size in bytes of one element.
	ElemSize() uintptr
	// Retain adds a reference. It is a no-op on a released buffer.
	Retain()
	// Release drops a reference. The last release drops the elements;
	// further releases are no-ops.
	Release()
	// Refs returns the current reference count.
	Refs() int
}

// storage is the Buffer implementation for element type T.
type storage[T any] struct {
	data     []T
	size     int
	refCount atomic.Int32
	external bool       // aliases caller memory
	mu       sync.Mutex // guards data on the final release
}

// newStorage allocates n zero-valued elements with one reference.
func newStorage[T any](n int) *storage[T] {
	return newStorageOver(make([]T, n), false)
}

// newStorageFill allocates n elements, each set to v.
func newStorageFill[T any](n int, v T) *storage[T] {
	s := newStorage[T](n)
	for i := range s.data {
		s.data[i] = v
	}
	return s
}

// newStorageFrom copies src into a new allocation.
func newStorageFrom[T any](src []T) (*storage[T], error) {
	if src == nil {
		return nil, fmt.Errorf("allocate: %w: null source", ErrInvalidArgument)
	}
	data := make([]T, len(src))
	copy(data, src)
	return newStorageOver(data, false), nil
}

// bindStorage wraps caller memory without copying. The caller keeps the
// memory alive for as long as any Matrix references it.
func bindStorage[T any](src []T) (*storage[T], error) {
	if src == nil {
		return nil, fmt.Errorf("bind: %w: null source", ErrInvalidArgument)
	}
	return newStorageOver(src, true), nil
}

func newStorageOver[T any](data []T, external bool) *storage[T] {
	s := &storage[T]{data: data, size: len(data), external: external}
	s.refCount.Store(1)
	return s
}

func (s *storage[T]) Clone() Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := make([]T, len(s.data))
	copy(data, s.data)
	return newStorageOver(data, false)
}

func (s *storage[T]) Pointer() unsafe.Pointer {
	if len(s.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s.data))
}

func (s *storage[T]) Len() int {
	return s.size
}

func (s *storage[T]) ElemSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func (s *storage[T]) Retain() {
	for {
		n := s.refCount.Load()
		if n <= 0 {
			return
		}
		if s.refCount.CompareAndSwap(n, n+1) {
			return
		}
	}
}

func (s *storage[T]) Release() {
	for {
		n := s.refCount.Load()
		if n <= 0 {
			return
		}
		if s.refCount.CompareAndSwap(n, n-1) {
			if n == 1 {
				s.mu.Lock()
				s.data = nil
				s.mu.Unlock()
			}
			return
		}
	}
}

func (s *storage[T]) Refs() int {
	return int(s.refCount.Load())
}

// NewBuffer allocates a Buffer of n zero-valued elements of type T.
func NewBuffer[T any](n int) (Buffer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("allocate: %w: element count %d (must be > 0)", ErrInvalidArgument, n)
	}
	return newStorage[T](n), nil
}

// viewOf returns a typed slice over the whole Buffer. The element type U
// need not match the Buffer's own type; the caller guarantees the layout.
func viewOf[U any](buf Buffer) []U {
	p := buf.Pointer()
	if p == nil {
		return nil
	}
	var zero U
	n := int(uintptr(buf.Len()) * buf.ElemSize() / unsafe.Sizeof(zero))
	return unsafe.Slice((*U)(p), n)
}
