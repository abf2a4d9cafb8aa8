package tensor

import (
	"fmt"
	"math"
	"math/rand/v2"
	"reflect"
	"unsafe"
)

// New creates a continuous matrix of the given sizes with zero-valued
// elements. Every size must be > 0.
//
// Example:
//
//	m, _ := tensor.New[float64](2, 3, 4) // Size() == 24, Step(0) == 12
func New[T any](sizes ...int) (*Matrix[T], error) {
	if err := Shape(sizes).Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	return newContinuous[T](sizes), nil
}

// Full creates a matrix with every element set to value.
//
// Example:
//
//	m, _ := tensor.Full("ab", 2, 2)
func Full[T any](value T, sizes ...int) (*Matrix[T], error) {
	if err := Shape(sizes).Validate(); err != nil {
		return nil, fmt.Errorf("full: %w", err)
	}
	return wrap(newStorageFill(Shape(sizes).NumElements(), value), sizes), nil
}

// Zeros creates a matrix filled with zeros.
func Zeros[T Number](sizes ...int) (*Matrix[T], error) {
	return Full(T(0), sizes...)
}

// Ones creates a matrix filled with ones.
func Ones[T Number](sizes ...int) (*Matrix[T], error) {
	return Full(T(1), sizes...)
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	id, _ := tensor.Eye[float32](3)
func Eye[T Number](n int) (*Matrix[T], error) {
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("eye: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*(n+1)] = 1
	}
	return m, nil
}

// Arange creates a rank-1 matrix with values start, start+step, ... up to
// but excluding stop.
//
// Example:
//
//	m, _ := tensor.Arange(0, 10, 2) // [0 2 4 6 8]
func Arange[T Real](start, stop, step T) (*Matrix[T], error) {
	if step == 0 {
		return nil, fmt.Errorf("arange: %w: zero step", ErrInvalidArgument)
	}
	n := int(math.Ceil((float64(stop) - float64(start)) / float64(step)))
	if n <= 0 {
		return nil, fmt.Errorf("arange: %w: empty range [%v, %v) with step %v", ErrInvalidArgument, start, stop, step)
	}
	m := newContinuous[T]([]int{n})
	v := start
	for i := range m.data {
		m.data[i] = v
		v += step
	}
	return m, nil
}

// Random creates a matrix whose elements are drawn from dist using rng.
// A nil rng uses a randomly seeded PCG source.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	m, _ := tensor.Random(rng, tensor.Uniform(-1.0, 1.0), 4, 4)
func Random[T any](rng *rand.Rand, dist func(*rand.Rand) T, sizes ...int) (*Matrix[T], error) {
	if dist == nil {
		return nil, fmt.Errorf("random: %w: nil distribution", ErrInvalidArgument)
	}
	if err := Shape(sizes).Validate(); err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // G404: statistical use
	}
	m := newContinuous[T](sizes)
	for i := range m.data {
		m.data[i] = dist(rng)
	}
	return m, nil
}

// Uniform returns a distribution over [lo, hi).
func Uniform[T Float](lo, hi T) func(*rand.Rand) T {
	return func(r *rand.Rand) T {
		return lo + T(r.Float64())*(hi-lo)
	}
}

// Normal returns a normal distribution with the given mean and deviation.
func Normal[T Float](mean, stddev T) func(*rand.Rand) T {
	return func(r *rand.Rand) T {
		return mean + T(r.NormFloat64())*stddev
	}
}

// UniformInt returns a distribution over the integers in [lo, hi].
func UniformInt[T Integer](lo, hi T) func(*rand.Rand) T {
	span := uint64(hi-lo) + 1
	return func(r *rand.Rand) T {
		if span == 0 {
			return T(r.Uint64())
		}
		return lo + T(r.Uint64N(span))
	}
}

// FromSlice creates a matrix holding a copy of data. Without sizes the
// result is rank 1; otherwise the element count must match len(data).
func FromSlice[T any](data []T, sizes ...int) (*Matrix[T], error) {
	if len(sizes) == 0 {
		sizes = []int{len(data)}
	}
	if err := Shape(sizes).Validate(); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if n := Shape(sizes).NumElements(); n != len(data) {
		return nil, fmt.Errorf("from slice: %w: %d elements for shape %v", ErrInvalidArgument, len(data), sizes)
	}
	s, err := newStorageFrom(data)
	if err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	return wrap(s, sizes), nil
}

// Bind creates a matrix over caller memory. With clone the elements are
// copied; otherwise the matrix aliases data, and the caller must keep it
// alive and unshared for as long as any handle refers to it.
func Bind[T any](data []T, clone bool, sizes ...int) (*Matrix[T], error) {
	if data == nil {
		return nil, fmt.Errorf("bind: %w: null source", ErrInvalidArgument)
	}
	shape := Shape(sizes)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("bind: %w", err)
	}
	n := shape.NumElements()
	if len(data) < n {
		return nil, fmt.Errorf("bind: %w: %d elements for shape %v", ErrInvalidArgument, len(data), sizes)
	}

	var (
		s   *storage[T]
		err error
	)
	if clone {
		s, err = newStorageFrom(data[:n])
	} else {
		s, err = bindStorage(data[:n:n])
	}
	if err != nil {
		return nil, fmt.Errorf("bind: %w", err)
	}
	return wrap(s, sizes), nil
}

// FromPointer creates a matrix aliasing prod(sizes) elements starting at p.
// Nothing about the memory is checked; the caller owns it and must keep it
// valid for the lifetime of every handle.
func FromPointer[T any](p *T, sizes ...int) (*Matrix[T], error) {
	if p == nil {
		return nil, fmt.Errorf("from pointer: %w: null source", ErrInvalidArgument)
	}
	shape := Shape(sizes)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("from pointer: %w", err)
	}
	return Bind(unsafe.Slice(p, shape.NumElements()), false, sizes...)
}

// FromBuffer creates a view of sizes elements of buf starting at offset.
// The Buffer's element size must match T.
func FromBuffer[T any](buf Buffer, offset int, sizes ...int) (*Matrix[T], error) {
	if buf == nil || buf.Pointer() == nil {
		return nil, fmt.Errorf("from buffer: %w: null buffer", ErrInvalidArgument)
	}
	var zero T
	if buf.ElemSize() != unsafe.Sizeof(zero) {
		return nil, fmt.Errorf("from buffer: %w: element size %d, want %d",
			ErrInvalidArgument, buf.ElemSize(), unsafe.Sizeof(zero))
	}
	shape := Shape(sizes)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("from buffer: %w", err)
	}
	if offset < 0 || offset+shape.NumElements() > buf.Len() {
		return nil, fmt.Errorf("from buffer: %w: elements [%d, %d) outside buffer of %d",
			ErrOutOfRange, offset, offset+shape.NumElements(), buf.Len())
	}

	buf.Retain()
	return &Matrix[T]{
		buf:     buf,
		data:    viewOf[T](buf),
		offset:  offset,
		sizes:   shape.Clone(),
		strides: shape.ComputeStrides(),
		flags:   FlagView | FlagContinuous,
	}, nil
}

// FromNested creates a matrix from nested slices or arrays of T. The rank
// is the nesting depth and each size is the longest run at that depth;
// shorter rows leave their trailing elements zero.
//
// Example:
//
//	m, _ := tensor.FromNested[int]([][]int{{1, 1, 4}, {5, 1, 4}}) // 2×3
func FromNested[T any](v any) (*Matrix[T], error) {
	elem := reflect.TypeFor[T]()
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("from nested: %w: nil literal", ErrInvalidArgument)
	}

	rank := 0
	for t := rv.Type(); t != elem; t = t.Elem() {
		if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
			return nil, fmt.Errorf("from nested: %w: %s is not a nested sequence of %s", ErrInvalidArgument, rv.Type(), elem)
		}
		rank++
	}
	if rank == 0 {
		return nil, fmt.Errorf("from nested: %w: %s is a scalar", ErrInvalidArgument, rv.Type())
	}

	sizes := make([]int, rank)
	measureNested(rv, 0, sizes)
	if err := Shape(sizes).Validate(); err != nil {
		return nil, fmt.Errorf("from nested: %w", err)
	}

	m := newContinuous[T](sizes)
	fillNested(rv, 0, m.data, m.strides)
	return m, nil
}

func measureNested(v reflect.Value, depth int, sizes []int) {
	if depth == len(sizes) {
		return
	}
	sizes[depth] = max(sizes[depth], v.Len())
	for i := range v.Len() {
		measureNested(v.Index(i), depth+1, sizes)
	}
}

func fillNested[T any](v reflect.Value, depth int, dst []T, strides []int) {
	if depth == len(strides)-1 {
		if row, ok := v.Interface().([]T); ok {
			copy(dst, row)
			return
		}
		for i := range v.Len() {
			if e, ok := v.Index(i).Interface().(T); ok {
				dst[i] = e
			}
		}
		return
	}
	for i := range v.Len() {
		fillNested(v.Index(i), depth+1, dst[i*strides[depth]:], strides)
	}
}
