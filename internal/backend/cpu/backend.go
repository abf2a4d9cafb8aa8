// Package cpu implements the raw CPU kernels behind the strided array engine.
//
// Kernels operate on flat slices plus leading dimensions and know nothing about
// shapes, views or buffers; the tensor package resolves those before calling in.
package cpu

// Integer is the set of Go integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of Go floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of Go complex element types.
type Complex interface {
	~complex64 | ~complex128
}

// Real is the set of element types with a total order and arithmetic.
type Real interface {
	Integer | Float
}

// Number is the set of element types supporting + - * /.
type Number interface {
	Integer | Float | Complex
}

// Addable is Number plus strings, which only support +.
type Addable interface {
	Number | ~string
}

// Name returns the backend name.
func Name() string {
	return "CPU"
}
