// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Buffer is the reference-counted, type-erased storage shared by every
// Matrix derived from one allocation.
//
// Most users never touch a Buffer directly; it is exposed for zero-copy
// interop through NewBuffer and FromBuffer.
//
// Example:
//
//	buf, _ := tensor.NewBuffer[float32](12)
//	a, _ := tensor.FromBuffer[float32](buf, 0, 3, 4)
//	b, _ := tensor.FromBuffer[float32](buf, 4, 4) // row 1 of a
type Buffer = tensor.Buffer

// NewBuffer allocates a Buffer of n zero-valued elements.
func NewBuffer[T any](n int) (Buffer, error) {
	return tensor.NewBuffer[T](n)
}

// FromBuffer creates a view of buf starting at element offset.
func FromBuffer[T any](buf Buffer, offset int, sizes ...int) (*Matrix[T], error) {
	return tensor.FromBuffer[T](buf, offset, sizes...)
}

// Bind creates a matrix over caller memory, copying it when clone is set.
func Bind[T any](data []T, clone bool, sizes ...int) (*Matrix[T], error) {
	return tensor.Bind(data, clone, sizes...)
}

// FromPointer creates a matrix aliasing caller memory starting at p.
func FromPointer[T any](p *T, sizes ...int) (*Matrix[T], error) {
	return tensor.FromPointer(p, sizes...)
}

// Reinterpret views a continuous matrix's memory as elements of type U.
func Reinterpret[U, T any](m *Matrix[T], sizes ...int) (*Matrix[U], error) {
	return tensor.Reinterpret[U](m, sizes...)
}
