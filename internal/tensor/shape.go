package tensor

import "fmt"

// Shape represents the per-axis sizes of a matrix.
type Shape []int

// NumElements returns the product of the sizes.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one axis and every size is > 0.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: shape has no axes", ErrInvalidArgument)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: invalid dimension at index %d: %d (must be > 0)", ErrInvalidArgument, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape:
// the last axis has stride 1 and stride[i] = size[i+1] * stride[i+1].
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// isContinuous reports whether strides describe a gap-free row-major packing
// of sizes.
func isContinuous(sizes, strides []int) bool {
	n := len(sizes)
	if n == 0 || strides[n-1] != 1 {
		return false
	}
	for i := n - 1; i > 0; i-- {
		if sizes[i]*strides[i] != strides[i-1] {
			return false
		}
	}
	return true
}
