package tensor

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	// ErrInvalidArgument reports shape, rank or size mismatches, zero-size
	// construction, bad range bounds and null sources.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange reports an index or range endpoint outside the axis.
	ErrOutOfRange = errors.New("out of range")
	// ErrLogic reports an operation that is invalid for the current state of
	// the matrix or iterator.
	ErrLogic = errors.New("logic error")
)

// IndexError describes an index outside [0, Limit). It matches ErrOutOfRange.
type IndexError struct {
	Op    string // Operation that rejected the index
	Index int    // Index after negative wraparound
	Limit int    // Axis size
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d exceed the size %d", e.Op, e.Index, e.Limit)
}

// Unwrap returns ErrOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

func errOutOfRange(op string, index, limit int) error {
	return &IndexError{Op: op, Index: index, Limit: limit}
}

func errInvalidUse(op string) error {
	return fmt.Errorf("%s: %w: using an uninitialized matrix", op, ErrLogic)
}

func errShapeMismatch(op string, a, b []int) error {
	return fmt.Errorf("%s: %w: shape mismatch %v vs %v", op, ErrInvalidArgument, a, b)
}

func errRank(op string, want, got int) error {
	return fmt.Errorf("%s: %w: dimension mismatch: dim = %d, provided %d", op, ErrInvalidArgument, want, got)
}

func errNotContinuous(op string) error {
	return fmt.Errorf("%s: %w: matrix is not continuous", op, ErrLogic)
}

// Must returns v or panics with err. Intended for tests and examples.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
