// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/born-ml/ndarray/tensor"
)

// TestPublicAPI exercises the facade end to end.
func TestPublicAPI(t *testing.T) {
	m, err := tensor.Arange(0, 24, 1)
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}
	if err := m.Reshape(24); err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}

	cube, err := tensor.Reinterpret[int](m, 2, 3, 4)
	if err != nil {
		t.Fatalf("Reinterpret failed: %v", err)
	}
	if !cube.IsView() || !cube.IsContinuous() {
		t.Errorf("Flags() = %v, want CONTINUOUS|VIEW", cube.Flags())
	}

	v, err := cube.View(tensor.All(), tensor.Single(1), tensor.From(0))
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if !v.Shape().Equal(tensor.Shape{2, 1, 4}) {
		t.Errorf("Shape() = %v, want [2 1 4]", v.Shape())
	}

	sum, err := tensor.Sum(v)
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if want := (4 + 5 + 6 + 7) + (16 + 17 + 18 + 19); sum != want {
		t.Errorf("Sum() = %d, want %d", sum, want)
	}
}

// TestErrorKinds verifies the exported sentinels match internal errors.
func TestErrorKinds(t *testing.T) {
	m := tensor.Must(tensor.New[float64](2, 2))

	_, err := m.At(2, 0)
	if !errors.Is(err, tensor.ErrOutOfRange) {
		t.Errorf("At(2, 0) error = %v, want ErrOutOfRange", err)
	}
	var ie *tensor.IndexError
	if !errors.As(err, &ie) || ie.Limit != 2 {
		t.Errorf("At(2, 0) error = %#v, want *IndexError with Limit 2", err)
	}

	if _, err := tensor.New[int](0); !errors.Is(err, tensor.ErrInvalidArgument) {
		t.Errorf("New(0) error = %v, want ErrInvalidArgument", err)
	}

	var invalid tensor.Matrix[int]
	if _, err := invalid.Clone(); !errors.Is(err, tensor.ErrLogic) {
		t.Errorf("Clone() error = %v, want ErrLogic", err)
	}
}

// TestBufferInterop shares one Buffer between two matrices.
func TestBufferInterop(t *testing.T) {
	buf, err := tensor.NewBuffer[float32](12)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	a := tensor.Must(tensor.FromBuffer[float32](buf, 0, 3, 4))
	row := tensor.Must(tensor.FromBuffer[float32](buf, 4, 4))

	if err := row.Fill(2); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	got, _ := a.At(1, 3)
	if got != 2 {
		t.Errorf("At(1, 3) = %v, want 2", got)
	}
	if refs := buf.Refs(); refs != 3 {
		t.Errorf("Refs() = %d, want 3", refs)
	}

	row.Release()
	a.Release()
	if refs := buf.Refs(); refs != 1 {
		t.Errorf("Refs() after release = %d, want 1", refs)
	}
}

func ExampleMatMul() {
	a := tensor.Must(tensor.FromNested[int]([][]int{{1, 1, 4}, {5, 1, 4}}))
	b := tensor.Must(tensor.FromNested[int]([][]int{{1, 2}, {3, 4}, {5, 6}}))

	c, err := tensor.MatMul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output: [[24, 30], [28, 38]]
}

func ExampleMatrix_View() {
	m := tensor.Must(tensor.Arange(0, 24, 1))
	cube := tensor.Must(tensor.Reinterpret[int](m, 2, 3, 4))

	v := tensor.Must(cube.View(tensor.All(), tensor.Single(1)))
	_ = v.Fill(-1)

	fmt.Println(v.Shape())
	fmt.Println(cube)
	// Output:
	// [2 1 4]
	// [[[0, 1, 2, 3], [-1, -1, -1, -1], [8, 9, 10, 11]], [[12, 13, 14, 15], [-1, -1, -1, -1], [20, 21, 22, 23]]]
}

func ExampleAdd() {
	a := tensor.Must(tensor.FromSlice([]string{"foo", "bar"}))
	b := tensor.Must(tensor.FromSlice([]string{"1", "2"}))

	fmt.Println(tensor.Must(tensor.Add(a, b)))
	// Output: [foo1, bar2]
}
