// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a strided N-dimensional array for Go.
//
// # Overview
//
// A Matrix[T] is a lightweight handle onto a reference-counted Buffer:
//   - Any element type T (numbers, strings, bools, structs)
//   - Per-axis sizes and strides, so sub-views share memory
//   - Random-access iterators with O(rank) jumps
//   - Element-wise arithmetic, comparison, reductions and a cache-blocked
//     matrix product
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/tensor"
//
//	func main() {
//	    m, _ := tensor.New[float64](2, 3, 4)
//
//	    // Views alias m's memory.
//	    v, _ := m.View(tensor.All(), tensor.Single(1))
//	    _ = v.Fill(1)
//
//	    // Element-wise results are fresh continuous matrices.
//	    sum, _ := tensor.Add(m, m)
//	    fmt.Println(sum)
//	}
//
// # Views and Copies
//
// View, Index, Sub, RowView, ColView, Share and Reinterpret never copy.
// Clone and CopyFrom are the only deep copies. Writes through a view are
// visible to every handle on the same Buffer.
//
// # Errors
//
// Every error wraps one of ErrInvalidArgument, ErrOutOfRange or ErrLogic;
// test with errors.Is. Index errors are *IndexError values.
//
// # Thread Safety
//
// Handles are not safe for concurrent mutation. Buffer reference counts
// are atomic, so handles on the same Buffer may be created and released
// from different goroutines.
package tensor
