// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the CPU kernels behind the tensor package.
//
// # Overview
//
// The kernels work on flat slices and know nothing about shapes or views:
//   - Vector kernels (Add, Sub, Mul, Div and their scalar forms)
//   - A cache-blocked matrix product (Gemm) with leading dimensions
//   - A semiring product (GemmFunc) for element types without operators
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/backend/cpu"
//
//	func main() {
//	    a := []float64{1, 2, 3, 4} // 2×2
//	    b := []float64{5, 6, 7, 8} // 2×2
//	    c := make([]float64, 4)
//	    cpu.Gemm(a, b, c, 2, 2, 2, 2, 2, 2)
//	}
//
// # Blocking
//
// Gemm tiles the product so that one tile row is TileRowBytes bytes:
// BlockSize[T]() = TileRowBytes / sizeof(T) elements.
//
// # Thread Safety
//
// Kernels hold no state. Concurrent calls are safe as long as their
// destination slices do not overlap.
package cpu
