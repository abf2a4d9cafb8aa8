// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndarray/internal/backend/cpu"
)

// Element type constraints.
type (
	Integer = internalcpu.Integer
	Float   = internalcpu.Float
	Complex = internalcpu.Complex
	Real    = internalcpu.Real
	Number  = internalcpu.Number
	Addable = internalcpu.Addable
)

// TileRowBytes is the byte width of one Gemm tile row.
const TileRowBytes = internalcpu.TileRowBytes

// Name returns the backend name.
func Name() string {
	return internalcpu.Name()
}

// BlockSize returns the Gemm tile edge in elements for T.
func BlockSize[T any]() int {
	return internalcpu.BlockSize[T]()
}

// Gemm accumulates the product of an m×k and a k×n row-major matrix into
// dst: dst += a·b. lda, ldb and ldc are the row strides.
//
// Example:
//
//	c := make([]float32, m*n)
//	cpu.Gemm(a, b, c, m, k, n, k, n, n)
func Gemm[T Number](a, b, dst []T, m, k, n, lda, ldb, ldc int) {
	internalcpu.Gemm(a, b, dst, m, k, n, lda, ldb, ldc)
}

// GemmFunc is Gemm with caller supplied multiply and accumulate.
func GemmFunc[T any](a, b, dst []T, m, k, n, lda, ldb, ldc int, mul func(x, y T) T, add func(acc, v T) T) {
	internalcpu.GemmFunc(a, b, dst, m, k, n, lda, ldb, ldc, mul, add)
}

// Dot returns the inner product of a and b[:len(a)].
func Dot[T Number](a, b []T) T {
	return internalcpu.Dot(a, b)
}

// Add computes dst[i] = a[i] + b[i].
func Add[T Addable](dst, a, b []T) { internalcpu.Add(dst, a, b) }

// Sub computes dst[i] = a[i] - b[i].
func Sub[T Number](dst, a, b []T) { internalcpu.Sub(dst, a, b) }

// Mul computes dst[i] = a[i] * b[i].
func Mul[T Number](dst, a, b []T) { internalcpu.Mul(dst, a, b) }

// Div computes dst[i] = a[i] / b[i].
func Div[T Number](dst, a, b []T) { internalcpu.Div(dst, a, b) }

// Sum returns the sum of x.
func Sum[T Addable](x []T) T { return internalcpu.Sum(x) }
