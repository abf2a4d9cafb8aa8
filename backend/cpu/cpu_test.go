// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/born-ml/ndarray/backend/cpu"
	"github.com/stretchr/testify/assert"
)

func TestGemm(t *testing.T) {
	a := []float64{1, 1, 4, 5, 1, 4}
	b := []float64{1, 2, 3, 4, 5, 6}
	c := make([]float64, 4)

	cpu.Gemm(a, b, c, 2, 3, 2, 3, 2, 2)
	assert.Equal(t, []float64{24, 30, 28, 38}, c)
}

func TestBlockSize(t *testing.T) {
	assert.Equal(t, cpu.TileRowBytes/8, cpu.BlockSize[float64]())
	assert.Equal(t, cpu.TileRowBytes/4, cpu.BlockSize[int32]())
}

func TestVectorKernels(t *testing.T) {
	dst := make([]int, 3)
	cpu.Mul(dst, []int{1, 2, 3}, []int{4, 5, 6})
	assert.Equal(t, []int{4, 10, 18}, dst)
	assert.Equal(t, 32, cpu.Dot([]int{1, 2, 3}, []int{4, 5, 6}))
	assert.Equal(t, 32, cpu.Sum(dst))
	assert.Equal(t, "CPU", cpu.Name())
}
