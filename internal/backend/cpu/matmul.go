package cpu

import "unsafe"

// TileRowBytes is the byte budget of one tile row in Gemm.
const TileRowBytes = 1024

// BlockSize returns the square tile side used by Gemm for element type T:
// TileRowBytes / sizeof(T), at least 1.
func BlockSize[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || size >= TileRowBytes {
		return 1
	}
	return TileRowBytes / size
}

// Gemm computes dst += a·b for row-major operands with unit column stride.
//
//	a:   m×k, row stride lda
//	b:   k×n, row stride ldb
//	dst: m×n, row stride ldc
//
// The product is tiled in three levels (block rows of a, block depth, block
// columns of b). For each (bi, bk) the a-tile is staged once; for each bj the
// b-tile is staged, partial products accumulate in a local tile, and the
// accumulator is flushed into dst and zeroed before the next column block.
// The working set per step is at most three tiles of BlockSize[T]() squared.
func Gemm[T Number](a, b, dst []T, m, k, n, lda, ldb, ldc int) {
	if m <= 0 || k <= 0 || n <= 0 {
		return
	}

	bs := BlockSize[T]()
	ti, tk, tj := min(bs, m), min(bs, k), min(bs, n)

	aTile := make([]T, ti*tk)
	bTile := make([]T, tk*tj)
	acc := make([]T, ti*tj)

	for bi := 0; bi < m; bi += bs {
		li := min(m-bi, bs)
		for bk := 0; bk < k; bk += bs {
			lk := min(k-bk, bs)

			for i := 0; i < li; i++ {
				src := a[(bi+i)*lda+bk:]
				copy(aTile[i*tk:i*tk+lk], src[:lk])
			}

			for bj := 0; bj < n; bj += bs {
				lj := min(n-bj, bs)

				for kk := 0; kk < lk; kk++ {
					src := b[(bk+kk)*ldb+bj:]
					copy(bTile[kk*tj:kk*tj+lj], src[:lj])
				}

				for i := 0; i < li; i++ {
					accRow := acc[i*tj : i*tj+lj]
					aRow := aTile[i*tk : i*tk+lk]
					for kk, av := range aRow {
						bRow := bTile[kk*tj : kk*tj+lj]
						// Innermost loop runs over contiguous tile columns.
						for j, bv := range bRow {
							accRow[j] += av * bv
						}
					}
				}

				for i := 0; i < li; i++ {
					out := dst[(bi+i)*ldc+bj : (bi+i)*ldc+bj+lj]
					accRow := acc[i*tj : i*tj+lj]
					for j := range out {
						out[j] += accRow[j]
						accRow[j] = 0
					}
				}
			}
		}
	}
}

// GemmFunc computes dst += a·b with caller supplied element operations, for
// element types without built-in arithmetic. It is a plain i-k-j triple loop:
//
//	dst[i][j] = add(dst[i][j], mul(a[i][k], b[k][j]))
func GemmFunc[T any](a, b, dst []T, m, k, n, lda, ldb, ldc int, mul func(x, y T) T, add func(acc, v T) T) {
	for i := 0; i < m; i++ {
		out := dst[i*ldc : i*ldc+n]
		for kk := 0; kk < k; kk++ {
			av := a[i*lda+kk]
			bRow := b[kk*ldb : kk*ldb+n]
			for j := range out {
				out[j] = add(out[j], mul(av, bRow[j]))
			}
		}
	}
}

// Naive computes dst = a·b with the reference i-j-k loop. Kept as the
// baseline for Gemm benchmarks and as an oracle in tests.
func Naive[T Number](a, b, dst []T, m, k, n, lda, ldb, ldc int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kk := 0; kk < k; kk++ {
				sum += a[i*lda+kk] * b[kk*ldb+j]
			}
			dst[i*ldc+j] = sum
		}
	}
}
