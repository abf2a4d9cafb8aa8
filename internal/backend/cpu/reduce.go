package cpu

import "cmp"

// Sum returns the sum of x, seeded with the zero value.
func Sum[T Addable](x []T) T {
	var acc T
	for _, v := range x {
		acc += v
	}
	return acc
}

// Max returns the largest element of a non-empty x.
func Max[T cmp.Ordered](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		if acc < v {
			acc = v
		}
	}
	return acc
}

// Min returns the smallest element of a non-empty x.
func Min[T cmp.Ordered](x []T) T {
	acc := x[0]
	for _, v := range x[1:] {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// CountIf returns the number of elements of x satisfying cond.
func CountIf[T any](x []T, cond func(T) bool) int {
	n := 0
	for _, v := range x {
		if cond(v) {
			n++
		}
	}
	return n
}
