package cpu

// Vector kernels for contiguous operands. All slices must have at least
// len(dst) elements; dst may alias a or b.

// Add computes dst[i] = a[i] + b[i].
func Add[T Addable](dst, a, b []T) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddScalar computes dst[i] = a[i] + s.
func AddScalar[T Addable](dst, a []T, s T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + s
	}
}

// ScalarAdd computes dst[i] = s + a[i].
func ScalarAdd[T Addable](dst []T, s T, a []T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = s + a[i]
	}
}

// Sub computes dst[i] = a[i] - b[i].
func Sub[T Number](dst, a, b []T) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// SubScalar computes dst[i] = a[i] - s.
func SubScalar[T Number](dst, a []T, s T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] - s
	}
}

// ScalarSub computes dst[i] = s - a[i].
func ScalarSub[T Number](dst []T, s T, a []T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = s - a[i]
	}
}

// Mul computes dst[i] = a[i] * b[i].
func Mul[T Number](dst, a, b []T) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulScalar computes dst[i] = a[i] * s.
func MulScalar[T Number](dst, a []T, s T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// Div computes dst[i] = a[i] / b[i].
// Integer division by zero panics as in plain Go.
func Div[T Number](dst, a, b []T) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// DivScalar computes dst[i] = a[i] / s.
func DivScalar[T Number](dst, a []T, s T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// ScalarDiv computes dst[i] = s / a[i].
func ScalarDiv[T Number](dst []T, s T, a []T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = s / a[i]
	}
}

// Dot returns sum(a[i]*b[i]) over len(a) elements, accumulated left to right.
func Dot[T Number](a, b []T) T {
	b = b[:len(a)]
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
