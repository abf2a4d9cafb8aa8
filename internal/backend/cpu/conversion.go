package cpu

// Convert computes dst[i] = R(src[i]) with Go conversion semantics:
// floats truncate toward zero when converted to integers.
func Convert[R, T Real](dst []R, src []T) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = R(src[i])
	}
}
