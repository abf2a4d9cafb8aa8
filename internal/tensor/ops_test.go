package tensor

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// halves returns the left and right column halves of a 3×4 sequence and a
// 3×2 matrix of ones.
func halves(t *testing.T) (m, left, right, ones *Matrix[int]) {
	t.Helper()
	m = seq(t, 3, 4)
	left, err := m.View(All(), Span(0, 1))
	require.NoError(t, err)
	right, err = m.View(All(), Span(2, 3))
	require.NoError(t, err)
	ones, err = Ones[int](3, 2)
	require.NoError(t, err)
	return m, left, right, ones
}

// Element-wise Tests

func TestAdd_LayoutPaths(t *testing.T) {
	_, left, right, ones := halves(t)

	tests := []struct {
		name string
		a, b *Matrix[int]
		want []int
	}{
		{"BothContinuous", ones, ones, []int{2, 2, 2, 2, 2, 2}},
		{"StridedLeft", left, ones, []int{1, 2, 5, 6, 9, 10}},
		{"StridedRight", ones, right, []int{3, 4, 7, 8, 11, 12}},
		{"BothStrided", left, right, []int{2, 4, 10, 12, 18, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Add(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, Shape{3, 2}, res.Shape())
			assert.True(t, res.IsContinuous())
			assert.False(t, res.IsView())
			assert.Equal(t, tt.want, elems(t, res))
		})
	}
}

func TestBinaryOps(t *testing.T) {
	a, err := FromSlice([]float64{6, 8, 10, 12}, 2, 2)
	require.NoError(t, err)
	b, err := FromSlice([]float64{3, 2, 5, 4}, 2, 2)
	require.NoError(t, err)

	tests := []struct {
		name string
		op   func(a, b *Matrix[float64]) (*Matrix[float64], error)
		want []float64
	}{
		{"Add", Add[float64], []float64{9, 10, 15, 16}},
		{"Sub", Sub[float64], []float64{3, 6, 5, 8}},
		{"Mul", Mul[float64], []float64{18, 16, 50, 48}},
		{"Div", Div[float64], []float64{2, 4, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.op(a, b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, elems(t, res), 1e-12)

			// Same result with a strided left operand.
			wide, err := Zeros[float64](2, 4)
			require.NoError(t, err)
			inner, err := wide.View(All(), Span(1, 2))
			require.NoError(t, err)
			require.NoError(t, inner.CopyFrom(a))
			require.False(t, inner.IsContinuous())

			res, err = tt.op(inner, b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, elems(t, res), 1e-12)
		})
	}
}

func TestScalarOps(t *testing.T) {
	m, err := FromSlice([]int{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	_, _, right, _ := halves(t)

	tests := []struct {
		name string
		op   func(*Matrix[int]) (*Matrix[int], error)
		in   *Matrix[int]
		want []int
	}{
		{"AddScalar", func(x *Matrix[int]) (*Matrix[int], error) { return AddScalar(x, 10) }, m, []int{11, 12, 13, 14}},
		{"ScalarAdd", func(x *Matrix[int]) (*Matrix[int], error) { return ScalarAdd(10, x) }, m, []int{11, 12, 13, 14}},
		{"SubScalar", func(x *Matrix[int]) (*Matrix[int], error) { return SubScalar(x, 1) }, m, []int{0, 1, 2, 3}},
		{"ScalarSub", func(x *Matrix[int]) (*Matrix[int], error) { return ScalarSub(10, x) }, m, []int{9, 8, 7, 6}},
		{"MulScalar", func(x *Matrix[int]) (*Matrix[int], error) { return MulScalar(x, 3) }, m, []int{3, 6, 9, 12}},
		{"DivScalar", func(x *Matrix[int]) (*Matrix[int], error) { return DivScalar(x, 2) }, m, []int{0, 1, 1, 2}},
		{"ScalarDiv", func(x *Matrix[int]) (*Matrix[int], error) { return ScalarDiv(12, x) }, m, []int{12, 6, 4, 3}},
		{"Neg", Neg[int], m, []int{-1, -2, -3, -4}},
		{"StridedMulScalar", func(x *Matrix[int]) (*Matrix[int], error) { return MulScalar(x, 2) }, right, []int{4, 6, 12, 14, 20, 22}},
		{"StridedScalarSub", func(x *Matrix[int]) (*Matrix[int], error) { return ScalarSub(0, x) }, right, []int{-2, -3, -6, -7, -10, -11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.op(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, elems(t, res))
		})
	}
}

func TestStringOps(t *testing.T) {
	a, err := FromSlice([]string{"a", "b"})
	require.NoError(t, err)
	b, err := FromSlice([]string{"c", "d"})
	require.NoError(t, err)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"ac", "bd"}, elems(t, sum))

	suffixed, err := AddScalar(a, "!")
	require.NoError(t, err)
	assert.Equal(t, []string{"a!", "b!"}, elems(t, suffixed))

	prefixed, err := ScalarAdd("x", a)
	require.NoError(t, err)
	assert.Equal(t, []string{"xa", "xb"}, elems(t, prefixed))

	total, err := Sum(a)
	require.NoError(t, err)
	assert.Equal(t, "ab", total)
}

func TestAssignOps(t *testing.T) {
	t.Run("ViewUpdatesParent", func(t *testing.T) {
		m, left, _, ones := halves(t)
		require.NoError(t, AddAssign(left, ones))
		assert.Equal(t, []int{1, 2, 2, 3, 5, 6, 6, 7, 9, 10, 10, 11}, elems(t, m))
		assert.True(t, left.IsView(), "left still aliases m")
	})

	t.Run("Elementwise", func(t *testing.T) {
		a, _ := FromSlice([]int{8, 6, 4, 2})
		b, _ := FromSlice([]int{2, 2, 2, 2})

		require.NoError(t, SubAssign(a, b))
		assert.Equal(t, []int{6, 4, 2, 0}, elems(t, a))
		require.NoError(t, MulAssign(a, b))
		assert.Equal(t, []int{12, 8, 4, 0}, elems(t, a))
		require.NoError(t, DivAssign(a, b))
		assert.Equal(t, []int{6, 4, 2, 0}, elems(t, a))
	})

	t.Run("Scalar", func(t *testing.T) {
		m, _, right, _ := halves(t)
		require.NoError(t, AddScalarAssign(right, 100))
		require.NoError(t, SubScalarAssign(right, 50))
		require.NoError(t, MulScalarAssign(right, 2))
		require.NoError(t, DivScalarAssign(right, 4))
		// (x + 50) * 2 / 4 on columns 2..3.
		assert.Equal(t, []int{0, 1, 26, 26, 4, 5, 28, 28, 8, 9, 30, 30}, elems(t, m))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		a, b := seq(t, 2, 2), seq(t, 4)
		err := AddAssign(a, b)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Equal(t, []int{0, 1, 2, 3}, elems(t, a))
	})
}

// Functional Tests

func TestMapZipApply(t *testing.T) {
	_, _, right, _ := halves(t)

	strs, err := Map(right, strconv.Itoa)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, strs.Shape())
	assert.Equal(t, []string{"2", "3", "6", "7", "10", "11"}, elems(t, strs))

	weights, err := FromSlice([]float64{0.5, 1, 0.5, 1, 0.5, 1}, 3, 2)
	require.NoError(t, err)
	scaled, err := Zip(right, weights, func(x int, w float64) float64 { return float64(x) * w })
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 3, 7, 5, 11}, elems(t, scaled))

	m, _, right, _ := halves(t)
	require.NoError(t, Apply(right, func(x int) int { return x * x }))
	assert.Equal(t, []int{0, 1, 4, 9, 4, 5, 36, 49, 8, 9, 100, 121}, elems(t, m))
}

func TestCast(t *testing.T) {
	f, err := FromSlice([]float64{1.9, -1.9, 300})
	require.NoError(t, err)

	i, err := Cast[int32](f)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, -1, 300}, elems(t, i))

	back, err := Cast[float32](i)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -1, 300}, elems(t, back))
}

func TestElementwiseErrors(t *testing.T) {
	a, b := seq(t, 2, 3), seq(t, 3, 2)
	var invalid Matrix[int]

	_, err := Add(a, b)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Mul(a, seq(t, 6))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Zip(a, b, func(x, y int) bool { return x == y })
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Sub(a, &invalid)
	assert.True(t, errors.Is(err, ErrLogic))
	_, err = MulScalar(&invalid, 2)
	assert.True(t, errors.Is(err, ErrLogic))
	_, err = Map(&invalid, strconv.Itoa)
	assert.True(t, errors.Is(err, ErrLogic))
	assert.True(t, errors.Is(Apply(&invalid, func(x int) int { return x }), ErrLogic))
}
