package tensor

import (
	"cmp"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReductions_OverView(t *testing.T) {
	_, _, right, _ := halves(t) // [[2 3] [6 7] [10 11]]

	sum, err := Sum(right)
	require.NoError(t, err)
	assert.Equal(t, 39, sum)

	hi, err := Max(right)
	require.NoError(t, err)
	assert.Equal(t, 11, hi)

	lo, err := Min(right)
	require.NoError(t, err)
	assert.Equal(t, 2, lo)

	mean, err := Mean(right)
	require.NoError(t, err)
	assert.InDelta(t, 6.5, mean, 1e-12)

	n, err := CountIf(right, func(x int) bool { return x > 5 })
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCount(t *testing.T) {
	m := seq(t, 3, 4)

	nz, err := CountNonzero(m)
	require.NoError(t, err)
	assert.Equal(t, 11, nz)

	require.NoError(t, m.Set(5, 0, 0))
	fives, err := Count(m, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, fives)

	flags, err := FromSlice([]bool{true, false, true})
	require.NoError(t, err)
	nz, err = CountNonzero(flags)
	require.NoError(t, err)
	assert.Equal(t, 2, nz)
}

func TestFoldReduce(t *testing.T) {
	m := seq(t, 2, 3)

	joined, err := Fold(m, "", func(acc string, v int) string {
		return acc + string(rune('a'+v))
	})
	require.NoError(t, err)
	assert.Equal(t, "abcdef", joined)

	prod, err := Reduce(m, func(acc, v int) int { return acc*10 + v })
	require.NoError(t, err)
	assert.Equal(t, 12345, prod)

	single, err := FromSlice([]int{7})
	require.NoError(t, err)
	only, err := Reduce(single, func(acc, v int) int { return acc - v })
	require.NoError(t, err)
	assert.Equal(t, 7, only)

	var invalid Matrix[int]
	_, err = Fold(&invalid, 0, func(acc, v int) int { return acc })
	assert.True(t, errors.Is(err, ErrLogic))
	_, err = Max(&invalid)
	assert.True(t, errors.Is(err, ErrLogic))
	_, err = Mean(&invalid)
	assert.True(t, errors.Is(err, ErrLogic))
}

func TestSort(t *testing.T) {
	t.Run("Continuous", func(t *testing.T) {
		m, err := FromSlice([]float64{3, -1, 2, 0}, 2, 2)
		require.NoError(t, err)
		require.NoError(t, Sort(m))
		assert.Equal(t, []float64{-1, 0, 2, 3}, elems(t, m))
	})

	t.Run("StridedSortsOnlyTheView", func(t *testing.T) {
		m, err := FromNested[int]([][]int{{9, 8, 7, 6}, {5, 4, 3, 2}, {1, 0, -1, -2}})
		require.NoError(t, err)
		mid, err := m.View(All(), Span(1, 2))
		require.NoError(t, err)

		require.NoError(t, Sort(mid))
		assert.Equal(t, []int{-1, 0, 3, 4, 7, 8}, elems(t, mid))
		assert.Equal(t, []int{9, -1, 0, 6, 5, 3, 4, 2, 1, 7, 8, -2}, elems(t, m))
	})

	t.Run("Func", func(t *testing.T) {
		m, err := FromSlice([]string{"bb", "a", "ccc"})
		require.NoError(t, err)
		byLenDesc := func(a, b string) int { return cmp.Compare(len(b), len(a)) }
		require.NoError(t, SortFunc(m, byLenDesc))
		assert.Equal(t, []string{"ccc", "bb", "a"}, elems(t, m))
	})

	t.Run("Invalid", func(t *testing.T) {
		var m Matrix[int]
		assert.True(t, errors.Is(Sort(&m), ErrLogic))
	})
}

func TestLinearOffset(t *testing.T) {
	m := seq(t, 2, 3, 4)
	v, err := m.View(Span(1, 1), Span(1, 2), Span(1, 3))
	require.NoError(t, err)

	want := []int{17, 18, 19, 21, 22, 23}
	for pos, w := range want {
		assert.Equal(t, w, v.data[v.linearOffset(pos)], "position %d", pos)
	}
}
