package tensor

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_CarryMovement(t *testing.T) {
	m := seq(t, 2, 3, 4)
	it := m.Begin()

	require.NoError(t, it.Advance(13))
	assert.Equal(t, []int{1, 0, 1}, it.Index())
	assert.Equal(t, 13, it.Offset())

	require.NoError(t, it.Advance(-2))
	assert.Equal(t, []int{0, 2, 3}, it.Index())
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 11, v)

	require.NoError(t, it.Next())
	assert.Equal(t, []int{1, 0, 0}, it.Index())
	require.NoError(t, it.Prev())
	assert.Equal(t, []int{0, 2, 3}, it.Index())
}

func TestIterator_EveryJumpMatchesLinearOffset(t *testing.T) {
	m := seq(t, 3, 4, 5)
	n := m.Size()

	for from := 0; from < n; from += 7 {
		for k := -from; from+k < n; k += 3 {
			it, err := m.Begin().Add(from)
			require.NoError(t, err)
			require.NoError(t, it.Advance(k))
			v, err := it.Value()
			require.NoError(t, err)
			require.Equal(t, from+k, v, "jump %d from %d", k, from)
		}
	}
}

func TestIterator_StridedView(t *testing.T) {
	m := seq(t, 3, 4)
	v, err := m.View(All(), Span(1, 2))
	require.NoError(t, err)

	it, err := v.Begin().Add(3)
	require.NoError(t, err)
	val, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 6, val)

	at, err := v.Begin().At(5)
	require.NoError(t, err)
	assert.Equal(t, 10, at)

	var got []int
	for x := range v.Values() {
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 2, 5, 6, 9, 10}, got)
}

func TestIterator_BeginEnd(t *testing.T) {
	m := seq(t, 3, 4)
	v, _ := m.View(All(), Span(1, 2))
	begin, end := v.Begin(), v.End()

	d, err := end.Distance(begin)
	require.NoError(t, err)
	assert.Equal(t, v.Size(), d)

	d, err = begin.Distance(end)
	require.NoError(t, err)
	assert.Equal(t, -v.Size(), d)

	last, err := begin.Add(v.Size())
	require.NoError(t, err)
	eq, err := last.Equal(end)
	require.NoError(t, err)
	assert.True(t, eq)

	less, err := begin.Less(end)
	require.NoError(t, err)
	assert.True(t, less)

	c, err := end.Compare(begin)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	back, err := end.Sub(1)
	require.NoError(t, err)
	bv, err := back.Value()
	require.NoError(t, err)
	assert.Equal(t, 10, bv)
}

func TestIterator_DereferenceChecks(t *testing.T) {
	m := seq(t, 2, 2)

	end := m.End()
	_, err := end.Value()
	assert.True(t, errors.Is(err, ErrOutOfRange))
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 2, ie.Index)
	assert.Equal(t, 2, ie.Limit)

	before, err := m.Begin().Sub(1)
	require.NoError(t, err)
	_, err = before.Ptr()
	assert.True(t, errors.Is(err, ErrOutOfRange))

	var zero Iterator[int]
	_, err = zero.Value()
	assert.True(t, errors.Is(err, ErrLogic))
	assert.True(t, errors.Is(zero.Advance(1), ErrLogic))
	_, err = zero.Add(1)
	assert.True(t, errors.Is(err, ErrLogic))
	assert.True(t, errors.Is(zero.Set(1), ErrLogic))
	_, err = zero.At(0)
	assert.True(t, errors.Is(err, ErrLogic))
}

func TestIterator_Compatibility(t *testing.T) {
	a, b := seq(t, 2, 2), seq(t, 2, 2)

	_, err := a.Begin().Distance(b.Begin())
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = a.Begin().Less(b.Begin())
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	s, err := a.Share()
	require.NoError(t, err)
	d, err := a.End().Distance(s.Begin())
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	v, _ := a.View(Span(0, 0))
	_, err = v.Begin().Distance(a.Begin())
	assert.True(t, errors.Is(err, ErrInvalidArgument), "different shapes are not comparable")
}

func TestIterator_SetAndClone(t *testing.T) {
	m := seq(t, 2, 3)
	it := m.Begin()
	cp := it.Clone()

	require.NoError(t, it.Advance(4))
	require.NoError(t, it.Set(-4))
	assert.Equal(t, []int{0, 0}, cp.Index(), "clone keeps its own counters")

	p, err := it.Ptr()
	require.NoError(t, err)
	*p = 40
	v, _ := m.At(1, 1)
	assert.Equal(t, 40, v)
}

func TestIterator_CopyIsIndependent(t *testing.T) {
	m := seq(t, 2, 3)
	it := m.Begin()
	saved := it

	require.NoError(t, it.Next())
	require.NoError(t, it.Next())
	assert.Equal(t, []int{0, 0}, saved.Index())
	assert.Equal(t, 0, saved.Offset())

	require.NoError(t, saved.Next())
	v, err := saved.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, saved.Prev())
	require.NoError(t, saved.Prev())
	assert.Equal(t, []int{-1, 2}, saved.Index())
	_, err = saved.Value()
	assert.True(t, errors.Is(err, ErrOutOfRange))

	v, err = it.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	d, err := it.Distance(saved)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestMatrix_All(t *testing.T) {
	m := seq(t, 2, 3, 4)
	full, err := m.View(All(), All(), All())
	require.NoError(t, err)

	var direct, viewed []int
	for i, v := range m.All() {
		require.Equal(t, len(direct), i)
		direct = append(direct, v)
	}
	for _, v := range full.All() {
		viewed = append(viewed, v)
	}
	assert.Equal(t, m.Size(), len(viewed))
	assert.Equal(t, direct, viewed)

	// Early exit.
	var firstTwo []int
	for v := range m.Values() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	assert.Equal(t, []int{0, 1}, firstTwo)

	assert.True(t, slices.IsSorted(direct))
}
