package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatGrid_RejectsDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := NewSeatGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%v", dims)
	}
}

func TestSeatGrid_Reserve(t *testing.T) {
	g, err := NewSeatGrid(2, 3)
	require.NoError(t, err)

	require.NoError(t, g.Reserve(Seat{Row: 1, Column: 2}))

	free, err := g.IsFree(Seat{Row: 1, Column: 2})
	require.NoError(t, err)
	assert.False(t, free)

	before := g.Cells()
	err = g.Reserve(Seat{Row: 1, Column: 2})
	assert.ErrorIs(t, err, ErrSeatAlreadyReserved)
	assert.Equal(t, before, g.Cells(), "failed reserve must not change the grid")

	var seatErr *SeatError
	require.True(t, errors.As(err, &seatErr))
	assert.Equal(t, Seat{Row: 1, Column: 2}, seatErr.Seat)
}

func TestSeatGrid_OutOfRange(t *testing.T) {
	g, err := NewSeatGrid(2, 3)
	require.NoError(t, err)

	for _, s := range []Seat{{0, 1}, {1, 0}, {3, 1}, {1, 4}, {-1, -1}} {
		assert.ErrorIs(t, g.Reserve(s), ErrOutOfRange, "%v", s)
		_, err := g.IsFree(s)
		assert.ErrorIs(t, err, ErrOutOfRange, "%v", s)
	}
	assert.Equal(t, 6, g.FreeCount())
}

func TestSeatGrid_CloneIsIndependent(t *testing.T) {
	g, err := NewSeatGrid(2, 2)
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.Reserve(Seat{Row: 1, Column: 1}))

	free, err := g.IsFree(Seat{Row: 1, Column: 1})
	require.NoError(t, err)
	assert.True(t, free)
}

func TestHasFreeRun(t *testing.T) {
	// [free, free, reserved, free, free, free]
	g, err := NewSeatGrid(1, 6)
	require.NoError(t, err)
	require.NoError(t, g.Reserve(Seat{Row: 1, Column: 3}))

	assert.True(t, g.HasFreeRun(0))
	assert.True(t, g.HasFreeRun(2))
	assert.True(t, g.HasFreeRun(3))
	assert.False(t, g.HasFreeRun(4))
	assert.False(t, g.HasFreeRun(7))
	assert.Equal(t, 3, g.LongestFreeRun(1))
	assert.Equal(t, 0, g.LongestFreeRun(2))
}

func TestHasFreeRun_AnyRowQualifies(t *testing.T) {
	g, err := NewSeatGrid(2, 4)
	require.NoError(t, err)
	for c := 1; c <= 4; c++ {
		require.NoError(t, g.Reserve(Seat{Row: 1, Column: c}))
	}
	require.NoError(t, g.Reserve(Seat{Row: 2, Column: 2}))

	assert.True(t, g.HasFreeRun(2))
	assert.False(t, g.HasFreeRun(3))
}

func TestLongestFreeRun(t *testing.T) {
	g, err := NewSeatGrid(2, 6)
	require.NoError(t, err)
	require.NoError(t, g.Reserve(Seat{Row: 1, Column: 3}))

	assert.Equal(t, 3, g.LongestFreeRun(1))
	assert.Equal(t, 6, g.LongestFreeRun(2))
	assert.Equal(t, 0, g.LongestFreeRun(3))
}
