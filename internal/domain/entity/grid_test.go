package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_IndexRoundTrip(t *testing.T) {
	g := NewGrid(9, 20)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			idx := g.Index(row, col)
			r, c := g.RowCol(idx)
			assert.Equal(t, row, r)
			assert.Equal(t, col, c)
			assert.True(t, g.InBounds(idx))
		}
	}
	assert.False(t, g.InBounds(-1))
	assert.False(t, g.InBounds(g.Size()))
}

func TestGrid_OccupyRelease(t *testing.T) {
	g := NewGrid(3, 3)

	require.NoError(t, g.Occupy(4))
	assert.True(t, g.Occupied(4))
	assert.ErrorIs(t, g.Occupy(4), ErrCellTaken)
	assert.ErrorIs(t, g.Occupy(9), ErrCellOutOfBounds)

	g.Release(4)
	assert.False(t, g.Occupied(4))

	// no-ops
	g.Release(4)
	g.Release(-3)
	assert.Equal(t, 0, g.OccupiedCount())
}

func TestGrid_OutOfBoundsIsOccupied(t *testing.T) {
	g := NewGrid(2, 2)
	assert.True(t, g.Occupied(-1))
	assert.True(t, g.Occupied(4))
}

func TestGrid_Move(t *testing.T) {
	g := NewGrid(3, 3)
	require.NoError(t, g.Occupy(0))
	require.NoError(t, g.Occupy(2))

	require.NoError(t, g.Move(0, 1))
	assert.False(t, g.Occupied(0))
	assert.True(t, g.Occupied(1))
	assert.Equal(t, 2, g.OccupiedCount())

	// blocked: nothing changes
	err := g.Move(1, 2)
	assert.ErrorIs(t, err, ErrCellTaken)
	assert.True(t, g.Occupied(1))
	assert.True(t, g.Occupied(2))
	assert.Equal(t, 2, g.OccupiedCount())

	assert.ErrorIs(t, g.Move(1, 99), ErrCellOutOfBounds)
}

func TestGrid_Neighbor(t *testing.T) {
	g := NewGrid(9, 20)

	tests := []struct {
		name   string
		idx    int
		dir    Direction
		want   int
		wantOK bool
	}{
		{"right", 21, DirRight, 22, true},
		{"left", 21, DirLeft, 20, true},
		{"up", 21, DirUp, 1, true},
		{"down", 21, DirDown, 41, true},
		{"no wrap left", 20, DirLeft, 0, false},
		{"no wrap right", 19, DirRight, 0, false},
		{"top edge", 5, DirUp, 0, false},
		{"bottom edge", 175, DirDown, 0, false},
		{"none", 21, DirNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Neighbor(tt.idx, tt.dir)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.dir, g.DirectionTo(tt.idx, got))
			}
		})
	}
}

func TestGrid_Manhattan(t *testing.T) {
	g := NewGrid(9, 20)

	assert.Equal(t, 0, g.Manhattan(89, 89))
	assert.Equal(t, 1, g.Manhattan(89, 90))
	assert.Equal(t, 1, g.Manhattan(89, 69))
	// 19 and 20 are adjacent by index but not on the board
	assert.Equal(t, 20, g.Manhattan(19, 20))
	assert.Equal(t, 2+3, g.Manhattan(g.Index(1, 1), g.Index(3, 4)))
}

func TestGrid_FreeCells(t *testing.T) {
	g := NewGrid(2, 2)
	require.NoError(t, g.Occupy(1))

	assert.Equal(t, []int{0, 2, 3}, g.FreeCells())
	assert.Equal(t, 1, g.OccupiedCount())
}
