package entity

import (
	"errors"
	"fmt"
)

// Grid errors
var (
	ErrCellOutOfBounds = errors.New("cell out of bounds")
	ErrCellTaken       = errors.New("cell already occupied")
)

// Grid is a rows x cols board addressed by a single cell index.
// Each cell is occupied by at most one entity or obstacle.
type Grid struct {
	Rows     int
	Cols     int
	occupied []bool
}

// NewGrid creates an empty grid
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:     rows,
		Cols:     cols,
		occupied: make([]bool, rows*cols),
	}
}

// Size returns the number of cells
func (g *Grid) Size() int {
	return g.Rows * g.Cols
}

// Index converts (row, col) to a cell index
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// RowCol converts a cell index to (row, col)
func (g *Grid) RowCol(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// InBounds reports whether idx is a valid cell index
func (g *Grid) InBounds(idx int) bool {
	return idx >= 0 && idx < g.Size()
}

// Contains reports whether (row, col) lies on the board
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Occupied reports whether the cell is taken. Out of bounds cells count as taken.
func (g *Grid) Occupied(idx int) bool {
	if !g.InBounds(idx) {
		return true
	}
	return g.occupied[idx]
}

// Occupy claims a free cell
func (g *Grid) Occupy(idx int) error {
	if !g.InBounds(idx) {
		return fmt.Errorf("occupy %d: %w", idx, ErrCellOutOfBounds)
	}
	if g.occupied[idx] {
		return fmt.Errorf("occupy %d: %w", idx, ErrCellTaken)
	}
	g.occupied[idx] = true
	return nil
}

// Release frees a cell. Releasing a free or invalid cell is a no-op.
func (g *Grid) Release(idx int) {
	if g.InBounds(idx) {
		g.occupied[idx] = false
	}
}

// Move frees from and claims to in one step. On error nothing changes.
func (g *Grid) Move(from, to int) error {
	if !g.InBounds(from) || !g.InBounds(to) {
		return fmt.Errorf("move %d->%d: %w", from, to, ErrCellOutOfBounds)
	}
	if g.occupied[to] {
		return fmt.Errorf("move %d->%d: %w", from, to, ErrCellTaken)
	}
	g.occupied[from] = false
	g.occupied[to] = true
	return nil
}

// Neighbor returns the cell one step away in dir.
// It returns false when the step leaves the board; rows never wrap.
func (g *Grid) Neighbor(idx int, dir Direction) (int, bool) {
	if !g.InBounds(idx) || dir == DirNone {
		return 0, false
	}
	row, col := g.RowCol(idx)
	dr, dc := dir.Delta()
	row, col = row+dr, col+dc
	if !g.Contains(row, col) {
		return 0, false
	}
	return g.Index(row, col), true
}

// Manhattan returns the grid distance between two cells
func (g *Grid) Manhattan(a, b int) int {
	ar, ac := g.RowCol(a)
	br, bc := g.RowCol(b)
	return abs(ar-br) + abs(ac-bc)
}

// DirectionTo returns the step direction from a to an adjacent cell b.
func (g *Grid) DirectionTo(a, b int) Direction {
	ar, ac := g.RowCol(a)
	br, bc := g.RowCol(b)
	switch {
	case br == ar-1 && bc == ac:
		return DirUp
	case br == ar+1 && bc == ac:
		return DirDown
	case br == ar && bc == ac-1:
		return DirLeft
	case br == ar && bc == ac+1:
		return DirRight
	default:
		return DirNone
	}
}

// FreeCells returns all unoccupied cell indices in ascending order
func (g *Grid) FreeCells() []int {
	free := make([]int, 0, g.Size())
	for i, taken := range g.occupied {
		if !taken {
			free = append(free, i)
		}
	}
	return free
}

// OccupiedCount returns the number of taken cells
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, taken := range g.occupied {
		if taken {
			n++
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
