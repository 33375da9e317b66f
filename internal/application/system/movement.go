package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/defender/internal/domain/entity"
)

// Movement errors
var (
	ErrOutOfBounds    = errors.New("destination out of bounds")
	ErrNotAdjacent    = errors.New("destination not adjacent")
	ErrCellOccupied   = errors.New("destination occupied")
	ErrNoActionPoints = errors.New("not enough action points")
)

// Motion is a one-cell move in progress.
type Motion struct {
	Fighter  *entity.Fighter
	From     int
	To       int
	Duration float64
	Elapsed  float64

	dRow, dCol int
}

// Progress returns how far the move is, in [0, 1]
func (m *Motion) Progress() float64 {
	if m.Duration <= 0 {
		return 1
	}
	p := m.Elapsed / m.Duration
	if p > 1 {
		p = 1
	}
	return p
}

// MovementSystem moves fighters between adjacent cells
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Validate checks whether f may step to dest
func (s *MovementSystem) Validate(grid *entity.Grid, f *entity.Fighter, dest int) error {
	if f.ActionPoints < 1 {
		return ErrNoActionPoints
	}
	if !grid.InBounds(dest) {
		return fmt.Errorf("cell %d: %w", dest, ErrOutOfBounds)
	}
	if grid.Manhattan(f.Cell, dest) != 1 {
		return fmt.Errorf("cell %d: %w", dest, ErrNotAdjacent)
	}
	if grid.Occupied(dest) {
		return fmt.Errorf("cell %d: %w", dest, ErrCellOccupied)
	}
	return nil
}

// Begin starts an interpolated move. Occupancy changes only when Step commits.
func (s *MovementSystem) Begin(grid *entity.Grid, f *entity.Fighter, dest int, duration float64) (*Motion, error) {
	if err := s.Validate(grid, f, dest); err != nil {
		return nil, err
	}

	fromRow, fromCol := grid.RowCol(f.Cell)
	toRow, toCol := grid.RowCol(dest)
	f.Face(fromCol, toCol)
	f.Anim.Set(entity.AnimRunning)

	return &Motion{
		Fighter:  f,
		From:     f.Cell,
		To:       dest,
		Duration: duration,
		dRow:     toRow - fromRow,
		dCol:     toCol - fromCol,
	}, nil
}

// Step advances the move by dt and reports whether it finished.
// On completion the origin is freed, the destination claimed and one AP spent.
func (s *MovementSystem) Step(grid *entity.Grid, m *Motion, dt float64) (bool, error) {
	f := m.Fighter
	m.Elapsed += dt
	p := m.Progress()
	f.OffsetX = float64(m.dCol) * p
	f.OffsetY = float64(m.dRow) * p

	if m.Elapsed < m.Duration {
		return false, nil
	}

	f.OffsetX, f.OffsetY = 0, 0
	f.Anim.Set(entity.AnimIdle)

	if err := grid.Move(m.From, m.To); err != nil {
		return true, fmt.Errorf("commit move: %w", err)
	}
	f.Cell = m.To
	f.SpendAP(1)
	return true, nil
}

// Cancel abandons a move without committing it
func (s *MovementSystem) Cancel(m *Motion) {
	m.Fighter.OffsetX, m.Fighter.OffsetY = 0, 0
	m.Fighter.Anim.Set(entity.AnimIdle)
}
