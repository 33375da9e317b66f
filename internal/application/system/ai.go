package system

import (
	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
)

// EnemyAI picks one action for an enemy per turn.
//
// The rule is greedy: attack when adjacent, otherwise close the distance
// (columns before rows), otherwise sidestep around whatever blocks the way.
// If every candidate cell is blocked the enemy waits.
type EnemyAI struct{}

// NewEnemyAI creates a new enemy AI
func NewEnemyAI() *EnemyAI {
	return &EnemyAI{}
}

// Decide returns the intent of enemy against target
func (ai *EnemyAI) Decide(grid *entity.Grid, enemy, target *entity.Fighter) Intent {
	if grid.Manhattan(enemy.Cell, target.Cell) <= rules.AttackRange {
		return AttackIntent{Target: target.Cell, Ability: rules.AbilityStrike}
	}

	for _, dir := range ai.candidates(grid, enemy.Cell, target.Cell) {
		if next, ok := grid.Neighbor(enemy.Cell, dir); ok && !grid.Occupied(next) {
			return MoveIntent{To: next}
		}
	}
	return WaitIntent{}
}

// candidates lists step directions in order of preference
func (ai *EnemyAI) candidates(grid *entity.Grid, from, to int) []entity.Direction {
	er, ec := grid.RowCol(from)
	tr, tc := grid.RowCol(to)

	toward := make([]entity.Direction, 0, 4)
	if ec != tc {
		toward = append(toward, horizontal(tc > ec))
	}
	if er != tr {
		toward = append(toward, vertical(tr > er))
	}

	// sidesteps
	switch {
	case er == tr:
		toward = append(toward, entity.DirUp, entity.DirDown)
	case ec == tc:
		toward = append(toward, entity.DirLeft, entity.DirRight)
	default:
		toward = append(toward, vertical(tr < er), horizontal(tc < ec))
	}
	return toward
}

func horizontal(right bool) entity.Direction {
	if right {
		return entity.DirRight
	}
	return entity.DirLeft
}

func vertical(down bool) entity.Direction {
	if down {
		return entity.DirDown
	}
	return entity.DirUp
}
