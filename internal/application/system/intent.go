package system

import "github.com/younwookim/defender/internal/domain/rules"

// Intent represents an action that a fighter wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a one-cell step to To
type MoveIntent struct {
	To int
}

func (MoveIntent) isIntent() {}

// AttackIntent represents an attack on the fighter standing at Target
type AttackIntent struct {
	Target  int
	Ability rules.Ability
}

func (AttackIntent) isIntent() {}

// EndTurnIntent hands the turn to the enemies
type EndTurnIntent struct{}

func (EndTurnIntent) isIntent() {}

// WaitIntent forfeits the current action
type WaitIntent struct{}

func (WaitIntent) isIntent() {}
