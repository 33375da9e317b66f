package entity

import (
	"fmt"

	"github.com/younwookim/defender/internal/domain/rules"
)

// Fighter is a combatant on the grid: the player or one enemy.
type Fighter struct {
	ID   EntityID
	Kind Kind
	Name string

	// Grid position and the sub-cell offset, in cells, while a move is interpolated
	Cell             int
	OffsetX, OffsetY float64

	// Stats
	MaxHealth    int
	Health       int
	MaxAP        int
	ActionPoints int
	Charge       int

	Facing Facing
	Anim   Animator

	// Round bookkeeping
	HasActed bool
	Defeated bool
}

// NewPlayer creates the player character at cell
func NewPlayer(cell int) *Fighter {
	return &Fighter{
		ID:           PlayerID,
		Kind:         KindPlayer,
		Name:         rules.PlayerName,
		Cell:         cell,
		MaxHealth:    rules.PlayerMaxHealth,
		Health:       rules.PlayerMaxHealth,
		MaxAP:        rules.PlayerActionPoints,
		ActionPoints: rules.PlayerActionPoints,
		Charge:       rules.StartingCharge,
		Facing:       FacingRight,
	}
}

// NewEnemy creates enemy number n (1-based) at cell
func NewEnemy(n int, cell int) *Fighter {
	return &Fighter{
		ID:           EntityID(n),
		Kind:         KindEnemy,
		Name:         fmt.Sprintf("%s %d", rules.EnemyNamePrefix, n),
		Cell:         cell,
		MaxHealth:    rules.EnemyMaxHealth,
		Health:       rules.EnemyMaxHealth,
		MaxAP:        rules.EnemyActionPoints,
		ActionPoints: rules.EnemyActionPoints,
		Facing:       FacingLeft,
	}
}

// IsPlayer reports whether this fighter is the player
func (f *Fighter) IsPlayer() bool {
	return f.Kind == KindPlayer
}

// SpendAP deducts n action points. It refuses and returns false when
// the fighter cannot afford n.
func (f *Fighter) SpendAP(n int) bool {
	if n < 0 || n > f.ActionPoints {
		return false
	}
	f.ActionPoints -= n
	return true
}

// ResetAP restores the full action point budget
func (f *Fighter) ResetAP() {
	f.ActionPoints = f.MaxAP
}

// TakeDamage applies damage and returns true when it was lethal.
// Health floors at zero.
func (f *Fighter) TakeDamage(damage int) bool {
	if damage < 0 {
		damage = 0
	}
	f.Health -= damage
	if f.Health <= 0 {
		f.Health = 0
		f.Defeated = true
	}
	return f.Defeated
}

// AddCharge accumulates super punch charge up to the threshold
func (f *Fighter) AddCharge(n int) {
	f.Charge += n
	if f.Charge > rules.ChargeThreshold {
		f.Charge = rules.ChargeThreshold
	}
	if f.Charge < 0 {
		f.Charge = 0
	}
}

// ChargeFull returns true if the super punch is ready
func (f *Fighter) ChargeFull() bool {
	return f.Charge >= rules.ChargeThreshold
}

// ConsumeCharge empties the charge bar
func (f *Fighter) ConsumeCharge() {
	f.Charge = 0
}

// IsAlive returns true if the fighter can still act
func (f *Fighter) IsAlive() bool {
	return f.Health > 0 && !f.Defeated
}

// Face turns the sprite toward a column; equal columns keep the current facing.
func (f *Fighter) Face(fromCol, towardCol int) {
	switch {
	case towardCol > fromCol:
		f.Facing = FacingRight
	case towardCol < fromCol:
		f.Facing = FacingLeft
	}
}

// HealthRatio returns health as a fraction of max health
func (f *Fighter) HealthRatio() float64 {
	if f.MaxHealth <= 0 {
		return 0
	}
	return float64(f.Health) / float64(f.MaxHealth)
}
