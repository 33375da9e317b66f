package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
)

// Combat errors
var (
	ErrOutOfRange     = errors.New("target out of range")
	ErrNoTarget       = errors.New("no target")
	ErrChargeNotReady = errors.New("super punch not charged")
	ErrUnknownAbility = errors.New("unknown ability")
)

// Hit is the outcome of a resolved attack
type Hit struct {
	Attacker *entity.Fighter
	Defender *entity.Fighter
	Ability  rules.Ability
	Damage   int
	Defeated bool
}

// CombatSystem resolves melee attacks between adjacent fighters
type CombatSystem struct {
	rng *rand.Rand

	// Event callbacks
	OnHit func(hit Hit)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(rng *rand.Rand) *CombatSystem {
	return &CombatSystem{rng: rng}
}

// InRange returns true if b stands next to a
func (s *CombatSystem) InRange(grid *entity.Grid, a, b *entity.Fighter) bool {
	d := grid.Manhattan(a.Cell, b.Cell)
	return d > 0 && d <= rules.AttackRange
}

// RollDamage returns a uniform damage value in [r.Min, r.Max]
func (s *CombatSystem) RollDamage(r rules.DamageRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + s.rng.Intn(r.Max-r.Min+1)
}

// CanUse reports why attacker could not use ability on defender, or nil.
func (s *CombatSystem) CanUse(grid *entity.Grid, attacker, defender *entity.Fighter, ability rules.Ability) error {
	def, ok := rules.Abilities[ability]
	if !ok {
		return fmt.Errorf("ability %d: %w", ability, ErrUnknownAbility)
	}
	if defender == nil || !defender.IsAlive() || defender == attacker {
		return ErrNoTarget
	}
	if !s.InRange(grid, attacker, defender) {
		return fmt.Errorf("%s: %w", defender.Name, ErrOutOfRange)
	}
	if def.NeedsCharge && !attacker.ChargeFull() {
		return ErrChargeNotReady
	}
	if attacker.ActionPoints < def.APCost {
		return fmt.Errorf("%s needs %d: %w", ability, def.APCost, ErrNoActionPoints)
	}
	return nil
}

// Resolve applies an attack: spends AP, rolls damage, charges the player
// and releases the cell of a defeated enemy.
func (s *CombatSystem) Resolve(grid *entity.Grid, attacker, defender *entity.Fighter, ability rules.Ability) (Hit, error) {
	if err := s.CanUse(grid, attacker, defender, ability); err != nil {
		return Hit{}, err
	}
	def := rules.Abilities[ability]

	attacker.SpendAP(def.APCost)
	if def.NeedsCharge {
		attacker.ConsumeCharge()
	}

	damage := s.RollDamage(def.Damage)
	defeated := defender.TakeDamage(damage)

	// Only the player builds charge, both by dealing and taking damage
	if attacker.IsPlayer() && !def.NeedsCharge {
		attacker.AddCharge(damage)
	}
	if defender.IsPlayer() {
		defender.AddCharge(damage)
	}

	if defeated {
		if !defender.IsPlayer() {
			grid.Release(defender.Cell)
		}
	} else {
		defender.Anim.Set(entity.AnimHurt)
	}

	hit := Hit{
		Attacker: attacker,
		Defender: defender,
		Ability:  ability,
		Damage:   damage,
		Defeated: defeated,
	}
	if s.OnHit != nil {
		s.OnHit(hit)
	}
	return hit, nil
}
