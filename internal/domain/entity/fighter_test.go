package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/defender/internal/domain/rules"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(rules.PlayerStartCell)

	require.NotNil(t, p)
	assert.Equal(t, PlayerID, p.ID)
	assert.True(t, p.IsPlayer())
	assert.Equal(t, rules.PlayerStartCell, p.Cell)
	assert.Equal(t, rules.PlayerMaxHealth, p.Health)
	assert.Equal(t, rules.PlayerActionPoints, p.ActionPoints)
	assert.Equal(t, FacingRight, p.Facing)
	assert.True(t, p.IsAlive())
}

func TestNewEnemy(t *testing.T) {
	e := NewEnemy(3, 42)

	require.NotNil(t, e)
	assert.Equal(t, EntityID(3), e.ID)
	assert.Equal(t, KindEnemy, e.Kind)
	assert.Equal(t, "Robot 3", e.Name)
	assert.Equal(t, 42, e.Cell)
	assert.Equal(t, rules.EnemyMaxHealth, e.Health)
	assert.Equal(t, rules.EnemyActionPoints, e.MaxAP)
	assert.False(t, e.IsPlayer())
}

func TestFighter_SpendAP(t *testing.T) {
	p := NewPlayer(0)

	assert.True(t, p.SpendAP(2))
	assert.Equal(t, 8, p.ActionPoints)

	assert.False(t, p.SpendAP(9), "cannot overspend")
	assert.Equal(t, 8, p.ActionPoints)

	assert.False(t, p.SpendAP(-1))
	assert.True(t, p.SpendAP(8))
	assert.Equal(t, 0, p.ActionPoints)
	assert.False(t, p.SpendAP(1))
	assert.Equal(t, 0, p.ActionPoints)

	p.ResetAP()
	assert.Equal(t, p.MaxAP, p.ActionPoints)
}

func TestFighter_TakeDamage(t *testing.T) {
	e := NewEnemy(1, 0)

	// non-lethal
	assert.False(t, e.TakeDamage(30))
	assert.Equal(t, 70, e.Health)

	// lethal floors at zero
	assert.True(t, e.TakeDamage(500))
	assert.Equal(t, 0, e.Health)
	assert.True(t, e.Defeated)
	assert.False(t, e.IsAlive())
}

func TestFighter_Charge(t *testing.T) {
	p := NewPlayer(0)
	assert.False(t, p.ChargeFull())

	p.AddCharge(60)
	p.AddCharge(60)
	assert.Equal(t, rules.ChargeThreshold, p.Charge)
	assert.True(t, p.ChargeFull())

	p.ConsumeCharge()
	assert.Equal(t, 0, p.Charge)
}

func TestFighter_Face(t *testing.T) {
	p := NewPlayer(0)

	p.Face(5, 3)
	assert.Equal(t, FacingLeft, p.Facing)

	p.Face(5, 5)
	assert.Equal(t, FacingLeft, p.Facing, "vertical moves keep facing")

	p.Face(5, 6)
	assert.Equal(t, FacingRight, p.Facing)
}

func TestAnimator(t *testing.T) {
	var a Animator

	a.Advance(0.25, 0.1, 4)
	assert.Equal(t, 2, a.Frame)
	assert.InDelta(t, 0.25, a.StateTime, 1e-9)

	a.Advance(0.2, 0.1, 4)
	assert.Equal(t, 0, a.Frame, "wraps at frame count")

	a.Set(AnimHurt)
	assert.Equal(t, AnimHurt, a.State)
	assert.Equal(t, 0, a.Frame)
	assert.Zero(t, a.StateTime)

	a.Advance(0.1, 0.1, 4)
	a.Set(AnimHurt)
	assert.Equal(t, 1, a.Frame, "re-setting the same state keeps progress")
}

func TestParseAnimState(t *testing.T) {
	for s := AnimIdle; s <= AnimHurt; s++ {
		got, ok := ParseAnimState(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	_, ok := ParseAnimState("dance")
	assert.False(t, ok)
}
