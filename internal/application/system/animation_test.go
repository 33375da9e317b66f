package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
)

func TestAnimationSystem_Update(t *testing.T) {
	sys := NewAnimationSystem(AnimSpecs{
		entity.KindPlayer: {entity.AnimIdle: {Frames: 4, FrameTime: 0.1}},
	})
	player := entity.NewPlayer(0)

	sys.Update([]*entity.Fighter{player}, 0.25)
	assert.Equal(t, 2, player.Anim.Frame)

	// missing spec falls back to a single frame
	enemy := entity.NewEnemy(1, 1)
	sys.Update([]*entity.Fighter{enemy}, 1)
	assert.Equal(t, 0, enemy.Anim.Frame)
}

func TestAnimationSystem_HurtReturnsToIdle(t *testing.T) {
	sys := NewAnimationSystem(nil)
	player := entity.NewPlayer(0)
	player.Anim.Set(entity.AnimHurt)

	sys.Update([]*entity.Fighter{player}, rules.HurtDuration/2)
	assert.Equal(t, entity.AnimHurt, player.Anim.State)

	sys.Update([]*entity.Fighter{player}, rules.HurtDuration)
	assert.Equal(t, entity.AnimIdle, player.Anim.State)
}

func TestAnimationSystem_Sway(t *testing.T) {
	sys := NewAnimationSystem(nil)
	player := entity.NewPlayer(0)

	assert.Zero(t, sys.Sway(player), "no sway unless hurt")

	player.Anim.Set(entity.AnimHurt)
	player.Anim.StateTime = rules.HurtDuration / 2
	assert.InDelta(t, -rules.HurtKnockback, sys.Sway(player), 1e-9, "facing right sways left")

	player.Facing = entity.FacingLeft
	assert.InDelta(t, rules.HurtKnockback, sys.Sway(player), 1e-9)

	player.Anim.StateTime = rules.HurtDuration
	assert.InDelta(t, 0, sys.Sway(player), 1e-9)
}

func TestAnimationSystem_SkipsDefeated(t *testing.T) {
	sys := NewAnimationSystem(nil)
	enemy := entity.NewEnemy(1, 0)
	enemy.TakeDamage(999)

	sys.Update([]*entity.Fighter{enemy}, 5)
	assert.Zero(t, enemy.Anim.StateTime)
}
