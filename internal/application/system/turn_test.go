package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/defender/internal/domain/entity"
)

func createTestRoster(n int) (*entity.Fighter, []*entity.Fighter) {
	player := entity.NewPlayer(0)
	enemies := make([]*entity.Fighter, n)
	for i := range enemies {
		enemies[i] = entity.NewEnemy(i+1, 10+i)
	}
	return player, enemies
}

func TestTurnSystem_BeginRound(t *testing.T) {
	sys := NewTurnSystem()
	player, enemies := createTestRoster(3)
	player.ActionPoints = 0
	enemies[1].ActionPoints = 0
	enemies[1].HasActed = true

	sys.BeginRound(player, enemies)

	assert.Equal(t, PhasePlayer, sys.Phase())
	assert.Equal(t, 1, sys.Round())
	assert.Same(t, player, sys.Current())
	assert.Equal(t, player.MaxAP, player.ActionPoints)
	assert.Equal(t, 1, enemies[1].ActionPoints)
	assert.False(t, enemies[1].HasActed)
}

func TestTurnSystem_EnemyOrder(t *testing.T) {
	sys := NewTurnSystem()
	player, enemies := createTestRoster(3)
	sys.BeginRound(player, enemies)

	sys.EndPlayerTurn(enemies)
	require.Equal(t, PhaseEnemy, sys.Phase())
	assert.True(t, player.HasActed)
	assert.Equal(t, 3, sys.Pending())

	for i, e := range enemies {
		assert.Same(t, e, sys.Current())
		roundOver := sys.Advance()
		assert.True(t, e.HasActed)
		assert.Equal(t, i == len(enemies)-1, roundOver)
	}
	assert.Nil(t, sys.Current())
	assert.Equal(t, 0, sys.Pending())
}

func TestTurnSystem_SkipsDefeated(t *testing.T) {
	sys := NewTurnSystem()
	player, enemies := createTestRoster(3)
	sys.BeginRound(player, enemies)
	enemies[0].TakeDamage(999)

	sys.EndPlayerTurn(enemies)
	assert.Same(t, enemies[1], sys.Current())
	assert.Equal(t, 2, sys.Pending())

	// defeated mid-round
	enemies[2].TakeDamage(999)
	assert.True(t, sys.Advance())
}

func TestTurnSystem_EmptyQueue(t *testing.T) {
	sys := NewTurnSystem()
	player, enemies := createTestRoster(0)
	sys.BeginRound(player, enemies)
	sys.EndPlayerTurn(enemies)

	assert.Nil(t, sys.Current())
	assert.True(t, sys.Advance())
}

func TestTurnSystem_Finish(t *testing.T) {
	sys := NewTurnSystem()
	player, enemies := createTestRoster(1)
	sys.BeginRound(player, enemies)

	sys.Finish(PhaseVictory)
	assert.True(t, sys.Phase().Over())
	assert.Nil(t, sys.Current())
	assert.False(t, sys.Advance())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Your Turn", PhasePlayer.String())
	assert.Equal(t, "Enemy Turn", PhaseEnemy.String())
	assert.False(t, PhaseEnemy.Over())
	assert.True(t, PhaseDefeat.Over())
}
