package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
)

const testDT = 1.0 / 60.0

// createTestBattle places the player and enemies on an obstacle-free board
func createTestBattle(t *testing.T, playerCell int, enemyCells ...int) (*Battle, *[]Event) {
	t.Helper()
	grid := entity.NewGrid(rules.Rows, rules.Cols)
	player := entity.NewPlayer(playerCell)
	require.NoError(t, grid.Occupy(playerCell))

	enemies := make([]*entity.Fighter, 0, len(enemyCells))
	for i, cell := range enemyCells {
		require.NoError(t, grid.Occupy(cell))
		enemies = append(enemies, entity.NewEnemy(i+1, cell))
	}

	b := newBattle(grid, player, enemies, testRNG())
	events := &[]Event{}
	b.AddListener(func(ev Event) { *events = append(*events, ev) })
	return b, events
}

// runUntil steps the battle until cond holds or maxFrames elapse
func runUntil(t *testing.T, b *Battle, cond func() bool, maxFrames int) {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		if cond() {
			return
		}
		b.Update(testDT)
	}
	require.True(t, cond(), "condition not met after %d frames", maxFrames)
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestNewBattle(t *testing.T) {
	b, err := NewBattle(testRNG())
	require.NoError(t, err)

	assert.Equal(t, rules.PlayerStartCell, b.Player.Cell)
	require.Len(t, b.Enemies, rules.EnemyCount)
	assert.Equal(t, len(rules.Obstacles)+1+rules.EnemyCount, b.Grid.OccupiedCount())
	assert.Equal(t, PhasePlayer, b.Phase())
	assert.Equal(t, 1, b.Round())

	cells := map[int]bool{b.Player.Cell: true}
	for _, o := range rules.Obstacles {
		cells[o] = true
	}
	for _, e := range b.Enemies {
		assert.False(t, cells[e.Cell], "enemy %s on a taken cell", e.Name)
		cells[e.Cell] = true
		assert.True(t, b.Grid.Occupied(e.Cell))
	}

	// same seed, same board
	again, err := NewBattle(testRNG())
	require.NoError(t, err)
	for i := range b.Enemies {
		assert.Equal(t, b.Enemies[i].Cell, again.Enemies[i].Cell)
	}
}

func TestBattle_PlayerMove(t *testing.T) {
	b, events := createTestBattle(t, 89, 95)

	require.NoError(t, b.Submit(MoveIntent{To: 88}))
	assert.True(t, b.Busy())
	assert.Equal(t, 89, b.Player.Cell, "commit waits for the animation")

	runUntil(t, b, func() bool { return !b.Busy() }, 60)

	assert.Equal(t, 88, b.Player.Cell)
	assert.Equal(t, rules.PlayerActionPoints-1, b.Player.ActionPoints)
	assert.Equal(t, PhasePlayer, b.Phase())
	require.NotEmpty(t, *events)
	last := (*events)[len(*events)-1]
	assert.Equal(t, EventMoved, last.Kind)
	assert.Equal(t, 89, last.From)
	assert.Equal(t, 88, last.To)
	assert.Equal(t, "Moved!", last.Message)
}

func TestBattle_RejectedMove(t *testing.T) {
	b, events := createTestBattle(t, 89, 90)

	err := b.Submit(MoveIntent{To: 90})
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.False(t, b.Busy())
	assert.Equal(t, 89, b.Player.Cell)

	require.Len(t, *events, 1)
	assert.Equal(t, EventRejected, (*events)[0].Kind)
	assert.Equal(t, "You can't go there!", (*events)[0].Message)

	assert.ErrorIs(t, b.Submit(MoveIntent{To: 49}), ErrNotAdjacent)
}

func TestBattle_RejectsWhileBusy(t *testing.T) {
	b, _ := createTestBattle(t, 89, 95)

	require.NoError(t, b.Submit(MoveIntent{To: 88}))
	assert.ErrorIs(t, b.Submit(MoveIntent{To: 69}), ErrBusy)
	assert.ErrorIs(t, b.Submit(EndTurnIntent{}), ErrBusy)
}

func TestBattle_PlayerAttack(t *testing.T) {
	b, events := createTestBattle(t, 89, 90)

	require.NoError(t, b.Submit(AttackIntent{Target: 90, Ability: rules.AbilityDoublePunch}))
	assert.Equal(t, entity.AnimAttack, b.Player.Anim.State)
	assert.Equal(t, rules.EnemyMaxHealth, b.Enemies[0].Health, "damage lands when the animation ends")

	runUntil(t, b, func() bool { return !b.Busy() }, 120)

	enemy := b.Enemies[0]
	assert.Less(t, enemy.Health, rules.EnemyMaxHealth)
	assert.Equal(t, rules.PlayerActionPoints-2, b.Player.ActionPoints)
	assert.Equal(t, PhasePlayer, b.Phase(), "attacks do not end the turn")

	last := (*events)[len(*events)-1]
	assert.Equal(t, EventAttacked, last.Kind)
	assert.Same(t, enemy, last.Target)
	assert.Equal(t, rules.EnemyMaxHealth-enemy.Health, last.Damage)
	assert.Equal(t, "Luffy attacked!", last.Message)
}

func TestBattle_AttackValidation(t *testing.T) {
	b, _ := createTestBattle(t, 89, 95)

	assert.ErrorIs(t, b.Submit(AttackIntent{Target: 95, Ability: rules.AbilityDoublePunch}), ErrOutOfRange)
	assert.ErrorIs(t, b.Submit(AttackIntent{Target: 90, Ability: rules.AbilityDoublePunch}), ErrNoTarget)
	assert.ErrorIs(t, b.Submit(AttackIntent{Target: 95, Ability: rules.AbilityStrike}), ErrUnknownAbility)

	b.Enemies[0].Cell = 90
	assert.ErrorIs(t, b.Submit(AttackIntent{Target: 90, Ability: rules.AbilitySuperPunch}), ErrChargeNotReady)
	b.FillCharge()
	assert.NoError(t, b.CanAttack(90, rules.AbilitySuperPunch))
}

func TestBattle_EnemyRound(t *testing.T) {
	b, events := createTestBattle(t, 89, 92, 180-1)

	require.NoError(t, b.Submit(EndTurnIntent{}))
	assert.Equal(t, PhaseEnemy, b.Phase())
	assert.ErrorIs(t, b.Submit(MoveIntent{To: 88}), ErrNotPlayerTurn)

	runUntil(t, b, func() bool { return b.Phase() == PhasePlayer }, 600)

	assert.Equal(t, 2, b.Round())
	assert.Equal(t, 91, b.Enemies[0].Cell, "first enemy steps toward the player")
	assert.Equal(t, 178, b.Enemies[1].Cell, "second enemy closes the column gap first")
	assert.Equal(t, rules.PlayerActionPoints, b.Player.ActionPoints)
	for _, e := range b.Enemies {
		assert.Equal(t, e.MaxAP, e.ActionPoints, "AP reset for the new round")
	}

	got := kinds(*events)
	assert.Equal(t, []EventKind{
		EventTurnStarted, // enemy turn
		EventRejected,    // move during enemy turn
		EventMoved,
		EventMoved,
		EventRoundEnded,
		EventTurnStarted,
	}, got)
}

func TestBattle_EnemyAttacksAdjacentPlayer(t *testing.T) {
	b, events := createTestBattle(t, 89, 90)

	require.NoError(t, b.Submit(EndTurnIntent{}))
	runUntil(t, b, func() bool { return b.Phase() == PhasePlayer }, 600)

	assert.Less(t, b.Player.Health, rules.PlayerMaxHealth)
	damage := rules.PlayerMaxHealth - b.Player.Health
	assert.GreaterOrEqual(t, damage, 5)
	assert.LessOrEqual(t, damage, 9)
	assert.Equal(t, damage, b.Player.Charge)
	assert.Contains(t, kinds(*events), EventAttacked)
	for _, ev := range *events {
		if ev.Kind == EventAttacked {
			assert.Equal(t, "Robot 1 attacked!", ev.Message)
		}
	}
}

func TestBattle_RunningOutOfAPEndsTurn(t *testing.T) {
	b, _ := createTestBattle(t, 89, 175)
	b.Player.ActionPoints = 1

	require.NoError(t, b.Submit(MoveIntent{To: 88}))
	runUntil(t, b, func() bool { return !b.Busy() || b.Phase() == PhaseEnemy }, 60)

	assert.Equal(t, 0, b.Player.ActionPoints)
	assert.Equal(t, PhaseEnemy, b.Phase())
}

func TestBattle_Victory(t *testing.T) {
	b, events := createTestBattle(t, 89, 90)
	b.Enemies[0].Health = 1

	require.NoError(t, b.Submit(AttackIntent{Target: 90, Ability: rules.AbilityDoublePunch}))
	runUntil(t, b, func() bool { return b.Phase().Over() }, 120)

	assert.Equal(t, PhaseVictory, b.Phase())
	assert.False(t, b.Grid.Occupied(90))
	assert.Nil(t, b.FighterAt(90))
	assert.Equal(t, 0, b.LivingEnemies())
	assert.Len(t, b.Enemies, 1, "defeated enemies stay in the roster")

	got := kinds(*events)
	assert.Equal(t, []EventKind{EventAttacked, EventDefeated, EventVictory}, got)
	assert.ErrorIs(t, b.Submit(EndTurnIntent{}), ErrBattleOver)
}

func TestBattle_Defeat(t *testing.T) {
	b, events := createTestBattle(t, 89, 90)
	b.Player.Health = 1

	require.NoError(t, b.Submit(EndTurnIntent{}))
	runUntil(t, b, func() bool { return b.Phase().Over() }, 600)

	assert.Equal(t, PhaseDefeat, b.Phase())
	assert.Equal(t, 0, b.Player.Health)
	assert.Equal(t, EventDefeat, (*events)[len(*events)-1].Kind)
}

func TestBattle_DefeatedEnemySkipped(t *testing.T) {
	b, _ := createTestBattle(t, 89, 90, 95)
	b.Enemies[0].Health = 1

	require.NoError(t, b.Submit(AttackIntent{Target: 90, Ability: rules.AbilityDoublePunch}))
	runUntil(t, b, func() bool { return !b.Busy() }, 120)
	require.False(t, b.Enemies[0].IsAlive())

	require.NoError(t, b.Submit(EndTurnIntent{}))
	runUntil(t, b, func() bool { return b.Phase() == PhasePlayer }, 600)

	assert.Equal(t, 90, b.Enemies[0].Cell, "defeated enemy does not move")
	assert.Equal(t, 94, b.Enemies[1].Cell)
}

func TestBattle_DebugHelpers(t *testing.T) {
	b, _ := createTestBattle(t, 89, 95)

	b.FillCharge()
	assert.True(t, b.Player.ChargeFull())

	b.HurtPlayer()
	assert.Equal(t, entity.AnimHurt, b.Player.Anim.State)
	assert.Equal(t, rules.PlayerMaxHealth, b.Player.Health)

	require.NoError(t, b.Submit(EndTurnIntent{}))
	b.Update(testDT) // enemy starts walking
	require.True(t, b.Busy())

	b.ForcePlayerTurn()
	assert.Equal(t, PhasePlayer, b.Phase())
	assert.False(t, b.Busy())
	assert.Equal(t, 95, b.Enemies[0].Cell)
	assert.Zero(t, b.Enemies[0].OffsetX)
	assert.True(t, b.Grid.Occupied(95))
}
