package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
)

// Battle errors
var (
	ErrBattleOver     = errors.New("battle is over")
	ErrNotPlayerTurn  = errors.New("not your turn")
	ErrBusy           = errors.New("an action is still playing")
	ErrUnknownIntent  = errors.New("unknown intent")
	ErrNotEnoughCells = errors.New("not enough free cells")
)

// EventKind identifies a battle event
type EventKind int

const (
	EventTurnStarted EventKind = iota
	EventMoved
	EventAttacked
	EventDefeated
	EventWaited
	EventRejected
	EventRoundEnded
	EventVictory
	EventDefeat
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventTurnStarted:
		return "turn_started"
	case EventMoved:
		return "moved"
	case EventAttacked:
		return "attacked"
	case EventDefeated:
		return "defeated"
	case EventWaited:
		return "waited"
	case EventRejected:
		return "rejected"
	case EventRoundEnded:
		return "round_ended"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Event describes something that happened in the battle
type Event struct {
	Kind    EventKind
	Phase   Phase
	Round   int
	Actor   *entity.Fighter
	Target  *entity.Fighter
	From    int
	To      int
	Ability rules.Ability
	Damage  int
	Message string
	Err     error
}

// Listener receives battle events
type Listener func(Event)

// attack is a wind-up whose damage lands when the animation ends
type attack struct {
	attacker *entity.Fighter
	defender *entity.Fighter
	ability  rules.Ability
	elapsed  float64
	duration float64
}

// action is the single action animating at a time
type action struct {
	actor  *entity.Fighter
	motion *Motion
	attack *attack
}

// Battle runs one encounter between the player and the enemy roster.
// It is stepped from a single goroutine.
type Battle struct {
	Grid    *entity.Grid
	Player  *entity.Fighter
	Enemies []*entity.Fighter

	movement  *MovementSystem
	combat    *CombatSystem
	ai        *EnemyAI
	turns     *TurnSystem
	animation *AnimationSystem

	listeners []Listener
	current   *action
}

// NewBattle sets up the board: obstacles, the player at its start cell
// and the enemies on random free cells drawn from rng.
func NewBattle(rng *rand.Rand) (*Battle, error) {
	grid := entity.NewGrid(rules.Rows, rules.Cols)
	for _, cell := range rules.Obstacles {
		if err := grid.Occupy(cell); err != nil {
			return nil, fmt.Errorf("place obstacle: %w", err)
		}
	}

	player := entity.NewPlayer(rules.PlayerStartCell)
	if err := grid.Occupy(player.Cell); err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}

	enemies := make([]*entity.Fighter, 0, rules.EnemyCount)
	for i := 1; i <= rules.EnemyCount; i++ {
		free := grid.FreeCells()
		if len(free) == 0 {
			return nil, fmt.Errorf("place %s %d: %w", rules.EnemyNamePrefix, i, ErrNotEnoughCells)
		}
		cell := free[rng.Intn(len(free))]
		if err := grid.Occupy(cell); err != nil {
			return nil, fmt.Errorf("place %s %d: %w", rules.EnemyNamePrefix, i, err)
		}
		enemy := entity.NewEnemy(i, cell)
		_, enemyCol := grid.RowCol(cell)
		_, playerCol := grid.RowCol(player.Cell)
		enemy.Face(enemyCol, playerCol)
		enemies = append(enemies, enemy)
	}

	return newBattle(grid, player, enemies, rng), nil
}

func newBattle(grid *entity.Grid, player *entity.Fighter, enemies []*entity.Fighter, rng *rand.Rand) *Battle {
	b := &Battle{
		Grid:      grid,
		Player:    player,
		Enemies:   enemies,
		movement:  NewMovementSystem(),
		combat:    NewCombatSystem(rng),
		ai:        NewEnemyAI(),
		turns:     NewTurnSystem(),
		animation: NewAnimationSystem(nil),
	}
	b.turns.BeginRound(player, enemies)
	return b
}

// SetAnimSpecs replaces the animation frame table
func (b *Battle) SetAnimSpecs(specs AnimSpecs) {
	b.animation = NewAnimationSystem(specs)
}

// AddListener registers l to receive every event
func (b *Battle) AddListener(l Listener) {
	b.listeners = append(b.listeners, l)
}

// Start announces the first player turn to listeners
func (b *Battle) Start() {
	b.emit(Event{Kind: EventTurnStarted, Actor: b.Player, Message: PhasePlayer.String()})
}

// Phase returns the active phase
func (b *Battle) Phase() Phase {
	return b.turns.Phase()
}

// Round returns the round counter
func (b *Battle) Round() int {
	return b.turns.Round()
}

// Busy reports whether an action is animating
func (b *Battle) Busy() bool {
	return b.current != nil
}

// Acting returns the fighter whose turn it is, or nil
func (b *Battle) Acting() *entity.Fighter {
	return b.turns.Current()
}

// Fighters returns the player followed by the enemies
func (b *Battle) Fighters() []*entity.Fighter {
	all := make([]*entity.Fighter, 0, len(b.Enemies)+1)
	all = append(all, b.Player)
	return append(all, b.Enemies...)
}

// FighterAt returns the living fighter standing on cell, or nil
func (b *Battle) FighterAt(cell int) *entity.Fighter {
	for _, f := range b.Fighters() {
		if f.IsAlive() && f.Cell == cell {
			return f
		}
	}
	return nil
}

// LivingEnemies returns the number of enemies still standing
func (b *Battle) LivingEnemies() int {
	n := 0
	for _, e := range b.Enemies {
		if e.IsAlive() {
			n++
		}
	}
	return n
}

// Sway returns the hurt knock-back of f in pixels
func (b *Battle) Sway(f *entity.Fighter) float64 {
	return b.animation.Sway(f)
}

// AnimSpecs returns the animation frame table in use
func (b *Battle) AnimSpecs() AnimSpecs {
	return b.animation.Specs()
}

// CanAttack reports whether the player could use ability on the fighter at cell
func (b *Battle) CanAttack(cell int, ability rules.Ability) error {
	return b.combat.CanUse(b.Grid, b.Player, b.FighterAt(cell), ability)
}

// Submit applies a player command. A rejected command leaves the battle
// unchanged and is reported to listeners as EventRejected.
func (b *Battle) Submit(intent Intent) error {
	if err := b.submit(intent); err != nil {
		b.emit(Event{
			Kind:    EventRejected,
			Actor:   b.Player,
			Message: rejectMessage(err),
			Err:     err,
		})
		return err
	}
	return nil
}

func (b *Battle) submit(intent Intent) error {
	switch {
	case b.Phase().Over():
		return ErrBattleOver
	case b.Phase() != PhasePlayer:
		return ErrNotPlayerTurn
	case b.current != nil:
		return ErrBusy
	}

	switch it := intent.(type) {
	case MoveIntent:
		m, err := b.movement.Begin(b.Grid, b.Player, it.To, rules.PlayerMoveTime)
		if err != nil {
			return err
		}
		b.current = &action{actor: b.Player, motion: m}
	case AttackIntent:
		if !isPlayerAbility(it.Ability) {
			return fmt.Errorf("%s: %w", it.Ability, ErrUnknownAbility)
		}
		return b.beginAttack(b.Player, b.FighterAt(it.Target), it.Ability)
	case EndTurnIntent:
		b.endPlayerTurn()
	default:
		return fmt.Errorf("%T: %w", intent, ErrUnknownIntent)
	}
	return nil
}

// Update advances the battle by dt seconds
func (b *Battle) Update(dt float64) {
	b.animation.Update(b.Fighters(), dt)

	if b.Phase().Over() {
		return
	}

	if b.current != nil {
		if b.stepAction(dt) {
			b.finishAction()
		}
		return
	}

	if b.Phase() == PhaseEnemy {
		b.nextEnemy()
	}
}

// nextEnemy starts the action of the next queued enemy
func (b *Battle) nextEnemy() {
	enemy := b.turns.Current()
	if enemy == nil {
		b.endRound()
		return
	}

	switch it := b.ai.Decide(b.Grid, enemy, b.Player).(type) {
	case AttackIntent:
		if err := b.beginAttack(enemy, b.Player, it.Ability); err == nil {
			return
		}
	case MoveIntent:
		m, err := b.movement.Begin(b.Grid, enemy, it.To, rules.EnemyMoveTime)
		if err == nil {
			b.current = &action{actor: enemy, motion: m}
			return
		}
	}

	b.emit(Event{Kind: EventWaited, Actor: enemy, Message: enemy.Name + " waits."})
	b.advanceEnemy()
}

func (b *Battle) beginAttack(attacker, defender *entity.Fighter, ability rules.Ability) error {
	if err := b.combat.CanUse(b.Grid, attacker, defender, ability); err != nil {
		return err
	}

	_, aCol := b.Grid.RowCol(attacker.Cell)
	_, dCol := b.Grid.RowCol(defender.Cell)
	attacker.Face(aCol, dCol)
	defender.Face(dCol, aCol)

	state := entity.AnimAttack
	if ability == rules.AbilitySuperPunch {
		state = entity.AnimSpecial
	}
	attacker.Anim.Set(state)

	b.current = &action{
		actor: attacker,
		attack: &attack{
			attacker: attacker,
			defender: defender,
			ability:  ability,
			duration: rules.Abilities[ability].Duration,
		},
	}
	return nil
}

// stepAction advances the running action and reports whether it ended
func (b *Battle) stepAction(dt float64) bool {
	act := b.current
	if act.motion != nil {
		done, err := b.movement.Step(b.Grid, act.motion, dt)
		if done && err != nil {
			b.emit(Event{Kind: EventRejected, Actor: act.actor, Message: rejectMessage(err), Err: err})
		} else if done {
			b.emit(Event{
				Kind:    EventMoved,
				Actor:   act.actor,
				From:    act.motion.From,
				To:      act.motion.To,
				Message: "Moved!",
			})
		}
		return done
	}

	atk := act.attack
	atk.elapsed += dt
	if atk.elapsed < atk.duration {
		return false
	}

	atk.attacker.Anim.Set(entity.AnimIdle)
	hit, err := b.combat.Resolve(b.Grid, atk.attacker, atk.defender, atk.ability)
	if err != nil {
		b.emit(Event{Kind: EventRejected, Actor: atk.attacker, Target: atk.defender, Message: rejectMessage(err), Err: err})
		return true
	}

	b.emit(Event{
		Kind:    EventAttacked,
		Actor:   hit.Attacker,
		Target:  hit.Defender,
		From:    hit.Attacker.Cell,
		To:      hit.Defender.Cell,
		Ability: hit.Ability,
		Damage:  hit.Damage,
		Message: fmt.Sprintf("%s attacked!", hit.Attacker.Name),
	})
	if hit.Defeated {
		b.emit(Event{
			Kind:    EventDefeated,
			Actor:   hit.Attacker,
			Target:  hit.Defender,
			To:      hit.Defender.Cell,
			Message: fmt.Sprintf("%s is down!", hit.Defender.Name),
		})
	}
	return true
}

// finishAction hands over the turn once an action has played out
func (b *Battle) finishAction() {
	actor := b.current.actor
	b.current = nil

	if b.checkOutcome() {
		return
	}

	if actor.IsPlayer() {
		if actor.ActionPoints == 0 {
			b.endPlayerTurn()
		}
		return
	}
	b.advanceEnemy()
}

func (b *Battle) advanceEnemy() {
	if b.turns.Advance() {
		b.endRound()
	}
}

func (b *Battle) endPlayerTurn() {
	b.turns.EndPlayerTurn(b.Enemies)
	b.emit(Event{Kind: EventTurnStarted, Message: PhaseEnemy.String()})
}

func (b *Battle) endRound() {
	b.emit(Event{Kind: EventRoundEnded, Message: fmt.Sprintf("Round %d over", b.turns.Round())})
	b.turns.BeginRound(b.Player, b.Enemies)
	b.emit(Event{Kind: EventTurnStarted, Actor: b.Player, Message: PhasePlayer.String()})
}

// checkOutcome ends the battle on victory or defeat
func (b *Battle) checkOutcome() bool {
	switch {
	case !b.Player.IsAlive():
		b.turns.Finish(PhaseDefeat)
		b.emit(Event{Kind: EventDefeat, Actor: b.Player, Message: "You were defeated!"})
		return true
	case b.LivingEnemies() == 0:
		b.turns.Finish(PhaseVictory)
		b.emit(Event{Kind: EventVictory, Actor: b.Player, Message: "All robots destroyed!"})
		return true
	}
	return false
}

// FillCharge tops up the super punch charge
func (b *Battle) FillCharge() {
	b.Player.AddCharge(rules.ChargeThreshold)
}

// HurtPlayer plays the hurt reaction without dealing damage
func (b *Battle) HurtPlayer() {
	if b.Player.IsAlive() {
		b.Player.Anim.Set(entity.AnimHurt)
	}
}

// ForcePlayerTurn abandons the enemy round and starts a new player turn
func (b *Battle) ForcePlayerTurn() {
	if b.Phase().Over() {
		return
	}
	if b.current != nil && !b.current.actor.IsPlayer() {
		if b.current.motion != nil {
			b.movement.Cancel(b.current.motion)
		} else {
			b.current.actor.Anim.Set(entity.AnimIdle)
		}
		b.current = nil
	}
	if b.Phase() == PhaseEnemy {
		b.endRound()
	}
}

func (b *Battle) emit(ev Event) {
	ev.Phase = b.turns.Phase()
	ev.Round = b.turns.Round()
	for _, l := range b.listeners {
		l(ev)
	}
}

func isPlayerAbility(a rules.Ability) bool {
	for _, pa := range rules.PlayerAbilities {
		if pa == a {
			return true
		}
	}
	return false
}

// rejectMessage turns an error into the HUD message line
func rejectMessage(err error) string {
	switch {
	case errors.Is(err, ErrOutOfBounds), errors.Is(err, ErrNotAdjacent), errors.Is(err, ErrCellOccupied):
		return "You can't go there!"
	case errors.Is(err, ErrChargeNotReady):
		return "You don't have enough charge for that!"
	case errors.Is(err, ErrNoActionPoints):
		return "Not enough action points!"
	case errors.Is(err, ErrOutOfRange):
		return "Too far away!"
	case errors.Is(err, ErrNoTarget):
		return "Nothing to punch there!"
	case errors.Is(err, ErrNotPlayerTurn):
		return "Wait for your turn!"
	default:
		return err.Error()
	}
}
