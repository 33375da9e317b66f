package system

import "github.com/younwookim/defender/internal/domain/entity"

// Phase is the active side of the battle
type Phase int

const (
	PhasePlayer Phase = iota
	PhaseEnemy
	PhaseVictory
	PhaseDefeat
)

// String returns the banner text of the phase
func (p Phase) String() string {
	switch p {
	case PhasePlayer:
		return "Your Turn"
	case PhaseEnemy:
		return "Enemy Turn"
	case PhaseVictory:
		return "Victory"
	case PhaseDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// Over returns true for terminal phases
func (p Phase) Over() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// TurnSystem alternates the player turn with an ordered enemy round
type TurnSystem struct {
	phase   Phase
	round   int
	player  *entity.Fighter
	queue   []*entity.Fighter
	current int
}

// NewTurnSystem creates a new turn system
func NewTurnSystem() *TurnSystem {
	return &TurnSystem{}
}

// BeginRound resets every fighter's AP and hands the turn to the player
func (s *TurnSystem) BeginRound(player *entity.Fighter, enemies []*entity.Fighter) {
	s.round++
	s.player = player
	s.phase = PhasePlayer
	s.queue = s.queue[:0]
	s.current = 0

	player.ResetAP()
	player.HasActed = false
	for _, e := range enemies {
		e.ResetAP()
		e.HasActed = false
	}
}

// EndPlayerTurn queues the living enemies in roster order
func (s *TurnSystem) EndPlayerTurn(enemies []*entity.Fighter) {
	if s.player != nil {
		s.player.HasActed = true
	}
	s.phase = PhaseEnemy
	s.queue = s.queue[:0]
	s.current = 0
	for _, e := range enemies {
		if !e.IsAlive() {
			continue
		}
		e.HasActed = false
		s.queue = append(s.queue, e)
	}
}

// Current returns the fighter whose action is due, or nil when the
// enemy queue is exhausted or the battle is over.
func (s *TurnSystem) Current() *entity.Fighter {
	switch s.phase {
	case PhasePlayer:
		return s.player
	case PhaseEnemy:
		for s.current < len(s.queue) {
			if e := s.queue[s.current]; e.IsAlive() {
				return e
			}
			s.current++
		}
	}
	return nil
}

// Advance marks the current enemy as done and reports whether the
// enemy round is over.
func (s *TurnSystem) Advance() bool {
	if s.phase != PhaseEnemy {
		return false
	}
	if s.current < len(s.queue) {
		s.queue[s.current].HasActed = true
		s.current++
	}
	return s.Current() == nil
}

// Finish moves the battle into a terminal phase
func (s *TurnSystem) Finish(p Phase) {
	s.phase = p
}

// Phase returns the active phase
func (s *TurnSystem) Phase() Phase {
	return s.phase
}

// Round returns the 1-based round counter
func (s *TurnSystem) Round() int {
	return s.round
}

// Pending returns the number of enemies still to act this round
func (s *TurnSystem) Pending() int {
	if s.phase != PhaseEnemy {
		return 0
	}
	n := 0
	for _, e := range s.queue[s.current:] {
		if e.IsAlive() {
			n++
		}
	}
	return n
}
