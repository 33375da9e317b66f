package state

// GameState represents the current state of the playing screen
type GameState int

const (
	StatePlaying GameState = iota
	StateMenu
	StateInfo
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateMenu:
		return "Menu"
	case StateInfo:
		return "Info"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Paused returns true while an overlay blocks board input
func (s GameState) Paused() bool {
	return s == StateMenu || s == StateInfo
}

// Ended returns true once the battle has a winner
func (s GameState) Ended() bool {
	return s == StateGameOver || s == StateVictory
}
