package entity

// AnimState is the discrete animation a fighter is playing
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRunning
	AnimAttack
	AnimSpecial
	AnimHurt
)

// String returns the sprite-sheet key of the state
func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimRunning:
		return "running"
	case AnimAttack:
		return "attack"
	case AnimSpecial:
		return "special"
	case AnimHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// ParseAnimState maps a sprite-sheet key back to its state
func ParseAnimState(name string) (AnimState, bool) {
	for s := AnimIdle; s <= AnimHurt; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return AnimIdle, false
}

// Animator tracks the current frame of a sprite animation.
type Animator struct {
	State     AnimState
	Frame     int
	Elapsed   float64 // time since the last frame change
	StateTime float64 // time since the state was entered
}

// Set switches to a new state and rewinds the animation.
// Setting the current state again is a no-op.
func (a *Animator) Set(s AnimState) {
	if a.State == s {
		return
	}
	a.State = s
	a.Frame = 0
	a.Elapsed = 0
	a.StateTime = 0
}

// Advance moves the animation forward by dt, wrapping at frames.
func (a *Animator) Advance(dt, frameTime float64, frames int) {
	a.StateTime += dt
	if frames <= 1 || frameTime <= 0 {
		a.Frame = 0
		return
	}
	a.Elapsed += dt
	for a.Elapsed >= frameTime {
		a.Elapsed -= frameTime
		a.Frame = (a.Frame + 1) % frames
	}
}
