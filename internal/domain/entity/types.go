package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// PlayerID is reserved for the player character; enemies start at 1.
const PlayerID EntityID = 0

// Kind tells the player apart from enemies
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Direction is one of the four grid steps
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (row, col) offset of one step in this direction
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Facing is the horizontal direction a sprite looks at.
// Sprite sheets only exist for left and right.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 when facing right and -1 when facing left
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}
