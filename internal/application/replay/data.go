package replay

// CommandKind names a recorded player command
type CommandKind string

const (
	CommandMove       CommandKind = "move"
	CommandAttack     CommandKind = "attack"
	CommandEndTurn    CommandKind = "end"
	CommandFillCharge CommandKind = "charge"
	CommandForceTurn  CommandKind = "force"
	CommandHurt       CommandKind = "hurt"
)

// Command records one player command and the frame it was issued on
type Command struct {
	F int         `json:"f"`           // Frame number
	K CommandKind `json:"k"`           // Kind
	C int         `json:"c,omitempty"` // Target cell
	A int         `json:"a,omitempty"` // Ability
}

// Data contains all data needed to replay a game session
type Data struct {
	Version   string    `json:"version"`
	SessionID string    `json:"sessionId"`
	Seed      int64     `json:"seed"`
	StartTime string    `json:"startTime"`
	Commands  []Command `json:"commands"`
}

// Version is written into new recordings
const Version = "2.0"
