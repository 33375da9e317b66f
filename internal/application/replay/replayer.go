package replay

import (
	"time"

	"github.com/google/uuid"
)

// Replayer feeds recorded commands back frame by frame
type Replayer struct {
	data Data
	next int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Due returns the commands recorded for frame and advances past them.
// Commands for frames already passed are returned too, in order.
func (r *Replayer) Due(frame int) []Command {
	start := r.next
	for r.next < len(r.data.Commands) && r.data.Commands[r.next].F <= frame {
		r.next++
	}
	return r.data.Commands[start:r.next]
}

// Done returns true once every command has been handed out
func (r *Replayer) Done() bool {
	return r.next >= len(r.data.Commands)
}

// Remaining returns the number of commands not yet replayed
func (r *Replayer) Remaining() int {
	return len(r.data.Commands) - r.next
}

// TotalCommands returns the number of recorded commands
func (r *Replayer) TotalCommands() int {
	return len(r.data.Commands)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// SessionID returns the id of the recorded session
func (r *Replayer) SessionID() string {
	return r.data.SessionID
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.next = 0
}

// NewData starts an empty recording for seed
func NewData(seed int64) Data {
	return Data{
		Version:   Version,
		SessionID: uuid.NewString(),
		Seed:      seed,
		StartTime: time.Now().Format(time.RFC3339),
		Commands:  make([]Command, 0, 128),
	}
}
