package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/defender/internal/application/replay"
)

// Recorder collects player commands for replay
type Recorder struct {
	data      replay.Data
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data:      replay.NewData(seed),
		recording: true,
	}
}

// Record appends a command
func (r *Recorder) Record(cmd replay.Command) {
	if !r.recording {
		return
	}
	r.data.Commands = append(r.data.Commands, cmd)
}

// Save writes the recording to filename, zstd-compressed for .zst names
func (r *Recorder) Save(filename string) error {
	return replay.Save(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// CommandCount returns the number of recorded commands
func (r *Recorder) CommandCount() int {
	return len(r.data.Commands)
}

// Data returns the replay data (for testing)
func (r *Recorder) Data() replay.Data {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
