package system

import (
	"log"
)

// NewLogListener writes each event with a message to logger.
// Rejections include the underlying error.
func NewLogListener(logger *log.Logger) Listener {
	return func(ev Event) {
		switch {
		case ev.Kind == EventRejected && ev.Err != nil:
			logger.Printf("%s (%v)", ev.Message, ev.Err)
		case ev.Message != "":
			logger.Printf("[round %d] %s", ev.Round, ev.Message)
		}
	}
}
