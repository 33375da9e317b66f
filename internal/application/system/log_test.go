package system

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	listen := NewLogListener(log.New(&buf, "", 0))

	listen(Event{Kind: EventMoved, Round: 2, Message: "Moved!"})
	listen(Event{Kind: EventRejected, Message: "You can't go there!", Err: ErrNotAdjacent})
	listen(Event{Kind: EventRoundEnded})

	assert.Equal(t, "[round 2] Moved!\nYou can't go there! (destination not adjacent)\n", buf.String())
}
