package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/defender/internal/application/system"
)

func TestBattleFactory(t *testing.T) {
	var events []system.Event
	factory := battleFactory(42, []system.Listener{func(ev system.Event) {
		events = append(events, ev)
	}})

	first, err := factory()
	require.NoError(t, err)
	first.Start()
	assert.NotEmpty(t, events, "listeners are attached")

	same, err := battleFactory(42, nil)()
	require.NoError(t, err)
	for i, e := range first.Enemies {
		assert.Equal(t, e.Cell, same.Enemies[i].Cell, "same seed places enemy %d identically", i)
	}

	again, err := factory()
	require.NoError(t, err)
	assert.NotSame(t, first, again)
}
