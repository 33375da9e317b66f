package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/defender/internal/domain/rules"
)

func TestIntents(t *testing.T) {
	intents := []Intent{
		MoveIntent{To: 90},
		AttackIntent{Target: 90, Ability: rules.AbilityDoublePunch},
		EndTurnIntent{},
		WaitIntent{},
	}

	for _, i := range intents {
		i.isIntent() // Should not panic
	}

	attack := intents[1].(AttackIntent)
	assert.Equal(t, 90, attack.Target)
	assert.Equal(t, rules.AbilityDoublePunch, attack.Ability)
}
