// Package rules holds the compiled-in battle constants.
//
// Grid layout, roster size, stats and timings are fixed for the demo and are
// deliberately not loaded from configuration files.
package rules

// Board dimensions
const (
	Rows  = 9
	Cols  = 20
	Cells = Rows * Cols
)

// Player
const (
	PlayerName         = "Luffy"
	PlayerStartCell    = 89
	PlayerMaxHealth    = 100
	PlayerActionPoints = 10
	PlayerMoveTime     = 0.3 // seconds to cross one cell
)

// Enemies
const (
	EnemyCount        = 6
	EnemyNamePrefix   = "Robot"
	EnemyMaxHealth    = 100
	EnemyActionPoints = 1
	EnemyMoveTime     = 1.0
)

// Charge (super punch resource)
const (
	ChargeThreshold = 100
	StartingCharge  = 0
)

// Hurt reaction
const (
	HurtDuration  = 0.3
	HurtKnockback = 5.0 // pixels at the peak of the sway
)

// AttackRange is the maximum Manhattan distance for a melee attack.
const AttackRange = 1

// DamageRange is an inclusive [Min, Max] damage interval.
type DamageRange struct {
	Min int
	Max int
}

// Ability identifies an attack.
type Ability int

const (
	AbilityStrike Ability = iota // enemy attack
	AbilityDoublePunch
	AbilitySuperPunch
)

// String returns the display name of the ability
func (a Ability) String() string {
	switch a {
	case AbilityStrike:
		return "Strike"
	case AbilityDoublePunch:
		return "Double Punch"
	case AbilitySuperPunch:
		return "Super Punch"
	default:
		return "Unknown"
	}
}

// AbilityDef describes cost, damage and animation length of an ability.
type AbilityDef struct {
	Ability     Ability
	APCost      int
	Damage      DamageRange
	NeedsCharge bool
	Duration    float64 // seconds until the hit lands
}

// Abilities lists every attack by id.
var Abilities = map[Ability]AbilityDef{
	AbilityStrike: {
		Ability:  AbilityStrike,
		APCost:   1,
		Damage:   DamageRange{Min: 5, Max: 9},
		Duration: 1.4,
	},
	AbilityDoublePunch: {
		Ability:  AbilityDoublePunch,
		APCost:   2,
		Damage:   DamageRange{Min: 10, Max: 18},
		Duration: 0.7,
	},
	AbilitySuperPunch: {
		Ability:     AbilitySuperPunch,
		APCost:      5,
		Damage:      DamageRange{Min: 35, Max: 50},
		NeedsCharge: true,
		Duration:    1.1,
	},
}

// PlayerAbilities are the attacks offered on the HUD, in button order.
var PlayerAbilities = []Ability{AbilityDoublePunch, AbilitySuperPunch}

// Obstacles are the cells blocked by scenery on the background image.
var Obstacles = []int{
	92, 93, 94, 95, 112, 113, 114, 115, 132, 133, 134, 135,
	47, 48, 27, 28, 67, 98, 175, 143, 144, 146, 147,
	31, 32, 33, 34, 35, 37, 38,
}

// InfoText is shown by the info key and the menu.
const InfoText = `Punch all the robots to death!
Click on the ground next to you to move, one cell per action point.
Dealing and receiving damage charges your Super Punch. Use it to deal massive damage.
You get ten Action Points per turn. Walking costs 1 AP per block, the double punch costs 2 AP and the super punch costs 5 AP.`
