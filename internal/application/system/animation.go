package system

import (
	"math"

	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
)

// AnimSpec is the frame count and per-frame time of one animation
type AnimSpec struct {
	Frames    int
	FrameTime float64
}

// AnimSpecs maps fighter kind and animation state to its spec
type AnimSpecs map[entity.Kind]map[entity.AnimState]AnimSpec

// DefaultAnimSpecs matches the bundled sprite sheets
func DefaultAnimSpecs() AnimSpecs {
	return AnimSpecs{
		entity.KindPlayer: {
			entity.AnimIdle:    {Frames: 7, FrameTime: 0.1},
			entity.AnimRunning: {Frames: 6, FrameTime: 0.05},
			entity.AnimAttack:  {Frames: 7, FrameTime: 0.1},
			entity.AnimSpecial: {Frames: 11, FrameTime: 0.1},
			entity.AnimHurt:    {Frames: 7, FrameTime: 0.1},
		},
		entity.KindEnemy: {
			entity.AnimIdle:    {Frames: 4, FrameTime: 0.7},
			entity.AnimRunning: {Frames: 8, FrameTime: 0.125},
			entity.AnimAttack:  {Frames: 7, FrameTime: 0.2},
			entity.AnimHurt:    {Frames: 1},
		},
	}
}

// Lookup returns the spec for kind and state, falling back to a single frame
func (a AnimSpecs) Lookup(kind entity.Kind, state entity.AnimState) AnimSpec {
	if byState, ok := a[kind]; ok {
		if spec, ok := byState[state]; ok {
			return spec
		}
	}
	return AnimSpec{Frames: 1}
}

// AnimationSystem advances sprite animations and the hurt reaction
type AnimationSystem struct {
	specs AnimSpecs
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem(specs AnimSpecs) *AnimationSystem {
	if specs == nil {
		specs = DefaultAnimSpecs()
	}
	return &AnimationSystem{specs: specs}
}

// Specs returns the animation table in use
func (s *AnimationSystem) Specs() AnimSpecs {
	return s.specs
}

// Update advances every living fighter by dt
func (s *AnimationSystem) Update(fighters []*entity.Fighter, dt float64) {
	for _, f := range fighters {
		if f.Defeated {
			continue
		}
		spec := s.specs.Lookup(f.Kind, f.Anim.State)
		f.Anim.Advance(dt, spec.FrameTime, spec.Frames)

		if f.Anim.State == entity.AnimHurt && f.Anim.StateTime >= rules.HurtDuration {
			f.Anim.Set(entity.AnimIdle)
		}
	}
}

// Sway returns the horizontal knock-back in pixels of a hurt fighter.
// The fighter is pushed away from the way it faces.
func (s *AnimationSystem) Sway(f *entity.Fighter) float64 {
	if f.Anim.State != entity.AnimHurt {
		return 0
	}
	t := math.Min(f.Anim.StateTime, rules.HurtDuration)
	return -f.Facing.Sign() * rules.HurtKnockback * math.Sin(math.Pi*t/rules.HurtDuration)
}
