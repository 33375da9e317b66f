// Package playing provides the battle scene.
package playing

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/defender/internal/application/hud"
	"github.com/younwookim/defender/internal/application/replay"
	"github.com/younwookim/defender/internal/application/scene"
	"github.com/younwookim/defender/internal/application/state"
	"github.com/younwookim/defender/internal/application/system"
	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
	"github.com/younwookim/defender/internal/infrastructure/assets"
	"github.com/younwookim/defender/internal/infrastructure/config"
)

// Options configures a Playing scene
type Options struct {
	Config *config.GameConfig
	Assets *assets.Set // nil draws flat placeholders

	Seed       int64
	RecordPath string       // empty disables recording
	Replay     *replay.Data // non-nil replays a recording instead of reading the mouse
	Debug      bool         // enables the H, S and L keys

	// Listeners are added to every battle, including restarts
	Listeners []system.Listener

	// Input defaults to PollInput
	Input func() Input
}

// Playing is the battle scene
type Playing struct {
	opts   Options
	battle *system.Battle
	layout *hud.Layout
	state  state.GameState
	resume state.GameState // state restored when the menu closes
	dt     float64

	// Deterministic RNG
	rng   *rand.Rand
	seed  int64
	frame int

	recorder *Recorder
	replayer *replay.Replayer

	message    string
	armed      rules.Ability
	armedSet   bool
	hoverCell  int
	hoverOK    bool
	hoverBtn   hud.Button
	hoverEntry hud.MenuItem
}

// New creates a battle scene and sets up the first battle.
func New(opts Options) (*Playing, error) {
	if opts.Config == nil || opts.Config.Display == nil {
		return nil, fmt.Errorf("playing: %w", config.ErrInvalidConfig)
	}
	if opts.Input == nil {
		opts.Input = PollInput
	}

	display := opts.Config.Display
	framerate := display.Window.Framerate
	if framerate <= 0 {
		framerate = 60
	}

	p := &Playing{
		opts: opts,
		layout: hud.NewLayout(display.Window.Width, display.Window.Height,
			rules.Rows, rules.Cols, display.HUD.Rows, display.HUD.Border, display.HUD.APSlots),
		dt:   1.0 / float64(framerate),
		seed: opts.Seed,
	}

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.seed = opts.Replay.Seed
		log.Printf("Replaying session %s (%d commands, seed: %d)", p.replayer.SessionID(), p.replayer.TotalCommands(), p.seed)
	}

	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// reset builds a fresh battle from p.seed
func (p *Playing) reset() error {
	p.rng = rand.New(rand.NewSource(p.seed))
	b, err := system.NewBattle(p.rng)
	if err != nil {
		return fmt.Errorf("new battle: %w", err)
	}
	if p.opts.Config.Sprites != nil {
		b.SetAnimSpecs(AnimSpecs(p.opts.Config.Sprites))
	}
	for _, l := range p.opts.Listeners {
		b.AddListener(l)
	}
	b.AddListener(p.onEvent)

	p.battle = b
	p.state = state.StatePlaying
	p.resume = state.StatePlaying
	p.frame = 0
	p.message = ""
	p.armedSet = false

	if p.opts.RecordPath != "" && p.replayer == nil {
		p.recorder = NewRecorder(p.seed)
		log.Printf("Recording enabled: %s (seed: %d)", p.opts.RecordPath, p.seed)
	}

	b.Start()
	return nil
}

// AnimSpecs converts the sprite sheet config into animation timings.
// Unknown state names are skipped.
func AnimSpecs(cfg *config.SpritesConfig) system.AnimSpecs {
	specs := system.DefaultAnimSpecs()
	for kind, sheet := range map[entity.Kind]config.SheetConfig{
		entity.KindPlayer: cfg.Player,
		entity.KindEnemy:  cfg.Enemy,
	} {
		for name, anim := range sheet.Animations {
			s, ok := entity.ParseAnimState(name)
			if !ok {
				continue
			}
			specs[kind][s] = system.AnimSpec{Frames: anim.Frames, FrameTime: anim.FrameTime}
		}
	}
	return specs
}

func (p *Playing) onEvent(ev system.Event) {
	if ev.Message != "" && ev.Kind != system.EventTurnStarted {
		p.message = ev.Message
	}
	switch ev.Kind {
	case system.EventVictory:
		p.end(state.StateVictory)
	case system.EventDefeat:
		p.end(state.StateGameOver)
	}
}

func (p *Playing) end(s state.GameState) {
	p.state = s
	p.resume = s
	// Auto-save recording when the battle is decided
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	in := p.opts.Input()
	p.hover(in)

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(in)
	case state.StateMenu:
		if err := p.updateMenu(in); err != nil {
			return nil, err
		}
	case state.StateInfo:
		if in.Info || in.Menu || in.Click {
			p.state = p.resume
		}
	case state.StateGameOver, state.StateVictory:
		// keep animations running under the overlay
		p.battle.Update(p.dt)
		switch {
		case in.Restart:
			if err := p.restart(); err != nil {
				return nil, err
			}
		case in.Menu:
			p.state = state.StateMenu
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) hover(in Input) {
	p.hoverCell, p.hoverOK = p.layout.CellAt(in.MouseX, in.MouseY)
	p.hoverBtn = p.layout.ButtonAt(in.MouseX, in.MouseY)
	p.hoverEntry = p.layout.MenuItemAt(in.MouseX, in.MouseY)
}

func (p *Playing) updatePlaying(in Input) {
	switch {
	case in.Menu:
		p.state = state.StateMenu
		return
	case in.Info:
		p.state = state.StateInfo
		return
	}

	// F5: Save recording manually
	if in.Save && p.recorder != nil {
		p.saveRecording()
	}

	if p.replayer != nil {
		for _, cmd := range p.replayer.Due(p.frame) {
			p.apply(cmd)
		}
	} else {
		p.handleInput(in)
	}

	p.battle.Update(p.dt)
	p.frame++
}

func (p *Playing) handleInput(in Input) {
	if p.opts.Debug {
		switch {
		case in.Hurt:
			p.issue(replay.Command{K: replay.CommandHurt})
		case in.Charge:
			p.issue(replay.Command{K: replay.CommandFillCharge})
		case in.Force:
			p.issue(replay.Command{K: replay.CommandForceTurn})
		}
	}

	if !in.Click {
		return
	}

	switch p.hoverBtn {
	case hud.ButtonMenu:
		p.state = state.StateMenu
		return
	case hud.ButtonEndTurn:
		p.armedSet = false
		p.issue(replay.Command{K: replay.CommandEndTurn})
		return
	case hud.ButtonDoublePunch:
		p.arm(rules.AbilityDoublePunch)
		return
	case hud.ButtonSuperPunch:
		p.arm(rules.AbilitySuperPunch)
		return
	}

	if !p.hoverOK {
		return
	}
	if target := p.battle.FighterAt(p.hoverCell); target != nil && !target.IsPlayer() {
		ability := rules.AbilityDoublePunch
		if p.armedSet {
			ability = p.armed
		}
		p.armedSet = false
		p.issue(replay.Command{K: replay.CommandAttack, C: p.hoverCell, A: int(ability)})
		return
	}
	p.armedSet = false
	p.issue(replay.Command{K: replay.CommandMove, C: p.hoverCell})
}

// arm selects the ability used by the next click on an enemy.
// Choosing the armed ability again disarms it.
func (p *Playing) arm(a rules.Ability) {
	if p.armedSet && p.armed == a {
		p.armedSet = false
		p.message = ""
		return
	}
	if a == rules.AbilitySuperPunch && !p.battle.Player.ChargeFull() {
		p.message = "You don't have enough charge for that!"
		return
	}
	p.armed = a
	p.armedSet = true
	p.message = fmt.Sprintf("%s: pick a robot next to you", a)
}

// issue records a command and applies it
func (p *Playing) issue(cmd replay.Command) {
	cmd.F = p.frame
	if p.recorder != nil {
		p.recorder.Record(cmd)
	}
	p.apply(cmd)
}

// apply executes a recorded or live command against the battle.
// Rejections are reported through the battle's listeners.
func (p *Playing) apply(cmd replay.Command) {
	switch cmd.K {
	case replay.CommandMove:
		_ = p.battle.Submit(system.MoveIntent{To: cmd.C})
	case replay.CommandAttack:
		_ = p.battle.Submit(system.AttackIntent{Target: cmd.C, Ability: rules.Ability(cmd.A)})
	case replay.CommandEndTurn:
		_ = p.battle.Submit(system.EndTurnIntent{})
	case replay.CommandFillCharge:
		p.battle.FillCharge()
	case replay.CommandForceTurn:
		p.battle.ForcePlayerTurn()
	case replay.CommandHurt:
		p.battle.HurtPlayer()
	default:
		log.Printf("Unknown replay command %q at frame %d", cmd.K, cmd.F)
	}
}

func (p *Playing) updateMenu(in Input) error {
	if in.Menu {
		p.state = p.resume
		return nil
	}
	if !in.Click {
		return nil
	}
	switch p.hoverEntry {
	case hud.MenuExit:
		p.state = p.resume
	case hud.MenuInfo:
		p.state = state.StateInfo
	case hud.MenuClose:
		return scene.ErrQuit
	}
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	err := p.recorder.Save(filename)
	switch {
	case errors.Is(err, replay.ErrEmpty):
		// nothing happened yet
	case err != nil:
		log.Printf("Failed to save recording: %v", err)
	default:
		log.Printf("Recording saved: %s (%d commands)", filename, p.recorder.CommandCount())
	}
}

func (p *Playing) restart() error {
	if p.replayer != nil {
		p.replayer.Reset()
	} else {
		p.seed = time.Now().UnixNano()
	}
	return p.reset()
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(_, _ int) (int, int) {
	return int(p.layout.Width), int(p.layout.Height)
}

// Battle returns the running battle
func (p *Playing) Battle() *system.Battle {
	return p.battle
}

// State returns the overlay state of the scene
func (p *Playing) State() state.GameState {
	return p.state
}

// Message returns the HUD message line
func (p *Playing) Message() string {
	return p.message
}
