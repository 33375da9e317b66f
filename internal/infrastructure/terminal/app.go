package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/defender/internal/application/system"
	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
)

// BattleFactory builds a fresh battle with its listeners attached
type BattleFactory func() (*system.Battle, error)

// App drives a battle from terminal input.
//
// Events are read on a helper goroutine and handed to the loop over a
// channel; only the loop goroutine touches the battle.
type App struct {
	screen    *Screen
	renderer  *Renderer
	newBattle BattleFactory
	battle    *system.Battle
	tps       int
	debug     bool

	view    View
	mouseDn bool
	quit    bool
}

// NewApp creates the app and its first battle
func NewApp(screen *Screen, newBattle BattleFactory, tps int, debug bool) (*App, error) {
	if tps <= 0 {
		tps = 60
	}
	a := &App{
		screen:    screen,
		renderer:  NewRenderer(screen),
		newBattle: newBattle,
		tps:       tps,
		debug:     debug,
	}
	if err := a.restart(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) restart() error {
	b, err := a.newBattle()
	if err != nil {
		return err
	}
	b.AddListener(a.onEvent)
	a.battle = b
	a.view = View{}
	b.Start()
	return nil
}

func (a *App) onEvent(ev system.Event) {
	if ev.Message != "" && ev.Kind != system.EventTurnStarted {
		a.view.Message = ev.Message
	}
	if ev.Kind == system.EventVictory || ev.Kind == system.EventDefeat {
		a.view.Ended = true
	}
}

// Battle returns the running battle
func (a *App) Battle() *system.Battle {
	return a.battle
}

// Run loops until the user quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	dt := 1.0 / float64(a.tps)
	ticker := time.NewTicker(time.Second / time.Duration(a.tps))
	defer ticker.Stop()

	a.renderer.Render(a.battle, a.view)
	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.Handle(ev); err != nil {
				return err
			}
		case <-ticker.C:
			a.Tick(dt)
		}
	}
	return nil
}

// Tick advances the battle and redraws
func (a *App) Tick(dt float64) {
	a.battle.Update(dt)
	a.renderer.Render(a.battle, a.view)
}

// Quit reports whether the user asked to leave
func (a *App) Quit() bool {
	return a.quit
}

// Handle applies one terminal event
func (a *App) Handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return nil
}

func (a *App) handleKey(ev *tcell.EventKey) error {
	if a.view.Info {
		a.view.Info = false
		return nil
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyUp:
		a.step(entity.DirUp)
	case tcell.KeyDown:
		a.step(entity.DirDown)
	case tcell.KeyLeft:
		a.step(entity.DirLeft)
	case tcell.KeyRight:
		a.step(entity.DirRight)
	case tcell.KeyEnter:
		a.endTurn()
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return nil
}

func (a *App) handleRune(r rune) error {
	switch r {
	case 'q', 'Q':
		a.quit = true
	case 'i', 'I':
		a.view.Info = true
	case 'e', 'E':
		a.endTurn()
	case '1':
		a.arm(rules.AbilityDoublePunch)
	case '2':
		a.arm(rules.AbilitySuperPunch)
	case 'r', 'R':
		if a.view.Ended {
			return a.restart()
		}
	}

	if !a.debug {
		return nil
	}
	switch r {
	case 'h', 'H':
		a.battle.HurtPlayer()
	case 's', 'S':
		a.battle.FillCharge()
	case 'l', 'L':
		a.battle.ForcePlayerTurn()
	}
	return nil
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	a.view.Hover, a.view.HoverOK = CellAt(x, y)

	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !a.mouseDn
	a.mouseDn = down
	if pressed && a.view.HoverOK {
		a.target(a.view.Hover)
	}
}

// step moves or punches toward a neighbor of the player
func (a *App) step(dir entity.Direction) {
	to, ok := a.battle.Grid.Neighbor(a.battle.Player.Cell, dir)
	if !ok {
		a.view.Message = "You can't go there!"
		return
	}
	a.target(to)
}

// target punches the enemy on cell or walks there
func (a *App) target(cell int) {
	if f := a.battle.FighterAt(cell); f != nil && !f.IsPlayer() {
		ability := rules.AbilityDoublePunch
		if a.view.ArmedSet {
			ability = a.view.Armed
		}
		a.view.ArmedSet = false
		_ = a.battle.Submit(system.AttackIntent{Target: cell, Ability: ability})
		return
	}
	_ = a.battle.Submit(system.MoveIntent{To: cell})
}

func (a *App) endTurn() {
	a.view.ArmedSet = false
	_ = a.battle.Submit(system.EndTurnIntent{})
}

func (a *App) arm(ability rules.Ability) {
	if a.view.ArmedSet && a.view.Armed == ability {
		a.view.ArmedSet = false
		return
	}
	a.view.Armed = ability
	a.view.ArmedSet = true
}
