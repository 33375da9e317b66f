package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/defender/internal/application/system"
	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
)

// Board geometry in terminal cells
const (
	boardX    = 1
	boardY    = 2
	cellWidth = 3
)

// Styles
var (
	styleDefault  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHurt     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOrange)
	styleHealth   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleAP       = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleCharge   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// View is what the renderer needs besides the battle
type View struct {
	Hover    int
	HoverOK  bool
	Armed    rules.Ability
	ArmedSet bool
	Message  string
	Info     bool
	Ended    bool
}

// Renderer handles drawing the battle to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellAt maps a terminal position to a board cell
func CellAt(x, y int) (int, bool) {
	col := (x - boardX) / cellWidth
	row := y - boardY
	if x < boardX || row < 0 || row >= rules.Rows || col >= rules.Cols {
		return 0, false
	}
	return row*rules.Cols + col, true
}

// Render draws the board, the status lines and any overlay.
func (r *Renderer) Render(b *system.Battle, v View) {
	r.screen.Clear()

	r.screen.Print(boardX, 0, fmt.Sprintf(" %s - Round %d ", b.Phase(), b.Round()), styleBanner)

	for cell := 0; cell < b.Grid.Size(); cell++ {
		r.drawCell(b, v, cell)
	}

	y := boardY + rules.Rows + 1
	p := b.Player
	r.screen.Print(boardX, y, fmt.Sprintf("HP %3d/%d ", p.Health, p.MaxHealth), styleHealth)
	r.screen.Print(boardX+12, y, "AP "+meter(p.ActionPoints, p.MaxAP), styleAP)
	r.screen.Print(boardX+12+3+p.MaxAP+2, y, fmt.Sprintf("CHARGE %3d%%", p.Charge*100/rules.ChargeThreshold), styleCharge)

	armed := "-"
	if v.ArmedSet {
		armed = v.Armed.String()
	}
	r.screen.Print(boardX, y+1, fmt.Sprintf("[1] Double Punch  [2] Super Punch  [e] End turn   armed: %s", armed), styleDefault)
	r.screen.Print(boardX, y+2, v.Message, styleMessage)

	help := "arrows/click: move or punch   i: info   q: quit"
	if v.Ended {
		help = "r: play again   q: quit"
	}
	r.screen.Print(boardX, y+3, help, styleDefault)

	if v.Info {
		r.drawInfo()
	}

	r.screen.Show()
}

func (r *Renderer) drawCell(b *system.Battle, v View, cell int) {
	row, col := b.Grid.RowCol(cell)
	x, y := boardX+col*cellWidth, boardY+row

	glyph, style := '.', styleFloor
	switch f := b.FighterAt(cell); {
	case f != nil && f.IsPlayer():
		glyph, style = '@', stylePlayer
	case f != nil:
		glyph, style = rune('0'+f.ID%10), styleEnemy
	case b.Grid.Occupied(cell):
		glyph, style = '#', styleObstacle
	}
	if f := b.FighterAt(cell); f != nil && f.Anim.State == entity.AnimHurt {
		style = styleHurt
	}
	if v.HoverOK && v.Hover == cell {
		style = style.Background(tcell.ColorDarkSlateGray)
	}

	r.screen.SetContent(x, y, ' ', style)
	r.screen.SetContent(x+1, y, glyph, style)
	r.screen.SetContent(x+2, y, ' ', style)
}

func (r *Renderer) drawInfo() {
	lines := strings.Split(rules.InfoText, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	for i, l := range lines {
		r.screen.Print(boardX, boardY+1+i, " "+l+strings.Repeat(" ", w-len(l))+" ", styleBanner)
	}
}

func meter(n, total int) string {
	n = min(max(n, 0), total)
	return strings.Repeat("o", n) + strings.Repeat(".", total-n)
}
