package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/defender/internal/application/hud"
	"github.com/younwookim/defender/internal/application/state"
	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
	"github.com/younwookim/defender/internal/infrastructure/assets"
)

// Colors for placeholder rendering without sprites
var (
	colorBG        = color.RGBA{60, 90, 60, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorEnemy     = color.RGBA{200, 100, 100, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorDisabled  = color.RGBA{150, 120, 90, 255}
	colorOverlayGO = color.RGBA{100, 0, 0, 180}
)

func (p *Playing) palette() assets.Palette {
	if p.opts.Assets != nil {
		return p.opts.Assets.Palette
	}
	return assets.DefaultPalette()
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	pal := p.palette()

	p.drawBackground(screen)
	if p.state == state.StatePlaying {
		p.drawSelection(screen, pal)
	}
	p.drawFighters(screen)
	p.drawHUD(screen, pal)

	// Draw state overlays
	switch p.state {
	case state.StateMenu:
		p.drawMenu(screen, pal)
	case state.StateInfo:
		p.drawInfo(screen, pal)
	case state.StateGameOver:
		p.drawEnd(screen, pal, "DEFEAT", colorOverlayGO)
	case state.StateVictory:
		p.drawEnd(screen, pal, "VICTORY", pal.Overlay)
	}
}

func (p *Playing) drawBackground(screen *ebiten.Image) {
	if p.opts.Assets == nil || p.opts.Assets.Background == nil {
		screen.Fill(colorBG)
		return
	}
	bg := p.opts.Assets.Background
	b := bg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.layout.Width/float64(b.Dx()), p.layout.Height/float64(b.Dy()))
	screen.DrawImage(bg, op)
}

// drawSelection outlines the hovered cell and crosses it out when taken
func (p *Playing) drawSelection(screen *ebiten.Image, pal assets.Palette) {
	if !p.hoverOK {
		return
	}
	r := p.layout.CellRect(p.hoverCell)
	strokeRect(screen, r, 2, pal.Selection)

	if !p.battle.Grid.Occupied(p.hoverCell) {
		return
	}
	if f := p.battle.FighterAt(p.hoverCell); f != nil && !f.IsPlayer() && p.battle.CanAttack(p.hoverCell, p.attackAbility()) == nil {
		return
	}
	inset := r.W * 0.2
	x0, y0 := float32(r.X+inset), float32(r.Y+inset)
	x1, y1 := float32(r.X+r.W-inset), float32(r.Y+r.H-inset)
	vector.StrokeLine(screen, x0, y0, x1, y1, 4, pal.Blocked, true)
	vector.StrokeLine(screen, x0, y1, x1, y0, 4, pal.Blocked, true)
}

func (p *Playing) attackAbility() rules.Ability {
	if p.armedSet {
		return p.armed
	}
	return rules.AbilityDoublePunch
}

func (p *Playing) drawFighters(screen *ebiten.Image) {
	for _, f := range p.battle.Fighters() {
		if f.Defeated && !f.IsPlayer() {
			continue
		}
		cell := p.layout.CellRect(f.Cell)
		x := cell.X + f.OffsetX*p.layout.CellW + p.battle.Sway(f)
		y := cell.Y + f.OffsetY*p.layout.CellH

		if !p.drawSprite(screen, f, x, y) {
			c := colorEnemy
			if f.IsPlayer() {
				c = colorPlayer
			}
			vector.DrawFilledRect(screen, float32(x+cell.W*0.2), float32(y+cell.H*0.1),
				float32(cell.W*0.6), float32(cell.H*0.8), c, false)
		}

		if !f.IsPlayer() {
			// health bar above enemies
			bw := cell.W * 0.8
			bx, by := float32(x+cell.W*0.1), float32(y+2)
			vector.DrawFilledRect(screen, bx, by, float32(bw), 4, colorHealthBG, false)
			vector.DrawFilledRect(screen, bx, by, float32(bw*f.HealthRatio()), 4, colorHealthFG, false)
		}
	}
}

// drawSprite draws the current animation frame of f scaled to one cell.
// It returns false when no sprite sheet is loaded for f.
func (p *Playing) drawSprite(screen *ebiten.Image, f *entity.Fighter, x, y float64) bool {
	if p.opts.Assets == nil {
		return false
	}
	strip := p.opts.Assets.Sheets.Get(f.Kind, f.Anim.State, f.Facing)
	if strip == nil {
		return false
	}
	fw, fh := strip.FrameSize()
	if fw == 0 || fh == 0 {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.layout.CellW/float64(fw), p.layout.CellH/float64(fh))
	op.GeoM.Translate(x, y)
	screen.DrawImage(strip.Frame(f.Anim.Frame), op)
	return true
}

func (p *Playing) drawHUD(screen *ebiten.Image, pal assets.Palette) {
	l := p.layout
	player := p.battle.Player

	fillRect(screen, l.Panel, pal.Panel)
	inner := hud.Rect{X: l.Panel.X + l.Border, Y: l.Panel.Y + l.Border, W: l.Panel.W - 2*l.Border, H: l.Panel.H - 2*l.Border}
	fillRect(screen, inner, pal.PanelInner)

	// HP
	p.drawLabel(screen, "HP", hud.Rect{X: 2 * l.Border, Y: l.HealthBar.Y, W: l.HealthBar.X - 2*l.Border, H: l.HealthBar.H}, pal.Text)
	fillRect(screen, l.HealthBar, pal.Button)
	hp := l.HealthBar
	hp.W *= player.HealthRatio()
	fillRect(screen, hp, pal.Health)
	p.drawSmall(screen, fmt.Sprintf("%d/%d", player.Health, player.MaxHealth), l.HealthBar, pal.Text)

	// AP
	p.drawLabel(screen, "AP", hud.Rect{X: 2 * l.Border, Y: l.APRow.Y, W: l.APRow.X - 2*l.Border, H: l.APRow.H}, pal.Text)
	for i := 0; i < l.APSlots; i++ {
		cx, cy, r := l.APDot(i)
		if i < player.ActionPoints {
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), pal.ActionPoint, true)
		} else {
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 2, pal.ActionPoint, true)
		}
	}

	for _, b := range hud.Buttons {
		p.drawButton(screen, pal, b)
	}

	// Charge
	fillRect(screen, l.ChargeBar, pal.Button)
	charge := l.ChargeBar
	charge.W *= float64(player.Charge) / float64(rules.ChargeThreshold)
	fillRect(screen, charge, pal.Charge)
	p.drawSmall(screen, fmt.Sprintf("CHARGE %d%%", player.Charge*100/rules.ChargeThreshold), l.ChargeBar, pal.Text)

	// Banner and message over the board
	banner := fmt.Sprintf("%s - Round %d", p.battle.Phase(), p.battle.Round())
	if p.replayer != nil {
		banner += " (replay)"
	}
	fillRect(screen, l.Banner, pal.Overlay)
	p.drawLabel(screen, banner, l.Banner, color.White)
	if p.message != "" {
		p.drawText(screen, p.message, p.smallFace(), l.Message.X+l.Message.W, l.Message.Y+l.Message.H/2, color.White, text.AlignEnd)
	}
}

func (p *Playing) drawButton(screen *ebiten.Image, pal assets.Palette, b hud.Button) {
	r := p.layout.ButtonRect(b)
	c := pal.Button
	switch {
	case b == hud.ButtonSuperPunch && !p.battle.Player.ChargeFull():
		c = colorDisabled
	case p.armedSet && abilityButton(p.armed) == b:
		c = pal.Charge
	case p.hoverBtn == b && p.state == state.StatePlaying:
		c = pal.ButtonHover
	}
	fillRect(screen, r, c)
	strokeRect(screen, r, 2, pal.Panel)
	p.drawLabel(screen, b.Label(), r, pal.Text)
}

func abilityButton(a rules.Ability) hud.Button {
	switch a {
	case rules.AbilityDoublePunch:
		return hud.ButtonDoublePunch
	case rules.AbilitySuperPunch:
		return hud.ButtonSuperPunch
	default:
		return hud.ButtonNone
	}
}

func (p *Playing) drawMenu(screen *ebiten.Image, pal assets.Palette) {
	fillRect(screen, hud.Rect{W: p.layout.Width, H: p.layout.Height}, pal.Overlay)
	fillRect(screen, p.layout.Menu, pal.Panel)
	for _, m := range hud.MenuItems {
		r := p.layout.MenuItemRect(m)
		c := pal.Button
		if p.hoverEntry == m {
			c = pal.ButtonHover
		}
		fillRect(screen, r, c)
		p.drawLabel(screen, m.Label(), r, pal.Text)
	}
}

func (p *Playing) drawInfo(screen *ebiten.Image, pal assets.Palette) {
	fillRect(screen, hud.Rect{W: p.layout.Width, H: p.layout.Height}, pal.Overlay)
	r := p.layout.Info
	fillRect(screen, r, pal.PanelInner)
	strokeRect(screen, r, 4, pal.Panel)
	msg := rules.InfoText + "\n\nPress I or Esc to close."
	if p.opts.Assets == nil {
		ebitenutil.DebugPrintAt(screen, msg, int(r.X+20), int(r.Y+20))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+20, r.Y+20)
	op.LineSpacing = p.opts.Assets.SmallFace.Size * 1.5
	op.ColorScale.ScaleWithColor(pal.Text)
	text.Draw(screen, msg, p.opts.Assets.SmallFace, op)
}

func (p *Playing) drawEnd(screen *ebiten.Image, pal assets.Palette, title string, overlay color.Color) {
	fillRect(screen, hud.Rect{W: p.layout.Width, H: p.layout.Height}, overlay)
	cx, cy := p.layout.Width/2, p.layout.Height/2
	p.drawText(screen, title, p.face(), cx, cy-30, color.White, text.AlignCenter)
	p.drawText(screen, fmt.Sprintf("Round %d - press R to restart", p.battle.Round()), p.smallFace(), cx, cy+20, color.White, text.AlignCenter)
}

func (p *Playing) face() *text.GoTextFace {
	if p.opts.Assets == nil {
		return nil
	}
	return p.opts.Assets.Face
}

func (p *Playing) smallFace() *text.GoTextFace {
	if p.opts.Assets == nil {
		return nil
	}
	return p.opts.Assets.SmallFace
}

// drawLabel centers s in r with the regular face
func (p *Playing) drawLabel(screen *ebiten.Image, s string, r hud.Rect, c color.Color) {
	cx, cy := r.Center()
	p.drawText(screen, s, p.face(), cx, cy, c, text.AlignCenter)
}

// drawSmall centers s in r with the small face
func (p *Playing) drawSmall(screen *ebiten.Image, s string, r hud.Rect, c color.Color) {
	cx, cy := r.Center()
	p.drawText(screen, s, p.smallFace(), cx, cy, c, text.AlignCenter)
}

// drawText draws one line vertically centered on y. Without a font it
// falls back to the debug font.
func (p *Playing) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color, align text.Align) {
	if face == nil {
		const charW, charH = 6, 16
		w := float64(len(s) * charW)
		switch align {
		case text.AlignCenter:
			x -= w / 2
		case text.AlignEnd:
			x -= w
		}
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y-charH/2))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func fillRect(screen *ebiten.Image, r hud.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r hud.Rect, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}
