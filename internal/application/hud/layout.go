// Package hud computes the screen geometry shared by the board, the
// bottom panel and the pause menu, and maps pointer positions to cells,
// buttons and menu items. It has no rendering dependency.
package hud

// Rect is an axis-aligned rectangle in screen pixels, Y pointing down
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle point of r
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Button identifies a clickable control on the bottom panel
type Button int

const (
	ButtonNone Button = iota
	ButtonMenu
	ButtonEndTurn
	ButtonDoublePunch
	ButtonSuperPunch
)

// Label returns the caption drawn on the button
func (b Button) Label() string {
	switch b {
	case ButtonMenu:
		return "MENU"
	case ButtonEndTurn:
		return "END TURN"
	case ButtonDoublePunch:
		return "DOUBLE PUNCH"
	case ButtonSuperPunch:
		return "SUPER PUNCH"
	default:
		return ""
	}
}

// Buttons lists the panel buttons in drawing order
var Buttons = []Button{ButtonMenu, ButtonEndTurn, ButtonDoublePunch, ButtonSuperPunch}

// MenuItem identifies an entry of the pause menu
type MenuItem int

const (
	MenuNone MenuItem = iota
	MenuExit
	MenuInfo
	MenuClose
)

// Label returns the caption of the menu entry
func (m MenuItem) Label() string {
	switch m {
	case MenuExit:
		return "Exit Menu"
	case MenuInfo:
		return "View Info"
	case MenuClose:
		return "Close Game"
	default:
		return ""
	}
}

// MenuItems lists the menu entries top to bottom
var MenuItems = []MenuItem{MenuExit, MenuInfo, MenuClose}

// Menu panel geometry
const (
	menuHalfW   = 150.0
	menuHalfH   = 100.0
	menuItemW   = 200.0
	menuItemH   = 50.0
	menuItemGap = 20.0 / 3.0
)

// Layout is the resolved screen geometry for one window size
type Layout struct {
	Width, Height float64
	Rows, Cols    int
	CellW, CellH  float64
	Border        float64
	APSlots       int

	Panel     Rect // bottom panel below the board
	HealthBar Rect
	APRow     Rect
	ChargeBar Rect
	Banner    Rect // turn banner, top left of the board
	Message   Rect // message line, top right of the board
	Menu      Rect
	Info      Rect

	buttons   map[Button]Rect
	menuItems map[MenuItem]Rect
}

// NewLayout splits a width x height window into a rows x cols board and a
// panel hudRows cells tall below it.
func NewLayout(width, height, rows, cols, hudRows int, border float64, apSlots int) *Layout {
	w, h := float64(width), float64(height)
	l := &Layout{
		Width:     w,
		Height:    h,
		Rows:      rows,
		Cols:      cols,
		CellW:     w / float64(cols),
		CellH:     h / float64(rows+hudRows),
		Border:    border,
		APSlots:   apSlots,
		buttons:   make(map[Button]Rect, len(Buttons)),
		menuItems: make(map[MenuItem]Rect, len(MenuItems)),
	}

	boardH := l.CellH * float64(rows)
	l.Panel = Rect{X: 0, Y: boardH, W: w, H: h - boardH}

	// three rows of controls in two columns
	rowH := (l.Panel.H - 6*border) / 3
	colW := (w - 5*border) / 2
	rowY := func(i int) float64 { return l.Panel.Y + 2*border + float64(i)*(rowH+border) }
	left := 2 * border
	right := colW + 3*border

	labelW := rowH * 2.2
	l.HealthBar = Rect{X: left + labelW, Y: rowY(0), W: colW - labelW, H: rowH}
	l.APRow = Rect{X: left + labelW, Y: rowY(1), W: colW - labelW, H: rowH}
	menu := Rect{X: left, Y: rowY(2), W: rowH * 4, H: rowH}
	l.buttons[ButtonMenu] = menu
	l.buttons[ButtonEndTurn] = Rect{X: menu.X + menu.W + 2*border, Y: rowY(2), W: rowH * 6, H: rowH}

	l.buttons[ButtonDoublePunch] = Rect{X: right, Y: rowY(0), W: colW, H: rowH}
	l.buttons[ButtonSuperPunch] = Rect{X: right, Y: rowY(1), W: colW, H: rowH}
	l.ChargeBar = Rect{X: right, Y: rowY(2), W: colW, H: rowH}

	l.Banner = Rect{X: border, Y: border, W: rowH * 7, H: rowH}
	l.Message = Rect{X: w / 2, Y: border, W: w/2 - border, H: rowH}

	l.Menu = Rect{X: w/2 - menuHalfW, Y: h/2 - menuHalfH, W: 2 * menuHalfW, H: 2 * menuHalfH}
	itemX := l.Menu.X + (l.Menu.W-menuItemW)/2
	for i, item := range MenuItems {
		y := l.Menu.Y + menuItemGap + float64(i)*(menuItemH+menuItemGap)
		l.menuItems[item] = Rect{X: itemX, Y: y, W: menuItemW, H: menuItemH}
	}

	l.Info = Rect{X: w * 0.1, Y: h * 0.2, W: w * 0.8, H: h * 0.45}
	return l
}

// ButtonRect returns the rectangle of b
func (l *Layout) ButtonRect(b Button) Rect {
	return l.buttons[b]
}

// MenuItemRect returns the rectangle of m
func (l *Layout) MenuItemRect(m MenuItem) Rect {
	return l.menuItems[m]
}

// CellRect returns the screen rectangle of a board cell
func (l *Layout) CellRect(idx int) Rect {
	row, col := idx/l.Cols, idx%l.Cols
	return Rect{X: float64(col) * l.CellW, Y: float64(row) * l.CellH, W: l.CellW, H: l.CellH}
}

// CellAt returns the board cell under (x, y)
func (l *Layout) CellAt(x, y float64) (int, bool) {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Panel.Y {
		return 0, false
	}
	col := int(x / l.CellW)
	row := int(y / l.CellH)
	if col >= l.Cols || row >= l.Rows {
		return 0, false
	}
	return row*l.Cols + col, true
}

// ButtonAt returns the panel button under (x, y)
func (l *Layout) ButtonAt(x, y float64) Button {
	for _, b := range Buttons {
		if l.buttons[b].Contains(x, y) {
			return b
		}
	}
	return ButtonNone
}

// MenuItemAt returns the menu entry under (x, y)
func (l *Layout) MenuItemAt(x, y float64) MenuItem {
	for _, m := range MenuItems {
		if l.menuItems[m].Contains(x, y) {
			return m
		}
	}
	return MenuNone
}

// APDot returns the center and radius of action point slot i
func (l *Layout) APDot(i int) (cx, cy, r float64) {
	d := l.APRow.H
	return l.APRow.X + d/2 + float64(i)*(d+l.Border), l.APRow.Y + d/2, d/2 - 2.5
}
