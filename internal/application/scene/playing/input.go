package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the input state of one frame
type Input struct {
	MouseX, MouseY float64
	Click          bool

	Menu    bool // Esc
	Info    bool // I
	Restart bool // R
	Save    bool // F5

	// debug keys
	Hurt   bool // H
	Charge bool // S
	Force  bool // L
}

// PollInput reads the current keyboard and mouse state from ebiten
func PollInput() Input {
	mx, my := ebiten.CursorPosition()
	return Input{
		MouseX:  float64(mx),
		MouseY:  float64(my),
		Click:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Menu:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Info:    inpututil.IsKeyJustPressed(ebiten.KeyI),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
		Hurt:    inpututil.IsKeyJustPressed(ebiten.KeyH),
		Charge:  inpututil.IsKeyJustPressed(ebiten.KeyS),
		Force:   inpututil.IsKeyJustPressed(ebiten.KeyL),
	}
}
