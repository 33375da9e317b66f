package assets

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/younwookim/defender/internal/infrastructure/config"
)

// ErrBadColor is returned for color strings that are not #rrggbb or #rrggbbaa
var ErrBadColor = errors.New("bad color")

// Palette holds the parsed HUD colors
type Palette struct {
	Panel       color.RGBA
	PanelInner  color.RGBA
	Text        color.RGBA
	Button      color.RGBA
	ButtonHover color.RGBA
	Health      color.RGBA
	ActionPoint color.RGBA
	Charge      color.RGBA
	Selection   color.RGBA
	Blocked     color.RGBA
	Overlay     color.RGBA
}

// DefaultPalette matches the colors shipped in display.json, premultiplied
func DefaultPalette() Palette {
	return Palette{
		Panel:       color.RGBA{0xb3, 0x66, 0x1a, 0xff},
		PanelInner:  color.RGBA{0xcc, 0x80, 0x33, 0xff},
		Text:        color.RGBA{0x99, 0x4d, 0x1a, 0xff},
		Button:      color.RGBA{0xe6, 0xb3, 0x66, 0xff},
		ButtonHover: color.RGBA{0xf2, 0xcc, 0x80, 0xff},
		Health:      color.RGBA{0xcc, 0x33, 0x33, 0xff},
		ActionPoint: color.RGBA{0x4d, 0x4d, 0xcc, 0xff},
		Charge:      color.RGBA{0x1a, 0xcc, 0xff, 0xff},
		Selection:   color.RGBA{0xb3, 0xb3, 0xb3, 0xb3},
		Blocked:     color.RGBA{0xe6, 0x26, 0x26, 0xff},
		Overlay:     color.RGBA{0x00, 0x00, 0x00, 0x66},
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
// The result is premultiplied, as ebiten expects.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	r, g, b, a := uint32(v>>24), uint32(v>>16&0xff), uint32(v>>8&0xff), uint32(v&0xff)
	return color.RGBA{
		R: uint8(r * a / 0xff),
		G: uint8(g * a / 0xff),
		B: uint8(b * a / 0xff),
		A: uint8(a),
	}, nil
}

// NewPalette parses every color of cfg. Empty entries keep the default.
func NewPalette(cfg config.ColorConfig) (Palette, error) {
	p := DefaultPalette()
	fields := []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"panel", cfg.Panel, &p.Panel},
		{"panelInner", cfg.PanelInner, &p.PanelInner},
		{"text", cfg.Text, &p.Text},
		{"button", cfg.Button, &p.Button},
		{"buttonHover", cfg.ButtonHover, &p.ButtonHover},
		{"health", cfg.Health, &p.Health},
		{"actionPoint", cfg.ActionPoint, &p.ActionPoint},
		{"charge", cfg.Charge, &p.Charge},
		{"selection", cfg.Selection, &p.Selection},
		{"blocked", cfg.Blocked, &p.Blocked},
		{"overlay", cfg.Overlay, &p.Overlay},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		c, err := ParseColor(f.src)
		if err != nil {
			return Palette{}, fmt.Errorf("color %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}
