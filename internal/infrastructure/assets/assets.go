// Package assets loads images, sprite sheets and fonts for the ebiten front-end.
package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/infrastructure/config"

	_ "image/png"
)

// Set is everything the battle scene draws with
type Set struct {
	Background *ebiten.Image
	Sheets     Sheets
	Font       *text.GoTextFaceSource
	Face       *text.GoTextFace
	SmallFace  *text.GoTextFace
	Palette    Palette
}

// Load reads the background, sprite sheets and font from fsys.
// Paths in the configs are relative to the root of fsys.
func Load(fsys fs.FS, display *config.DisplayConfig, sprites *config.SpritesConfig) (*Set, error) {
	palette, err := NewPalette(display.Colors)
	if err != nil {
		return nil, err
	}

	set := &Set{Sheets: make(Sheets), Palette: palette}

	if display.Background != "" {
		set.Background, err = LoadImage(fsys, display.Background)
		if err != nil {
			return nil, err
		}
	}

	for kind, sheet := range map[entity.Kind]config.SheetConfig{
		entity.KindPlayer: sprites.Player,
		entity.KindEnemy:  sprites.Enemy,
	} {
		if err := set.loadSheet(fsys, kind, sheet); err != nil {
			return nil, err
		}
	}

	set.Font, err = LoadFont(fsys, display.Font.File)
	if err != nil {
		return nil, err
	}
	set.Face = &text.GoTextFace{Source: set.Font, Size: display.Font.Size}
	set.SmallFace = &text.GoTextFace{Source: set.Font, Size: display.Font.SmallSize}

	return set, nil
}

func (s *Set) loadSheet(fsys fs.FS, kind entity.Kind, sheet config.SheetConfig) error {
	for name, anim := range sheet.Animations {
		state, ok := entity.ParseAnimState(name)
		if !ok {
			return fmt.Errorf("%s sprites: unknown animation %q: %w", kind, name, config.ErrInvalidConfig)
		}
		for facing, file := range map[entity.Facing]string{
			entity.FacingLeft:  anim.Left,
			entity.FacingRight: anim.Right,
		} {
			img, err := LoadImage(fsys, path.Join(sheet.Dir, file))
			if err != nil {
				return err
			}
			s.Sheets.Put(kind, state, facing, NewStrip(img, anim.Frames))
		}
	}
	return nil
}

// LoadImage decodes a PNG from fsys into an ebiten image
func LoadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", name, err)
	}
	return img, nil
}

// LoadFont reads a TTF or OTF font from fsys
func LoadFont(fsys fs.FS, name string) (*text.GoTextFaceSource, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", name, err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	return src, nil
}
