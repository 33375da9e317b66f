package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrInvalidConfig is returned when a config file parses but is unusable
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Sprites *SpritesConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.readJSON("display.json", &cfg); err != nil {
		return nil, err
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, fmt.Errorf("display.json: window %dx%d: %w", cfg.Window.Width, cfg.Window.Height, ErrInvalidConfig)
	}
	if cfg.Font.File == "" {
		return nil, fmt.Errorf("display.json: font file missing: %w", ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadSprites loads sprites.json
func (l *Loader) LoadSprites() (*SpritesConfig, error) {
	var cfg SpritesConfig
	if err := l.readJSON("sprites.json", &cfg); err != nil {
		return nil, err
	}
	for name, sheet := range map[string]SheetConfig{"player": cfg.Player, "enemy": cfg.Enemy} {
		if len(sheet.Animations) == 0 {
			return nil, fmt.Errorf("sprites.json: %s has no animations: %w", name, ErrInvalidConfig)
		}
		for state, anim := range sheet.Animations {
			if anim.Frames <= 0 || anim.Left == "" || anim.Right == "" {
				return nil, fmt.Errorf("sprites.json: %s %s: %w", name, state, ErrInvalidConfig)
			}
		}
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (display, sprites)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	sprites, err := l.LoadSprites()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Sprites: sprites,
	}, nil
}
