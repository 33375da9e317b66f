package assets

import (
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/infrastructure/config"
	"golang.org/x/image/font/gofont/gomono"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}},
		{"00ff00", color.RGBA{0, 255, 0, 255}},
		{"#ffffff80", color.RGBA{128, 128, 128, 128}},
		{"#00000066", color.RGBA{0, 0, 0, 0x66}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrBadColor, bad)
	}
}

func TestNewPalette(t *testing.T) {
	p, err := NewPalette(config.ColorConfig{Health: "#010203"})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, p.Health)
	assert.Equal(t, DefaultPalette().Panel, p.Panel, "empty entries keep the default")

	_, err = NewPalette(config.ColorConfig{Charge: "blue"})
	assert.ErrorIs(t, err, ErrBadColor)
	assert.Contains(t, err.Error(), "charge")
}

func TestDefaultPalette_MatchesDisplayConfig(t *testing.T) {
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadDisplay()
	require.NoError(t, err)

	p, err := NewPalette(cfg.Colors)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), p)
}

func TestFrameRect(t *testing.T) {
	b := image.Rect(0, 0, 700, 100)

	assert.Equal(t, image.Rect(0, 0, 100, 100), frameRect(b, 7, 0))
	assert.Equal(t, image.Rect(600, 0, 700, 100), frameRect(b, 7, 6))
	assert.Equal(t, image.Rect(0, 0, 100, 100), frameRect(b, 7, 7), "wraps")
	assert.Equal(t, image.Rect(600, 0, 700, 100), frameRect(b, 7, -1))
	assert.Equal(t, b, frameRect(b, 0, 3), "zero frames is a single frame")
}

func TestSheets_GetFallsBackToIdle(t *testing.T) {
	s := make(Sheets)
	idle := &Strip{Frames: 4}
	walk := &Strip{Frames: 8}
	s.Put(entity.KindEnemy, entity.AnimIdle, entity.FacingLeft, idle)
	s.Put(entity.KindEnemy, entity.AnimRunning, entity.FacingLeft, walk)

	assert.Same(t, walk, s.Get(entity.KindEnemy, entity.AnimRunning, entity.FacingLeft))
	assert.Same(t, idle, s.Get(entity.KindEnemy, entity.AnimSpecial, entity.FacingLeft))
	assert.Nil(t, s.Get(entity.KindEnemy, entity.AnimIdle, entity.FacingRight))
	assert.Nil(t, s.Get(entity.KindPlayer, entity.AnimIdle, entity.FacingLeft))
}

func TestLoadFont(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/mono.ttf": {Data: gomono.TTF},
		"fonts/bad.ttf":  {Data: []byte("not a font")},
	}

	src, err := LoadFont(fsys, "fonts/mono.ttf")
	require.NoError(t, err)
	assert.NotNil(t, src)

	_, err = LoadFont(fsys, "fonts/bad.ttf")
	assert.Error(t, err)

	_, err = LoadFont(fsys, "fonts/missing.ttf")
	assert.Error(t, err)
}

func TestLoadImage_Missing(t *testing.T) {
	_, err := LoadImage(fstest.MapFS{}, "background.png")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "background.png")
}

func TestLoad_MissingBackground(t *testing.T) {
	display := &config.DisplayConfig{Background: "background.png"}
	_, err := Load(fstest.MapFS{}, display, &config.SpritesConfig{})
	assert.Error(t, err)
}

func TestLoad_BadColor(t *testing.T) {
	display := &config.DisplayConfig{Colors: config.ColorConfig{Text: "#12"}}
	_, err := Load(fstest.MapFS{}, display, &config.SpritesConfig{})
	assert.ErrorIs(t, err, ErrBadColor)
}
