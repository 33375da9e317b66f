// Package placeholder generates stand-in art so the game runs without the
// original sprite sheets: a perlin-noise background, simple figure strips
// for every animation in sprites.json and the Go Mono font.
package placeholder

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/aquilax/go-perlin"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/younwookim/defender/internal/domain/entity"
	"github.com/younwookim/defender/internal/domain/rules"
	"github.com/younwookim/defender/internal/infrastructure/config"
)

// FrameSize is the edge of one placeholder sprite frame in pixels
const FrameSize = 64

// Palette for generated art
var (
	colorGrassDark  = color.RGBA{58, 92, 48, 255}
	colorGrassLight = color.RGBA{112, 156, 78, 255}
	colorRock       = color.RGBA{96, 88, 80, 255}
	colorRockEdge   = color.RGBA{60, 54, 50, 255}
	colorPlayer     = color.RGBA{220, 60, 40, 255}
	colorEnemy      = color.RGBA{150, 160, 175, 255}
	colorSkin       = color.RGBA{240, 200, 160, 255}
	colorMetal      = color.RGBA{90, 100, 115, 255}
	colorHurt       = color.RGBA{255, 80, 80, 255}
)

// Perlin parameters, same shape as the terrain noise in the server corpus
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 0.01
)

// Background renders grass noise over a width x height image and draws a
// rock on every obstacle cell of the board.
func Background(width, height, hudRows int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := (noise.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) + 1) / 2
			img.SetRGBA(x, y, lerp(colorGrassDark, colorGrassLight, v))
		}
	}

	cellW := width / rules.Cols
	cellH := height / (rules.Rows + hudRows)
	for _, cell := range rules.Obstacles {
		row, col := cell/rules.Cols, cell%rules.Cols
		r := image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)
		fill(img, r, colorRockEdge)
		fill(img, r.Inset(3), colorRock)
	}
	return img
}

// Strip renders a horizontal strip of frames for one animation
func Strip(kind entity.Kind, state entity.AnimState, facing entity.Facing, frames int) *image.RGBA {
	if frames < 1 {
		frames = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, frames*FrameSize, FrameSize))
	for i := 0; i < frames; i++ {
		drawFigure(img, i*FrameSize, kind, state, facing, i, frames)
	}
	return img
}

func drawFigure(img *image.RGBA, x0 int, kind entity.Kind, state entity.AnimState, facing entity.Facing, frame, frames int) {
	body, head := colorPlayer, colorSkin
	if kind == entity.KindEnemy {
		body, head = colorEnemy, colorMetal
	}
	if state == entity.AnimHurt {
		body = colorHurt
	}

	// bob up and down while idle or running
	bob := 0
	if state == entity.AnimIdle || state == entity.AnimRunning {
		bob = frame % 2 * 2
	}

	fill(img, image.Rect(x0+22, 26+bob, x0+42, 52+bob), body)
	fill(img, image.Rect(x0+24, 10+bob, x0+40, 26+bob), head)

	// legs alternate while running
	stride := 0
	if state == entity.AnimRunning {
		stride = (frame%2)*6 - 3
	}
	fill(img, image.Rect(x0+24+stride, 52+bob, x0+30+stride, 62), body)
	fill(img, image.Rect(x0+34-stride, 52+bob, x0+40-stride, 62), body)

	// fist extends toward the facing side during attacks
	if state == entity.AnimAttack || state == entity.AnimSpecial {
		reach := 4 + 16*frame/frames
		if state == entity.AnimSpecial {
			reach += 4
		}
		if facing == entity.FacingRight {
			fill(img, image.Rect(x0+42, 32, x0+42+reach, 38), head)
		} else {
			fill(img, image.Rect(x0+22-reach, 32, x0+22, 38), head)
		}
	}

	// eye on the facing side
	eye := x0 + 35
	if facing == entity.FacingLeft {
		eye = x0 + 27
	}
	fill(img, image.Rect(eye, 15+bob, eye+3, 18+bob), color.RGBA{0, 0, 0, 255})
}

// Generate writes the background, every sprite sheet named in sprites and the
// font named in display below dir.
func Generate(dir string, display *config.DisplayConfig, sprites *config.SpritesConfig, seed int64) error {
	if display.Background != "" {
		bg := Background(display.Window.Width, display.Window.Height, display.HUD.Rows, seed)
		if err := WritePNG(filepath.Join(dir, display.Background), bg); err != nil {
			return err
		}
	}

	for kind, sheet := range map[entity.Kind]config.SheetConfig{
		entity.KindPlayer: sprites.Player,
		entity.KindEnemy:  sprites.Enemy,
	} {
		for name, anim := range sheet.Animations {
			state, ok := entity.ParseAnimState(name)
			if !ok {
				return fmt.Errorf("%s sprites: unknown animation %q: %w", kind, name, config.ErrInvalidConfig)
			}
			for facing, file := range map[entity.Facing]string{
				entity.FacingLeft:  anim.Left,
				entity.FacingRight: anim.Right,
			} {
				img := Strip(kind, state, facing, anim.Frames)
				if err := WritePNG(filepath.Join(dir, sheet.Dir, file), img); err != nil {
					return err
				}
			}
		}
	}

	if display.Font.File != "" {
		if err := writeFile(filepath.Join(dir, display.Font.File), gomono.TTF); err != nil {
			return err
		}
	}
	return nil
}

// WritePNG encodes img to path, creating parent directories
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
