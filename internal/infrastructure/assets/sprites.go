package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/defender/internal/domain/entity"
)

// Strip is a horizontal sprite sheet of equally wide frames
type Strip struct {
	Image  *ebiten.Image
	Frames int
}

// NewStrip wraps img as a strip of frames
func NewStrip(img *ebiten.Image, frames int) *Strip {
	if frames < 1 {
		frames = 1
	}
	return &Strip{Image: img, Frames: frames}
}

// Frame returns frame i, wrapped into range
func (s *Strip) Frame(i int) *ebiten.Image {
	return s.Image.SubImage(frameRect(s.Image.Bounds(), s.Frames, i)).(*ebiten.Image)
}

// FrameSize returns the size of one frame
func (s *Strip) FrameSize() (w, h int) {
	r := frameRect(s.Image.Bounds(), s.Frames, 0)
	return r.Dx(), r.Dy()
}

func frameRect(b image.Rectangle, frames, i int) image.Rectangle {
	if frames < 1 {
		frames = 1
	}
	i %= frames
	if i < 0 {
		i += frames
	}
	w := b.Dx() / frames
	x := b.Min.X + i*w
	return image.Rect(x, b.Min.Y, x+w, b.Max.Y)
}

// Sheets holds one strip per kind, animation state and facing
type Sheets map[entity.Kind]map[entity.AnimState][2]*Strip

// Put stores a strip
func (s Sheets) Put(kind entity.Kind, state entity.AnimState, facing entity.Facing, strip *Strip) {
	states, ok := s[kind]
	if !ok {
		states = make(map[entity.AnimState][2]*Strip)
		s[kind] = states
	}
	pair := states[state]
	pair[facing] = strip
	states[state] = pair
}

// Get returns the strip for a state, falling back to idle.
// It returns nil when the kind has no idle strip either.
func (s Sheets) Get(kind entity.Kind, state entity.AnimState, facing entity.Facing) *Strip {
	states := s[kind]
	if strip := states[state][facing]; strip != nil {
		return strip
	}
	return states[entity.AnimIdle][facing]
}
