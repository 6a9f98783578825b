package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a center-anchored image that implements Alignable.
// Width and Height report the frame size; DisplayWidth and DisplayHeight
// include the scale.
type Sprite struct {
	image  *ebiten.Image
	x, y   float64
	width  float64
	height float64
	scale  float64
}

// NewSprite wraps an image. A nil image gives a zero-size sprite, which
// the scaling functions refuse to touch.
func NewSprite(img *ebiten.Image) *Sprite {
	s := &Sprite{image: img, scale: 1}
	if img != nil {
		bounds := img.Bounds()
		s.width = float64(bounds.Dx())
		s.height = float64(bounds.Dy())
	}
	return s
}

func (s *Sprite) X() float64     { return s.x }
func (s *Sprite) SetX(x float64) { s.x = x }
func (s *Sprite) Y() float64     { return s.y }
func (s *Sprite) SetY(y float64) { s.y = y }

// Width returns the unscaled frame width
func (s *Sprite) Width() float64 { return s.width }

// Height returns the unscaled frame height
func (s *Sprite) Height() float64 { return s.height }

// DisplayWidth returns the width after scaling
func (s *Sprite) DisplayWidth() float64 { return s.width * s.scale }

// DisplayHeight returns the height after scaling
func (s *Sprite) DisplayHeight() float64 { return s.height * s.scale }

// SetScale sets a uniform scale
func (s *Sprite) SetScale(factor float64) { s.scale = factor }

// Scale returns the current uniform scale
func (s *Sprite) Scale() float64 { return s.scale }

// Draw renders the sprite centered on its position
func (s *Sprite) Draw(screen *ebiten.Image) {
	if s.image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.width/2, -s.height/2)
	op.GeoM.Scale(s.scale, s.scale)
	op.GeoM.Translate(s.x, s.y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.image, op)
}
