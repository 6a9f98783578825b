package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face labels use unless told otherwise
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Label is a center-anchored line of text that implements Alignable.
// Its size is measured from the face every time the text changes.
type Label struct {
	text        string
	face        text.Face
	color       color.Color
	lineSpacing float64
	x, y        float64
	width       float64
	height      float64
	scale       float64
}

// NewLabel creates a label. A nil face uses DefaultFace.
func NewLabel(s string, face text.Face, clr color.Color) *Label {
	if face == nil {
		face = DefaultFace
	}
	l := &Label{
		face:        face,
		color:       clr,
		lineSpacing: face.Metrics().HAscent + face.Metrics().HDescent,
		scale:       1,
	}
	l.SetText(s)
	return l
}

// SetText replaces the text and re-measures it
func (l *Label) SetText(s string) {
	l.text = s
	l.width, l.height = text.Measure(s, l.face, l.lineSpacing)
}

// Text returns the current text
func (l *Label) Text() string { return l.text }

func (l *Label) X() float64     { return l.x }
func (l *Label) SetX(x float64) { l.x = x }
func (l *Label) Y() float64     { return l.y }
func (l *Label) SetY(y float64) { l.y = y }

// Width returns the unscaled text width
func (l *Label) Width() float64 { return l.width }

// Height returns the unscaled text height
func (l *Label) Height() float64 { return l.height }

// DisplayWidth returns the width after scaling
func (l *Label) DisplayWidth() float64 { return l.width * l.scale }

// DisplayHeight returns the height after scaling
func (l *Label) DisplayHeight() float64 { return l.height * l.scale }

// SetScale sets a uniform scale
func (l *Label) SetScale(factor float64) { l.scale = factor }

// Draw renders the label centered on its position
func (l *Label) Draw(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(-l.width/2, -l.height/2)
	op.GeoM.Scale(l.scale, l.scale)
	op.GeoM.Translate(l.x, l.y)
	op.LineSpacing = l.lineSpacing
	if l.color != nil {
		op.ColorScale.ScaleWithColor(l.color)
	}
	text.Draw(screen, l.text, l.face, op)
}
