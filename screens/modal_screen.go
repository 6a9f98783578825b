package screens

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-screenfit/systems"
)

// ModalScreen represents a popup window that appears on top of other screens.
// The panel takes a share of the screen and the text is fitted inside it.
type ModalScreen struct {
	*BaseScreen
	panel          *systems.Sprite
	title          *systems.Label
	lines          []*systems.Label
	widthFraction  float64
	heightFraction float64
}

// NewModalScreen creates a modal covering the given share of the screen
func NewModalScreen(align *systems.AlignSystem, title string, widthFraction, heightFraction float64) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(align),
		panel: systems.NewSprite(ebiten.NewImageFromImage(
			framedPanel(400, 240, 3, color.RGBA{0, 0, 0, 200}, color.White),
		)),
		title:          systems.NewLabel(title, nil, color.White),
		widthFraction:  widthFraction,
		heightFraction: heightFraction,
	}
}

// SetLines replaces the body text, one label per line
func (s *ModalScreen) SetLines(lines ...string) {
	s.lines = s.lines[:0]
	for _, line := range lines {
		s.lines = append(s.lines, systems.NewLabel(line, nil, color.RGBA{200, 200, 200, 255}))
	}
	s.Resize()
}

// Update closes the modal on Enter or Escape
func (s *ModalScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// Resize fits the panel and stacks the text inside it
func (s *ModalScreen) Resize() {
	if s.GetWidth() <= 0 || s.GetHeight() <= 0 {
		return
	}
	a := s.Align()

	if err := a.ScaleToFitScreenAndCenter(s.panel, s.widthFraction, s.heightFraction); err != nil {
		return
	}

	panelTop := s.panel.Y() - s.panel.DisplayHeight()/2
	innerWidth := s.panel.DisplayWidth() * 0.9
	rowHeight := s.panel.DisplayHeight() / float64(len(s.lines)+2)

	titleScale, err := a.ScaleToFitWithinSize(s.title, innerWidth, rowHeight*0.8)
	if err != nil {
		titleScale = math.Inf(1)
	}
	s.title.SetX(s.panel.X())
	s.title.SetY(panelTop + rowHeight*0.75)

	// body text never grows past the title
	for i, line := range s.lines {
		a.ScaleToFitWithinSize(line, innerWidth, rowHeight*0.6, systems.WithMaxScale(titleScale))
		line.SetX(s.panel.X())
		line.SetY(panelTop + rowHeight*(float64(i)+1.75))
	}
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	s.panel.Draw(screen)
	s.title.Draw(screen)
	for _, line := range s.lines {
		line.Draw(screen)
	}
}
