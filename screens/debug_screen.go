package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"ebiten-screenfit/systems"
)

// DebugScreen shows the log history in a modal window
type DebugScreen struct {
	*BaseScreen
	history      *systems.MessageLog
	panel        *systems.Sprite
	title        *systems.Label
	scrollOffset int

	// derived in Resize
	textScale  float64
	lineHeight float64
	maxLines   int
}

// NewDebugScreen creates a new debug screen over the given history
func NewDebugScreen(align *systems.AlignSystem, history *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(align),
		history:    history,
		panel: systems.NewSprite(ebiten.NewImageFromImage(
			framedPanel(600, 400, 2, color.RGBA{0, 0, 0, 255}, color.White),
		)),
		title: systems.NewLabel("DEBUG LOG", nil, color.White),
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	// Handle scrolling through debug messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}

	// C clears the history
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.clearHistory()
	}

	// ESC to close debug window
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}

	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < len(s.history.Messages)-1 {
		s.scrollOffset++
	}
}

// clearHistory empties the log and scrolls back to the top
func (s *DebugScreen) clearHistory() {
	s.history.Clear()
	s.scrollOffset = 0
}

// Resize fits the panel into most of the screen and sizes the text rows
func (s *DebugScreen) Resize() {
	m := s.Metrics()
	if s.GetWidth() <= 0 || s.GetHeight() <= 0 {
		return
	}
	a := s.Align()

	if err := a.ScaleToFitScreenAndCenter(s.panel, 0.9, 0.8); err != nil {
		return
	}

	s.textScale = m.DevicePixelRatio()
	if s.textScale <= 0 {
		s.textScale = 1
	}
	a.ScaleToFitWithinSize(s.title, s.panel.DisplayWidth()*0.9, s.panel.DisplayHeight()*0.08,
		systems.WithMaxScale(s.textScale*1.5))
	s.title.SetX(s.panel.X())
	s.title.SetY(s.panel.Y() - s.panel.DisplayHeight()/2 + s.title.DisplayHeight())

	s.lineHeight = s.title.Height() * s.textScale
	s.maxLines = 0
	if s.lineHeight > 0 {
		s.maxLines = int((s.panel.DisplayHeight() - s.title.DisplayHeight()*3) / s.lineHeight)
	}
}

// visibleRange returns the slice bounds of the rows to draw, counted from
// the newest message
func (s *DebugScreen) visibleRange() (start, end int) {
	total := len(s.history.Messages)
	start = s.scrollOffset
	if start > total-s.maxLines {
		start = total - s.maxLines
	}
	if start < 0 {
		start = 0
	}
	end = start + s.maxLines
	if end > total {
		end = total
	}
	return start, end
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	s.panel.Draw(screen)
	s.title.Draw(screen)

	left := s.panel.X() - s.panel.DisplayWidth()/2 + 10*s.textScale
	top := s.title.Y() + s.title.DisplayHeight()

	start, end := s.visibleRange()
	rows := s.history.RecentMessages(end)
	for i, msg := range rows[start:] {
		op := &text.DrawOptions{}
		op.GeoM.Scale(s.textScale, s.textScale)
		op.GeoM.Translate(left, top+float64(i)*s.lineHeight)
		op.ColorScale.ScaleWithColor(msg.GetColor())
		text.Draw(screen, msg.Type.String()+" "+msg.Text, systems.DefaultFace, op)
	}
}
