package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-screenfit/config"
	"ebiten-screenfit/ecs"
	"ebiten-screenfit/systems"
)

// Insets used by the notch toggle when the settings leave them at zero
const (
	simulatedTopInset    = 47
	simulatedBottomInset = 34
)

// HUDScreen is the main scene: a cover-filled background, a centered logo,
// a title under the top safe area and score/lives in the bottom corners
type HUDScreen struct {
	*BaseScreen
	resize   *systems.ResizeSystem
	safeArea config.SafeAreaSettings
	notch    bool

	background *systems.Sprite
	logo       *systems.Sprite
	title      *systems.Label
	score      *systems.Label
	lives      *systems.Label

	dprSubscription ecs.SubscriptionID
}

// NewHUDScreen creates the HUD. safeArea holds the insets the notch toggle
// switches between.
func NewHUDScreen(align *systems.AlignSystem, resize *systems.ResizeSystem, safeArea config.SafeAreaSettings) *HUDScreen {
	if safeArea.Top == 0 && safeArea.Bottom == 0 {
		safeArea = config.SafeAreaSettings{Top: simulatedTopInset, Bottom: simulatedBottomInset}
	}

	s := &HUDScreen{
		BaseScreen: NewBaseScreen(align),
		resize:     resize,
		safeArea:   safeArea,
		background: systems.NewSprite(ebiten.NewImageFromImage(
			checkerboard(256, 256, 32, color.RGBA{247, 118, 122, 255}, color.RGBA{232, 96, 104, 255}),
		)),
		logo: systems.NewSprite(ebiten.NewImageFromImage(
			framedPanel(320, 180, 6, color.RGBA{40, 40, 60, 255}, color.White),
		)),
		title: systems.NewLabel(config.WindowTitle, nil, color.White),
		score: systems.NewLabel("", nil, color.RGBA{255, 230, 150, 255}),
		lives: systems.NewLabel("", nil, color.RGBA{255, 230, 150, 255}),
	}
	s.SetScore(0)
	s.SetLives(3)

	// text scale depends on the ratio; the resize system lays out again
	// after the event, so the memo must not short-circuit that pass
	s.dprSubscription = align.Metrics().On(ecs.EventDPRChanged, func(ecs.Event) {
		s.Metrics().Forget(s)
	})

	return s
}

// SetScore updates the score label
func (s *HUDScreen) SetScore(score int) {
	s.score.SetText(fmt.Sprintf("Score: %d", score))
	s.relayout()
}

// SetLives updates the lives label
func (s *HUDScreen) SetLives(lives int) {
	s.lives.SetText(fmt.Sprintf("Lives: %d", lives))
	s.relayout()
}

func (s *HUDScreen) relayout() {
	s.Metrics().Forget(s)
	s.Resize()
}

// Close releases the DPR subscription
func (s *HUDScreen) Close() {
	s.Metrics().Off(s.dprSubscription)
	s.Metrics().Forget(s)
}

// Update toggles the simulated notch with F2
func (s *HUDScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		s.notch = !s.notch
		if s.notch {
			s.resize.SetSafeArea(s.safeArea.Top, s.safeArea.Bottom)
		} else {
			s.resize.SetSafeArea(0, 0)
		}
	}
	return nil
}

// Resize implements the Screen interface
func (s *HUDScreen) Resize() {
	m := s.Metrics()
	width, height := s.GetWidth(), s.GetHeight()
	if width <= 0 || height <= 0 {
		return
	}
	if m.IsResized(s) {
		return
	}

	a := s.Align()
	textScale := m.DevicePixelRatio() * 2

	a.ScaleToFillScreen(s.background, 0, 0)

	a.ScaleToFitScreenAndCenter(s.logo, 0.5, 0.35)
	a.PositionVerticalFraction(s.logo, systems.Frac(0.5), systems.Frac(0.45))

	a.ScaleToFitWithinSize(s.title, width*0.8, height*0.1,
		systems.WithMaxScale(textScale*2), systems.WithMinScale(1))
	a.PositionHorizontalFraction(s.title, systems.Center)
	a.AlignToTopEdge(s.title, systems.Frac(1.5), systems.Frac(2.5))
	s.title.SetY(s.title.Y() + m.TopSafeAreaPx())

	for _, label := range []*systems.Label{s.score, s.lives} {
		a.ScaleToFitWithinSize(label, width*0.4, height*0.06,
			systems.WithMaxScale(textScale), systems.WithMinScale(1))
		a.AlignToBottomEdge(label, systems.Frac(1))
		label.SetY(label.Y() - m.BottomSafeAreaPx())
	}
	a.AlignToLeftEdge(s.score, systems.Frac(0.6))
	a.AlignToRightEdge(s.lives, systems.Frac(0.6))
}

// Draw renders the HUD
func (s *HUDScreen) Draw(screen *ebiten.Image) {
	s.background.Draw(screen)
	s.logo.Draw(screen)
	s.title.Draw(screen)
	s.score.Draw(screen)
	s.lives.Draw(screen)
}
