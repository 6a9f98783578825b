package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-screenfit/systems"
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct {
	align *systems.AlignSystem
}

// NewBaseScreen creates a new base screen
func NewBaseScreen(align *systems.AlignSystem) *BaseScreen {
	return &BaseScreen{align: align}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {
	// Base screen does nothing by default
}

// Resize implements the Screen interface
func (s *BaseScreen) Resize() {}

// Align returns the align system the screen lays out with
func (s *BaseScreen) Align() *systems.AlignSystem {
	return s.align
}

// Metrics returns the screen metrics
func (s *BaseScreen) Metrics() *systems.ScreenMetrics {
	return s.align.Metrics()
}

// GetWidth returns the screen width
func (s *BaseScreen) GetWidth() float64 {
	return s.Metrics().Width()
}

// GetHeight returns the screen height
func (s *BaseScreen) GetHeight() float64 {
	return s.Metrics().Height()
}
