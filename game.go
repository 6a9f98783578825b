package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-screenfit/config"
	"ebiten-screenfit/screens"
	"ebiten-screenfit/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	logger  *systems.Logger
	metrics *systems.ScreenMetrics
	align   *systems.AlignSystem
	resize  *systems.ResizeSystem
	camera  *systems.Camera
	stack   *screens.ScreenStack
	hud     *screens.HUDScreen
}

// NewGame creates a new game instance
func NewGame(settings config.Settings, out *log.Logger) *Game {
	logger := systems.NewLogger(out, systems.NewMessageLog(settings.Log.MaxMessages))
	logger.SetEnabled(settings.Log.Enabled)

	metrics := systems.NewScreenMetrics(
		systems.WithResizeTolerance(settings.Layout.ResizeTolerance),
		systems.WithSafeAreaDebounce(settings.Layout.SafeAreaDebounce.Duration),
		systems.WithNarrowLandscapeAspect(settings.Layout.NarrowLandscapeAspect),
	)

	// The game screen starts at the window origin
	camera := systems.NewCamera(0, 0)
	metrics.Init(camera)

	align := systems.NewAlignSystem(metrics, logger)
	resize := systems.NewResizeSystem(metrics, logger, nil)

	stack := screens.NewScreenStack()
	resize.Register(stack)

	hud := screens.NewHUDScreen(align, resize, settings.SafeArea)
	stack.Push(hud)

	if settings.SafeArea.Top != 0 || settings.SafeArea.Bottom != 0 {
		resize.SetSafeArea(settings.SafeArea.Top, settings.SafeArea.Bottom)
	}

	logger.Info("game created", "window", fmt.Sprintf("%dx%d", settings.Window.Width, settings.Window.Height))

	return &Game{
		logger:  logger,
		metrics: metrics,
		align:   align,
		resize:  resize,
		camera:  camera,
		stack:   stack,
		hud:     hud,
	}
}

// Update updates the game state.
func (g *Game) Update() error {
	// Toggle debug log window with F1
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		if _, open := g.stack.Peek().(*screens.DebugScreen); open {
			g.stack.Pop()
		} else {
			g.stack.Push(screens.NewDebugScreen(g.align, g.logger.History()))
		}
		return nil
	}

	// Show the current screen metrics with F3
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.stack.Push(g.metricsModal())
		return nil
	}

	return g.stack.Update()
}

// metricsModal builds a popup describing the current screen
func (g *Game) metricsModal() *screens.ModalScreen {
	m := g.metrics
	canvasW, canvasH := m.CanvasSize()
	viewportW, viewportH := m.ViewportSize()

	orientation := "landscape"
	switch {
	case m.IsPortrait():
		orientation = "portrait"
	case m.IsLandscapeNarrow():
		orientation = "landscape (narrow)"
	}

	modal := screens.NewModalScreen(g.align, "SCREEN METRICS", 0.7, 0.5)
	modal.SetLines(
		fmt.Sprintf("dpr: %.2f", m.DevicePixelRatio()),
		fmt.Sprintf("canvas: %dx%d", canvasW, canvasH),
		fmt.Sprintf("viewport: %dx%d", viewportW, viewportH),
		"orientation: "+orientation,
		fmt.Sprintf("safe area: top %.0fpx bottom %.0fpx", m.TopSafeAreaPx(), m.BottomSafeAreaPx()),
	)
	return modal
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)

	// Print FPS for debugging
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
}

// Layout implements ebiten.Game's Layout. The returned size is in device
// pixels so the game renders at native resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.resize.Layout(outsideWidth, outsideHeight)
}

// Close releases screen subscriptions
func (g *Game) Close() {
	g.hud.Close()
}
