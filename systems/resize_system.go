package systems

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Resizable is implemented by anything that re-lays itself out when the
// game screen changes
type Resizable interface {
	Resize()
}

// MonitorScaleFactor reads the device scale factor of the current monitor
func MonitorScaleFactor() float64 {
	return ebiten.Monitor().DeviceScaleFactor()
}

// ResizeSystem turns Ebitengine layout calls into ScreenMetrics updates.
//
// Layout is called every frame, so the system caches the last ratio and
// canvas size and only touches the metrics and the registered targets when
// either of them actually changed.
type ResizeSystem struct {
	metrics     *ScreenMetrics
	logger      *Logger
	scaleFactor func() float64

	storedDPR          float64
	storedCanvasWidth  int
	storedCanvasHeight int

	targets []Resizable
}

// NewResizeSystem creates a resize system. A nil scaleFactor reads the
// monitor through Ebitengine.
func NewResizeSystem(metrics *ScreenMetrics, logger *Logger, scaleFactor func() float64) *ResizeSystem {
	if scaleFactor == nil {
		scaleFactor = MonitorScaleFactor
	}
	if logger == nil {
		logger = NewLogger(nil, nil)
	}
	return &ResizeSystem{
		metrics:     metrics,
		logger:      logger,
		scaleFactor: scaleFactor,
	}
}

// Register adds a target notified after every effective resize
func (r *ResizeSystem) Register(target Resizable) {
	r.targets = append(r.targets, target)
}

// UpdateDevicePixelRatio reads the native ratio, falling back to 1, and
// forwards it to the metrics when it changed
func (r *ResizeSystem) UpdateDevicePixelRatio() float64 {
	nativeDPR := r.scaleFactor()
	if nativeDPR <= 0 || math.IsNaN(nativeDPR) {
		nativeDPR = 1
	}

	if nativeDPR != r.storedDPR {
		r.storedDPR = nativeDPR
		r.metrics.SetDevicePixelRatio(nativeDPR)
		r.logger.Info("got native dpr", "dpr", nativeDPR)
	}
	return nativeDPR
}

// Layout takes the outside size in device-independent pixels and returns
// the canvas size in device pixels. Use it as ebiten.Game's Layout.
func (r *ResizeSystem) Layout(outsideWidth, outsideHeight int) (int, int) {
	previousDPR := r.storedDPR
	dpr := r.UpdateDevicePixelRatio()

	viewportWidth := int(math.Round(float64(outsideWidth) * dpr))
	viewportHeight := int(math.Round(float64(outsideHeight) * dpr))

	canvasWidth := viewportWidth
	canvasHeight := viewportHeight

	// moving between monitors can change the ratio but keep the canvas size
	if canvasWidth == r.storedCanvasWidth && canvasHeight == r.storedCanvasHeight && dpr == previousDPR {
		return canvasWidth, canvasHeight
	}

	if r.storedCanvasWidth != 0 {
		r.logger.Debug("stored canvas size", "width", r.storedCanvasWidth, "height", r.storedCanvasHeight)
	}
	r.storedCanvasWidth = canvasWidth
	r.storedCanvasHeight = canvasHeight

	r.metrics.ApplyResize(canvasWidth, canvasHeight, viewportWidth, viewportHeight)
	r.logger.Info("handle resize", "res", fmt.Sprintf("%dx%d", canvasWidth, canvasHeight))

	r.notify()
	return canvasWidth, canvasHeight
}

// SetSafeArea updates both insets and re-lays out the targets if either
// changed
func (r *ResizeSystem) SetSafeArea(top, bottom float64) {
	if top == r.metrics.topSafeAreaRaw && bottom == r.metrics.bottomSafeAreaRaw {
		return
	}
	r.metrics.SetTopSafeAreaRaw(top)
	r.metrics.SetBottomSafeAreaRaw(bottom)

	r.logger.Info("safe area changed", "top", top, "bottom", bottom)
	r.notify()
}

func (r *ResizeSystem) notify() {
	for _, target := range r.targets {
		target.Resize()
	}
}
