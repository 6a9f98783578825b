package systems

import (
	"math"
	"reflect"
	"time"

	"ebiten-screenfit/config"
	"ebiten-screenfit/ecs"
)

// DPRChangedEvent is emitted when the device pixel ratio changes
type DPRChangedEvent struct {
	Previous float64
	Current  float64
}

// Kind implements ecs.Event
func (e DPRChangedEvent) Kind() ecs.EventKind {
	return ecs.EventDPRChanged
}

type screenSize struct {
	w, h float64
}

// ScreenMetrics is the single source of truth for the game screen geometry.
//
// It holds the canvas and viewport size in device pixels, the device pixel
// ratio, safe-area insets and the camera origin, and derives edges and
// orientation from them. Nothing here validates input: negative sizes or a
// zero ratio are stored as given.
//
// ScreenMetrics is not safe for concurrent use. It is written by the resize
// handler and read by alignment code on the same goroutine.
type ScreenMetrics struct {
	canvasWidth    int
	canvasHeight   int
	viewportWidth  int
	viewportHeight int

	devicePixelRatio float64
	camera           CameraOrigin

	topSafeAreaRaw     float64
	bottomSafeAreaRaw  float64
	lastSafeAreaChange time.Time

	// last laid-out screen size per tracked entity
	previousSizes map[any]screenSize

	events *ecs.EventManager
	now    func() time.Time

	resizeTolerance       float64
	safeAreaDebounce      time.Duration
	narrowLandscapeAspect float64
}

// MetricsOption configures a ScreenMetrics
type MetricsOption func(*ScreenMetrics)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) MetricsOption {
	return func(m *ScreenMetrics) {
		m.now = now
	}
}

// WithResizeTolerance sets the default tolerance used by IsResized
func WithResizeTolerance(tolerance float64) MetricsOption {
	return func(m *ScreenMetrics) {
		m.resizeTolerance = tolerance
	}
}

// WithSafeAreaDebounce sets how long memoized sizes stay invalid after a
// safe-area change
func WithSafeAreaDebounce(d time.Duration) MetricsOption {
	return func(m *ScreenMetrics) {
		m.safeAreaDebounce = d
	}
}

// WithNarrowLandscapeAspect sets the aspect ratio under which landscape is
// considered narrow
func WithNarrowLandscapeAspect(aspect float64) MetricsOption {
	return func(m *ScreenMetrics) {
		m.narrowLandscapeAspect = aspect
	}
}

// NewScreenMetrics creates metrics with a zero-size canvas and a ratio of 0.
// The resize handler is expected to set both before anything is aligned.
func NewScreenMetrics(opts ...MetricsOption) *ScreenMetrics {
	m := &ScreenMetrics{
		previousSizes:         make(map[any]screenSize),
		events:                ecs.NewEventManager(),
		now:                   time.Now,
		resizeTolerance:       config.ResizeTolerance,
		safeAreaDebounce:      config.SafeAreaDebounce,
		narrowLandscapeAspect: config.NarrowLandscapeAspect,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init supplies the camera the game screen origin is read from.
// Call it from the first scene. Until then the origin is (0, 0).
func (m *ScreenMetrics) Init(camera CameraOrigin) {
	m.camera = camera
}

// On registers a handler for metrics events
func (m *ScreenMetrics) On(kind ecs.EventKind, handler ecs.EventHandler) ecs.SubscriptionID {
	return m.events.Subscribe(kind, handler)
}

// Off removes a handler registered with On
func (m *ScreenMetrics) Off(id ecs.SubscriptionID) bool {
	return m.events.Unsubscribe(id)
}

// SetDevicePixelRatio stores a new ratio and notifies DPR listeners.
// Setting the current value again does nothing.
func (m *ScreenMetrics) SetDevicePixelRatio(dpr float64) {
	if dpr == m.devicePixelRatio {
		return
	}
	previous := m.devicePixelRatio
	m.devicePixelRatio = dpr
	m.events.Emit(DPRChangedEvent{Previous: previous, Current: dpr})
}

// DevicePixelRatio returns the current device pixel ratio
func (m *ScreenMetrics) DevicePixelRatio() float64 {
	return m.devicePixelRatio
}

// ApplyResize overwrites the stored dimensions. No events are emitted.
func (m *ScreenMetrics) ApplyResize(canvasWidth, canvasHeight, viewportWidth, viewportHeight int) {
	m.canvasWidth = canvasWidth
	m.canvasHeight = canvasHeight
	m.viewportWidth = viewportWidth
	m.viewportHeight = viewportHeight
}

// CanvasSize returns the rendering surface size in device pixels
func (m *ScreenMetrics) CanvasSize() (width, height int) {
	return m.canvasWidth, m.canvasHeight
}

// ViewportSize returns the host viewport size in device pixels
func (m *ScreenMetrics) ViewportSize() (width, height int) {
	return m.viewportWidth, m.viewportHeight
}

// SetTopSafeAreaRaw sets the top inset in device-independent units
func (m *ScreenMetrics) SetTopSafeAreaRaw(value float64) {
	if value == m.topSafeAreaRaw {
		return
	}
	m.topSafeAreaRaw = value
	m.lastSafeAreaChange = m.now()
}

// SetBottomSafeAreaRaw sets the bottom inset in device-independent units
func (m *ScreenMetrics) SetBottomSafeAreaRaw(value float64) {
	if value == m.bottomSafeAreaRaw {
		return
	}
	m.bottomSafeAreaRaw = value
	m.lastSafeAreaChange = m.now()
}

// TopSafeAreaPx returns the top inset in device pixels
func (m *ScreenMetrics) TopSafeAreaPx() float64 {
	return m.topSafeAreaRaw * m.devicePixelRatio
}

// BottomSafeAreaPx returns the bottom inset in device pixels
func (m *ScreenMetrics) BottomSafeAreaPx() float64 {
	return m.bottomSafeAreaRaw * m.devicePixelRatio
}

// IsResized reports whether entity has already been laid out for the
// current screen size.
//
// Call it at the start of a resize handler. The first call for an entity,
// or any call after the size moved by more than tolerance, records the
// current size and returns false. For a while after a safe-area change it
// always returns false, since the insets change the layout even when the
// screen size stays the same.
//
// entity is used as a map key and must be comparable; a pointer to the
// screen or group being laid out is the usual choice. A key that cannot be
// hashed is never memoized, so IsResized always returns false for it.
func (m *ScreenMetrics) IsResized(entity any, tolerance ...float64) bool {
	if !memoizable(entity) {
		return false
	}

	// notch changed: every stored size is stale
	if !m.lastSafeAreaChange.IsZero() && m.now().Sub(m.lastSafeAreaChange) < m.safeAreaDebounce {
		return false
	}

	offset := m.resizeTolerance
	if len(tolerance) > 0 {
		offset = tolerance[0]
	}

	current := screenSize{w: m.Width(), h: m.Height()}
	if previous, ok := m.previousSizes[entity]; ok &&
		math.Abs(previous.w-current.w) < offset &&
		math.Abs(previous.h-current.h) < offset {
		return true
	}

	m.previousSizes[entity] = current
	return false
}

// Forget drops the memoized size of an entity, e.g. when it is destroyed
func (m *ScreenMetrics) Forget(entity any) {
	if !memoizable(entity) {
		return
	}
	delete(m.previousSizes, entity)
}

// memoizable reports whether entity can be used as a map key
func memoizable(entity any) bool {
	if entity == nil {
		return true
	}
	return reflect.TypeOf(entity).Comparable()
}

// Width returns the game screen width
func (m *ScreenMetrics) Width() float64 {
	return float64(m.canvasWidth)
}

// Height returns the game screen height
func (m *ScreenMetrics) Height() float64 {
	return float64(m.canvasHeight)
}

func (m *ScreenMetrics) origin() (x, y float64) {
	if m.camera == nil {
		return 0, 0
	}
	return m.camera.Origin()
}

// Top returns the y of the top screen edge
func (m *ScreenMetrics) Top() float64 {
	_, y := m.origin()
	return y
}

// Bottom returns the y of the bottom screen edge
func (m *ScreenMetrics) Bottom() float64 {
	return m.Top() + m.Height()
}

// Left returns the x of the left screen edge
func (m *ScreenMetrics) Left() float64 {
	x, _ := m.origin()
	return x
}

// Right returns the x of the right screen edge
func (m *ScreenMetrics) Right() float64 {
	return m.Left() + m.Width()
}

// CenterX returns the horizontal center of the screen
func (m *ScreenMetrics) CenterX() float64 {
	return m.Left() + m.Width()/2
}

// CenterY returns the vertical center of the screen
func (m *ScreenMetrics) CenterY() float64 {
	return m.Top() + m.Height()/2
}

// IsPortrait reports whether the screen is at least as tall as it is wide
func (m *ScreenMetrics) IsPortrait() bool {
	return m.Width() <= m.Height()
}

// IsLandscape reports whether the screen is wider than it is tall
func (m *ScreenMetrics) IsLandscape() bool {
	return !m.IsPortrait()
}

// IsLandscapeNarrow reports tablet-like landscape screens such as iPads
func (m *ScreenMetrics) IsLandscapeNarrow() bool {
	return m.IsLandscape() && m.Width()/m.Height() < m.narrowLandscapeAspect
}
