package systems

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ebiten-screenfit/ecs"
)

type countingTarget struct {
	calls int
}

func (c *countingTarget) Resize() { c.calls++ }

func newTestResize(scale *float64) (*ResizeSystem, *ScreenMetrics, *bytes.Buffer) {
	var buf bytes.Buffer
	m := NewScreenMetrics()
	r := NewResizeSystem(m, newTestLogger(&buf), func() float64 { return *scale })
	return r, m, &buf
}

func TestLayoutScalesByDPR(t *testing.T) {
	scale := 2.0
	r, m, buf := newTestResize(&scale)

	w, h := r.Layout(400, 300)

	if w != 800 || h != 600 {
		t.Errorf("Layout() = %dx%d, want 800x600", w, h)
	}
	if cw, ch := m.CanvasSize(); cw != 800 || ch != 600 {
		t.Errorf("canvas = %dx%d, want 800x600", cw, ch)
	}
	if vw, vh := m.ViewportSize(); vw != 800 || vh != 600 {
		t.Errorf("viewport = %dx%d, want 800x600", vw, vh)
	}
	if m.DevicePixelRatio() != 2 {
		t.Errorf("dpr = %v, want 2", m.DevicePixelRatio())
	}
	if !strings.Contains(buf.String(), "800x600") {
		t.Errorf("resize should be logged, got %q", buf.String())
	}
}

func TestLayoutRoundsFractionalDPR(t *testing.T) {
	scale := 1.5
	r, _, _ := newTestResize(&scale)

	w, h := r.Layout(333, 201)
	if w != 500 || h != 302 {
		t.Errorf("Layout() = %dx%d, want 500x302", w, h)
	}
}

func TestLayoutNotifiesOnlyOnChange(t *testing.T) {
	scale := 1.0
	r, _, _ := newTestResize(&scale)
	target := &countingTarget{}
	r.Register(target)

	r.Layout(640, 480)
	r.Layout(640, 480)
	r.Layout(640, 480)
	if target.calls != 1 {
		t.Fatalf("calls = %d after repeated layout, want 1", target.calls)
	}

	r.Layout(480, 640)
	if target.calls != 2 {
		t.Errorf("calls = %d after rotation, want 2", target.calls)
	}

	// A ratio change alone changes the canvas size too
	scale = 2
	r.Layout(480, 640)
	if target.calls != 3 {
		t.Errorf("calls = %d after dpr change, want 3", target.calls)
	}
}

func TestUpdateDevicePixelRatio(t *testing.T) {
	scale := 2.0
	r, m, _ := newTestResize(&scale)

	events := 0
	m.On(ecs.EventDPRChanged, func(ecs.Event) { events++ })

	r.UpdateDevicePixelRatio()
	r.UpdateDevicePixelRatio()
	if events != 1 {
		t.Errorf("events = %d, want 1", events)
	}

	scale = 0
	if got := r.UpdateDevicePixelRatio(); got != 1 {
		t.Errorf("UpdateDevicePixelRatio() = %v, want fallback 1", got)
	}
	if m.DevicePixelRatio() != 1 {
		t.Errorf("metrics dpr = %v, want 1", m.DevicePixelRatio())
	}
	if events != 2 {
		t.Errorf("events = %d, want 2", events)
	}
}

func TestSetSafeArea(t *testing.T) {
	scale := 1.0
	clock := newFakeClock()
	m := NewScreenMetrics(WithClock(clock.Now))
	r := NewResizeSystem(m, NewLogger(nil, nil), func() float64 { return scale })
	target := &countingTarget{}
	r.Register(target)
	r.Layout(390, 844)

	group := new(int)
	m.IsResized(group)

	r.SetSafeArea(47, 34)
	if target.calls != 2 {
		t.Errorf("calls = %d, want 2", target.calls)
	}
	if m.IsResized(group) {
		t.Error("safe-area change should invalidate memoized sizes")
	}

	r.SetSafeArea(47, 34)
	if target.calls != 2 {
		t.Errorf("same insets should not notify, calls = %d", target.calls)
	}

	clock.Advance(2 * time.Second)
	if !m.IsResized(group) {
		t.Error("memo should be valid again after the debounce window")
	}
}

func TestLayoutNotifiesOnDPRChangeWithSameCanvas(t *testing.T) {
	scale := 1.0
	r, m, _ := newTestResize(&scale)
	target := &countingTarget{}
	r.Register(target)

	r.Layout(800, 600)

	// window moved to a 2x monitor, logical size halves
	scale = 2
	w, h := r.Layout(400, 300)
	if w != 800 || h != 600 {
		t.Fatalf("Layout() = %dx%d, want unchanged 800x600", w, h)
	}
	if target.calls != 2 {
		t.Errorf("calls = %d, want 2 after a ratio change", target.calls)
	}
	if m.DevicePixelRatio() != 2 {
		t.Errorf("dpr = %v, want 2", m.DevicePixelRatio())
	}

	r.Layout(400, 300)
	if target.calls != 2 {
		t.Errorf("calls = %d, want no notify when nothing changed", target.calls)
	}
}
