package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Screen layout configuration
const (
	// Window dimensions in logical pixels
	WindowWidth  = 1024
	WindowHeight = 768

	WindowTitle = "Ebiten Screenfit"

	// ResizeTolerance is how far (in pixels) a memoized screen size may drift
	// and still count as already laid out
	ResizeTolerance = 0.01

	// SafeAreaDebounce is how long every memoized size stays invalid after a
	// safe-area inset changes
	SafeAreaDebounce = 2000 * time.Millisecond

	// NarrowLandscapeAspect is the width/height ratio below which a landscape
	// screen is treated as tablet-shaped
	NarrowLandscapeAspect = 1.75

	// MaxLogMessages bounds the in-memory log history
	MaxLogMessages = 100
)

// WindowSettings configures the host window
type WindowSettings struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
}

// LayoutSettings tunes the resize guard and orientation detection
type LayoutSettings struct {
	ResizeTolerance       float64  `toml:"resize_tolerance"`
	SafeAreaDebounce      Duration `toml:"safe_area_debounce"`
	NarrowLandscapeAspect float64  `toml:"narrow_landscape_aspect"`
}

// SafeAreaSettings holds device-independent insets, e.g. a notch height
type SafeAreaSettings struct {
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

// LogSettings controls the logger
type LogSettings struct {
	Enabled     bool   `toml:"enabled"`
	Level       string `toml:"level"`
	MaxMessages int    `toml:"max_messages"`
}

// Settings is the full runtime configuration
type Settings struct {
	Window   WindowSettings   `toml:"window"`
	Layout   LayoutSettings   `toml:"layout"`
	SafeArea SafeAreaSettings `toml:"safe_area"`
	Log      LogSettings      `toml:"log"`
}

// Duration decodes TOML strings such as "2s" or "1500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// Default returns the settings used when no file is given
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Layout: LayoutSettings{
			ResizeTolerance:       ResizeTolerance,
			SafeAreaDebounce:      Duration{SafeAreaDebounce},
			NarrowLandscapeAspect: NarrowLandscapeAspect,
		},
		Log: LogSettings{
			Enabled:     true,
			Level:       "info",
			MaxMessages: MaxLogMessages,
		},
	}
}

// Load reads a TOML settings file on top of the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return settings, nil
}

// Validate rejects values the host cannot start with
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Layout.ResizeTolerance < 0 {
		return fmt.Errorf("resize_tolerance must not be negative, got %v", s.Layout.ResizeTolerance)
	}
	if s.Layout.SafeAreaDebounce.Duration < 0 {
		return fmt.Errorf("safe_area_debounce must not be negative, got %v", s.Layout.SafeAreaDebounce)
	}
	if s.Layout.NarrowLandscapeAspect <= 0 {
		return fmt.Errorf("narrow_landscape_aspect must be positive, got %v", s.Layout.NarrowLandscapeAspect)
	}
	if s.Log.MaxMessages <= 0 {
		return fmt.Errorf("max_messages must be positive, got %d", s.Log.MaxMessages)
	}
	return nil
}

// GetWindowSize returns the recommended window size
func (s Settings) GetWindowSize() (width, height int) {
	return s.Window.Width, s.Window.Height
}
