package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if got != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", got)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `
[window]
width = 390
height = 844
fullscreen = true

[layout]
safe_area_debounce = "1500ms"

[safe_area]
top = 47
bottom = 34
`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.Window.Width != 390 || got.Window.Height != 844 {
		t.Errorf("window = %dx%d, want 390x844", got.Window.Width, got.Window.Height)
	}
	if !got.Window.Fullscreen {
		t.Error("fullscreen should be true")
	}
	if got.Window.Title != WindowTitle {
		t.Errorf("title = %q, want default %q", got.Window.Title, WindowTitle)
	}
	if got.Layout.SafeAreaDebounce.Duration != 1500*time.Millisecond {
		t.Errorf("debounce = %v, want 1.5s", got.Layout.SafeAreaDebounce.Duration)
	}
	if got.Layout.ResizeTolerance != ResizeTolerance {
		t.Errorf("tolerance = %v, want default", got.Layout.ResizeTolerance)
	}
	if got.SafeArea.Top != 47 || got.SafeArea.Bottom != 34 {
		t.Errorf("safe area = %+v", got.SafeArea)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "bad duration", body: "[layout]\nsafe_area_debounce = \"soon\"\n", wantErr: "load settings"},
		{name: "zero width", body: "[window]\nwidth = 0\n", wantErr: "window size"},
		{name: "negative tolerance", body: "[layout]\nresize_tolerance = -1.0\n", wantErr: "resize_tolerance"},
		{name: "zero aspect", body: "[layout]\nnarrow_landscape_aspect = 0.0\n", wantErr: "narrow_landscape_aspect"},
		{name: "malformed", body: "[window\n", wantErr: "load settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, tt.body))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() of missing file should fail")
	}
}
