package systems

import (
	"image/color"
	"testing"
)

var (
	_ Alignable    = (*Sprite)(nil)
	_ DisplaySizer = (*Sprite)(nil)
	_ Alignable    = (*Label)(nil)
	_ DisplaySizer = (*Label)(nil)
	_ CameraOrigin = (*Camera)(nil)
	_ Resizable    = (*countingTarget)(nil)
)

func TestNilSpriteIsZeroSized(t *testing.T) {
	s := NewSprite(nil)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %vx%v, want 0x0", s.Width(), s.Height())
	}
	if s.Scale() != 1 {
		t.Errorf("Scale() = %v, want 1", s.Scale())
	}

	align, _ := newTestAlign(100, 100)
	if _, err := align.ScaleToFitWithinSize(s, 10, 10); err == nil {
		t.Error("scaling a nil sprite should fail")
	}
}

func TestSpriteDisplaySize(t *testing.T) {
	s := newSizedSprite(40, 20)
	s.SetScale(2.5)

	if s.DisplayWidth() != 100 || s.DisplayHeight() != 50 {
		t.Errorf("display = %vx%v, want 100x50", s.DisplayWidth(), s.DisplayHeight())
	}
	if s.Width() != 40 {
		t.Errorf("Width() = %v, want the unscaled 40", s.Width())
	}
}

func TestLabelMeasuresText(t *testing.T) {
	short := NewLabel("ab", nil, color.White)
	long := NewLabel("abcdef", nil, color.White)

	if short.Width() <= 0 || short.Height() <= 0 {
		t.Fatalf("short label size = %vx%v", short.Width(), short.Height())
	}
	// basicfont is monospaced
	if long.Width() != 3*short.Width() {
		t.Errorf("long width = %v, want %v", long.Width(), 3*short.Width())
	}

	short.SetText("abcdef")
	if short.Width() != long.Width() || short.Text() != "abcdef" {
		t.Error("SetText should re-measure")
	}
}

func TestLabelAlignsToBottom(t *testing.T) {
	align, _ := newTestAlign(400, 800)
	l := NewLabel("Lives: 3", nil, color.White)
	l.SetScale(2)

	got := align.AlignToBottomEdge(l, Frac(1))
	want := 800 - l.Height()*2
	if got != want {
		t.Errorf("AlignToBottomEdge() = %v, want %v", got, want)
	}
}
