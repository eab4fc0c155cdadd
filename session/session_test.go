package session

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"greg-hacke/go-imagedpi/meta"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	data := encodePNG(t, 800, 600)

	s, err := New("holiday.png", "image/png", data)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.Original != (Dimensions{800, 600}) {
		t.Errorf("Expected original 800x600, got %v", s.Original)
	}
	if s.Target != s.Original {
		t.Errorf("Expected target to start at original, got %v", s.Target)
	}
	if s.DPI != meta.DefaultDPI {
		t.Errorf("Expected DPI %d, got %d", meta.DefaultDPI, s.DPI)
	}
	if !s.AspectLinked() {
		t.Error("Expected aspect lock on by default")
	}
	if s.Format != "image/jpeg" || s.Quality != DefaultQuality {
		t.Errorf("Unexpected output defaults: %s %v", s.Format, s.Quality)
	}
	if s.Size != int64(len(data)) {
		t.Errorf("Expected size %d, got %d", len(data), s.Size)
	}
}

func TestNewRejectsNonImage(t *testing.T) {
	_, err := New("report.pdf", "application/pdf", []byte("%PDF"))
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("Expected ErrNotImage, got %v", err)
	}
}

func TestNewUndecodableImage(t *testing.T) {
	s, err := New("broken.jpg", "image/jpeg", []byte{0xFF, 0xD8, 0xFF})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Original.Valid() {
		t.Errorf("Expected unknown dimensions, got %v", s.Original)
	}

	s.SetWidth(500)
	if s.Target.Height != 0 {
		t.Errorf("Expected height untouched without aspect ratio, got %d", s.Target.Height)
	}
	if s.UpscaleWarning() {
		t.Error("Expected no upscale warning without original size")
	}
}

func TestAspectLink(t *testing.T) {
	s, err := New("a.png", "image/png", encodePNG(t, 1600, 900))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s.SetWidth(800)
	if s.Target != (Dimensions{800, 450}) {
		t.Errorf("Expected 800x450, got %v", s.Target)
	}

	s.SetHeight(100)
	if s.Target != (Dimensions{178, 100}) {
		t.Errorf("Expected 178x100, got %v", s.Target)
	}

	if s.ToggleAspectLink() {
		t.Error("Expected aspect lock off after toggle")
	}
	s.SetWidth(1000)
	if s.Target != (Dimensions{1000, 100}) {
		t.Errorf("Expected height to stay when unlinked, got %v", s.Target)
	}
}

func TestUpscaleWarning(t *testing.T) {
	s, err := New("a.png", "image/png", encodePNG(t, 400, 300))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		width int
		want  bool
	}{
		{400, false},
		{200, false},
		{401, true},
		{0, false},
	}
	for _, tt := range tests {
		s.SetWidth(tt.width)
		if got := s.UpscaleWarning(); got != tt.want {
			t.Errorf("UpscaleWarning() at width %d = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestEffectiveTarget(t *testing.T) {
	s, err := New("a.png", "image/png", encodePNG(t, 40, 30))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s.ToggleAspectLink()
	s.SetWidth(0)
	if got := s.EffectiveTarget(); got != (Dimensions{40, 30}) {
		t.Errorf("Expected fallback to original, got %v", got)
	}
	if s.Target != (Dimensions{40, 30}) {
		t.Errorf("Expected target reset to original, got %v", s.Target)
	}

	s.SetWidth(20)
	s.SetHeight(10)
	if got := s.EffectiveTarget(); got != (Dimensions{20, 10}) {
		t.Errorf("Expected 20x10, got %v", got)
	}
}

func TestOutputSettings(t *testing.T) {
	s, err := New("my.photo.jpeg", "image/jpeg", nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := s.OutputName(); got != "my.photo_web-quality.jpg" {
		t.Errorf("Unexpected output name %q", got)
	}

	if err := s.SetFormat("image/webp"); err != nil {
		t.Fatalf("SetFormat failed: %v", err)
	}
	if got := s.OutputName(); got != "my.photo_web-quality.webp" {
		t.Errorf("Unexpected output name %q", got)
	}

	if err := s.SetFormat("image/tiff"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if s.Format != "image/webp" {
		t.Errorf("Expected format unchanged after rejection, got %s", s.Format)
	}

	if err := s.SetQuality(0.555); err != nil {
		t.Fatalf("SetQuality failed: %v", err)
	}
	if got := s.QualityLabel(); got != "56%" {
		t.Errorf("Expected 56%%, got %s", got)
	}
	if err := s.SetQuality(1.5); !errors.Is(err, ErrQualityRange) {
		t.Errorf("Expected ErrQualityRange, got %v", err)
	}
}

func TestOutputNameWithoutExtension(t *testing.T) {
	s := &Session{FileName: "scan", Format: "image/png"}
	if got := s.OutputName(); got != "scan_web-quality.png" {
		t.Errorf("Unexpected output name %q", got)
	}
}

func TestSavings(t *testing.T) {
	s := &Session{Size: 2000}

	tests := []struct {
		result int64
		want   string
	}{
		{1000, "-50.0%"},
		{1990, "-0.5%"},
		{2000, "+0% (Optimized)"},
		{3000, "+0% (Optimized)"},
	}
	for _, tt := range tests {
		if got := s.Savings(tt.result); got != tt.want {
			t.Errorf("Savings(%d) = %q, want %q", tt.result, got, tt.want)
		}
	}
}
