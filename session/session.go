// Package session holds the state of one image-editing session: the loaded
// file, its original size and DPI, the requested target size and the output
// encoding settings. Every user action maps to a method that validates the
// input and applies the resulting state transition.
package session

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"greg-hacke/go-imagedpi/formats"
	"greg-hacke/go-imagedpi/meta"
)

var (
	ErrNotImage          = errors.New("please select an image file")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrQualityRange      = errors.New("quality must be between 0 and 1")
)

// DefaultQuality is the initial encoder quality
const DefaultQuality = 0.8

// Dimensions is a pixel size
type Dimensions struct {
	Width  int
	Height int
}

// Valid reports whether both sides are positive
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%d x %d", d.Width, d.Height)
}

// Session is the state of one loaded image
type Session struct {
	FileName string
	MIMEType string
	Size     int64
	DPI      int

	Original Dimensions
	Target   Dimensions

	Format  string  // Output MIME type
	Quality float64 // Output quality in [0, 1]

	aspectLinked bool
	aspectRatio  float64
}

// Option configures a new Session
type Option func(*sessionOptions)

type sessionOptions struct {
	resolver *meta.Resolver
}

// WithResolver sets the resolver used to read the original DPI
func WithResolver(r *meta.Resolver) Option {
	return func(o *sessionOptions) {
		o.resolver = r
	}
}

// New starts a session for an uploaded file. Non-image MIME types are
// rejected with ErrNotImage. Files whose pixel size cannot be read still
// load; their Original dimensions stay zero.
func New(name, mimeType string, data []byte, opts ...Option) (*Session, error) {
	if !formats.IsImage(mimeType) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotImage)
	}

	o := sessionOptions{resolver: &meta.Resolver{}}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		FileName:     name,
		MIMEType:     formats.Normalize(mimeType),
		Size:         int64(len(data)),
		DPI:          o.resolver.DPI(data, mimeType),
		Format:       formats.MIMEJPEG,
		Quality:      DefaultQuality,
		aspectLinked: true,
	}

	if w, h, err := meta.Dimensions(data); err == nil {
		s.setOriginal(Dimensions{Width: w, Height: h})
	}

	return s, nil
}

func (s *Session) setOriginal(d Dimensions) {
	s.Original = d
	s.Target = d
	s.aspectRatio = 0
	if d.Height > 0 {
		s.aspectRatio = float64(d.Width) / float64(d.Height)
	}
}

// AspectRatio returns width/height of the original, or 0 when unknown
func (s *Session) AspectRatio() float64 {
	return s.aspectRatio
}

// AspectLinked reports whether width and height edits move together
func (s *Session) AspectLinked() bool {
	return s.aspectLinked
}

// ToggleAspectLink flips the aspect lock and returns the new state
func (s *Session) ToggleAspectLink() bool {
	s.aspectLinked = !s.aspectLinked
	return s.aspectLinked
}

// SetWidth sets the target width; with the aspect lock on, the height
// follows.
func (s *Session) SetWidth(w int) {
	s.Target.Width = w
	if s.aspectLinked && s.aspectRatio != 0 {
		s.Target.Height = int(math.Round(float64(w) / s.aspectRatio))
	}
}

// SetHeight sets the target height; with the aspect lock on, the width
// follows.
func (s *Session) SetHeight(h int) {
	s.Target.Height = h
	if s.aspectLinked && s.aspectRatio != 0 {
		s.Target.Width = int(math.Round(float64(h) * s.aspectRatio))
	}
}

// UpscaleWarning reports whether the target asks for more pixels across
// than the original has.
func (s *Session) UpscaleWarning() bool {
	if s.Original.Width == 0 || s.Target.Width <= 0 {
		return false
	}
	return s.Target.Width > s.Original.Width
}

// EffectiveTarget returns the size to export at. An invalid target is
// replaced by the original size.
func (s *Session) EffectiveTarget() Dimensions {
	if !s.Target.Valid() && s.Original.Valid() {
		s.Target = s.Original
	}
	return s.Target
}

// SetFormat selects the output MIME type
func (s *Session) SetFormat(mimeType string) error {
	switch m := formats.Normalize(mimeType); m {
	case formats.MIMEJPEG, formats.MIMEPNG, formats.MIMEWebP:
		s.Format = m
		return nil
	}
	return fmt.Errorf("%q: %w", mimeType, ErrUnsupportedFormat)
}

// SetQuality sets the encoder quality
func (s *Session) SetQuality(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return fmt.Errorf("%v: %w", q, ErrQualityRange)
	}
	s.Quality = q
	return nil
}

// QualityLabel renders the quality as a whole percentage
func (s *Session) QualityLabel() string {
	return fmt.Sprintf("%d%%", int(math.Round(s.Quality*100)))
}

// OutputName is the download name for the exported file
func (s *Session) OutputName() string {
	base := strings.TrimSuffix(s.FileName, filepath.Ext(s.FileName))
	if base == "" {
		base = s.FileName
	}
	return fmt.Sprintf("%s_web-quality.%s", base, formats.Extension(s.Format))
}

// Savings compares the exported size with the original
func (s *Session) Savings(resultSize int64) string {
	if s.Size == 0 || resultSize >= s.Size {
		return "+0% (Optimized)"
	}
	percent := float64(s.Size-resultSize) / float64(s.Size) * 100
	return fmt.Sprintf("-%.1f%%", percent)
}
