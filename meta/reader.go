package meta

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"greg-hacke/go-imagedpi/formats"
)

// ReadFile resolves the DPI of a file on disk with the default resolver
func ReadFile(filename string) (Report, error) {
	return defaultResolver.ReadFile(filename)
}

// ReadFile opens filename, identifies its format and resolves its DPI.
// Only I/O and format identification failures are returned as errors.
func (r *Resolver) ReadFile(filename string) (Report, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Report{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return r.ReadFrom(file, filename)
}

// ReadFrom reads all of r and resolves its DPI. hint is a file name used
// both for the report path and as the extension fallback of format detection.
func (r *Resolver) ReadFrom(rd io.Reader, hint string) (Report, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read file: %w", err)
	}

	// Determine file format
	mimeType, err := formats.Detect(bytes.NewReader(data), hint)
	if err != nil {
		return Report{}, fmt.Errorf("failed to identify format: %w", err)
	}

	report := Report{
		Path:       hint,
		MIMEType:   mimeType,
		Size:       int64(len(data)),
		Resolution: r.Resolve(data, mimeType),
	}

	if w, h, err := Dimensions(data); err == nil {
		report.Width, report.Height = w, h
	} else {
		r.debugf("%s: %v", hint, err)
	}

	return report, nil
}
