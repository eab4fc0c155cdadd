package formats

import (
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// FromExtension maps a file name to a MIME type by its extension
func FromExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".jpe", ".jfif":
		return MIMEJPEG
	case ".png":
		return MIMEPNG
	case ".webp":
		return MIMEWebP
	case ".gif":
		return MIMEGIF
	}
	return ""
}

// Detect determines the MIME type of r, trying magic numbers first and the
// extension of hint second. The reader is rewound before returning.
func Detect(r io.ReadSeeker, hint string) (string, error) {
	header := make([]byte, headerSize)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("failed to read header: %w", err)
	}
	header = header[:n]

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to seek: %w", err)
	}

	if mimeType := Sniff(header); mimeType != "" {
		return mimeType, nil
	}
	if mimeType := FromExtension(hint); mimeType != "" {
		return mimeType, nil
	}
	return "", fmt.Errorf("unknown format")
}

// Normalize lower-cases a MIME type and drops any parameters.
// The non-standard "image/jpg" is folded into "image/jpeg".
func Normalize(mimeType string) string {
	mimeType = strings.TrimSpace(mimeType)
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = mediaType
	} else {
		mimeType = strings.ToLower(mimeType)
	}
	if mimeType == "image/jpg" || mimeType == "image/pjpeg" {
		return MIMEJPEG
	}
	return mimeType
}

// IsImage reports whether mimeType names an image media type
func IsImage(mimeType string) bool {
	return strings.HasPrefix(Normalize(mimeType), "image/")
}

// Extension returns the file extension (without dot) used when writing an
// image of the given MIME type. Unknown types fall back to "jpg".
func Extension(mimeType string) string {
	switch Normalize(mimeType) {
	case MIMEPNG:
		return "png"
	case MIMEWebP:
		return "webp"
	case MIMEGIF:
		return "gif"
	}
	return "jpg"
}
