package formats

import "bytes"

// Sniff determines the MIME type from the leading bytes of a file.
// It returns "" when no known signature matches.
func Sniff(header []byte) string {
	switch {
	case len(header) >= 3 && header[0] == 0xFF && header[1] == 0xD8 && header[2] == 0xFF:
		return MIMEJPEG

	case len(header) >= 8 && string(header[:8]) == pngSignature:
		return MIMEPNG

	case len(header) >= 12 && bytes.Equal(header[0:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WEBP")):
		return MIMEWebP

	case len(header) >= 4 && string(header[:4]) == "GIF8":
		return MIMEGIF

	default:
		return ""
	}
}
