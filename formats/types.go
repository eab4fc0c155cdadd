package formats

// MIME types understood by the toolkit
const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEWebP = "image/webp"
	MIMEGIF  = "image/gif"
)

// pngSignature is the fixed 8-byte header of every PNG stream
const pngSignature = "\x89PNG\r\n\x1a\n"

// headerSize is how many leading bytes Sniff needs to decide
const headerSize = 16
