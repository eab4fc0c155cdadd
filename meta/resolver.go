package meta

import (
	"log"
	"math"

	"greg-hacke/go-imagedpi/formats"
)

// Resolver looks up resolution hints embedded in image metadata.
// The zero value is ready to use.
type Resolver struct {
	DefaultDPI int         // Returned when no hint is found; DefaultDPI if zero
	ScanLimit  int         // JPEG marker search window; DefaultScanLimit if zero
	Logger     *log.Logger // Receives parse warnings; log.Default() if nil
	Verbose    bool        // Log every IFD entry and chunk visited
}

var defaultResolver = &Resolver{}

// ResolveDPI returns the DPI embedded in data, or 72 when the format is not
// JPEG/PNG or the metadata is missing or malformed.
func ResolveDPI(data []byte, mimeType string) int {
	return defaultResolver.Resolve(data, mimeType).DPI
}

// DPI is Resolve reduced to the number alone
func (r *Resolver) DPI(data []byte, mimeType string) int {
	return r.Resolve(data, mimeType).DPI
}

// Resolve dispatches on the MIME type and returns the first resolution hint
// found. It never fails: parse errors are logged as warnings and yield the
// default.
func (r *Resolver) Resolve(data []byte, mimeType string) Resolution {
	var (
		res Resolution
		err error
	)

	switch formats.Normalize(mimeType) {
	case formats.MIMEJPEG:
		res, err = r.resolveJPEG(data)
	case formats.MIMEPNG:
		res, err = r.resolvePNG(data)
	default:
		return r.fallback()
	}

	if err != nil {
		r.logger().Printf("warning: reading DPI: %v", err)
		return r.fallback()
	}
	if !res.Found {
		return r.fallback()
	}
	if res.DPI <= 0 {
		res.DPI = r.defaultDPI()
	}
	return res
}

func (r *Resolver) fallback() Resolution {
	return Resolution{DPI: r.defaultDPI(), Source: SourceDefault}
}

func (r *Resolver) defaultDPI() int {
	if r.DefaultDPI > 0 {
		return r.DefaultDPI
	}
	return DefaultDPI
}

func (r *Resolver) scanLimit() int {
	if r.ScanLimit > 0 {
		return r.ScanLimit
	}
	return DefaultScanLimit
}

func (r *Resolver) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

func (r *Resolver) debugf(format string, args ...any) {
	if r.Verbose {
		r.logger().Printf(format, args...)
	}
}

// roundDPI rounds half away from zero
func roundDPI(v float64) int {
	return int(math.Round(v))
}
