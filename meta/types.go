package meta

import (
	"encoding/json"
)

// DefaultDPI is reported when a file carries no usable resolution hint
const DefaultDPI = 72

// DefaultScanLimit bounds the JPEG marker search window
const DefaultScanLimit = 4096

// Source names the metadata block a DPI value came from
type Source string

const (
	SourceDefault Source = "default"
	SourceJFIF    Source = "jfif"
	SourceExif    Source = "exif"
	SourcePHYs    Source = "phys"
)

// Resolution is the outcome of a DPI lookup
type Resolution struct {
	DPI    int    `json:"dpi"`
	Source Source `json:"source"`
	Unit   int    `json:"unit,omitempty"` // Raw unit value as stored in the metadata
	Found  bool   `json:"found"`
}

// Report describes one image file
type Report struct {
	Path       string     `json:"path,omitempty"`
	MIMEType   string     `json:"mime_type"`
	Size       int64      `json:"size"`
	Width      int        `json:"width,omitempty"`
	Height     int        `json:"height,omitempty"`
	Resolution Resolution `json:"resolution"`
}

// ToJSON converts the report to an indented JSON string
func (r *Report) ToJSON() (string, error) {
	jsonBytes, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "{}", err
	}
	return string(jsonBytes), nil
}
