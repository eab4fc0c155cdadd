package tags

// Namespace of the TIFF/Exif IFD0 tag table
const EXIF = "EXIF"

// IFD0 resolution tags
const (
	XResolution    uint16 = 0x011A
	YResolution    uint16 = 0x011B
	ResolutionUnit uint16 = 0x0128
)

// ResolutionUnit values
const (
	UnitNone       = 1
	UnitInch       = 2
	UnitCentimeter = 3
)

func init() {
	RegisterTagTable(EXIF, map[string]TagDef{
		"0x011A": {
			ID:          "0x011A",
			Name:        "XResolution",
			Description: "Pixels per ResolutionUnit in the image width direction",
			Format:      "rational64u",
		},
		"0x011B": {
			ID:          "0x011B",
			Name:        "YResolution",
			Description: "Pixels per ResolutionUnit in the image height direction",
			Format:      "rational64u",
		},
		"0x0128": {
			ID:          "0x0128",
			Name:        "ResolutionUnit",
			Description: "Unit for XResolution and YResolution",
			Format:      "int16u",
			Values: map[string]string{
				"1": "None",
				"2": "inches",
				"3": "cm",
			},
		},
	})
}
