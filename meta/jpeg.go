package meta

import (
	"encoding/binary"

	"greg-hacke/go-imagedpi/tags"
)

const (
	markerAPP0 = 0xE0
	markerAPP1 = 0xE1

	// JFIF unit values
	jfifDotsPerInch = 1
	jfifDotsPerCM   = 2

	cmPerInch = 2.54
)

// resolveJPEG looks for a JFIF density first and an Exif XResolution second,
// both within the first ScanLimit bytes.
func (r *Resolver) resolveJPEG(data []byte) (Resolution, error) {
	limit := min(len(data)-8, r.scanLimit())

	res, err := r.scanJFIF(data, limit)
	if err != nil || res.Found {
		return res, err
	}
	return r.scanExif(data, limit)
}

// scanJFIF finds an APP0 "JFIF" segment and reads its unit and X density
func (r *Resolver) scanJFIF(data []byte, limit int) (Resolution, error) {
	v := byteView{data: data, order: binary.BigEndian}

	for i := 0; i < limit; i++ {
		// "JFIF" normally follows the two length bytes; some writers pad two more
		if !hasSegment(data, i, markerAPP0, "JFIF", 4) && !hasSegment(data, i, markerAPP0, "JFIF", 6) {
			continue
		}

		units, err := v.u8(i + 11)
		if err != nil {
			return Resolution{}, err
		}
		density, err := v.u16(i + 12)
		if err != nil {
			return Resolution{}, err
		}
		r.debugf("JFIF segment at %d: units=%d density=%d", i, units, density)

		dpi := int(density)
		if units == jfifDotsPerCM {
			dpi = roundDPI(float64(density) * cmPerInch)
		}
		return Resolution{DPI: dpi, Source: SourceJFIF, Unit: int(units), Found: true}, nil
	}

	return Resolution{}, nil
}

// scanExif finds APP1 "Exif" segments and reads XResolution and
// ResolutionUnit from IFD0 of the embedded TIFF block.
func (r *Resolver) scanExif(data []byte, limit int) (Resolution, error) {
	for i := 0; i < limit; i++ {
		if !hasSegment(data, i, markerAPP1, "Exif", 4) {
			continue
		}

		xRes, unit, err := r.readIFD0Resolution(data, i+10)
		if err != nil {
			return Resolution{}, err
		}
		if xRes == 0 {
			continue
		}

		dpi := xRes
		if unit == tags.UnitCentimeter {
			dpi = roundDPI(float64(xRes) * cmPerInch)
		}
		return Resolution{DPI: dpi, Source: SourceExif, Unit: unit, Found: true}, nil
	}

	return Resolution{}, nil
}

// readIFD0Resolution walks IFD0 of the TIFF header at tiffStart. It returns
// the rounded XResolution (0 when absent or its denominator is zero) and
// the ResolutionUnit (inches when absent).
func (r *Resolver) readIFD0Resolution(data []byte, tiffStart int) (int, int, error) {
	v := byteView{data: data, order: binary.BigEndian}
	if tiffStart+2 <= len(data) && data[tiffStart] == 'I' && data[tiffStart+1] == 'I' {
		v.order = binary.LittleEndian
	}

	ifdOffset, err := v.u32(tiffStart + 4)
	if err != nil {
		return 0, 0, err
	}
	ifd := tiffStart + int(ifdOffset)

	numEntries, err := v.u16(ifd)
	if err != nil {
		return 0, 0, err
	}
	r.debugf("Exif IFD0 at %d: %d entries (%s)", ifd, numEntries, v.order)

	xRes, unit := 0, tags.UnitInch
	for j := 0; j < int(numEntries); j++ {
		entry := ifd + 2 + j*12

		tag, err := v.u16(entry)
		if err != nil {
			return 0, 0, err
		}
		r.debugf("  tag 0x%04X %s", tag, tags.Name(tags.EXIF, tag))

		switch tag {
		case tags.XResolution:
			valueOffset, err := v.u32(entry + 8)
			if err != nil {
				return 0, 0, err
			}
			num, err := v.u32(tiffStart + int(valueOffset))
			if err != nil {
				return 0, 0, err
			}
			den, err := v.u32(tiffStart + int(valueOffset) + 4)
			if err != nil {
				return 0, 0, err
			}
			xRes = 0
			if den != 0 {
				xRes = roundDPI(float64(num) / float64(den))
			}

		case tags.ResolutionUnit:
			u, err := v.u16(entry + 8)
			if err != nil {
				return 0, 0, err
			}
			unit = int(u)
			r.debugf("  resolution unit: %s", tags.ValueName(tags.EXIF, tag, unit))
		}
	}

	return xRes, unit, nil
}
