package meta

import (
	"encoding/binary"
)

const (
	pngChunkStart = 8 // after the signature

	physUnitMeter = 1
	inchPerMeter  = 0.0254
)

// resolvePNG walks the chunk stream until the first pHYs or IEND chunk.
// A pHYs chunk whose unit is not meters leaves the DPI at the default.
func (r *Resolver) resolvePNG(data []byte) (Resolution, error) {
	v := byteView{data: data, order: binary.BigEndian}

	for offset := pngChunkStart; offset < len(data); {
		length, err := v.u32(offset)
		if err != nil {
			return Resolution{}, err
		}
		typ, err := v.span(offset+4, 4)
		if err != nil {
			return Resolution{}, err
		}
		chunkType := string(typ)
		r.debugf("PNG chunk %s at %d (%d bytes)", chunkType, offset, length)

		if chunkType == "pHYs" {
			ppuX, err := v.u32(offset + 8)
			if err != nil {
				return Resolution{}, err
			}
			unit, err := v.u8(offset + 16)
			if err != nil {
				return Resolution{}, err
			}

			dpi := r.defaultDPI()
			if unit == physUnitMeter {
				dpi = roundDPI(float64(ppuX) * inchPerMeter)
			}
			return Resolution{DPI: dpi, Source: SourcePHYs, Unit: int(unit), Found: true}, nil
		}

		if chunkType == "IEND" {
			break
		}
		if int64(length) > int64(len(data)-offset-12) {
			break
		}
		offset += 12 + int(length)
	}

	return Resolution{}, nil
}
