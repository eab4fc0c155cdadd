package meta

import (
	"encoding/binary"
)

// jfifJPEG builds SOI + APP0/JFIF with the given unit and density
func jfifJPEG(units byte, density uint16) []byte {
	b := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, units}
	b = binary.BigEndian.AppendUint16(b, density)
	b = binary.BigEndian.AppendUint16(b, density)
	b = append(b, 0x00, 0x00)
	return append(b, 0xFF, 0xD9)
}

// exifJPEG builds SOI + APP1/Exif holding an IFD0 with XResolution num/den
// and, when unit is non-zero, ResolutionUnit.
func exifJPEG(order binary.AppendByteOrder, num, den uint32, unit uint16) []byte {
	var tiff []byte
	if order == binary.LittleEndian {
		tiff = append(tiff, 'I', 'I')
	} else {
		tiff = append(tiff, 'M', 'M')
	}
	tiff = order.AppendUint16(tiff, 42)
	tiff = order.AppendUint32(tiff, 8)

	entries := uint16(1)
	if unit != 0 {
		entries = 2
	}
	rationalOffset := uint32(8 + 2 + 12*int(entries) + 4)

	tiff = order.AppendUint16(tiff, entries)
	tiff = order.AppendUint16(tiff, 0x011A)
	tiff = order.AppendUint16(tiff, 5)
	tiff = order.AppendUint32(tiff, 1)
	tiff = order.AppendUint32(tiff, rationalOffset)
	if unit != 0 {
		tiff = order.AppendUint16(tiff, 0x0128)
		tiff = order.AppendUint16(tiff, 3)
		tiff = order.AppendUint32(tiff, 1)
		tiff = order.AppendUint16(tiff, unit)
		tiff = append(tiff, 0x00, 0x00)
	}
	tiff = order.AppendUint32(tiff, 0)
	tiff = order.AppendUint32(tiff, num)
	tiff = order.AppendUint32(tiff, den)

	payload := append([]byte("Exif\x00\x00"), tiff...)
	b := []byte{0xFF, 0xD8, 0xFF, 0xE1}
	b = binary.BigEndian.AppendUint16(b, uint16(len(payload)+2))
	b = append(b, payload...)
	return append(b, 0xFF, 0xD9)
}

func pngChunk(typ string, payload []byte) []byte {
	b := binary.BigEndian.AppendUint32(nil, uint32(len(payload)))
	b = append(b, typ...)
	b = append(b, payload...)
	return append(b, 0, 0, 0, 0) // CRC is not checked
}

func physPayload(ppu uint32, unit byte) []byte {
	b := binary.BigEndian.AppendUint32(nil, ppu)
	b = binary.BigEndian.AppendUint32(b, ppu)
	return append(b, unit)
}

// pngWith builds a PNG stream from the given chunks, prefixed with the
// signature and an IHDR chunk.
func pngWith(chunks ...[]byte) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], 1)
	binary.BigEndian.PutUint32(ihdr[4:], 1)
	ihdr[8] = 8

	b := []byte("\x89PNG\r\n\x1a\n")
	b = append(b, pngChunk("IHDR", ihdr)...)
	for _, c := range chunks {
		b = append(b, c...)
	}
	return b
}
