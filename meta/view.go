package meta

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var errOutOfRange = errors.New("offset out of range")

// byteView reads fixed-width integers from a buffer without panicking on
// truncated input.
type byteView struct {
	data  []byte
	order binary.ByteOrder
}

func (v byteView) span(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off > len(v.data)-n {
		return nil, fmt.Errorf("%w: %d+%d of %d", errOutOfRange, off, n, len(v.data))
	}
	return v.data[off : off+n], nil
}

func (v byteView) u8(off int) (uint8, error) {
	b, err := v.span(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (v byteView) u16(off int) (uint16, error) {
	b, err := v.span(off, 2)
	if err != nil {
		return 0, err
	}
	return v.order.Uint16(b), nil
}

func (v byteView) u32(off int) (uint32, error) {
	b, err := v.span(off, 4)
	if err != nil {
		return 0, err
	}
	return v.order.Uint32(b), nil
}

// hasSegment reports whether data[i:] starts a JPEG marker segment
// (0xFF, marker) whose identifier sig sits sigOff bytes after i.
func hasSegment(data []byte, i int, marker byte, sig string, sigOff int) bool {
	if i+sigOff+len(sig) > len(data) {
		return false
	}
	return data[i] == 0xFF && data[i+1] == marker && string(data[i+sigOff:i+sigOff+len(sig)]) == sig
}
