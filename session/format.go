package session

import (
	"strconv"
	"strings"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatBytes renders n with binary prefixes, trimming trailing zeros
func FormatBytes(n int64, decimals int) string {
	if n == 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}

	i, v := 0, float64(n)
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s + " " + byteUnits[i]
}

// ParseDimension reads a width or height typed by the user. Leading
// digits are accepted the way form inputs are; zero or garbage is invalid.
func ParseDimension(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
