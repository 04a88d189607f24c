package saes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Binary renders x in base 2, left-padded with zeros to width digits. Values
// that need more digits are printed in full.
func Binary(x uint64, width int) string {
	s := strconv.FormatUint(x, 2)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// CheckWord narrows v to a block or key, rejecting values wider than 16 bits.
func CheckWord(v uint64) (uint16, error) {
	if v > 0xffff {
		return 0, fmt.Errorf("saes: %#x: %w", v, ErrOutOfRange)
	}
	return uint16(v), nil
}

// ParseWord reads a 16-bit block or key written in binary (0b), octal (0o),
// hexadecimal (0x) or decimal. Underscores between digits are accepted.
func ParseWord(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("saes: empty input: %w", ErrInvalidWord)
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("saes: %q: %w", s, ErrOutOfRange)
		}
		return 0, fmt.Errorf("saes: %q: %w", s, ErrInvalidWord)
	}
	return CheckWord(v)
}

// FormatWord renders w as "bin" (16 binary digits), "hex" (0x and 4 digits)
// or "dec". Unknown formats fall back to hex.
func FormatWord(w uint16, format string) string {
	switch format {
	case "bin":
		return Binary(uint64(w), 16)
	case "dec":
		return strconv.FormatUint(uint64(w), 10)
	default:
		return fmt.Sprintf("0x%04x", w)
	}
}
