package micron

import (
	"math"
	"strconv"
	"strings"
)

// parseColorPayload reads the payload following an `F` or `B` control
// letter and returns the resulting [Color]. s's cursor must already be
// positioned just past the introducer. Grammar, in priority order:
//
//  1. `g` followed by up to two decimal digits: grayscale, percent 0-99,
//     r=g=b = round(percent * 255 / 99).
//  2. Six hex digits: straight r/g/b pairs.
//  3. Exactly three hex digits, 4-bit-per-channel replicated to 8-bit;
//     non-hex characters in any of the three positions are treated as 0.
//
// Any payload that can't produce at least one digit yields Color{0,0,0}
// and consumes nothing beyond the introducer already consumed by the
// caller. A payload cut short by end of line is read as far as it goes and
// the missing trailing positions are treated as 0, never panicking and
// never reading past the line.
func parseColorPayload(s *scanner) Color {
	if s.peek() == "g" {
		return parseGrayscalePayload(s)
	}

	if six, ok := tryReadHex6(s); ok {
		return Color{
			R: hexByte(six[0:2]),
			G: hexByte(six[2:4]),
			B: hexByte(six[4:6]),
		}
	}

	return parseHex3Payload(s)
}

func parseGrayscalePayload(s *scanner) Color {
	s.advance() // consume 'g'

	var digits strings.Builder

	for i := 0; i < 2; i++ {
		c := s.peek()
		if !isDecimalDigit(c) {
			break
		}

		digits.WriteString(c)
		s.advance()
	}

	if digits.Len() == 0 {
		s.pos-- // un-consume the 'g'

		return Color{}
	}

	padded := digits.String()
	for len(padded) < 2 {
		padded += "0"
	}

	percent, err := strconv.Atoi(padded)
	if err != nil {
		return Color{}
	}

	if percent > 99 {
		percent = 99
	}

	v := uint8(math.Round(float64(percent) * 255 / 99))

	return Color{R: v, G: v, B: v}
}

// tryReadHex6 consumes exactly six hex-digit clusters and returns them
// joined, or returns ("", false) and consumes nothing if fewer than six
// hex digits are available.
func tryReadHex6(s *scanner) (string, bool) {
	for i := range 6 {
		if !isHexDigit(s.peekAt(i)) {
			return "", false
		}
	}

	var b strings.Builder
	for range 6 {
		b.WriteString(s.advance())
	}

	return b.String(), true
}

// parseHex3Payload reads up to three clusters (stopping at end of line)
// and maps each to a 4-bit-replicated channel value, treating any
// non-hex-digit or absent position as 0. If none of the clusters read is a
// hex digit, the cursor is restored and Color{0,0,0} is returned.
func parseHex3Payload(s *scanner) Color {
	start := s.pos

	var read []string

	for i := 0; i < 3 && !s.eof(); i++ {
		read = append(read, s.advance())
	}

	if len(read) == 0 {
		return Color{}
	}

	var channels [3]uint8

	anyHex := false

	for i := 0; i < 3; i++ {
		if i >= len(read) {
			continue
		}

		anyHex = anyHex || isHexDigit(read[i])
		channels[i] = nibble(read[i]) * 17
	}

	if !anyHex {
		s.pos = start

		return Color{}
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}
}

func isDecimalDigit(c string) bool {
	return len(c) == 1 && c[0] >= '0' && c[0] <= '9'
}

func isHexDigit(c string) bool {
	if len(c) != 1 {
		return false
	}

	b := c[0]

	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// nibble returns the 4-bit value of a single hex-digit cluster, or 0 for
// anything else.
func nibble(c string) uint8 {
	if !isHexDigit(c) {
		return 0
	}

	b := c[0]

	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// hexByte decodes a two-hex-digit string (e.g. "ff") into its byte value.
func hexByte(s string) uint8 {
	return nibble(s[0:1])<<4 | nibble(s[1:2])
}
