package micron

import "strings"

// readBacktickSegments reads clusters (honoring `\` escapes) from s,
// splitting on each unescaped backtick, until it consumes an unescaped
// cluster equal to terminator. It returns the accumulated segments and
// true on success, or nil/false if end of line is reached first (an
// abandoned sub-form).
//
// This is the shared grammar behind Link ("`[label`url`fields]") and
// Partial ("`{url`refresh`fields}"): both are a backtick-delimited list of
// segments closed by a single terminator character.
func readBacktickSegments(s *scanner, terminator string) (segments []string, ok bool) {
	var cur strings.Builder

	for {
		if s.eof() {
			return nil, false
		}

		switch c := s.peek(); c {
		case `\`:
			if esc, escOK := s.readEscaped(); escOK {
				cur.WriteString(esc)
			}
		case "`":
			s.advance()
			segments = append(segments, cur.String())
			cur.Reset()
		case terminator:
			s.advance()
			segments = append(segments, cur.String())

			return segments, true
		default:
			s.advance()
			cur.WriteString(c)
		}
	}
}
