package micron

import "github.com/rivo/uniseg"

// splitGraphemes segments s into user-perceived characters (grapheme
// clusters) in one linear pass. Every clause in the tokenizer and the
// sub-form parsers treats one cluster, not one byte or one rune, as "a
// character" -- this is what keeps a combining mark or a multi-rune emoji
// sequence from being split across an escape, a control code boundary, or
// a StyledText run -- splitting one across a boundary would corrupt the
// user-visible text.
func splitGraphemes(s string) []string {
	if s == "" {
		return nil
	}

	clusters := make([]string, 0, len(s))

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	return clusters
}

// scanner is a cursor over a line's grapheme clusters, shared by the
// inline tokenizer and every sub-form parser so that escape handling,
// lookahead, and "how much did we consume" bookkeeping behave identically
// everywhere: there is exactly one "read the next logical character"
// primitive, and every escape-aware caller goes through it.
type scanner struct {
	clusters []string
	pos      int
}

func newScanner(line string) *scanner {
	return &scanner{clusters: splitGraphemes(line)}
}

// eof reports whether the scanner has no more clusters.
func (s *scanner) eof() bool {
	return s.pos >= len(s.clusters)
}

// peek returns the cluster at the cursor without consuming it, or "" at
// end of input.
func (s *scanner) peek() string {
	return s.peekAt(0)
}

// peekAt returns the cluster offset clusters ahead of the cursor, or "" if
// out of range.
func (s *scanner) peekAt(offset int) string {
	idx := s.pos + offset
	if idx < 0 || idx >= len(s.clusters) {
		return ""
	}

	return s.clusters[idx]
}

// advance consumes and returns the cluster at the cursor, or "" at end of
// input.
func (s *scanner) advance() string {
	c := s.peek()
	if c != "" {
		s.pos++
	}

	return c
}

// readEscaped implements the single escape primitive used everywhere a `\`
// can appear: if the cursor is on `\` and a following cluster exists, both
// are consumed and the following cluster is returned verbatim (with ok
// true). A trailing `\` with nothing after it is dropped: it is consumed
// and ok is false, so callers append nothing.
func (s *scanner) readEscaped() (string, bool) {
	s.advance() // the backslash itself

	if s.eof() {
		return "", false
	}

	return s.advance(), true
}

// sliceFrom reconstructs the literal source text between start and the
// current cursor position, used when a sub-form is abandoned and its
// consumed characters must be re-emitted as plain text.
func (s *scanner) sliceFrom(start int) string {
	return joinClusters(s.clusters[start:s.pos])
}

// remainder returns the literal source text from the cursor to the end of
// the line, without consuming it.
func (s *scanner) remainder() string {
	return joinClusters(s.clusters[s.pos:])
}

func joinClusters(clusters []string) string {
	var b []byte
	for _, c := range clusters {
		b = append(b, c...)
	}

	return string(b)
}
