package micron

// maxDepth is the clamp applied to ParseState.depth.
const maxDepth = 255

// parseState is the mutable style/alignment/depth/literal state threaded
// across every line of one [Parse] call. It is never exposed in the AST:
// every Element carries a by-value [Style] snapshot instead, and
// parseState itself is discarded once Parse returns.
type parseState struct {
	literalMode bool
	depth       uint8

	fg        *Color
	bg        *Color
	bold      bool
	italic    bool
	underline bool
	alignment Alignment

	defaultFG        *Color
	defaultBG        *Color
	defaultAlignment Alignment
}

// newParseState returns the initial state for a document: no literal mode,
// depth zero, no colors, no formatting, left alignment.
func newParseState() *parseState {
	return &parseState{
		alignment:        AlignLeft,
		defaultAlignment: AlignLeft,
	}
}

// style returns a snapshot of the currently active style.
func (p *parseState) style() Style {
	return Style{
		FG:        p.fg,
		BG:        p.bg,
		Bold:      p.bold,
		Italic:    p.italic,
		Underline: p.underline,
	}
}

// setDepth clamps and assigns the current heading/indent depth.
func (p *parseState) setDepth(n int) {
	if n < 0 {
		n = 0
	}

	if n > maxDepth {
		n = maxDepth
	}

	p.depth = uint8(n)
}

// fullReset clears bold/italic/underline/fg/bg and restores alignment to
// the document default. This is the double-backtick control code.
func (p *parseState) fullReset() {
	p.bold = false
	p.italic = false
	p.underline = false
	p.fg = nil
	p.bg = nil
	p.alignment = p.defaultAlignment
}
