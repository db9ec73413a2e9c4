package micron

import "strings"

// tokenizeLine walks a line's post-classifier remainder left to right,
// interpreting backtick control codes, escapes, and sub-forms, and returns
// the resulting elements. hadField reports whether a [Field] element was
// produced, which the line classifier uses to demote a would-be Heading
// back to Normal.
func tokenizeLine(state *parseState, line string) (elements []Element, hadField bool) {
	t := &tokenizer{state: state, sc: newScanner(line)}
	t.bufStyle = state.style()

	return t.run(), t.hadField
}

// tokenizeLineContinue behaves like tokenizeLine but starts from an
// already-positioned scanner, seeding the tokenizer's buffer with text the
// caller already consumed and protected from reinterpretation (the single
// character following a line-leading `\`). Without this, that character
// would be fed back through the control-code dispatcher instead of being
// treated as literal.
func tokenizeLineContinue(state *parseState, sc *scanner, seed string) (elements []Element, hadField bool) {
	t := &tokenizer{state: state, sc: sc}
	t.bufStyle = state.style()
	t.buf.WriteString(seed)

	return t.run(), t.hadField
}

type tokenizer struct {
	state    *parseState
	sc       *scanner
	elements []Element
	buf      strings.Builder
	bufStyle Style
	hadField bool
}

func (t *tokenizer) run() []Element {
	for !t.sc.eof() {
		switch c := t.sc.peek(); c {
		case `\`:
			if esc, ok := t.sc.readEscaped(); ok {
				t.buf.WriteString(esc)
			}
		case "`":
			t.sc.advance()
			t.controlCode()
		default:
			t.sc.advance()
			t.buf.WriteString(c)
		}
	}

	t.flush()

	return t.elements
}

// flush emits the accumulated text buffer as a [StyledText] element using
// the style that was current when the run began. Empty runs are elided. It
// does not take a new style snapshot: callers that change state call
// resnapshot afterward so the next run picks up the change.
func (t *tokenizer) flush() {
	if t.buf.Len() > 0 {
		t.elements = append(t.elements, StyledText{Text: t.buf.String(), Style: t.bufStyle})
		t.buf.Reset()
	}
}

// resnapshot takes a fresh style snapshot from the current state, for the
// text run that starts after a state-changing control code.
func (t *tokenizer) resnapshot() {
	t.bufStyle = t.state.style()
}

// controlCode dispatches on the single peek character following a
// backtick. The backtick itself has already been consumed.
func (t *tokenizer) controlCode() {
	switch peek := t.sc.peek(); peek {
	case "!":
		t.flush()
		t.sc.advance()
		t.state.bold = !t.state.bold
		t.resnapshot()
	case "*":
		t.flush()
		t.sc.advance()
		t.state.italic = !t.state.italic
		t.resnapshot()
	case "_":
		t.flush()
		t.sc.advance()
		t.state.underline = !t.state.underline
		t.resnapshot()
	case "c":
		t.flush()
		t.sc.advance()
		t.state.alignment = AlignCenter
		t.resnapshot()
	case "l":
		t.flush()
		t.sc.advance()
		t.state.alignment = AlignLeft
		t.resnapshot()
	case "r":
		t.flush()
		t.sc.advance()
		t.state.alignment = AlignRight
		t.resnapshot()
	case "a":
		t.flush()
		t.sc.advance()
		t.state.alignment = t.state.defaultAlignment
		t.resnapshot()
	case "f":
		t.flush()
		t.sc.advance()
		t.state.fg = t.state.defaultFG
		t.resnapshot()
	case "b":
		t.flush()
		t.sc.advance()
		t.state.bg = t.state.defaultBG
		t.resnapshot()
	case "F":
		t.flush()
		t.sc.advance()
		col := parseColorPayload(t.sc)
		t.state.fg = &col
		t.resnapshot()
	case "B":
		t.flush()
		t.sc.advance()
		col := parseColorPayload(t.sc)
		t.state.bg = &col
		t.resnapshot()
	case "`":
		t.flush()
		t.sc.advance()
		t.state.fullReset()
		t.resnapshot()
	case "=":
		t.flush()
		t.sc.advance()
		t.state.literalMode = !t.state.literalMode
		t.sc.pos = len(t.sc.clusters) // toggling literal mode discards the rest of the line
	case "[":
		t.flush()
		t.sc.advance()
		t.elements = append(t.elements, t.parseLink())
		t.resnapshot()
	case "<":
		t.flush()
		t.sc.advance()
		t.elements = append(t.elements, t.parseField())
		t.resnapshot()
	case "{":
		t.flush()
		t.sc.advance()
		t.elements = append(t.elements, t.parsePartial())
		t.resnapshot()
	default:
		// Not a control code: the backtick is literal text; the peek
		// character (if any) is left for the next loop iteration.
		t.buf.WriteString("`")
	}
}

// splitFields splits a link/partial fields payload on `|`, returning nil
// (not an empty non-nil slice) for empty text.
func splitFields(text string) []string {
	if text == "" {
		return nil
	}

	return strings.Split(text, "|")
}
