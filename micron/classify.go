package micron

import "strings"

// parseLineContent classifies one `\n`-delimited raw segment of source and
// returns the finished [Line]. state is mutated in place: depth,
// alignment, and every style field threads across calls within a single
// [Parse] invocation.
func parseLineContent(state *parseState, raw string) Line {
	if state.literalMode {
		return literalLine(state, raw)
	}

	sc := newScanner(raw)
	if sc.eof() {
		return Line{Kind: LineNormal, IndentDepth: state.depth, Alignment: state.alignment}
	}

	switch sc.peek() {
	case `\`:
		escaped, ok := sc.readEscaped()
		if !ok {
			return Line{Kind: LineNormal, IndentDepth: state.depth, Alignment: state.alignment}
		}

		elements, _ := tokenizeLineContinue(state, sc, escaped)

		return Line{
			Kind:        LineNormal,
			IndentDepth: state.depth,
			Alignment:   state.alignment,
			Elements:    elements,
		}
	case "#":
		return Line{Kind: LineComment, IndentDepth: state.depth, Alignment: state.alignment}
	case "<":
		sc.advance()
		state.setDepth(0)

		return tokenizeNormal(state, sc.remainder())
	case ">":
		n := 0
		for sc.peek() == ">" {
			sc.advance()
			n++
		}

		state.setDepth(n)

		rest := sc.remainder()
		if rest == "" {
			return Line{Kind: LineNormal, IndentDepth: state.depth, Alignment: state.alignment}
		}

		elements, hadField := tokenizeLine(state, rest)
		if hadField {
			return Line{
				Kind:        LineNormal,
				IndentDepth: state.depth,
				Alignment:   state.alignment,
				Elements:    elements,
			}
		}

		level := n
		if level > 3 {
			level = 3
		}

		return Line{
			Kind:         LineHeading,
			HeadingLevel: level,
			IndentDepth:  state.depth,
			Alignment:    state.alignment,
			Elements:     elements,
		}
	case "-":
		sc.advance()

		dividerChar := rune(0x2500)
		if !sc.eof() {
			if r := []rune(sc.peek()); len(r) > 0 && r[0] >= 0x20 {
				dividerChar = r[0]
			}
		}

		return Line{
			Kind:        LineDivider,
			DividerChar: dividerChar,
			IndentDepth: state.depth,
			Alignment:   state.alignment,
		}
	default:
		return tokenizeNormal(state, raw)
	}
}

// tokenizeNormal feeds text through the inline tokenizer and wraps the
// result as a Normal line. It reads state.depth/state.alignment only after
// tokenizing, since tokenizing may itself change state.alignment.
func tokenizeNormal(state *parseState, text string) Line {
	elements, _ := tokenizeLine(state, text)

	return Line{
		Kind:        LineNormal,
		IndentDepth: state.depth,
		Alignment:   state.alignment,
		Elements:    elements,
	}
}

// literalLine implements the classifier bypass for literal_mode: every
// line is Normal with a single Text element equal to its full text, except
// the sole-content toggle-off line "`=".
func literalLine(state *parseState, raw string) Line {
	if strings.TrimSpace(raw) == "`=" {
		state.literalMode = false

		return Line{Kind: LineNormal, IndentDepth: state.depth, Alignment: state.alignment}
	}

	return Line{
		Kind:        LineNormal,
		IndentDepth: state.depth,
		Alignment:   state.alignment,
		Elements:    []Element{StyledText{Text: raw, Style: state.style()}},
	}
}
