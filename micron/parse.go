package micron

import "strings"

// bom is the UTF-8 encoding of U+FEFF, stripped from the start of input if
// present.
const bom = "﻿"

// Parse converts raw Micron source text into a [Document]. Parse never
// fails: every malformed or incomplete construct recovers locally per the
// rules in the line classifier, inline tokenizer, and sub-form parsers, and
// the worst outcome is a literal re-emission of the offending text.
//
// Line count equals the number of `\n`-delimited segments of input, with
// the final segment counted even if it has no trailing newline.
func Parse(input string) *Document {
	input = strings.TrimPrefix(input, bom)
	rawLines := splitLines(input)

	state := newParseState()
	doc := &Document{Lines: make([]Line, len(rawLines))}

	for i, raw := range rawLines {
		doc.Lines[i] = parseLineContent(state, raw)
	}

	return doc
}

// splitLines splits s on `\n`, normalizing `\r\n` by stripping a trailing
// `\r` from each resulting segment.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
