package micron

import "strings"

const maxFieldWidth = 256

// parseField parses a `` `<...> `` sub-form. t.sc's cursor must be
// positioned just past the opening `<`.
//
// The payload is a list of segments split on unescaped `|`, optionally
// followed by a single unescaped backtick that switches the remainder
// (read to the first unescaped `>`) into a trailing default/label string.
// Reaching end of line before an unescaped `>` abandons the sub-form: the
// consumed text (including the `` `< `` introducer) is emitted as plain
// text instead.
func (t *tokenizer) parseField() Element {
	start := t.sc.pos

	segments, label, hasLabel, ok := readFieldPayload(t.sc)
	if !ok {
		return StyledText{Text: "`<" + t.sc.sliceFrom(start), Style: t.bufStyle}
	}

	if len(segments) == 0 {
		segments = []string{""}
	}

	switch segments[0] {
	case "?":
		if f, ok := buildCheckboxField(segments, label); ok {
			t.hadField = true

			return f
		}
	case "^":
		if f, ok := buildRadioField(segments, label); ok {
			t.hadField = true

			return f
		}
	}

	t.hadField = true

	return buildTextField(segments, label, hasLabel)
}

// readFieldPayload splits a field payload on unescaped `|`, switching to
// label-collection mode at the first unescaped backtick, and returns false
// if no unescaped `>` terminates the payload.
func readFieldPayload(s *scanner) (segments []string, label string, hasLabel, ok bool) {
	var cur strings.Builder

	for {
		if s.eof() {
			return nil, "", false, false
		}

		switch c := s.peek(); c {
		case `\`:
			if esc, escOK := s.readEscaped(); escOK {
				cur.WriteString(esc)
			}
		case "|":
			s.advance()
			segments = append(segments, cur.String())
			cur.Reset()
		case "`":
			s.advance()
			segments = append(segments, cur.String())

			lbl, lblOK := readFieldLabel(s)
			if !lblOK {
				return nil, "", false, false
			}

			return segments, lbl, true, true
		case ">":
			s.advance()
			segments = append(segments, cur.String())

			return segments, "", false, true
		default:
			s.advance()
			cur.WriteString(c)
		}
	}
}

// readFieldLabel reads the default/label string following a field's
// structural-part-ending backtick, up to an unescaped `>`.
func readFieldLabel(s *scanner) (string, bool) {
	var b strings.Builder

	for {
		if s.eof() {
			return "", false
		}

		switch c := s.peek(); c {
		case `\`:
			if esc, ok := s.readEscaped(); ok {
				b.WriteString(esc)
			}
		case ">":
			s.advance()

			return b.String(), true
		default:
			s.advance()
			b.WriteString(c)
		}
	}
}

// stripModifiers consumes a leading `!` (masked) and a leading run of
// decimal digits (width) from a field's first segment, returning what
// remains.
func stripModifiers(seg string) (rest string, masked bool, width uint16) {
	if after, found := strings.CutPrefix(seg, "!"); found {
		masked = true
		seg = after
	}

	i := 0
	for i < len(seg) && seg[i] >= '0' && seg[i] <= '9' {
		i++
	}

	if i > 0 {
		n := 0
		for _, c := range seg[:i] {
			n = n*10 + int(c-'0')
			if n > maxFieldWidth {
				n = maxFieldWidth
			}
		}

		width = uint16(n)
	}

	return seg[i:], masked, width
}

func buildCheckboxField(segments []string, label string) (Field, bool) {
	if len(segments) < 3 {
		return Field{}, false
	}

	checked := len(segments) >= 4 && segments[3] == "*"

	return Field{
		Name:    segments[1],
		Kind:    CheckboxFieldKind{Checked: checked},
		Default: label,
	}, true
}

func buildRadioField(segments []string, label string) (Field, bool) {
	if len(segments) < 3 {
		return Field{}, false
	}

	checked := len(segments) >= 4 && segments[3] == "*"

	return Field{
		Name:    segments[1],
		Kind:    RadioFieldKind{Value: segments[2], Checked: checked},
		Default: label,
	}, true
}

// buildTextField handles the plain-name case, with optional `!`/width
// modifiers on the first segment. Anything that doesn't fit the
// recognized shapes still becomes a best-effort Text field.
func buildTextField(segments []string, label string, hasLabel bool) Field {
	rest, masked, width := stripModifiers(segments[0])

	name := rest
	if name == "" && len(segments) > 1 {
		name = segments[1]
	}

	def := ""
	if hasLabel {
		def = label
	}

	return Field{
		Name:    name,
		Default: def,
		Width:   width,
		Masked:  masked,
		Kind:    TextFieldKind{},
	}
}
