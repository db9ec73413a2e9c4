package micron

// parseLink parses a `` `[label`url`fields] `` sub-form. t.sc's cursor must
// be positioned just past the opening `[`. On success it returns a [Link];
// if the sub-form reaches end of line before an unescaped `]`, the
// consumed text (including the `` `[ `` introducer) is returned instead as
// a plain [StyledText] element.
func (t *tokenizer) parseLink() Element {
	start := t.sc.pos

	segments, ok := readBacktickSegments(t.sc, "]")
	if !ok {
		return StyledText{Text: "`[" + t.sc.sliceFrom(start), Style: t.bufStyle}
	}

	var label, url, fieldsText string

	switch {
	case len(segments) == 1:
		// No backtick inside the brackets: the whole content is the URL.
		url = segments[0]
	case len(segments) >= 2:
		label = segments[0]
		url = segments[1]

		if len(segments) >= 3 {
			fieldsText = segments[2]
		}
	}

	return Link{
		Label:  label,
		URL:    url,
		Fields: splitFields(fieldsText),
		Style:  t.bufStyle,
	}
}
