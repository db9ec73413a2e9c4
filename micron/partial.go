package micron

import "strconv"

// parsePartial parses a `` `{url`refresh`fields} `` sub-form. t.sc's cursor
// must be positioned just past the opening `{`. On success it returns a
// [Partial]; if the sub-form reaches end of line before an unescaped `}`,
// the consumed text (including the `` `{ `` introducer) is returned
// instead as a plain [StyledText] element.
func (t *tokenizer) parsePartial() Element {
	start := t.sc.pos

	segments, ok := readBacktickSegments(t.sc, "}")
	if !ok {
		return StyledText{Text: "`{" + t.sc.sliceFrom(start), Style: t.bufStyle}
	}

	var url, refreshText, fieldsText string

	switch len(segments) {
	case 1:
		url = segments[0]
	case 2:
		url = segments[0]
		refreshText = segments[1]
	default:
		url = segments[0]
		refreshText = segments[1]
		fieldsText = segments[2]
	}

	return Partial{
		URL:     url,
		Refresh: parseRefresh(refreshText),
		Fields:  splitFields(fieldsText),
	}
}

// parseRefresh parses a non-negative real number of seconds. An empty or
// unparseable value, or a negative one, yields nil (parse failure means
// "no refresh interval").
func parseRefresh(text string) *float64 {
	if text == "" {
		return nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 0 {
		return nil
	}

	return &v
}
