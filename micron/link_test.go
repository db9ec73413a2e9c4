package micron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/micron"
)

func TestParseLink(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input     string
		wantLabel string
		wantURL   string
		wantFields []string
	}{
		"url only, no backtick inside brackets": {
			input:   "`[/page]",
			wantURL: "/page",
		},
		"label and url": {
			input:     "`[Click here`/page]",
			wantLabel: "Click here",
			wantURL:   "/page",
		},
		"label, url, and fields": {
			input:      "`[Submit`/submit`name|email]",
			wantLabel:  "Submit",
			wantURL:    "/submit",
			wantFields: []string{"name", "email"},
		},
		"fields with single wildcard entry": {
			input:      "`[Submit`/submit`*]",
			wantLabel:  "Submit",
			wantURL:    "/submit",
			wantFields: []string{"*"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := micron.Parse(tc.input)
			require.Len(t, doc.Lines, 1)
			require.Len(t, doc.Lines[0].Elements, 1)

			link, ok := doc.Lines[0].Elements[0].(micron.Link)
			require.True(t, ok)
			assert.Equal(t, tc.wantLabel, link.Label)
			assert.Equal(t, tc.wantURL, link.URL)
			assert.Equal(t, tc.wantFields, link.Fields)
		})
	}
}

func TestParseLinkAbandonedAtEndOfLine(t *testing.T) {
	t.Parallel()

	doc := micron.Parse("before `[no closing bracket")
	require.Len(t, doc.Lines, 1)
	require.Len(t, doc.Lines[0].Elements, 2)

	before, ok := doc.Lines[0].Elements[0].(micron.StyledText)
	require.True(t, ok)
	assert.Equal(t, "before ", before.Text)

	rest, ok := doc.Lines[0].Elements[1].(micron.StyledText)
	require.True(t, ok)
	assert.Equal(t, "`[no closing bracket", rest.Text)
}

func TestParseLinkEscapedBracket(t *testing.T) {
	t.Parallel()

	doc := micron.Parse("`[a\\]b`/page]")
	require.Len(t, doc.Lines, 1)
	require.Len(t, doc.Lines[0].Elements, 1)

	link, ok := doc.Lines[0].Elements[0].(micron.Link)
	require.True(t, ok)
	assert.Equal(t, "a]b", link.Label)
	assert.Equal(t, "/page", link.URL)
}

func TestParseLinkStyleSnapshot(t *testing.T) {
	t.Parallel()

	doc := micron.Parse("`!`[bold label`/page]")
	require.Len(t, doc.Lines, 1)
	require.Len(t, doc.Lines[0].Elements, 1)

	link, ok := doc.Lines[0].Elements[0].(micron.Link)
	require.True(t, ok)
	assert.True(t, link.Style.Bold)
}
