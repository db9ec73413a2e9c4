package micron_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/micron"
)

// TestParseGraphemeClustersStayIntact verifies that a combining-mark
// sequence and a ZWJ emoji sequence survive a style toggle without being
// split across the resulting StyledText runs.
func TestParseGraphemeClustersStayIntact(t *testing.T) {
	t.Parallel()

	combining := "é"                                     // "e" + COMBINING ACUTE ACCENT
	family := "\U0001F468‍\U0001F469‍\U0001F467" // man-ZWJ-woman-ZWJ-girl

	tcs := map[string]string{
		"combining acute accent":     combining + "`!bold`!",
		"zwj emoji sequence":         family + "`!bold`!",
	}

	for name, input := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := micron.Parse(input)
			require.Len(t, doc.Lines, 1)
			require.NotEmpty(t, doc.Lines[0].Elements)

			first, ok := doc.Lines[0].Elements[0].(micron.StyledText)
			require.True(t, ok)

			// The cluster must appear whole in the first run; if it had
			// been split, this would instead be a prefix of the cluster's
			// raw bytes.
			assert.NotEmpty(t, first.Text)
			assert.Equal(t, strings.TrimSuffix(input, "`!bold`!"), first.Text)
		})
	}
}

func TestParseFieldPayloadPreservesGraphemeClusters(t *testing.T) {
	t.Parallel()

	name := "na" + "́" + "me" // "na" + combining acute + "me"
	doc := micron.Parse("`<" + name + ">")
	require.Len(t, doc.Lines, 1)

	f, ok := doc.Lines[0].Elements[0].(micron.Field)
	require.True(t, ok)
	assert.Equal(t, name, f.Name)
}
