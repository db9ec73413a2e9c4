package micron_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/micron"
)

func TestDocumentMarshalJSONShape(t *testing.T) {
	t.Parallel()

	doc := micron.Parse("`!bold`! `[Home`/] `<name> `{/feed}\n-\n>Title")

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal(b, &decoded))

	lines, ok := decoded["lines"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 3)

	normal := lines[0].(map[string]any)
	assert.Equal(t, "normal", normal["kind"])

	els, ok := normal["elements"].([]any)
	require.True(t, ok)
	require.Len(t, els, 7)

	bold := els[0].(map[string]any)
	assert.Equal(t, "styled_text", bold["kind"])
	assert.Equal(t, "bold", bold["text"])
	style := bold["style"].(map[string]any)
	assert.Equal(t, true, style["Bold"])

	link := els[2].(map[string]any)
	assert.Equal(t, "link", link["kind"])
	assert.Equal(t, "Home", link["label"])
	assert.Equal(t, "/", link["url"])

	field := els[4].(map[string]any)
	assert.Equal(t, "field", field["kind"])
	assert.Equal(t, "name", field["name"])

	fieldKind := field["field_kind"].(map[string]any)
	assert.Equal(t, "text", fieldKind["kind"])

	partial := els[6].(map[string]any)
	assert.Equal(t, "partial", partial["kind"])
	assert.Equal(t, "/feed", partial["url"])

	divider := lines[1].(map[string]any)
	assert.Equal(t, "divider", divider["kind"])
	assert.Equal(t, "─", divider["divider_char"])

	heading := lines[2].(map[string]any)
	assert.Equal(t, "heading", heading["kind"])
	assert.Equal(t, float64(1), heading["heading_level"])
}
