package micron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/micron"
)

func TestParseTextField(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		wantName    string
		wantDefault string
		wantWidth   uint16
		wantMasked  bool
	}{
		"plain name, no default": {
			input:    "`<name>",
			wantName: "name",
		},
		"name with backtick default": {
			input:       "`<name`John>",
			wantName:    "name",
			wantDefault: "John",
		},
		"masked modifier": {
			input:      "`<!pw>",
			wantName:   "pw",
			wantMasked: true,
		},
		"width modifier": {
			input:     "`<16|pw>",
			wantName:  "pw",
			wantWidth: 16,
		},
		"masked and width with default, name falls to second segment": {
			input:       "`<!16|pw`secret>",
			wantName:    "pw",
			wantDefault: "secret",
			wantWidth:   16,
			wantMasked:  true,
		},
		"width capped at 256": {
			input:     "`<9999|pw>",
			wantName:  "pw",
			wantWidth: 256,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := micron.Parse(tc.input)
			require.Len(t, doc.Lines, 1)
			require.Len(t, doc.Lines[0].Elements, 1)

			f, ok := doc.Lines[0].Elements[0].(micron.Field)
			require.True(t, ok)
			assert.Equal(t, tc.wantName, f.Name)
			assert.Equal(t, tc.wantDefault, f.Default)
			assert.Equal(t, tc.wantWidth, f.Width)
			assert.Equal(t, tc.wantMasked, f.Masked)
			assert.IsType(t, micron.TextFieldKind{}, f.Kind)
		})
	}
}

func TestParseCheckboxField(t *testing.T) {
	t.Parallel()

	doc := micron.Parse("`<?|agree|yes`I agree>")
	require.Len(t, doc.Lines, 1)
	require.Len(t, doc.Lines[0].Elements, 1)

	f, ok := doc.Lines[0].Elements[0].(micron.Field)
	require.True(t, ok)
	assert.Equal(t, "agree", f.Name)
	assert.Equal(t, "I agree", f.Default)

	kind, ok := f.Kind.(micron.CheckboxFieldKind)
	require.True(t, ok)
	assert.False(t, kind.Checked)
}

func TestParseCheckboxFieldPrechecked(t *testing.T) {
	t.Parallel()

	doc := micron.Parse("`<?|agree|yes|*`I agree>")
	require.Len(t, doc.Lines, 1)
	require.Len(t, doc.Lines[0].Elements, 1)

	f, ok := doc.Lines[0].Elements[0].(micron.Field)
	require.True(t, ok)

	kind, ok := f.Kind.(micron.CheckboxFieldKind)
	require.True(t, ok)
	assert.True(t, kind.Checked)
}

func TestParseRadioField(t *testing.T) {
	t.Parallel()

	doc := micron.Parse("`<^|color|red`Red>")
	require.Len(t, doc.Lines, 1)
	require.Len(t, doc.Lines[0].Elements, 1)

	f, ok := doc.Lines[0].Elements[0].(micron.Field)
	require.True(t, ok)
	assert.Equal(t, "color", f.Name)
	assert.Equal(t, "Red", f.Default)

	kind, ok := f.Kind.(micron.RadioFieldKind)
	require.True(t, ok)
	assert.Equal(t, "red", kind.Value)
	assert.False(t, kind.Checked)
}

func TestParseFieldLabelContinuesAsInlineText(t *testing.T) {
	t.Parallel()

	doc := micron.Parse("`<name>, nice to meet you")
	require.Len(t, doc.Lines, 1)
	require.Len(t, doc.Lines[0].Elements, 2)

	_, ok := doc.Lines[0].Elements[0].(micron.Field)
	require.True(t, ok)

	st, ok := doc.Lines[0].Elements[1].(micron.StyledText)
	require.True(t, ok)
	assert.Equal(t, ", nice to meet you", st.Text)
}

func TestParseFieldAbandonedAtEndOfLine(t *testing.T) {
	t.Parallel()

	doc := micron.Parse("`<name no closing angle")
	require.Len(t, doc.Lines, 1)
	require.Len(t, doc.Lines[0].Elements, 1)

	st, ok := doc.Lines[0].Elements[0].(micron.StyledText)
	require.True(t, ok)
	assert.Equal(t, "`<name no closing angle", st.Text)
}
