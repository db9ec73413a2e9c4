package micron

import "encoding/json"

// MarshalJSON encodes a [StyledText] element with a "kind" discriminator,
// since [Element] is a closed interface and encoding/json has no way to
// record which implementation produced an encoded value.
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Text  string `json:"text"`
		Style Style  `json:"style"`
	}{"styled_text", s.Text, s.Style})
}

// MarshalJSON encodes a [Link] element with a "kind" discriminator.
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string   `json:"kind"`
		Label  string   `json:"label"`
		URL    string   `json:"url"`
		Fields []string `json:"fields,omitempty"`
		Style  Style    `json:"style"`
	}{"link", l.Label, l.URL, l.Fields, l.Style})
}

// MarshalJSON encodes a [Partial] element with a "kind" discriminator.
func (p Partial) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string   `json:"kind"`
		URL     string   `json:"url"`
		Refresh *float64 `json:"refresh,omitempty"`
		Fields  []string `json:"fields,omitempty"`
	}{"partial", p.URL, p.Refresh, p.Fields})
}

// MarshalJSON encodes a [Field] element with a "kind" discriminator. The
// field's [FieldKind] is embedded under "field_kind" as its own tagged
// object, via [marshalFieldKind].
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      string    `json:"kind"`
		Name      string    `json:"name"`
		Default   string    `json:"default,omitempty"`
		Width     uint16    `json:"width,omitempty"`
		Masked    bool      `json:"masked,omitempty"`
		FieldKind fieldKind `json:"field_kind"`
	}{"field", f.Name, f.Default, f.Width, f.Masked, marshalFieldKind(f.Kind)})
}

// fieldKind is the flattened, JSON-friendly shape of a [FieldKind]
// variant. Value and Checked are omitted where the variant doesn't carry
// them.
type fieldKind struct {
	Kind    string  `json:"kind"`
	Value   *string `json:"value,omitempty"`
	Checked *bool   `json:"checked,omitempty"`
}

func marshalFieldKind(k FieldKind) fieldKind {
	switch v := k.(type) {
	case CheckboxFieldKind:
		return fieldKind{Kind: "checkbox", Checked: &v.Checked}
	case RadioFieldKind:
		return fieldKind{Kind: "radio", Value: &v.Value, Checked: &v.Checked}
	default:
		return fieldKind{Kind: "text"}
	}
}

// MarshalJSON encodes l with Kind, Alignment, and DividerChar as
// human-readable strings. HeadingLevel stays numeric and is emitted only
// for heading lines; DividerChar only for divider lines.
func (l Line) MarshalJSON() ([]byte, error) {
	type alias struct {
		Kind         string    `json:"kind"`
		HeadingLevel int       `json:"heading_level,omitempty"`
		DividerChar  string    `json:"divider_char,omitempty"`
		IndentDepth  uint8     `json:"indent_depth"`
		Alignment    string    `json:"alignment"`
		Elements     []Element `json:"elements,omitempty"`
	}

	a := alias{
		Kind:        l.Kind.String(),
		IndentDepth: l.IndentDepth,
		Alignment:   l.Alignment.String(),
		Elements:    l.Elements,
	}

	if l.Kind == LineHeading {
		a.HeadingLevel = l.HeadingLevel
	}

	if l.Kind == LineDivider {
		a.DividerChar = string(l.DividerChar)
	}

	return json.Marshal(a)
}
