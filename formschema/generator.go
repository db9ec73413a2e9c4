package formschema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/micron"
)

// ErrInvalidOption indicates an invalid [Option] or [Config] value.
var ErrInvalidOption = errors.New("invalid option")

// Generator produces a JSON Schema describing the form fields in a
// [micron.Document].
type Generator struct {
	title       string
	description string
	id          string
	strict      bool
	draft       int
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithTitle sets the schema title.
func WithTitle(title string) Option {
	return func(g *Generator) { g.title = title }
}

// WithDescription sets the schema description.
func WithDescription(desc string) Option {
	return func(g *Generator) { g.description = desc }
}

// WithID sets the schema $id.
func WithID(id string) Option {
	return func(g *Generator) { g.id = id }
}

// WithStrict sets additionalProperties to false on the generated schema.
func WithStrict(strict bool) Option {
	return func(g *Generator) { g.strict = strict }
}

// WithDraft sets the JSON Schema draft version the generated schema
// declares via its "$schema" field. Only 6 and 7 are recognized; any other
// value (including the zero value) falls back to 7.
func WithDraft(draft int) Option {
	return func(g *Generator) { g.draft = draft }
}

// schemaURI returns the "$schema" value for g's configured draft.
func (g *Generator) schemaURI() string {
	if g.draft == 6 {
		return "http://json-schema.org/draft-06/schema#"
	}

	return "http://json-schema.org/draft-07/schema#"
}

// fieldAccum collects everything seen across every [micron.Field] sharing
// one name, so fields split across multiple lines (as radio buttons
// commonly are) still produce a single merged property.
type fieldAccum struct {
	kind       string // "text", "checkbox", or "radio"
	width      uint16
	masked     bool
	defaultVal string
	checked    bool
	radioVals  []string
}

// Generate produces a JSON Schema object (draft 6 or 7, per [WithDraft])
// describing the fields in doc. Fields are bucketed by name in first-seen
// order; a name seen as both a radio group and anything else keeps its
// first-seen kind.
func (g *Generator) Generate(doc *micron.Document) (*jsonschema.Schema, error) {
	order := make([]string, 0)
	fields := make(map[string]*fieldAccum)

	doc.Walk(func(_ *micron.Line, el micron.Element) bool {
		f, ok := el.(micron.Field)
		if !ok {
			return true
		}

		acc, seen := fields[f.Name]
		if !seen {
			acc = &fieldAccum{}
			fields[f.Name] = acc
			order = append(order, f.Name)
		}

		switch kind := f.Kind.(type) {
		case micron.TextFieldKind:
			if acc.kind != "" && acc.kind != "text" {
				break
			}

			acc.kind = "text"
			acc.width = f.Width
			acc.masked = f.Masked
			acc.defaultVal = f.Default
		case micron.CheckboxFieldKind:
			if acc.kind != "" && acc.kind != "checkbox" {
				break
			}

			acc.kind = "checkbox"
			acc.checked = kind.Checked
		case micron.RadioFieldKind:
			if acc.kind != "" && acc.kind != "radio" {
				break
			}

			acc.kind = "radio"
			acc.radioVals = append(acc.radioVals, kind.Value)

			if kind.Checked {
				acc.defaultVal = kind.Value
			}
		}

		return true
	})

	schema := &jsonschema.Schema{
		Schema:     g.schemaURI(),
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema),
	}

	for _, name := range order {
		prop, err := g.buildProperty(fields[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		schema.Properties[name] = prop
		schema.PropertyOrder = append(schema.PropertyOrder, name)
	}

	if len(schema.Properties) == 0 {
		schema.Properties = nil
	}

	if g.strict {
		schema.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}
	} else {
		schema.AdditionalProperties = &jsonschema.Schema{}
	}

	if g.title != "" {
		schema.Title = g.title
	}

	if g.description != "" {
		schema.Description = g.description
	}

	if g.id != "" {
		schema.ID = g.id
	}

	return schema, nil
}

func (g *Generator) buildProperty(acc *fieldAccum) (*jsonschema.Schema, error) {
	switch acc.kind {
	case "checkbox":
		return &jsonschema.Schema{
			Type:    "boolean",
			Default: defaultValue(acc.checked),
		}, nil
	case "radio":
		enum := make([]any, 0, len(acc.radioVals))
		for _, v := range acc.radioVals {
			enum = append(enum, v)
		}

		s := &jsonschema.Schema{Type: "string", Enum: enum}
		if acc.defaultVal != "" {
			s.Default = defaultValue(acc.defaultVal)
		}

		return s, nil
	case "text":
		s := &jsonschema.Schema{Type: "string"}
		if acc.width > 0 {
			maxLen := int(acc.width)
			s.MaxLength = &maxLen
		}

		if acc.defaultVal != "" {
			s.Default = defaultValue(acc.defaultVal)
		}

		if acc.masked {
			s.WriteOnly = true
		}

		return s, nil
	}

	return nil, fmt.Errorf("%w: field has no recognized kind", ErrInvalidOption)
}

// defaultValue converts a Go value to a [json.RawMessage] suitable for use
// as a JSON Schema default value. Returns nil if marshaling fails.
func defaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}
