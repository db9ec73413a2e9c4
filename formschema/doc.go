// Package formschema generates JSON Schema (Draft 7) describing the shape
// of a form submission from a parsed [go.jacobcolvin.com/micron.Document].
//
// It walks a Document's [go.jacobcolvin.com/micron.Field] elements and
// produces one schema property per distinct field name: a string (bounded
// by maxLength when the field declares a width) for text fields, a boolean
// for checkboxes, and a string enum of the distinct values sharing a name
// for radio groups.
//
// This package never validates Micron source; it describes downstream
// submission shape the same way [go.jacobcolvin.com/micron] never enforces
// one at parse time. Use [Generator.Generate] directly, or [Config] for CLI flag
// integration via [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra].
package formschema
