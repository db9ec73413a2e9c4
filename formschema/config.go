package formschema

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for schema generation configuration, allowing
// callers to customize flag names while keeping sensible defaults via
// [NewConfig].
type Flags struct {
	Title       string
	Description string
	ID          string
	Strict      string
	Draft       string
}

// Config holds CLI flag values for schema generation configuration. A
// zero-value Config produces an untitled, permissive schema.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewGenerator] to create a [Generator].
type Config struct {
	Flags       Flags
	Title       string
	Description string
	ID          string
	Draft       int
	Strict      bool
}

// NewConfig returns a new [Config] with default flag names and Draft 7.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Title:       "schema-title",
			Description: "schema-description",
			ID:          "schema-id",
			Strict:      "schema-strict",
			Draft:       "draft",
		},
		Draft: 7,
	}
}

// LoadDefaults overlays YAML-encoded defaults for Title, Description, ID,
// Strict, and Draft onto c. A field is only overlaid when the caller's
// flags has no explicit value for the corresponding flag, so a config
// file supplies defaults but an explicit CLI flag always wins. Call it
// after flags has already parsed the command line.
func (c *Config) LoadDefaults(data []byte, flags *pflag.FlagSet) error {
	var overlay struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		ID          string `yaml:"id"`
		Strict      bool   `yaml:"strict"`
		Draft       int    `yaml:"draft"`
	}

	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing formschema defaults: %w", err)
	}

	if overlay.Title != "" && !flags.Changed(c.Flags.Title) {
		c.Title = overlay.Title
	}

	if overlay.Description != "" && !flags.Changed(c.Flags.Description) {
		c.Description = overlay.Description
	}

	if overlay.ID != "" && !flags.Changed(c.Flags.ID) {
		c.ID = overlay.ID
	}

	if overlay.Strict && !flags.Changed(c.Flags.Strict) {
		c.Strict = true
	}

	if overlay.Draft != 0 && !flags.Changed(c.Flags.Draft) {
		c.Draft = overlay.Draft
	}

	return nil
}

// RegisterFlags adds schema generation flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Title, c.Flags.Title, c.Title, "schema title field")
	flags.StringVar(&c.Description, c.Flags.Description, c.Description, "schema description field")
	flags.StringVar(&c.ID, c.Flags.ID, c.ID, "schema $id field")
	flags.BoolVar(&c.Strict, c.Flags.Strict, c.Strict, "set additionalProperties: false on the schema")
	flags.IntVar(&c.Draft, c.Flags.Draft, c.Draft, "JSON Schema draft version (6 or 7)")
}

// RegisterCompletions registers shell completions for schema generation
// flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	flagNames := []string{c.Flags.Title, c.Flags.Description, c.Flags.ID, c.Flags.Strict, c.Flags.Draft}
	for _, flag := range flagNames {
		if err := cmd.RegisterFlagCompletionFunc(flag, noFileComp); err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewGenerator creates a [Generator] using this [Config].
func (c *Config) NewGenerator() *Generator {
	var opts []Option

	if c.Title != "" {
		opts = append(opts, WithTitle(c.Title))
	}

	if c.Description != "" {
		opts = append(opts, WithDescription(c.Description))
	}

	if c.ID != "" {
		opts = append(opts, WithID(c.ID))
	}

	if c.Strict {
		opts = append(opts, WithStrict(true))
	}

	if c.Draft != 0 {
		opts = append(opts, WithDraft(c.Draft))
	}

	return NewGenerator(opts...)
}
