package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/micron"
	"go.jacobcolvin.com/micron/formschema"
)

func newSchemaCmd() *cobra.Command {
	cfg := formschema.NewConfig()

	var output, configPath string

	cmd := &cobra.Command{
		Use:   "schema [file]",
		Short: "Generate a JSON Schema describing the form fields in Micron markup",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				return nil
			}

			data, err := os.ReadFile(configPath) //nolint:gosec // path is a CLI flag, not untrusted input.
			if err != nil {
				return fmt.Errorf("reading %s: %w", configPath, err)
			}

			if err := cfg.LoadDefaults(data, cmd.Flags()); err != nil {
				return fmt.Errorf("loading %s: %w", configPath, err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}

			data, err := readInput(arg)
			if err != nil {
				return err
			}

			doc := micron.Parse(string(data))

			gen := cfg.NewGenerator()

			schema, err := gen.Generate(doc)
			if err != nil {
				return fmt.Errorf("generating schema: %w", err)
			}

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding schema: %w", err)
			}

			out = append(out, '\n')

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
			} else {
				err = os.WriteFile(output, out, 0o644) //nolint:gosec // schema output is not sensitive.
			}

			if err != nil {
				return fmt.Errorf("writing schema: %w", err)
			}

			return nil
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	if err := cfg.RegisterCompletions(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write schema to file instead of stdout")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML file supplying flag defaults")

	return cmd
}
