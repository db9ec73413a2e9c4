package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/micron"
)

func readAllStdin() ([]byte, error) {
	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return data, nil
}

func newParseCmd() *cobra.Command {
	var indent bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse Micron markup and print the resulting document as JSON",
		Args:  cobra.MaximumNArgs(1),
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

			enc := json.NewEncoder(cmd.OutOrStdout())
			if indent {
				enc.SetIndent("", "  ")
			}

			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encoding document: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&indent, "indent", true, "pretty-print the JSON output")

	return cmd
}
