package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/micron/micronart"
)

func newArtCmd() *cobra.Command {
	var cols, rows int

	cmd := &cobra.Command{
		Use:   "art <image>",
		Short: "Encode an image as Micron markup using half-block color cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0]) //nolint:gosec // path is a CLI argument, not untrusted input.
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			img, _, err := image.Decode(f)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}

			c, r := cols, rows
			if c == 0 || r == 0 {
				w, h, termErr := term.GetSize(int(os.Stdout.Fd()))
				if termErr != nil {
					return fmt.Errorf("detecting terminal size (use --cols/--rows): %w", termErr)
				}

				if c == 0 {
					c = w
				}

				if r == 0 {
					r = h
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), micronart.Encode(img, c, r))

			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 0, "output width in columns (0 = auto-detect terminal width)")
	cmd.Flags().IntVar(&rows, "rows", 0, "output height in rows (0 = auto-detect terminal height)")

	return cmd
}
