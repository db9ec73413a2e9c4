package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/micron"
	"go.jacobcolvin.com/micron/render"
)

func newRenderCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render Micron markup to an ANSI-styled string",
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

			w := width
			if w == 0 {
				if detected, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
					w = detected
				}
			}

			doc := micron.Parse(string(data))
			fmt.Fprintln(cmd.OutOrStdout(), render.Render(doc, render.WithWidth(w)))

			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "render width in columns (0 = auto-detect terminal width)")

	return cmd
}
