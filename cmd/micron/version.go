package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/micron/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "micron %s (%s, %s/%s)\n",
				version.Version, version.Revision, version.GoOS, version.GoArch)

			return nil
		},
	}
}
