// Package main provides the CLI entry point for micron, a parser and
// toolkit for the Micron terminal markup language.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	micronlog "go.jacobcolvin.com/micron/log"
	"go.jacobcolvin.com/micron/profile"
)

func main() {
	logCfg := micronlog.NewConfig()
	profileCfg := profile.NewConfig()

	var profiler *profile.Profiler

	rootCmd := &cobra.Command{
		Use:           "micron",
		Short:         "Parse and render Micron terminal markup",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}

			slog.SetDefault(slog.New(handler))

			profiler = profileCfg.NewProfiler()

			return profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return profiler.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, completionErr := range []error{
		logCfg.RegisterCompletions(rootCmd),
		profileCfg.RegisterCompletions(rootCmd),
	} {
		if completionErr != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
		}
	}

	rootCmd.AddCommand(
		newParseCmd(),
		newRenderCmd(),
		newSchemaCmd(),
		newArtCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func readInput(arg string) ([]byte, error) {
	if arg == "" || arg == "-" {
		return readAllStdin()
	}

	data, err := os.ReadFile(arg) //nolint:gosec // path is a CLI argument, not untrusted input.
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", arg, err)
	}

	return data, nil
}
