// Command fhirtree inspects the built-in type catalog, prints the sample resources
// and loads type definitions from FHIR StructureDefinitions.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cfg := &Config{}

	root := &cobra.Command{
		Use:          "fhirtree",
		Short:        "Inspect FHIR resource trees and their type definitions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			*cfg = *loaded
			slog.SetDefault(cfg.Logger(cmd.ErrOrStderr()))
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", "text", "log format: text or json")

	root.AddCommand(schemaCmd())
	root.AddCommand(walkCmd(cfg))
	root.AddCommand(loadCmd())

	return root
}
