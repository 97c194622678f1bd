package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ican",
	Short: "Validate, convert and format ICAN account identifiers",
	Long: `ican works with ICAN identifiers: IBAN-style account numbers extended
with crypto-asset network entries.

It validates identifiers against the built-in layout registry, converts
between full identifiers and their local payloads (BCAN), and formats
identifiers for display.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
