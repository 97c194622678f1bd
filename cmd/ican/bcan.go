package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ican"
)

var bcanCmd = &cobra.Command{
	Use:   "bcan <identifier>",
	Short: "Extract the local payload (BCAN) of an identifier",
	Long: `Bcan strips the four-character prefix of an identifier and prints the
local payload, split into its structure segments.

Examples:
  ican bcan DE89370400440532013000
  ican bcan --separator "" DE89370400440532013000`,
	Args: cobra.ExactArgs(1),
	RunE: runBCAN,
}

var bcanSeparator string

func init() {
	bcanCmd.Flags().StringVar(&bcanSeparator, "separator", " ", "Separator between structure segments")

	rootCmd.AddCommand(bcanCmd)
}

func runBCAN(_ *cobra.Command, args []string) error {
	bcan, err := ican.ToBCAN(args[0], bcanSeparator)
	if err != nil {
		return err
	}
	fmt.Println(bcan)
	return nil
}
