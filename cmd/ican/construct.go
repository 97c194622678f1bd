package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ican"
)

var constructCmd = &cobra.Command{
	Use:   "construct <code> <bcan>",
	Short: "Build a full identifier from a code and a local payload",
	Long: `Construct validates the payload against the code's layout, computes the
two check digits and prints the resulting identifier.

Examples:
  ican construct DE 370400440532013000`,
	Args: cobra.ExactArgs(2),
	RunE: runConstruct,
}

func init() {
	rootCmd.AddCommand(constructCmd)
}

func runConstruct(_ *cobra.Command, args []string) error {
	id, err := ican.FromBCAN(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}
