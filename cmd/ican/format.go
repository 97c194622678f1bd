package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ican"
)

var formatCmd = &cobra.Command{
	Use:   "format <identifier>",
	Short: "Format an identifier for display",
	Long: `Format prints an identifier in print format (groups of four characters)
or, with --short, as an elided front…back form.

Examples:
  ican format DE89370400440532013000
  ican format --separator "-" DE89370400440532013000
  ican format --short 4:4 DE89370400440532013000`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

var (
	formatSeparator string
	formatShort     string
)

func init() {
	formatCmd.Flags().StringVar(&formatSeparator, "separator", " ", "Group separator")
	formatCmd.Flags().StringVar(&formatShort, "short", "", "Short format as front:back character counts")

	rootCmd.AddCommand(formatCmd)
}

func runFormat(_ *cobra.Command, args []string) error {
	if formatShort == "" {
		fmt.Println(ican.PrintFormat(args[0], formatSeparator))
		return nil
	}

	var front, back int
	if _, err := fmt.Sscanf(formatShort, "%d:%d", &front, &back); err != nil {
		return fmt.Errorf("invalid --short value %q, want front:back", formatShort)
	}
	short, err := ican.ShortFormat(args[0], "…", front, back)
	if err != nil {
		return err
	}
	fmt.Println(short)
	return nil
}
