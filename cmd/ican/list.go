package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ican"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registry entry",
	Long: `List prints the whole layout registry: code, total length, structure
pattern, crypto variant and a known-valid example per entry.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tLENGTH\tSTRUCTURE\tVARIANT\tEXAMPLE")
	for _, spec := range ican.Specifications() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			spec.Code(), spec.Length(), spec.Structure(), spec.Variant(), spec.Example())
	}
	return w.Flush()
}
