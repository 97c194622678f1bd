package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ican"
)

var validateCmd = &cobra.Command{
	Use:   "validate <identifier>",
	Short: "Validate an ICAN identifier",
	Long: `Validate checks an identifier against the registry: code, length,
crypto variant, positional structure and MOD 97-10 checksum.

Examples:
  ican validate DE89370400440532013000
  ican validate "DE89 3704 0044 0532 0130 00"
  ican validate --variant any CB14C255404E4FB440034D6608697A8D41BED440E504`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateVariant string

func init() {
	validateCmd.Flags().StringVar(&validateVariant, "variant", "none", "Crypto variant filter (none, main, test, enterprise, any)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	filter, err := ican.ParseCryptoVariant(validateVariant)
	if err != nil {
		return err
	}

	if err := ican.Validate(args[0], filter); err != nil {
		return err
	}
	fmt.Println("valid")
	return nil
}
