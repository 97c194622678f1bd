package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandWiring(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"validate valid", []string{"validate", "DE89370400440532013000"}, false},
		{"validate formatted", []string{"validate", "DE89 3704 0044 0532 0130 00"}, false},
		{"validate invalid checksum", []string{"validate", "DE88370400440532013000"}, true},
		{"validate unknown code", []string{"validate", "XX89370400440532013000"}, true},
		{"validate crypto any", []string{"validate", "--variant", "any", "CB14C255404E4FB440034D6608697A8D41BED440E504"}, false},
		{"validate crypto wrong filter", []string{"validate", "--variant", "test", "CB14C255404E4FB440034D6608697A8D41BED440E504"}, true},
		{"validate bad filter", []string{"validate", "--variant", "bogus", "DE89370400440532013000"}, true},
		{"bcan", []string{"bcan", "DE89370400440532013000"}, false},
		{"bcan bad structure", []string{"bcan", "DE8937040044053201300A"}, true},
		{"construct", []string{"construct", "DE", "370400440532013000"}, false},
		{"construct unknown code", []string{"construct", "XX", "370400440532013000"}, true},
		{"format", []string{"format", "DE89370400440532013000"}, false},
		{"format short", []string{"format", "--short", "4:4", "DE89370400440532013000"}, false},
		{"format short malformed", []string{"format", "--short", "4-4", "DE89370400440532013000"}, true},
		{"format short out of range", []string{"format", "--short", "40:40", "DE89370400440532013000"}, true},
		{"list", []string{"list"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags touched by earlier cases.
			validateVariant = "none"
			bcanSeparator = " "
			formatSeparator = " "
			formatShort = ""

			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
