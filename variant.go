package ican

import (
	"fmt"
	"strings"
)

// CryptoVariant distinguishes crypto-asset registry entries from plain
// country entries and selects which of them a validation accepts.
//
// Concrete specifications carry VariantNone, VariantMain, VariantTest or
// VariantEnterprise. VariantAny is query-only: it is a valid filter argument
// but never stored in a specification.
type CryptoVariant uint8

const (
	// VariantNone marks a plain country entry. As a filter it matches every
	// specification regardless of its variant.
	VariantNone CryptoVariant = iota

	// VariantMain marks a crypto-asset main-network entry.
	VariantMain

	// VariantTest marks a crypto-asset test-network entry.
	VariantTest

	// VariantEnterprise marks a crypto-asset enterprise-network entry.
	VariantEnterprise

	// VariantAny is a filter that matches any specification whose variant is
	// not VariantNone. It cannot be stored in a specification.
	VariantAny
)

// ParseCryptoVariant maps textual variant names, including the common
// synonyms "mainnet", "testnet" and "enterprise", onto the enum. The empty
// string parses as VariantNone.
func ParseCryptoVariant(s string) (CryptoVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return VariantNone, nil
	case "main", "mainnet":
		return VariantMain, nil
	case "test", "testnet":
		return VariantTest, nil
	case "enterprise":
		return VariantEnterprise, nil
	case "any":
		return VariantAny, nil
	}
	return VariantNone, fmt.Errorf("%w: %q", ErrInvalidVariant, s)
}

// String returns the canonical name of the variant.
func (v CryptoVariant) String() string {
	switch v {
	case VariantNone:
		return "none"
	case VariantMain:
		return "main"
	case VariantTest:
		return "test"
	case VariantEnterprise:
		return "enterprise"
	case VariantAny:
		return "any"
	}
	return fmt.Sprintf("CryptoVariant(%d)", uint8(v))
}

// satisfies reports whether a specification storing variant v passes the
// given filter: VariantNone matches everything, VariantAny matches any
// non-none variant, and a concrete filter must match exactly.
func (v CryptoVariant) satisfies(filter CryptoVariant) bool {
	switch filter {
	case VariantNone:
		return true
	case VariantAny:
		return v != VariantNone
	default:
		return v == filter
	}
}
