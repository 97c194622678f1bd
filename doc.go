// Package ican validates, formats, and converts ICAN identifiers — an
// IBAN-like account-number scheme extended with crypto-asset network entries.
//
// Every identifier starts with a two-letter country or asset code and two
// check digits; the rest is the local payload (BCAN). The package checks an
// identifier against a built-in registry of per-country layout
// specifications: total length, positional character structure, crypto
// variant, and the ISO 7064 MOD 97-10 checksum. It also converts between
// full identifiers and bare local payloads in both directions, computing
// check digits on construction.
//
// # Features
//
//   - Full validation pipeline: code lookup, length, crypto-variant filter,
//     positional structure, checksum — short-circuiting on the first failure
//   - Error-returning (Validate) and boolean (IsValid) entry points
//   - BCAN extraction (ToBCAN) and identifier construction (FromBCAN)
//   - Crypto-asset variant filtering: none, main, test, enterprise, any
//   - Registry of ~90 country and asset layouts embedded at build time
//   - Normalization plus print and short display formatting
//
// # Usage
//
//	import "github.com/dmitrymomot/ican"
//
//	// Validate a regular IBAN-style identifier.
//	err := ican.Validate("DE89 3704 0044 0532 0130 00", ican.VariantNone)
//	// err == nil
//
//	// Validate a crypto-asset identifier on any network.
//	ok := ican.IsValid("CB14C255404E4FB440034D6608697A8D41BED440E504", ican.VariantAny)
//
//	// Extract the local payload.
//	bcan, _ := ican.ToBCAN("DE89370400440532013000", " ")
//	// "37040044 0532013000"
//
//	// Build an identifier from a local payload; check digits are computed.
//	id, _ := ican.FromBCAN("DE", "370400440532013000")
//	// "DE89370400440532013000"
//
// # Registry
//
// The specification table ships as an embedded YAML file and is compiled
// once at package init. Every entry declares its total length, a compact
// structure pattern (fixed-width runs of character classes, e.g. "F08F10"
// for eight digits followed by ten digits), an optional crypto variant, and
// a known-valid example. A malformed table is a packaging bug and panics at
// startup rather than failing on first use.
//
// # Error Handling
//
// Operations return wrapped sentinel errors (ErrCodeNotFound,
// ErrLengthMismatch, ErrStructureMismatch, ErrChecksumMismatch, …) that
// callers match with errors.Is. The boolean helpers collapse all failure
// kinds into false.
//
// # Thread Safety
//
// All functions are pure and operate on an immutable registry built at
// init, so the package is safe for unsynchronized concurrent use. No
// operation performs I/O or blocks.
package ican
