package ican

import "fmt"

// Specification is the immutable layout record for one registry entry: the
// two-letter country or asset code, the declared total length, the positional
// structure of everything after the four-character prefix, the crypto
// variant, and a known-valid example. The compiled matcher is derived from
// the structure pattern at construction time and cached in the value.
type Specification struct {
	code      string
	length    int
	structure string
	variant   CryptoVariant
	example   string
	matcher   structure
}

// NewSpecification compiles and validates a registry entry. It rejects codes
// that are not exactly two uppercase letters, lengths below 4 or inconsistent
// with the compiled structure width, malformed structure patterns, and the
// query-only VariantAny.
func NewSpecification(code string, length int, structurePattern string, variant CryptoVariant, example string) (Specification, error) {
	if len(code) != 2 || !isUpper(code[0]) || !isUpper(code[1]) {
		return Specification{}, fmt.Errorf("ican: specification code %q must be two uppercase letters", code)
	}
	if variant == VariantAny {
		return Specification{}, fmt.Errorf("ican: specification %s: variant %q is query-only", code, VariantAny)
	}
	if length < 4 {
		return Specification{}, fmt.Errorf("ican: specification %s: length %d is below the 4-character prefix", code, length)
	}

	matcher, err := compileStructure(structurePattern)
	if err != nil {
		return Specification{}, fmt.Errorf("ican: specification %s: %w", code, err)
	}
	if want := matcher.totalWidth() + 4; length != want {
		return Specification{}, fmt.Errorf("ican: specification %s: length %d does not cover structure %s (want %d)", code, length, structurePattern, want)
	}

	return Specification{
		code:      code,
		length:    length,
		structure: structurePattern,
		variant:   variant,
		example:   example,
		matcher:   matcher,
	}, nil
}

// Code returns the two-letter country or asset code.
func (s Specification) Code() string { return s.code }

// Length returns the total length of a valid identifier.
func (s Specification) Length() int { return s.length }

// Structure returns the compact structure pattern.
func (s Specification) Structure() string { return s.structure }

// Variant returns the crypto variant of the entry.
func (s Specification) Variant() CryptoVariant { return s.variant }

// Example returns a known-valid identifier for the entry.
func (s Specification) Example() string { return s.example }

// IsZero reports whether the specification is the zero value.
func (s Specification) IsZero() bool { return s.code == "" }
