package ican

import (
	"fmt"
	"strings"
)

// Validate runs the full check pipeline over s with the given variant
// filter: registry lookup by the leading two characters, declared length,
// variant filter, positional structure, and the MOD 97-10 checksum, in that
// order, short-circuiting on the first failure. The input is normalized
// before any check, so separators and lowercase are tolerated.
//
// It returns nil for a valid identifier, or an error matching one of
// ErrCodeNotFound, ErrLengthMismatch, ErrVariantMismatch,
// ErrStructureMismatch or ErrChecksumMismatch.
func Validate(s string, filter CryptoVariant) error {
	id := Normalize(s)
	spec, err := Lookup(leadingCode(id))
	if err != nil {
		return err
	}
	return spec.Validate(id, filter)
}

// IsValid reports whether s is a valid identifier under the given filter.
func IsValid(s string, filter CryptoVariant) bool {
	return Validate(s, filter) == nil
}

// ToBCAN extracts the local payload of an identifier: the part after the
// four-character prefix, split into its structure segments and joined with
// separator. The checksum is not verified; use Validate for that.
func ToBCAN(s, separator string) (string, error) {
	id := Normalize(s)
	spec, err := Lookup(leadingCode(id))
	if err != nil {
		return "", err
	}
	return spec.ToBCAN(id, separator)
}

// FromBCAN builds a full identifier from a code and a bare local payload,
// computing the check digits. The payload must match the specification's
// structure exactly; no variant filtering applies at construction time.
func FromBCAN(code, bcan string) (string, error) {
	spec, err := Lookup(Normalize(code))
	if err != nil {
		return "", err
	}
	return spec.FromBCAN(bcan)
}

// ValidateBCAN checks a bare local payload against the specification of code:
// structure and variant filter only, since a payload carries no checksum.
func ValidateBCAN(code, bcan string, filter CryptoVariant) error {
	spec, err := Lookup(Normalize(code))
	if err != nil {
		return err
	}
	return spec.ValidateBCAN(bcan, filter)
}

// IsValidBCAN reports whether bcan is a valid local payload for code under
// the given filter.
func IsValidBCAN(code, bcan string, filter CryptoVariant) bool {
	return ValidateBCAN(code, bcan, filter) == nil
}

// Validate checks a full identifier against this specification: leading
// code, declared length, variant filter, positional structure, checksum.
// The input is normalized first.
func (s Specification) Validate(id string, filter CryptoVariant) error {
	id = Normalize(id)
	if leadingCode(id) != s.code {
		return fmt.Errorf("%w: %q is not a %s identifier", ErrCodeNotFound, leadingCode(id), s.code)
	}
	if len(id) != s.length {
		return fmt.Errorf("%w: got %d characters, want %d", ErrLengthMismatch, len(id), s.length)
	}
	if !s.variant.satisfies(filter) {
		return fmt.Errorf("%w: %s entry does not satisfy filter %s", ErrVariantMismatch, s.variant, filter)
	}
	if !s.matcher.match(id[4:]) {
		return fmt.Errorf("%w: %q does not match %s", ErrStructureMismatch, id[4:], s.structure)
	}
	if !checksumValid(id) {
		return fmt.Errorf("%w: MOD 97-10 check failed for %q", ErrChecksumMismatch, id)
	}
	return nil
}

// ToBCAN splits the post-prefix part of id into its structure segments and
// joins them with separator.
func (s Specification) ToBCAN(id, separator string) (string, error) {
	id = Normalize(id)
	if len(id) < 4 {
		return "", fmt.Errorf("%w: %q is shorter than the 4-character prefix", ErrStructureMismatch, id)
	}
	parts, err := s.matcher.split(id[4:])
	if err != nil {
		return "", err
	}
	return strings.Join(parts, separator), nil
}

// FromBCAN builds a full identifier from a bare local payload, computing the
// two check digits.
func (s Specification) FromBCAN(bcan string) (string, error) {
	payload := Normalize(bcan)
	if !s.matcher.match(payload) {
		return "", fmt.Errorf("%w: %q does not match %s for %s", ErrInvalidBCAN, payload, s.structure, s.code)
	}
	return s.code + checkDigits(s.code, payload) + payload, nil
}

// ValidateBCAN checks a bare local payload: variant filter and positional
// structure. A payload carries no checksum, so none is verified.
func (s Specification) ValidateBCAN(bcan string, filter CryptoVariant) error {
	if !s.variant.satisfies(filter) {
		return fmt.Errorf("%w: %s entry does not satisfy filter %s", ErrVariantMismatch, s.variant, filter)
	}
	if payload := Normalize(bcan); !s.matcher.match(payload) {
		return fmt.Errorf("%w: %q does not match %s for %s", ErrInvalidBCAN, payload, s.structure, s.code)
	}
	return nil
}

// leadingCode returns the first two characters of a normalized identifier,
// or an empty string when the input is too short to carry a code.
func leadingCode(id string) string {
	if len(id) < 2 {
		return ""
	}
	return id[:2]
}
