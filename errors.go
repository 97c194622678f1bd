package ican

import "errors"

// Errors returned by validation, conversion and formatting operations.
// Match them with errors.Is; operations wrap these sentinels with extra
// detail via fmt.Errorf.
var (
	// ErrCodeNotFound is returned when the leading two-character code of an
	// identifier has no entry in the registry.
	ErrCodeNotFound = errors.New("unknown country or asset code")

	// ErrInvalidStructure is returned when a structure pattern does not
	// follow the triple grammar (class tag + two-digit width). A registry
	// entry triggering it is a packaging bug and panics at init.
	ErrInvalidStructure = errors.New("invalid structure pattern")

	// ErrLengthMismatch is returned when an identifier's length differs from
	// the length declared by its specification.
	ErrLengthMismatch = errors.New("identifier length mismatch")

	// ErrVariantMismatch is returned when a specification's crypto variant
	// does not satisfy the requested filter.
	ErrVariantMismatch = errors.New("crypto variant mismatch")

	// ErrStructureMismatch is returned when the post-prefix part of an
	// identifier does not match the specification's positional structure.
	ErrStructureMismatch = errors.New("structure mismatch")

	// ErrChecksumMismatch is returned when the MOD 97-10 check over the full
	// identifier does not yield 1.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidBCAN is returned when a bare local payload fails the
	// structural checks of its specification.
	ErrInvalidBCAN = errors.New("invalid BCAN")

	// ErrInvalidFormatArguments is returned by ShortFormat when the requested
	// counts are negative or exceed the identifier length.
	ErrInvalidFormatArguments = errors.New("invalid format arguments")

	// ErrInvalidVariant is returned when a string cannot be parsed into a
	// known crypto variant.
	ErrInvalidVariant = errors.New("invalid crypto variant")
)
