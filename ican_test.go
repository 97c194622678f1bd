package ican_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ican"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		filter  ican.CryptoVariant
		wantErr error
	}{
		{
			name:   "valid german iban",
			input:  "DE89370400440532013000",
			filter: ican.VariantNone,
		},
		{
			name:   "print format tolerated",
			input:  "DE89 3704 0044 0532 0130 00",
			filter: ican.VariantNone,
		},
		{
			name:   "lowercase tolerated",
			input:  "de89370400440532013000",
			filter: ican.VariantNone,
		},
		{
			name:    "main filter rejects plain country entry",
			input:   "DE89370400440532013000",
			filter:  ican.VariantMain,
			wantErr: ican.ErrVariantMismatch,
		},
		{
			name:    "any filter rejects plain country entry",
			input:   "DE89370400440532013000",
			filter:  ican.VariantAny,
			wantErr: ican.ErrVariantMismatch,
		},
		{
			name:    "unknown code",
			input:   "XX89370400440532013000",
			filter:  ican.VariantNone,
			wantErr: ican.ErrCodeNotFound,
		},
		{
			name:    "empty input",
			input:   "",
			filter:  ican.VariantNone,
			wantErr: ican.ErrCodeNotFound,
		},
		{
			name:    "shorter than prefix",
			input:   "DE8",
			filter:  ican.VariantNone,
			wantErr: ican.ErrLengthMismatch,
		},
		{
			name:    "truncated payload",
			input:   "DE893704004405320130",
			filter:  ican.VariantNone,
			wantErr: ican.ErrLengthMismatch,
		},
		{
			name:    "letters in digit positions",
			input:   "DE89ABCD00440532013000",
			filter:  ican.VariantNone,
			wantErr: ican.ErrStructureMismatch,
		},
		{
			name:    "flipped check digits",
			input:   "DE98370400440532013000",
			filter:  ican.VariantNone,
			wantErr: ican.ErrChecksumMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ican.Validate(tt.input, tt.filter)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantErr == nil, ican.IsValid(tt.input, tt.filter))
		})
	}
}

func TestValidateCryptoVariants(t *testing.T) {
	t.Parallel()

	cb, err := ican.Lookup("CB")
	require.NoError(t, err)
	require.Equal(t, ican.VariantMain, cb.Variant())

	example := cb.Example()
	assert.True(t, ican.IsValid(example, ican.VariantNone), "none filter ignores variant")
	assert.True(t, ican.IsValid(example, ican.VariantAny), "any filter accepts main entry")
	assert.True(t, ican.IsValid(example, ican.VariantMain), "exact filter accepts main entry")
	assert.False(t, ican.IsValid(example, ican.VariantTest), "test filter rejects main entry")
	assert.False(t, ican.IsValid(example, ican.VariantEnterprise), "enterprise filter rejects main entry")

	ab, err := ican.Lookup("AB")
	require.NoError(t, err)
	require.Equal(t, ican.VariantTest, ab.Variant())
	assert.True(t, ican.IsValid(ab.Example(), ican.VariantTest))
	assert.False(t, ican.IsValid(ab.Example(), ican.VariantMain))
}

func TestToBCAN(t *testing.T) {
	t.Parallel()

	t.Run("segments joined with separator", func(t *testing.T) {
		bcan, err := ican.ToBCAN("DE89370400440532013000", " ")
		require.NoError(t, err)
		assert.Equal(t, "37040044 0532013000", bcan)
	})

	t.Run("empty separator concatenates", func(t *testing.T) {
		bcan, err := ican.ToBCAN("DE89370400440532013000", "")
		require.NoError(t, err)
		assert.Equal(t, "370400440532013000", bcan)
	})

	t.Run("multi segment entry", func(t *testing.T) {
		bcan, err := ican.ToBCAN("ES9121000418450200051332", "-")
		require.NoError(t, err)
		assert.Equal(t, "2100-0418-4-5-0200051332", bcan)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := ican.ToBCAN("XX89370400440532013000", " ")
		assert.ErrorIs(t, err, ican.ErrCodeNotFound)
	})

	t.Run("wrong width", func(t *testing.T) {
		_, err := ican.ToBCAN("DE8937040044053201300", " ")
		assert.ErrorIs(t, err, ican.ErrStructureMismatch)
	})

	t.Run("shorter than prefix", func(t *testing.T) {
		_, err := ican.ToBCAN("DE8", " ")
		assert.ErrorIs(t, err, ican.ErrStructureMismatch)
	})
}

func TestFromBCAN(t *testing.T) {
	t.Parallel()

	t.Run("computes check digits", func(t *testing.T) {
		id, err := ican.FromBCAN("DE", "370400440532013000")
		require.NoError(t, err)
		assert.Equal(t, "DE89370400440532013000", id)
	})

	t.Run("tolerates unnormalized input", func(t *testing.T) {
		id, err := ican.FromBCAN("de", "3704 0044 0532 0130 00")
		require.NoError(t, err)
		assert.Equal(t, "DE89370400440532013000", id)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := ican.FromBCAN("XX", "370400440532013000")
		assert.ErrorIs(t, err, ican.ErrCodeNotFound)
	})

	t.Run("wrong length payload", func(t *testing.T) {
		_, err := ican.FromBCAN("DE", "37040044053201300")
		assert.ErrorIs(t, err, ican.ErrInvalidBCAN)
	})

	t.Run("wrong class payload", func(t *testing.T) {
		_, err := ican.FromBCAN("DE", "ABCDEFGH0532013000")
		assert.ErrorIs(t, err, ican.ErrInvalidBCAN)
	})
}

func TestValidateBCAN(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ican.ValidateBCAN("DE", "370400440532013000", ican.VariantNone))
	assert.True(t, ican.IsValidBCAN("DE", "370400440532013000", ican.VariantNone))

	assert.ErrorIs(t, ican.ValidateBCAN("DE", "370400440532013000", ican.VariantMain), ican.ErrVariantMismatch)
	assert.ErrorIs(t, ican.ValidateBCAN("DE", "37040044", ican.VariantNone), ican.ErrInvalidBCAN)
	assert.ErrorIs(t, ican.ValidateBCAN("XX", "370400440532013000", ican.VariantNone), ican.ErrCodeNotFound)

	cb, err := ican.Lookup("CB")
	require.NoError(t, err)
	assert.NoError(t, ican.ValidateBCAN("CB", cb.Example()[4:], ican.VariantAny))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	// Rebuilding every registry example from its own payload must reproduce
	// it exactly, and extracting the payload again must round-trip.
	for _, spec := range ican.Specifications() {
		example := spec.Example()
		payload := example[4:]

		rebuilt, err := ican.FromBCAN(spec.Code(), payload)
		require.NoError(t, err, "entry %s", spec.Code())
		assert.Equal(t, example, rebuilt, "entry %s", spec.Code())

		extracted, err := ican.ToBCAN(rebuilt, "-")
		require.NoError(t, err, "entry %s", spec.Code())
		assert.Equal(t, payload, strings.ReplaceAll(extracted, "-", ""), "entry %s", spec.Code())
	}
}

func TestSingleCharacterPerturbation(t *testing.T) {
	t.Parallel()

	// Substituting any single character past the code, preserving its
	// digit/letter shape so the expanded digit string keeps its length, must
	// break either the structure or the MOD 97-10 check.
	samples := []string{"DE", "GB", "FR", "MT", "NO", "CB", "AB", "SC", "BR", "MU"}

	for _, code := range samples {
		spec, err := ican.Lookup(code)
		require.NoError(t, err)
		example := spec.Example()

		for i := 2; i < len(example); i++ {
			mutated := []byte(example)
			mutated[i] = substituteSameShape(example[i])

			err := ican.Validate(string(mutated), ican.VariantNone)
			require.Error(t, err, "entry %s position %d", code, i)
			assert.True(t,
				errors.Is(err, ican.ErrStructureMismatch) || errors.Is(err, ican.ErrChecksumMismatch),
				"entry %s position %d: got %v", code, i, err)
		}
	}
}

// substituteSameShape returns a different character of the same shape:
// digits map to the next digit, letters to the next letter.
func substituteSameShape(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return '0' + (c-'0'+1)%10
	case c >= 'A' && c <= 'Z':
		return 'A' + (c-'A'+1)%26
	default:
		return c + 1
	}
}
