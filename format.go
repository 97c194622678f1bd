package ican

import (
	"fmt"
	"strings"
)

// Normalize converts s to electronic format: every character outside
// [A-Za-z0-9] is stripped and the remainder is uppercased.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c) || isUpper(c):
			b.WriteByte(c)
		case isLower(c):
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}

// PrintFormat normalizes s and inserts separator between every group of four
// characters. An empty separator defaults to a single space.
func PrintFormat(s, separator string) string {
	if separator == "" {
		separator = " "
	}
	id := Normalize(s)

	var b strings.Builder
	b.Grow(len(id) + (len(id)/4)*len(separator))
	for i := 0; i < len(id); i += 4 {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(id[i:min(i+4, len(id))])
	}
	return b.String()
}

// ShortFormat normalizes s and elides the middle, keeping the first front and
// the last back characters around separator. The regions never overlap: the
// call fails with ErrInvalidFormatArguments when either count is negative or
// front+back exceeds the normalized length.
func ShortFormat(s, separator string, front, back int) (string, error) {
	id := Normalize(s)
	if front < 0 || back < 0 || front+back > len(id) {
		return "", fmt.Errorf("%w: front %d, back %d, length %d", ErrInvalidFormatArguments, front, back, len(id))
	}
	return id[:front] + separator + id[len(id)-back:], nil
}
