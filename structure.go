package ican

import "fmt"

// segment is one fixed-width run of a structure pattern: a character class
// tag and the exact number of characters it covers.
type segment struct {
	class byte // one of 'A', 'B', 'C', 'H', 'F', 'L', 'U', 'W'
	width int
}

// structure is the compiled form of a structure pattern: an ordered list of
// fixed-width segments covering every character after the four-character
// prefix. Matching consumes segments left to right with no backtracking,
// since all widths are fixed.
type structure []segment

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

// classAllows reports whether c belongs to the character class named by tag.
func classAllows(tag, c byte) bool {
	switch tag {
	case 'A': // digits, upper and lower letters
		return isDigit(c) || isUpper(c) || isLower(c)
	case 'B': // digits and upper letters
		return isDigit(c) || isUpper(c)
	case 'C': // upper and lower letters
		return isUpper(c) || isLower(c)
	case 'H': // hexadecimal digits
		return isDigit(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
	case 'F': // digits only
		return isDigit(c)
	case 'L': // lower letters
		return isLower(c)
	case 'U': // upper letters
		return isUpper(c)
	case 'W': // digits and lower letters
		return isDigit(c) || isLower(c)
	}
	return false
}

func knownClass(tag byte) bool {
	switch tag {
	case 'A', 'B', 'C', 'H', 'F', 'L', 'U', 'W':
		return true
	}
	return false
}

// compileStructure parses a structure pattern into its segments. The pattern
// must be a nonempty concatenation of three-character triples, each a known
// class tag followed by a two-digit decimal width.
func compileStructure(pattern string) (structure, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidStructure)
	}
	if len(pattern)%3 != 0 {
		return nil, fmt.Errorf("%w: %q is not a sequence of triples", ErrInvalidStructure, pattern)
	}

	segs := make(structure, 0, len(pattern)/3)
	for i := 0; i < len(pattern); i += 3 {
		tag := pattern[i]
		if !knownClass(tag) {
			return nil, fmt.Errorf("%w: unknown class %q in %q", ErrInvalidStructure, string(tag), pattern)
		}
		hi, lo := pattern[i+1], pattern[i+2]
		if !isDigit(hi) || !isDigit(lo) {
			return nil, fmt.Errorf("%w: non-decimal width in %q", ErrInvalidStructure, pattern)
		}
		segs = append(segs, segment{class: tag, width: int(hi-'0')*10 + int(lo-'0')})
	}
	return segs, nil
}

// totalWidth returns the number of characters the structure covers.
func (s structure) totalWidth() int {
	total := 0
	for _, seg := range s {
		total += seg.width
	}
	return total
}

// match reports whether input consists of exactly the compiled segments:
// same total length, every position inside its segment's class.
func (s structure) match(input string) bool {
	if len(input) != s.totalWidth() {
		return false
	}
	pos := 0
	for _, seg := range s {
		for i := 0; i < seg.width; i++ {
			if !classAllows(seg.class, input[pos+i]) {
				return false
			}
		}
		pos += seg.width
	}
	return true
}

// split captures one substring per segment, in declaration order. It returns
// ErrStructureMismatch when input does not fully match.
func (s structure) split(input string) ([]string, error) {
	if !s.match(input) {
		return nil, fmt.Errorf("%w: %q does not match the declared structure", ErrStructureMismatch, input)
	}
	parts := make([]string, 0, len(s))
	pos := 0
	for _, seg := range s {
		parts = append(parts, input[pos:pos+seg.width])
		pos += seg.width
	}
	return parts, nil
}
