package ican

import (
	"fmt"
	"strconv"
	"strings"
)

// rearrange produces the digit string the MOD 97-10 check runs over: the
// four-character prefix moved behind the payload, everything uppercased, and
// each letter expanded to its two-digit value (A=10 … Z=35).
func rearrange(s string) string {
	if len(s) < 4 {
		return ""
	}
	rotated := s[4:] + s[:4]

	var b strings.Builder
	b.Grow(len(rotated) * 2)
	for i := 0; i < len(rotated); i++ {
		c := rotated[i]
		switch {
		case isDigit(c):
			b.WriteByte(c)
		case isUpper(c):
			b.WriteString(strconv.Itoa(int(c-'A') + 10))
		case isLower(c):
			b.WriteString(strconv.Itoa(int(c-'a') + 10))
		}
	}
	return b.String()
}

// mod97 reduces a decimal string modulo 97 digit by digit. Letter expansion
// pushes identifiers past 80 digits, well beyond uint64, so the accumulator
// never holds more than 96*10+9.
func mod97(digits string) int {
	acc := 0
	for i := 0; i < len(digits); i++ {
		acc = (acc*10 + int(digits[i]-'0')) % 97
	}
	return acc
}

// checksumValid reports whether the full identifier passes the MOD 97-10
// check.
func checksumValid(id string) bool {
	return mod97(rearrange(id)) == 1
}

// checkDigits computes the two check digits for a new identifier built from
// code and bcan. Remainders range 0–96, so the result is always two digits in
// 02–98 and never the reserved values 00 or 01.
func checkDigits(code, bcan string) string {
	rem := mod97(rearrange(code + "00" + bcan))
	return fmt.Sprintf("%02d", 98-rem)
}
