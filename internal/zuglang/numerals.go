// Package zuglang implements the Zuglang numeral codec and phrase
// dictionary. Zuglang numerals are base-10 digit strings written with the
// letters A–J (A=0 … J=9), most significant letter first.
//
// Everything in this package is pure and stateless apart from the phrase
// dictionary, which is loaded once at init and never mutated.
package zuglang

import "strings"

// Decode parses a numeral string into its non-negative magnitude.
// Input is case-insensitive. An empty string returns ErrEmptyNumeral;
// any character outside A–J returns an InvalidDigitError naming it.
//
// Decode handles magnitudes only: a leading minus sign is not accepted.
// Sign handling belongs to Encode and Compute.
func Decode(s string) (int, error) {
	if s == "" {
		return 0, ErrEmptyNumeral
	}

	result := 0
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'J' {
			return 0, &InvalidDigitError{Char: r}
		}
		result = result*10 + int(r-'A')
	}

	return result, nil
}

// normalize is the canonical form of a numeral string.
func normalize(s string) string {
	return strings.ToUpper(s)
}

// Encode formats an integer as a Zuglang numeral. Zero encodes to "A";
// negative values carry a "-" prefix before the magnitude.
func Encode(n int) string {
	if n == 0 {
		return "A"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var digits []byte
	for n > 0 {
		digits = append(digits, byte('A'+n%10))
		n /= 10
	}

	var b strings.Builder
	b.Grow(len(digits) + 1)
	if negative {
		b.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}

	return b.String()
}
