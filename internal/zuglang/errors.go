package zuglang

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that carry no extra data.
var (
	ErrEmptyNumeral   = errors.New("empty numeral")
	ErrDivisionByZero = errors.New("division by zero")
)

// InvalidDigitError reports a character outside the A–J alphabet.
type InvalidDigitError struct {
	Char rune
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q: numerals use letters A-J only", e.Char)
}

// InvalidOperatorError reports an operator outside the fixed set + - * /.
type InvalidOperatorError struct {
	Op string
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("invalid operator %q: must be one of + - * /", e.Op)
}
