package numerals

import (
	"errors"
	"net/http"

	"zuglang-api/internal/zuglang"
)

// Stable error codes exposed in JSON error bodies.
const (
	CodeInvalidBody     = "invalid_body"
	CodeEmptyNumeral    = "empty_numeral"
	CodeInvalidDigit    = "invalid_digit"
	CodeInvalidOperator = "invalid_operator"
	CodeDivisionByZero  = "division_by_zero"
)

// classify maps a core zuglang error to its stable code and HTTP status.
// Every core error kind is a deterministic function of the input, so all
// map to 4xx.
func classify(err error) (code string, status int) {
	var invalidDigit *zuglang.InvalidDigitError
	var invalidOp *zuglang.InvalidOperatorError

	switch {
	case errors.Is(err, zuglang.ErrEmptyNumeral):
		return CodeEmptyNumeral, http.StatusBadRequest
	case errors.As(err, &invalidDigit):
		return CodeInvalidDigit, http.StatusBadRequest
	case errors.As(err, &invalidOp):
		return CodeInvalidOperator, http.StatusBadRequest
	case errors.Is(err, zuglang.ErrDivisionByZero):
		return CodeDivisionByZero, http.StatusBadRequest
	default:
		return CodeInvalidBody, http.StatusBadRequest
	}
}
