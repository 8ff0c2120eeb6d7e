package zuglang

import "fmt"

// Result is the outcome of one arithmetic operation, carrying both operands
// and the result in both notations.
type Result struct {
	Operand1 string
	Operand2 string
	Operator string
	Encoded  string
	Decimal1 int
	Decimal2 int
	Decimal  int
}

// Summary renders the operation in both notations, e.g.
// "BC + CF = DH (12 + 25 = 37)".
func (r Result) Summary() string {
	return fmt.Sprintf("%s %s %s = %s (%d %s %d = %d)",
		r.Operand1, r.Operator, r.Operand2, r.Encoded,
		r.Decimal1, r.Operator, r.Decimal2, r.Decimal)
}

// Compute decodes both operands, applies op, and encodes the result.
// Decode failures propagate unchanged. Division is floor division; both
// divide operands are non-negative magnitudes, so plain integer division
// suffices. A zero divisor returns ErrDivisionByZero and an operator
// outside + - * / returns an InvalidOperatorError.
func Compute(a, b, op string) (Result, error) {
	x, err := Decode(a)
	if err != nil {
		return Result{}, fmt.Errorf("operand %q: %w", a, err)
	}

	y, err := Decode(b)
	if err != nil {
		return Result{}, fmt.Errorf("operand %q: %w", b, err)
	}

	var value int
	switch op {
	case "+":
		value = x + y
	case "-":
		value = x - y
	case "*":
		value = x * y
	case "/":
		if y == 0 {
			return Result{}, ErrDivisionByZero
		}
		value = x / y
	default:
		return Result{}, &InvalidOperatorError{Op: op}
	}

	return Result{
		Operand1: normalize(a),
		Operand2: normalize(b),
		Operator: op,
		Encoded:  Encode(value),
		Decimal1: x,
		Decimal2: y,
		Decimal:  value,
	}, nil
}
