package zuglang

import (
	"errors"
	"testing"
)

func TestComputeOperators(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		op      string
		encoded string
		decimal int
	}{
		{name: "add", a: "BC", b: "CF", op: "+", encoded: "DH", decimal: 37},
		{name: "subtract", a: "CF", b: "BC", op: "-", encoded: "BD", decimal: 13},
		{name: "subtract negative", a: "BC", b: "CF", op: "-", encoded: "-BD", decimal: -13},
		{name: "multiply", a: "BC", b: "C", op: "*", encoded: "CE", decimal: 24},
		{name: "divide", a: "CF", b: "C", op: "/", encoded: "BC", decimal: 12},
		{name: "divide exact", a: "BAA", b: "BA", op: "/", encoded: "BA", decimal: 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(tc.a, tc.b, tc.op)
			if err != nil {
				t.Fatalf("Compute(%q, %q, %q): %v", tc.a, tc.b, tc.op, err)
			}
			if got.Encoded != tc.encoded {
				t.Fatalf("encoded = %q, want %q", got.Encoded, tc.encoded)
			}
			if got.Decimal != tc.decimal {
				t.Fatalf("decimal = %d, want %d", got.Decimal, tc.decimal)
			}
		})
	}
}

func TestComputeResultCarriesBothNotations(t *testing.T) {
	got, err := Compute("bc", "CF", "+")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if got.Operand1 != "BC" || got.Operand2 != "CF" {
		t.Fatalf("expected normalized operands BC and CF, got %q and %q", got.Operand1, got.Operand2)
	}
	if got.Decimal1 != 12 || got.Decimal2 != 25 {
		t.Fatalf("expected decoded operands 12 and 25, got %d and %d", got.Decimal1, got.Decimal2)
	}

	want := "BC + CF = DH (12 + 25 = 37)"
	if s := got.Summary(); s != want {
		t.Fatalf("summary = %q, want %q", s, want)
	}
}

func TestComputeDivisionByZero(t *testing.T) {
	// "A" decodes to 0, so this is the division-by-zero condition, not a
	// decode failure.
	_, err := Compute("B", "A", "/")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestComputeInvalidOperator(t *testing.T) {
	_, err := Compute("BC", "CF", "%")

	var invalid *InvalidOperatorError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidOperatorError, got %v", err)
	}
	if invalid.Op != "%" {
		t.Fatalf("expected operator %%, got %q", invalid.Op)
	}
}

func TestComputePropagatesDecodeFailures(t *testing.T) {
	t.Run("first operand", func(t *testing.T) {
		_, err := Compute("BK", "CF", "+")
		var invalid *InvalidDigitError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidDigitError, got %v", err)
		}
	})

	t.Run("second operand", func(t *testing.T) {
		_, err := Compute("BC", "", "+")
		if !errors.Is(err, ErrEmptyNumeral) {
			t.Fatalf("expected ErrEmptyNumeral, got %v", err)
		}
	})
}
