package numerals

// CalcRequest is the JSON body for POST /zuglang/calculator.
type CalcRequest struct {
	A  string `json:"a"`  // first operand, Zuglang numeral
	B  string `json:"b"`  // second operand, Zuglang numeral
	Op string `json:"op"` // one of "+", "-", "*", "/"
}

// DecimalBreakdown is the decimal-notation view of a calculation.
type DecimalBreakdown struct {
	A      int `json:"a"`
	B      int `json:"b"`
	Result int `json:"result"`
}

// CalcResponse is the JSON response for POST /zuglang/calculator. It carries
// the operation in both notations plus a human-readable summary.
type CalcResponse struct {
	A       string           `json:"a"`
	B       string           `json:"b"`
	Op      string           `json:"op"`
	Result  string           `json:"result"`
	Decimal DecimalBreakdown `json:"decimal"`
	Summary string           `json:"summary"`
}

// ToDecimalRequest is the JSON body for POST /zuglang/to-decimal.
type ToDecimalRequest struct {
	Numeral string `json:"numeral"`
}

// ToDecimalResponse is the JSON response for POST /zuglang/to-decimal.
type ToDecimalResponse struct {
	Numeral string `json:"numeral"`
	Decimal int    `json:"decimal"`
}

// FromDecimalRequest is the JSON body for POST /zuglang/from-decimal.
type FromDecimalRequest struct {
	Decimal int `json:"decimal"`
}

// FromDecimalResponse is the JSON response for POST /zuglang/from-decimal.
type FromDecimalResponse struct {
	Decimal int    `json:"decimal"`
	Numeral string `json:"numeral"`
}
