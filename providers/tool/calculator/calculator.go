package calculator

import (
	"context"

	"github.com/synapticlabs/synaptic/core/tool"
)

// New returns a [tool.Tool] configured for basic arithmetic. It registers
// [Calc] as its execution function; the computation runs in-process with no
// external API calls.
func New() *tool.Tool {
	t, err := tool.NewTyped("calculator",
		"A simple calculator to perform basic arithmetic operations like addition, subtraction, multiplication, and division.",
		Calc,
	)
	if err != nil {
		panic(err) // unreachable: Calc is statically non-nil
	}
	return t
}

// Calc performs the arithmetic operation specified by req.Op on the operands
// req.A and req.B. Supported operations are "add"/"+", "sub"/"-", "mul"/"*",
// and "div"/"/". Division by zero returns positive or negative infinity
// consistent with IEEE 754 floating-point semantics; no explicit error is
// returned for that case. An unrecognised Op value silently returns a result
// of 0.0.
//
// Example:
//
//	result, err := Calc(ctx, calculator.Input{A: 10, B: 4, Op: "div"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Result) // 2.5
func Calc(ctx context.Context, req Input) (Output, error) {
	var result float64
	switch req.Op {
	case "add", "+":
		result = req.A + req.B
	case "sub", "-":
		result = req.A - req.B
	case "mul", "*":
		result = req.A * req.B
	case "div", "/":
		result = req.A / req.B
	}
	return Output{Result: result}, nil
}

// Input holds the two operands and the operation to be applied by [Calc].
type Input struct {
	A  float64 `json:"a" description:"First operand"`
	B  float64 `json:"b" description:"Second operand"`
	Op string  `json:"op" description:"Operation type" enum:"add,sub,mul,div"`
}

// Output carries the single floating-point result produced by [Calc].
type Output struct {
	Result float64 `json:"result" description:"The result of the calculation"`
}
