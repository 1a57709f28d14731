package calculator

// Operator is a pending binary operation.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the symbol shown on the operator button.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// ParseOperator maps a button label or typed key to an operator.
func ParseOperator(label string) (Operator, bool) {
	switch label {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "×", "*", "x":
		return OpMultiply, true
	case "÷", "/":
		return OpDivide, true
	default:
		return OpNone, false
	}
}

func (op Operator) apply(left, right float64) float64 {
	switch op {
	case OpAdd:
		return left + right
	case OpSubtract:
		return left - right
	case OpMultiply:
		return left * right
	case OpDivide:
		return left / right
	default:
		return right
	}
}
