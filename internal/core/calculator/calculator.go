package calculator

import "strings"

// ErrorText is shown in the display after a division by zero.
const ErrorText = "Error"

// ActivityNotifier is told about every user signal before it is applied.
type ActivityNotifier interface {
	Touch()
}

type nopNotifier struct{}

func (nopNotifier) Touch() {}

// State is a read-only copy of the calculator state.
type State struct {
	Display     string
	Pending     Operator
	LeftOperand string
	ResetNext   bool
}

// Calculator is the four-function state machine behind the keypad.
// It is not safe for concurrent use; drive it from the UI goroutine.
type Calculator struct {
	activity ActivityNotifier
	display  string
	pending  Operator
	left     string
	reset    bool
}

// New creates an idle calculator with an empty display.
func New(activity ActivityNotifier) *Calculator {
	if activity == nil {
		activity = nopNotifier{}
	}
	return &Calculator{activity: activity}
}

// Display returns the text currently shown.
func (calc *Calculator) Display() string {
	return calc.display
}

// Pending returns the operator waiting for its right operand.
func (calc *Calculator) Pending() Operator {
	return calc.pending
}

// LeftOperand returns the operand captured when the pending operator was chosen.
func (calc *Calculator) LeftOperand() string {
	return calc.left
}

// ResetPending reports whether the next digit starts a new number.
func (calc *Calculator) ResetPending() bool {
	return calc.reset
}

// Snapshot copies the current state.
func (calc *Calculator) Snapshot() State {
	return State{
		Display:     calc.display,
		Pending:     calc.pending,
		LeftOperand: calc.left,
		ResetNext:   calc.reset,
	}
}

// Append adds a digit or the decimal point to the number being typed.
func (calc *Calculator) Append(value string) {
	calc.activity.Touch()
	if calc.reset {
		calc.display = ""
		calc.reset = false
	}

	if value == "." && strings.Contains(calc.display, ".") {
		return
	}

	if calc.display == "0" && value != "." {
		calc.display = value
		return
	}
	calc.display += value
}

// Clear returns the calculator to its initial state.
func (calc *Calculator) Clear() {
	calc.activity.Touch()
	calc.display = ""
	calc.clearPending()
	calc.reset = false
}

// DeleteLast removes the final character of the display.
func (calc *Calculator) DeleteLast() {
	calc.activity.Touch()
	runes := []rune(calc.display)
	if len(runes) == 0 {
		return
	}
	calc.display = string(runes[:len(runes)-1])
}

// SelectOperator stores op as pending, evaluating any previous pair first.
func (calc *Calculator) SelectOperator(op Operator) {
	if op == OpNone {
		return
	}
	calc.activity.Touch()
	if calc.ready() {
		calc.evaluate()
	}
	// An operator without a left operand would leave the pair half set.
	if calc.display == "" {
		return
	}

	calc.left = calc.display
	calc.pending = op
	calc.reset = true
}

// Evaluate applies the pending operator to the left operand and the display.
func (calc *Calculator) Evaluate() {
	calc.activity.Touch()
	calc.evaluate()
}

func (calc *Calculator) evaluate() {
	if !calc.ready() {
		return
	}

	left := parseNumber(calc.left)
	right := parseNumber(calc.display)

	if calc.pending == OpDivide && right == 0 {
		calc.display = ErrorText
		calc.clearPending()
		calc.reset = true
		return
	}

	calc.display = formatNumber(calc.pending.apply(left, right))
	calc.clearPending()
	calc.reset = true
}

func (calc *Calculator) ready() bool {
	return calc.pending != OpNone && calc.left != "" && calc.display != ""
}

func (calc *Calculator) clearPending() {
	calc.pending = OpNone
	calc.left = ""
}
