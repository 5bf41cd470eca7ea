// Package engine implements the calculator's state machine: a pure value
// record plus total transition functions. Every transition consumes a State
// and returns the next one; nothing here performs I/O or holds shared state.
package engine

import (
	"math"
	"strconv"
)

// Op is a binary calculator operator. The zero value means "no operator".
type Op string

const (
	OpNone     Op = ""
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

// ParseOp maps an operator name onto its Op value.
func ParseOp(s string) (Op, bool) {
	switch Op(s) {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return Op(s), true
	}
	return OpNone, false
}

// maxDisplayLen caps the raw display length, counting any minus sign and
// decimal point. This mirrors the original keypad behavior, which trades a
// little effective precision for a fixed-width readout.
const maxDisplayLen = 12

// Non-finite display sentinels. They are first-class displayable values, not
// errors; a fresh digit or a clear leaves them behind.
const (
	DisplayInf    = "∞"
	DisplayNegInf = "-∞"
	DisplayNaN    = "NaN"
)

// State is one calculator's entire condition. It is a plain value: transitions
// take a State by value and return the successor, so callers can keep, compare
// or discard any intermediate state freely.
type State struct {
	// Display is the raw readout: digits, an optional leading minus sign and
	// at most one decimal point, or one of the non-finite sentinels.
	Display string

	// Acc holds the left-hand operand of a pending operation, or the result
	// of the last completed one. HasAcc marks presence.
	Acc    float64
	HasAcc bool

	// Pending is the operator chosen but not yet applied.
	Pending Op

	// WaitingForSecond is set right after an operator is chosen; the next
	// digit then starts a fresh operand instead of appending.
	WaitingForSecond bool

	// LastOp and LastOperand record the most recently applied operation so
	// repeated equals presses can reapply it. LastOp == OpNone means unset.
	LastOp      Op
	LastOperand float64
}

// New returns the initial state: display "0", nothing pending.
func New() State {
	return State{Display: "0"}
}

// Value parses the current display into a number. Sentinels map to their
// non-finite values.
func (s State) Value() float64 {
	switch s.Display {
	case DisplayInf:
		return math.Inf(1)
	case DisplayNegInf:
		return math.Inf(-1)
	case DisplayNaN:
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s.Display, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// finiteDisplay reports whether the display holds an ordinary number rather
// than a non-finite sentinel.
func (s State) finiteDisplay() bool {
	switch s.Display {
	case DisplayInf, DisplayNegInf, DisplayNaN:
		return false
	}
	return true
}

// dirty reports whether anything has happened since the last full reset:
// a non-zero display, a held accumulator, or a pending operator.
func (s State) dirty() bool {
	return s.Display != "0" || s.HasAcc || s.Pending != OpNone
}

// ClearLabel is the caption the clear button should carry for this state,
// evaluated before the press: "clear-entry" while dirty, "clear-all" once
// the engine is idle.
func (s State) ClearLabel() string {
	if s.dirty() {
		return "clear-entry"
	}
	return "clear-all"
}

// OperatorActive reports whether op should render highlighted: it is the
// pending operator and no digit of the second operand has been typed yet.
func (s State) OperatorActive(op Op) bool {
	return op != OpNone && op == s.Pending && s.WaitingForSecond
}
