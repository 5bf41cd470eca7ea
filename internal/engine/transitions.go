package engine

import (
	"math"
	"strings"
)

// Digit handles one digit key. Anything outside '0'..'9' is absorbed as a
// no-op, as is any digit beyond the display length cap.
func (s State) Digit(d byte) State {
	if d < '0' || d > '9' {
		return s
	}
	// A fresh operand starts after an operator was chosen, and also on top of
	// a non-finite readout: typing over "∞" begins a new number.
	if s.WaitingForSecond || !s.finiteDisplay() {
		s.Display = string(d)
		s.WaitingForSecond = false
		return s
	}
	if s.Display == "0" {
		s.Display = string(d)
		return s
	}
	if len(s.Display) >= maxDisplayLen {
		return s
	}
	s.Display += string(d)
	return s
}

// DecimalPoint appends the decimal point, or starts "0." on a fresh operand.
// A second point in the same number is absorbed.
func (s State) DecimalPoint() State {
	if s.WaitingForSecond || !s.finiteDisplay() {
		s.Display = "0."
		s.WaitingForSecond = false
		return s
	}
	if strings.Contains(s.Display, ".") {
		return s
	}
	s.Display += "."
	return s
}

// ToggleSign flips the sign of the displayed number. "0" stays "0", and the
// non-finite sentinels are left alone so they stay recognizable until a clear
// or a fresh digit replaces them.
func (s State) ToggleSign() State {
	if s.Display == "0" || !s.finiteDisplay() {
		return s
	}
	if strings.HasPrefix(s.Display, "-") {
		s.Display = s.Display[1:]
	} else {
		s.Display = "-" + s.Display
	}
	return s
}

// Percent converts the display to a percentage. With a pending add or
// subtract the percentage is taken of the held accumulator, so
// 100 + 10 % reads as "plus ten percent of 100"; with multiply or divide,
// or with no operation pending, it is a plain division by 100.
func (s State) Percent() State {
	v := s.Value()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	result := v / 100
	if s.HasAcc {
		switch s.Pending {
		case OpAdd, OpSubtract:
			result = s.Acc * (v / 100)
		}
	}
	s.Display = FormatValue(result)
	return s
}

// ChooseOperator records op as the pending operator. If a full pair of
// operands is already on hand (a previous operator plus a freshly typed
// second operand), that operation is evaluated first, so chains like
// 2 + 3 × 4 collapse left to right with no precedence.
func (s State) ChooseOperator(op Op) State {
	if _, ok := ParseOp(string(op)); !ok {
		return s
	}
	if s.Pending != OpNone && !s.WaitingForSecond && s.HasAcc {
		result := apply(s.Pending, s.Acc, s.Value())
		s.Acc = result
		s.Display = FormatValue(result)
	} else {
		s.Acc = s.Value()
		s.HasAcc = true
	}
	s.Pending = op
	s.WaitingForSecond = true
	s.LastOp = OpNone
	s.LastOperand = 0
	return s
}

// Evaluate applies the pending operation, or, when none is pending, repeats
// the last completed one against the current value. Equals straight after an
// operator (no second operand typed) is a no-op.
func (s State) Evaluate() State {
	switch {
	case s.Pending != OpNone && s.HasAcc && !s.WaitingForSecond:
		operand := s.Value()
		result := apply(s.Pending, s.Acc, operand)
		s.Display = FormatValue(result)
		s.Acc = result
		s.LastOp = s.Pending
		s.LastOperand = operand
		s.Pending = OpNone
		s.WaitingForSecond = false
	case s.LastOp != OpNone:
		result := apply(s.LastOp, s.Value(), s.LastOperand)
		s.Display = FormatValue(result)
		s.Acc = result
		s.HasAcc = true
	}
	return s
}

// Clear is context-sensitive. While dirty it acts as clear-entry: the display
// drops back to "0" but a pending operator and accumulator survive, so the
// next digit re-enters the right-hand operand. From the idle state it is a
// full reset.
func (s State) Clear() State {
	if s.dirty() {
		s.Display = "0"
		s.WaitingForSecond = s.Pending != OpNone
		return s
	}
	return New()
}

// apply computes one binary operation. It never fails: dividing by zero
// yields positive infinity, and non-finite operands propagate through the
// usual float64 rules.
func apply(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return math.Inf(1)
		}
		return a / b
	}
	return b
}
