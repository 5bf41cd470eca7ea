package calculator

import "calc-api/internal/engine"

// pressKey dispatches one key name onto the matching engine transition. The
// second result is false for a key name the keypad does not have; the state
// is returned unchanged in that case.
func pressKey(s engine.State, key string) (engine.State, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return s.Digit(key[0]), true
	}

	switch key {
	case KeyDecimalPoint:
		return s.DecimalPoint(), true
	case KeySign:
		return s.ToggleSign(), true
	case KeyPercent:
		return s.Percent(), true
	case KeyEquals:
		return s.Evaluate(), true
	case KeyClear:
		return s.Clear(), true
	}

	if op, ok := engine.ParseOp(key); ok {
		return s.ChooseOperator(op), true
	}

	return s, false
}
