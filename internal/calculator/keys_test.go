package calculator

import (
	"testing"

	"calc-api/internal/engine"
)

func TestPressKeyDispatch(t *testing.T) {
	tests := []struct {
		key     string
		applied bool
		display string
	}{
		{key: "7", applied: true, display: "7"},
		{key: ".", applied: true, display: "0."},
		{key: "sign", applied: true, display: "0"},
		{key: "percent", applied: true, display: "0"},
		{key: "add", applied: true, display: "0"},
		{key: "subtract", applied: true, display: "0"},
		{key: "multiply", applied: true, display: "0"},
		{key: "divide", applied: true, display: "0"},
		{key: "equals", applied: true, display: "0"},
		{key: "clear", applied: true, display: "0"},
		{key: "sqrt", applied: false, display: "0"},
		{key: "12", applied: false, display: "0"},
		{key: "", applied: false, display: "0"},
	}

	for _, tc := range tests {
		t.Run("key "+tc.key, func(t *testing.T) {
			next, ok := pressKey(engine.New(), tc.key)
			if ok != tc.applied {
				t.Fatalf("key %q: expected applied %t, got %t", tc.key, tc.applied, ok)
			}
			if next.Display != tc.display {
				t.Fatalf("key %q: expected display %q, got %q", tc.key, tc.display, next.Display)
			}
		})
	}
}
