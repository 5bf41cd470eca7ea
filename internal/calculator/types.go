package calculator

// Key names accepted by POST /calculator/sessions/{id}/keys. Digits name
// themselves; the rest mirror the buttons of an on-screen calculator.
const (
	KeyDecimalPoint = "."
	KeySign         = "sign"
	KeyPercent      = "percent"
	KeyEquals       = "equals"
	KeyClear        = "clear"
)

// KeyRequest is the JSON body for pressing one calculator key.
type KeyRequest struct {
	Key string `json:"key"`
}

// SessionView is the renderer-facing projection of one session: everything an
// on-screen calculator needs to draw itself after a key press.
type SessionView struct {
	SessionID string `json:"session_id"`

	// Display is the raw value, Formatted the grouped human-readable readout.
	Display   string `json:"display"`
	Formatted string `json:"formatted"`

	// ActiveOperators flags which operator button should render highlighted.
	ActiveOperators map[string]bool `json:"active_operators"`

	// ClearLabel is "clear-entry" or "clear-all", per the current state.
	ClearLabel string `json:"clear_label"`
}

// ExpressionRequest is the JSON body for POST /calculator/expression.
type ExpressionRequest struct {
	Expression string `json:"expression"`
}

// ExpressionResponse is the result of a one-shot expression evaluation.
// Result is omitted for non-finite values; Formatted always carries the
// display form, sentinels included.
type ExpressionResponse struct {
	Expression string   `json:"expression"`
	Result     *float64 `json:"result,omitempty"`
	Formatted  string   `json:"formatted"`
}
