package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"calc-api/internal/engine"
	"calc-api/internal/observability"

	"github.com/Knetic/govaluate"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// API serves the calculator session endpoints on top of one Store.
type API struct {
	store *Store
}

func NewAPI() *API {
	return &API{store: NewStore()}
}

var operators = []engine.Op{engine.OpAdd, engine.OpSubtract, engine.OpMultiply, engine.OpDivide}

// view projects a session state into the renderer contract: raw and formatted
// display, operator highlight flags, and the clear-button caption.
func view(id string, s engine.State) SessionView {
	active := make(map[string]bool, len(operators))
	for _, op := range operators {
		active[string(op)] = s.OperatorActive(op)
	}

	return SessionView{
		SessionID:       id,
		Display:         s.Display,
		Formatted:       engine.FormatDisplay(s.Display),
		ActiveOperators: active,
		ClearLabel:      s.ClearLabel(),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// CreateSession handles POST /calculator/sessions
func (a *API) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.session.create",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	id, state := a.store.Create()
	sessionsGauge.Add(ctx, 1)

	span.SetAttributes(attribute.String("calculator.session.id", id))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator session created",
		zap.String("session_id", id),
		zap.String("request_id", requestID),
		zap.Int("live_sessions", a.store.Len()),
	)

	writeJSON(w, http.StatusCreated, view(id, state))
}

// GetSession handles GET /calculator/sessions/{sessionID}
func (a *API) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "calculator.session.get")
	defer span.End()

	id := chi.URLParam(r, "sessionID")
	state, ok := a.store.Get(id)
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, "session.get", "session not found", fmt.Errorf("no session %s", id), http.StatusNotFound, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.session.id", id))
	span.SetStatus(codes.Ok, "")

	writeJSON(w, http.StatusOK, view(id, state))
}

// PressKey handles POST /calculator/sessions/{sessionID}/keys — one discrete
// input event, applied to the session state under the store lock.
func (a *API) PressKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	id := chi.URLParam(r, "sessionID")

	ctx, span := tracer.Start(ctx, "calculator.keypress",
		trace.WithAttributes(
			attribute.String("calculator.session.id", id),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keypress", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.key", req.Key))

	start := time.Now()
	applied := false
	next, found := a.store.Apply(id, func(s engine.State) engine.State {
		n, ok := pressKey(s, req.Key)
		applied = ok
		return n
	})
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if !found {
		observability.RecordError(ctx, span, logger, errorCounter, "keypress", "session not found", fmt.Errorf("no session %s", id), http.StatusNotFound, w)
		return
	}
	if !applied {
		observability.RecordError(ctx, span, logger, errorCounter, "keypress", "unknown key", fmt.Errorf("key %q is not on the keypad", req.Key), http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("key", req.Key))
	keypressCounter.Add(ctx, 1, attrs)
	keypressHistogram.Record(ctx, elapsed, attrs)
	if v := next.Value(); !math.IsNaN(v) && !math.IsInf(v, 0) {
		displayGauge.Record(ctx, v, attrs)
	}

	span.AddEvent("keypress.applied", trace.WithAttributes(
		attribute.String("display", next.Display),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator key applied",
		zap.String("session_id", id),
		zap.String("key", req.Key),
		zap.String("display", next.Display),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeJSON(w, http.StatusOK, view(id, next))
}

// DeleteSession handles DELETE /calculator/sessions/{sessionID}
func (a *API) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "calculator.session.delete")
	defer span.End()

	id := chi.URLParam(r, "sessionID")
	if !a.store.Delete(id) {
		observability.RecordError(ctx, span, logger, errorCounter, "session.delete", "session not found", fmt.Errorf("no session %s", id), http.StatusNotFound, w)
		return
	}
	sessionsGauge.Add(ctx, -1)

	span.SetAttributes(attribute.String("calculator.session.id", id))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator session deleted",
		zap.String("session_id", id),
		zap.Int("live_sessions", a.store.Len()),
	)

	w.WriteHeader(http.StatusNoContent)
}

// Expression handles POST /calculator/expression — a stateless one-shot
// evaluation of a free-form arithmetic expression, separate from the keypad
// session model.
func (a *API) Expression(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.expression",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req ExpressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "expression", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if req.Expression == "" {
		observability.RecordError(ctx, span, logger, errorCounter, "expression", "empty expression", fmt.Errorf("expression field is required"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.expression", req.Expression))

	expr, err := govaluate.NewEvaluableExpression(req.Expression)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "expression", "malformed expression", err, http.StatusBadRequest, w)
		return
	}

	start := time.Now()
	raw, err := expr.Evaluate(nil)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "expression", "evaluating expression", err, http.StatusBadRequest, w)
		return
	}
	result, ok := raw.(float64)
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, "expression", "expression is not numeric", fmt.Errorf("result %v is %T, not a number", raw, raw), http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("key", "expression"))
	keypressCounter.Add(ctx, 1, attrs)
	keypressHistogram.Record(ctx, elapsed, attrs)

	formatted := engine.FormatDisplay(engine.FormatValue(result))

	span.SetAttributes(attribute.String("calculator.expression.result", formatted))
	span.SetStatus(codes.Ok, "")

	logger.Info("expression evaluated",
		zap.String("expression", req.Expression),
		zap.String("result", formatted),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	resp := ExpressionResponse{
		Expression: req.Expression,
		Formatted:  formatted,
	}
	// Non-finite results are representable only as their display sentinel;
	// encoding/json cannot carry Inf or NaN in a float64 field.
	if !math.IsNaN(result) && !math.IsInf(result, 0) {
		resp.Result = &result
	}

	writeJSON(w, http.StatusOK, resp)
}
