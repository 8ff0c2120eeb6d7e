package numerals

import (
	"encoding/json"
	"net/http"
	"time"

	"zuglang-api/internal/handlers"
	"zuglang-api/internal/observability"
	"zuglang-api/internal/zuglang"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the numerals domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("numerals")

// Calculate handles POST /zuglang/calculator: arithmetic over two
// letter-encoded operands, returning the result in both notations.
func Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "numerals.calculate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", CodeInvalidBody, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("numerals.operand.a", req.A),
		attribute.String("numerals.operand.b", req.B),
		attribute.String("numerals.operator", req.Op),
	)

	start := time.Now()
	result, err := zuglang.Compute(req.A, req.B, req.Op)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		code, status := classify(err)
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", code, err.Error(), err, status, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "calculate"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("result", result.Encoded),
		attribute.Int("result.decimal", result.Decimal),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation completed",
		zap.String("a", result.Operand1),
		zap.String("b", result.Operand2),
		zap.String("op", result.Operator),
		zap.String("result", result.Encoded),
		zap.Int("result_decimal", result.Decimal),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		A:      result.Operand1,
		B:      result.Operand2,
		Op:     result.Operator,
		Result: result.Encoded,
		Decimal: DecimalBreakdown{
			A:      result.Decimal1,
			B:      result.Decimal2,
			Result: result.Decimal,
		},
		Summary: result.Summary(),
	})
}

// ToDecimal handles POST /zuglang/to-decimal: numeral string to its decimal
// magnitude.
func ToDecimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "numerals.to_decimal",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ToDecimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "to_decimal", CodeInvalidBody, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("numerals.input", req.Numeral))

	start := time.Now()
	decimal, err := zuglang.Decode(req.Numeral)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		code, status := classify(err)
		observability.RecordError(ctx, span, logger, errorCounter, "to_decimal", code, err.Error(), err, status, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "to_decimal"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.SetAttributes(attribute.Int("numerals.result", decimal))
	span.SetStatus(codes.Ok, "")

	logger.Info("numeral decoded",
		zap.String("numeral", req.Numeral),
		zap.Int("decimal", decimal),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ToDecimalResponse{
		Numeral: req.Numeral,
		Decimal: decimal,
	})
}

// FromDecimal handles POST /zuglang/from-decimal: decimal integer to its
// numeral string. Negative inputs encode with a leading minus.
func FromDecimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "numerals.from_decimal",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req FromDecimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "from_decimal", CodeInvalidBody, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("numerals.input", req.Decimal))

	start := time.Now()
	numeral := zuglang.Encode(req.Decimal)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(attribute.String("operation", "from_decimal"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.SetAttributes(attribute.String("numerals.result", numeral))
	span.SetStatus(codes.Ok, "")

	logger.Info("numeral encoded",
		zap.Int("decimal", req.Decimal),
		zap.String("numeral", numeral),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, FromDecimalResponse{
		Decimal: req.Decimal,
		Numeral: numeral,
	})
}
