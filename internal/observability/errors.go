package observability

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordError centralises error handling across all domains: it records the
// error on the span, increments the domain error counter, logs with trace
// context, and writes the JSON error response. The code is a stable
// machine-readable identifier for the error kind, so callers dispatch on it
// rather than parsing the message.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, code, msg string, err error, status int, w http.ResponseWriter) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("code", code),
	))

	logger.Error(msg,
		zap.String("operation", opName),
		zap.String("code", code),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
		"code":  code,
	})
}
