package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var Logger *zap.Logger

func InitLogger() error {
	var err error

	Logger, err = zap.NewProduction()
	if err != nil {
		return err
	}

	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx itself is embedded as a zap.Any field: the otelzap bridge detects a
// field value implementing context.Context and passes it to Emit, which
// populates the native TraceID/SpanID on the exported OTLP log record.
// Without it the bridge emits with context.Background() and every exported
// record carries an all-zeros trace ID, breaking log/trace correlation in
// the backend. The string fields are kept so stdout JSON logs stay
// greppable without an OTel-aware tool.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
