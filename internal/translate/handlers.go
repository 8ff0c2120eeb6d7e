package translate

import (
	"encoding/json"
	"errors"
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

var tracer = otel.Tracer("translate")

// Stable error codes exposed in JSON error bodies.
const (
	CodeInvalidBody   = "invalid_body"
	CodeUnknownPhrase = "unknown_phrase"
)

// Request is the JSON body for POST /zuglang/translate.
type Request struct {
	Phrase string `json:"phrase"`
}

// Response is the JSON response for POST /zuglang/translate.
type Response struct {
	Phrase      string `json:"phrase"`
	Translation string `json:"translation"`
}

// Translate handles POST /zuglang/translate: dictionary lookup of a Zuglang
// phrase. Unknown phrases return 404 with the unknown_phrase code.
func Translate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "translate.lookup",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "translate", CodeInvalidBody, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("translate.phrase", req.Phrase))

	start := time.Now()
	text, err := zuglang.Translate(req.Phrase)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		var unknown *zuglang.UnknownPhraseError
		if errors.As(err, &unknown) {
			observability.RecordError(ctx, span, logger, errorCounter, "translate", CodeUnknownPhrase, err.Error(), err, http.StatusNotFound, w)
			return
		}
		observability.RecordError(ctx, span, logger, errorCounter, "translate", CodeInvalidBody, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "translate"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.SetAttributes(attribute.String("translate.result", text))
	span.SetStatus(codes.Ok, "")

	logger.Info("phrase translated",
		zap.String("phrase", req.Phrase),
		zap.String("translation", text),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, Response{
		Phrase:      req.Phrase,
		Translation: text,
	})
}
