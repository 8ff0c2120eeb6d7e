package numerals

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
)

// InitMetrics registers the OTel metric instruments for the numerals domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("numerals")

	var err error

	opsCounter, err = meter.Int64Counter("numerals.operations.total",
		metric.WithDescription("Total number of numeral conversions and calculations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("numerals.operation.duration",
		metric.WithDescription("Duration of numeral operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("numerals.errors.total",
		metric.WithDescription("Total number of numeral operation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
