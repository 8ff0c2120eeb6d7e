package translate

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
)

// InitMetrics registers the OTel metric instruments for the translate
// domain. Call once at startup.
func InitMetrics() error {
	meter := otel.Meter("translate")

	var err error

	opsCounter, err = meter.Int64Counter("translate.lookups.total",
		metric.WithDescription("Total number of phrase translations"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return fmt.Errorf("creating lookup counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("translate.lookup.duration",
		metric.WithDescription("Duration of phrase lookups in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating lookup histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("translate.errors.total",
		metric.WithDescription("Total number of translation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
