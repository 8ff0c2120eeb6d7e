package observability

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName resolves the OTel service name, defaulting to the service's
// own name when OTEL_SERVICE_NAME is unset.
func ServiceName() string {
	name := os.Getenv("OTEL_SERVICE_NAME")
	if name == "" {
		name = "zuglang-api"
	}
	return name
}

// newResource builds the shared OTel resource used by the trace and log
// providers.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(
		ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(ServiceName()),
		),
	)
}
