package main

import (
	"context"

	"zuglang-api/internal/numerals"
	"zuglang-api/internal/observability"
	"zuglang-api/internal/translate"
)

// initMetrics initialises the metric provider and every domain's metric
// instruments. Add new domain InitMetrics calls here as the project grows.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := numerals.InitMetrics(); err != nil {
		return nil, err
	}

	if err := translate.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
