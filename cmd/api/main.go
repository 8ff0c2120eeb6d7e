package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"zuglang-api/internal/config"
	"zuglang-api/internal/observability"
	"zuglang-api/internal/server"
	"zuglang-api/internal/zuglang"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// OTLP log export
	logShutdown, err := observability.InitLogging(ctx)
	if err != nil {
		panic(err)
	}
	defer logShutdown(ctx)

	// Tracing
	traceShutdown, err := observability.InitTracing(ctx)
	if err != nil {
		panic(err)
	}
	defer traceShutdown(ctx)

	// Metrics
	metricShutdown, err := initMetrics(ctx)
	if err != nil {
		panic(err)
	}
	defer metricShutdown(ctx)

	// Router
	router := server.NewRouter(cfg)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.ListenAddr),
			zap.String("base_url", cfg.BaseURL),
			zap.Int("dictionary_phrases", zuglang.PhraseCount()),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	waitForShutdown(srv)
}

func waitForShutdown(srv *http.Server) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.Shutdown(ctx)
}
